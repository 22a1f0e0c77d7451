package connectivity

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// build assembles a connectivity directly from freshly allocated literal
// tables, without copying.
func build(vertices []r3.Vector, treeToVertex, treeToTree []int32, treeToFace []int8,
	treeToEdge, ettOffset, edgeToTree []int32, edgeToEdge []int8,
	treeToCorner, cttOffset, cornerToTree []int32, cornerToCorner []int8,
) *Connectivity {
	return &Connectivity{
		vertices:       vertices,
		treeToVertex:   treeToVertex,
		treeToTree:     treeToTree,
		treeToFace:     treeToFace,
		treeToEdge:     treeToEdge,
		ettOffset:      ettOffset,
		edgeToTree:     edgeToTree,
		edgeToEdge:     edgeToEdge,
		treeToCorner:   treeToCorner,
		cttOffset:      cttOffset,
		cornerToTree:   cornerToTree,
		cornerToCorner: cornerToCorner,
	}
}

func unitCubeVertices() []r3.Vector {
	return []r3.Vector{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
		{X: 1, Y: 0, Z: 1},
		{X: 0, Y: 1, Z: 1},
		{X: 1, Y: 1, Z: 1},
	}
}

// NewUnitCube returns the connectivity of a single tree whose faces are all
// boundaries.
func NewUnitCube() *Connectivity {
	return build(
		unitCubeVertices(),
		[]int32{0, 1, 2, 3, 4, 5, 6, 7},
		[]int32{0, 0, 0, 0, 0, 0},
		[]int8{0, 1, 2, 3, 4, 5},
		nil, nil, nil, nil, nil, nil, nil, nil,
	)
}

// NewPeriodic returns a single tree with all three face pairs identified,
// a three-torus. Each axis contributes one macro edge of four incidences and
// all eight corners meet in a single macro corner.
func NewPeriodic() *Connectivity {
	return build(
		unitCubeVertices(),
		[]int32{0, 1, 2, 3, 4, 5, 6, 7},
		[]int32{0, 0, 0, 0, 0, 0},
		[]int8{1, 0, 3, 2, 5, 4},
		[]int32{0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2},
		[]int32{0, 4, 8, 12},
		[]int32{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		[]int8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
		[]int32{0, 0, 0, 0, 0, 0, 0, 0},
		[]int32{0, 8},
		[]int32{0, 0, 0, 0, 0, 0, 0, 0},
		[]int8{0, 1, 2, 3, 4, 5, 6, 7},
	)
}

// NewRotWrap returns a single tree with the x faces identified directly and
// the y faces identified through a quarter rotation; the z faces stay
// boundaries. The rotation merges x and z edges into two macro edges with
// reversed members.
func NewRotWrap() *Connectivity {
	return build(
		unitCubeVertices(),
		[]int32{0, 1, 2, 3, 4, 5, 6, 7},
		[]int32{0, 0, 0, 0, 0, 0},
		[]int8{1, 0, 9, 8, 4, 5},
		[]int32{0, 1, 0, 1, -1, -1, -1, -1, 1, 1, 0, 0},
		[]int32{0, 4, 8},
		[]int32{0, 0, 0, 0, 0, 0, 0, 0},
		[]int8{0, 2, 10, 11, 1, 3, 20, 21},
		[]int32{0, 0, 0, 0, 0, 0, 0, 0},
		[]int32{0, 8},
		[]int32{0, 0, 0, 0, 0, 0, 0, 0},
		[]int8{0, 1, 2, 3, 4, 5, 6, 7},
	)
}

func twoCubeVertices() []r3.Vector {
	return []r3.Vector{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: 2, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
		{X: 1, Y: 0, Z: 1},
		{X: 2, Y: 0, Z: 1},
		{X: 0, Y: 1, Z: 1},
		{X: 1, Y: 1, Z: 1},
		{X: 2, Y: 1, Z: 1},
	}
}

func twoCubeTreeToVertex() []int32 {
	return []int32{
		0, 1, 3, 4, 6, 7, 9, 10,
		1, 2, 4, 5, 7, 8, 10, 11,
	}
}

// NewTwoCubes returns two trees glued along one face.
func NewTwoCubes() *Connectivity {
	return build(
		twoCubeVertices(),
		twoCubeTreeToVertex(),
		[]int32{
			0, 1, 0, 0, 0, 0,
			0, 1, 1, 1, 1, 1,
		},
		[]int8{
			0, 0, 2, 3, 4, 5,
			1, 1, 2, 3, 4, 5,
		},
		nil, nil, nil, nil, nil, nil, nil, nil,
	)
}

// NewTwoWrap returns two trees glued along one face whose two far faces are
// additionally identified periodically. Both macro-edge rings stay fully
// described by the face gluings.
func NewTwoWrap() *Connectivity {
	return build(
		twoCubeVertices(),
		twoCubeTreeToVertex(),
		[]int32{
			1, 1, 0, 0, 0, 0,
			0, 0, 1, 1, 1, 1,
		},
		[]int8{
			1, 0, 2, 3, 4, 5,
			1, 0, 2, 3, 4, 5,
		},
		nil, nil, nil, nil, nil, nil, nil, nil,
	)
}

// NewRotCubes returns six cubes in an L-shaped cluster whose reference frames
// are rotated against each other so that all four face orientation codes
// occur, together with reversed macro edges and diagonal-only corner
// relations. It exists to stress the topology routines.
func NewRotCubes() *Connectivity {
	return build(
		[]r3.Vector{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 2, Y: 0, Z: 0},
			{X: 3, Y: 0, Z: 0},
			{X: 0, Y: 1, Z: 0},
			{X: 1, Y: 1, Z: 0},
			{X: 2, Y: 1, Z: 0},
			{X: 3, Y: 1, Z: 0},
			{X: 0, Y: 2, Z: 0},
			{X: 1, Y: 2, Z: 0},
			{X: 2, Y: 2, Z: 0},
			{X: 0, Y: 0, Z: 1},
			{X: 1, Y: 0, Z: 1},
			{X: 2, Y: 0, Z: 1},
			{X: 3, Y: 0, Z: 1},
			{X: 0, Y: 1, Z: 1},
			{X: 1, Y: 1, Z: 1},
			{X: 2, Y: 1, Z: 1},
			{X: 3, Y: 1, Z: 1},
			{X: 0, Y: 2, Z: 1},
			{X: 1, Y: 2, Z: 1},
			{X: 2, Y: 2, Z: 1},
			{X: 1, Y: 1, Z: 2},
			{X: 2, Y: 1, Z: 2},
			{X: 1, Y: 2, Z: 2},
			{X: 2, Y: 2, Z: 2},
		},
		[]int32{
			5, 4, 1, 0, 16, 15, 12, 11,
			5, 1, 6, 2, 16, 12, 17, 13,
			18, 17, 7, 6, 14, 13, 3, 2,
			9, 20, 8, 19, 5, 16, 4, 15,
			21, 10, 17, 6, 20, 9, 16, 5,
			23, 22, 25, 24, 17, 16, 21, 20,
		},
		[]int32{
			1, 0, 3, 0, 0, 0,
			4, 1, 0, 2, 1, 1,
			2, 1, 2, 2, 2, 2,
			3, 3, 4, 3, 3, 0,
			5, 4, 4, 1, 4, 3,
			5, 5, 5, 5, 5, 4,
		},
		[]int8{
			2, 1, 5, 3, 4, 5,
			21, 1, 0, 13, 4, 5,
			0, 15, 2, 3, 4, 5,
			0, 1, 11, 3, 4, 2,
			17, 1, 2, 18, 4, 8,
			0, 1, 2, 3, 4, 12,
		},
		[]int32{
			-1, -1, -1, -1, -1, -1, -1, -1, 0, -1, -1, -1,
			-1, -1, -1, -1, -1, -1, 1, -1, 0, -1, 2, -1,
			-1, -1, -1, -1, -1, 2, -1, -1, -1, -1, -1, -1,
			-1, -1, 0, -1, -1, -1, -1, -1, -1, 3, -1, -1,
			-1, 2, -1, 0, -1, -1, 3, -1, -1, -1, 1, -1,
			-1, -1, 1, -1, -1, -1, -1, 3, -1, -1, -1, -1,
		},
		[]int32{0, 4, 7, 10, 13},
		[]int32{
			0, 1, 3, 4,
			1, 4, 5,
			1, 2, 4,
			3, 4, 5,
		},
		[]int8{
			8, 8, 2, 15,
			6, 22, 14,
			10, 17, 13,
			9, 6, 19,
		},
		[]int32{
			-1, -1, -1, -1, 0, -1, -1, -1,
			-1, -1, -1, -1, 0, -1, 1, -1,
			-1, 1, -1, -1, -1, -1, -1, -1,
			-1, -1, -1, -1, -1, 0, -1, -1,
			-1, -1, 1, -1, -1, -1, 0, -1,
			-1, -1, -1, -1, 1, 0, -1, -1,
		},
		[]int32{0, 5, 9},
		[]int32{
			0, 1, 3, 4, 5,
			1, 2, 4, 5,
		},
		[]int8{
			4, 4, 5, 6, 5,
			6, 1, 2, 4,
		},
	)
}

// NewByName resolves a built-in connectivity by its lower-case name.
func NewByName(name string) (*Connectivity, error) {
	switch name {
	case "unitcube":
		return NewUnitCube(), nil
	case "periodic":
		return NewPeriodic(), nil
	case "rotwrap":
		return NewRotWrap(), nil
	case "twocubes":
		return NewTwoCubes(), nil
	case "twowrap":
		return NewTwoWrap(), nil
	case "rotcubes":
		return NewRotCubes(), nil
	case "shell":
		return NewShell(), nil
	case "sphere":
		return NewSphere(), nil
	}
	return nil, errors.Errorf("do not know how to build connectivity %q", name)
}
