package connectivity

import "github.com/golang/geo/r3"

// NewShell returns the connectivity of a six-patch spherical shell. Each cube
// face carries a 2x2 block of trees, 24 in total, glued across the cube edges
// with rotated frames. Radial lines where three or four patches meet are
// recorded as macro edges. The vertex list anchors only the inner surface
// grid and is reused for both radial layers, so this connectivity relies on a
// geometry transformation and is not suitable for Complete.
func NewShell() *Connectivity {
	vertices := make([]r3.Vector, 0, 26)
	for z := -1.0; z <= 1; z++ {
		for y := -1.0; y <= 1; y++ {
			for x := -1.0; x <= 1; x++ {
				if x != 0 || y != 0 || z != 0 {
					vertices = append(vertices, r3.Vector{X: x, Y: y, Z: z})
				}
			}
		}
	}
	return build(
		vertices,
		[]int32{
			25, 22, 16, 13, 25, 22, 16, 13,
			22, 19, 13, 11, 22, 19, 13, 11,
			16, 13, 8, 5, 16, 13, 8, 5,
			13, 11, 5, 2, 13, 11, 5, 2,
			8, 5, 7, 4, 8, 5, 7, 4,
			5, 2, 4, 1, 5, 2, 4, 1,
			7, 4, 6, 3, 7, 4, 6, 3,
			4, 1, 3, 0, 4, 1, 3, 0,
			6, 3, 14, 12, 6, 3, 14, 12,
			3, 0, 12, 9, 3, 0, 12, 9,
			14, 12, 23, 20, 14, 12, 23, 20,
			12, 9, 20, 17, 12, 9, 20, 17,
			23, 20, 24, 21, 23, 20, 24, 21,
			20, 17, 21, 18, 20, 17, 21, 18,
			24, 21, 25, 22, 24, 21, 25, 22,
			21, 18, 22, 19, 21, 18, 22, 19,
			8, 7, 16, 15, 8, 7, 16, 15,
			7, 6, 15, 14, 7, 6, 15, 14,
			16, 15, 25, 24, 16, 15, 25, 24,
			15, 14, 24, 23, 15, 14, 24, 23,
			0, 1, 9, 10, 0, 1, 9, 10,
			1, 2, 10, 11, 1, 2, 10, 11,
			9, 10, 17, 18, 9, 10, 17, 18,
			10, 11, 18, 19, 10, 11, 18, 19,
		},
		[]int32{
			18, 1, 14, 2, 0, 0,
			0, 23, 15, 3, 1, 1,
			16, 3, 0, 4, 2, 2,
			2, 21, 1, 5, 3, 3,
			16, 5, 2, 6, 4, 4,
			4, 21, 3, 7, 5, 5,
			17, 7, 4, 8, 6, 6,
			6, 20, 5, 9, 7, 7,
			17, 9, 6, 10, 8, 8,
			8, 20, 7, 11, 9, 9,
			19, 11, 8, 12, 10, 10,
			10, 22, 9, 13, 11, 11,
			19, 13, 10, 14, 12, 12,
			12, 22, 11, 15, 13, 13,
			18, 15, 12, 0, 14, 14,
			14, 23, 13, 1, 15, 15,
			2, 17, 4, 18, 16, 16,
			16, 8, 6, 19, 17, 17,
			0, 19, 16, 14, 18, 18,
			18, 10, 17, 12, 19, 19,
			9, 21, 7, 22, 20, 20,
			20, 3, 5, 23, 21, 21,
			11, 23, 20, 13, 22, 22,
			22, 1, 21, 15, 23, 23,
		},
		[]int8{
			6, 0, 3, 2, 4, 5,
			1, 7, 3, 2, 4, 5,
			6, 0, 3, 2, 4, 5,
			1, 7, 3, 2, 4, 5,
			2, 0, 3, 2, 4, 5,
			1, 8, 3, 2, 4, 5,
			2, 0, 3, 2, 4, 5,
			1, 8, 3, 2, 4, 5,
			1, 0, 3, 2, 4, 5,
			1, 0, 3, 2, 4, 5,
			1, 0, 3, 2, 4, 5,
			1, 0, 3, 2, 4, 5,
			9, 0, 3, 2, 4, 5,
			1, 3, 3, 2, 4, 5,
			9, 0, 3, 2, 4, 5,
			1, 3, 3, 2, 4, 5,
			6, 0, 0, 2, 4, 5,
			1, 0, 0, 2, 4, 5,
			6, 0, 3, 6, 4, 5,
			1, 0, 3, 6, 4, 5,
			1, 0, 7, 2, 4, 5,
			1, 7, 7, 2, 4, 5,
			1, 0, 3, 1, 4, 5,
			1, 7, 3, 1, 4, 5,
		},
		[]int32{
			-1, -1, -1, -1, -1, -1, -1, -1, 0, 1, 2, 3,
			-1, -1, -1, -1, -1, -1, -1, -1, 1, 4, 3, 5,
			-1, -1, -1, -1, -1, -1, -1, -1, 2, 3, 6, 7,
			-1, -1, -1, -1, -1, -1, -1, -1, 3, 5, 7, 8,
			-1, -1, -1, -1, -1, -1, -1, -1, 6, 7, 9, 10,
			-1, -1, -1, -1, -1, -1, -1, -1, 7, 8, 10, 11,
			-1, -1, -1, -1, -1, -1, -1, -1, 9, 10, 12, 13,
			-1, -1, -1, -1, -1, -1, -1, -1, 10, 11, 13, 14,
			-1, -1, -1, -1, -1, -1, -1, -1, 12, 13, 15, 16,
			-1, -1, -1, -1, -1, -1, -1, -1, 13, 14, 16, 17,
			-1, -1, -1, -1, -1, -1, -1, -1, 15, 16, 18, 19,
			-1, -1, -1, -1, -1, -1, -1, -1, 16, 17, 19, 20,
			-1, -1, -1, -1, -1, -1, -1, -1, 18, 19, 21, 22,
			-1, -1, -1, -1, -1, -1, -1, -1, 19, 20, 22, 23,
			-1, -1, -1, -1, -1, -1, -1, -1, 21, 22, 0, 1,
			-1, -1, -1, -1, -1, -1, -1, -1, 22, 23, 1, 4,
			-1, -1, -1, -1, -1, -1, -1, -1, 6, 9, 2, 24,
			-1, -1, -1, -1, -1, -1, -1, -1, 9, 12, 24, 15,
			-1, -1, -1, -1, -1, -1, -1, -1, 2, 24, 0, 21,
			-1, -1, -1, -1, -1, -1, -1, -1, 24, 15, 21, 18,
			-1, -1, -1, -1, -1, -1, -1, -1, 14, 11, 17, 25,
			-1, -1, -1, -1, -1, -1, -1, -1, 11, 8, 25, 5,
			-1, -1, -1, -1, -1, -1, -1, -1, 17, 25, 20, 23,
			-1, -1, -1, -1, -1, -1, -1, -1, 25, 5, 23, 4,
		},
		[]int32{
			0, 3, 7, 11, 15, 18, 22, 25, 29, 32, 36, 40, 44,
			47, 51, 54, 58, 62, 66, 69, 73, 76, 80, 84, 88, 92, 96,
		},
		[]int32{
			0, 14, 18,
			0, 1, 14, 15,
			0, 2, 16, 18,
			0, 1, 2, 3,
			1, 15, 23,
			1, 3, 21, 23,
			2, 4, 16,
			2, 3, 4, 5,
			3, 5, 21,
			4, 6, 16, 17,
			4, 5, 6, 7,
			5, 7, 20, 21,
			6, 8, 17,
			6, 7, 8, 9,
			7, 9, 20,
			8, 10, 17, 19,
			8, 9, 10, 11,
			9, 11, 20, 22,
			10, 12, 19,
			10, 11, 12, 13,
			11, 13, 22,
			12, 14, 18, 19,
			12, 13, 14, 15,
			13, 15, 22, 23,
			16, 17, 18, 19,
			20, 21, 22, 23,
		},
		[]int8{
			8, 10, 10,
			9, 8, 11, 10,
			10, 8, 10, 8,
			11, 10, 9, 8,
			9, 11, 11,
			11, 9, 11, 9,
			10, 8, 8,
			11, 10, 9, 8,
			11, 9, 9,
			10, 8, 9, 8,
			11, 10, 9, 8,
			11, 9, 9, 8,
			10, 8, 9,
			11, 10, 9, 8,
			11, 9, 8,
			10, 8, 11, 9,
			11, 10, 9, 8,
			11, 9, 10, 8,
			10, 8, 11,
			11, 10, 9, 8,
			11, 9, 10,
			10, 8, 11, 10,
			11, 10, 9, 8,
			11, 9, 11, 10,
			11, 10, 9, 8,
			11, 10, 9, 8,
		},
		nil, nil, nil, nil,
	)
}

// NewSphere returns the connectivity of a solid sphere: six outer shell
// patches, six inner shell patches and a center cube, 13 trees in total. The
// center cube edges, the radial corner lines of both shells and the arcs of
// the inner sphere are recorded as macro edges. The vertex list holds only
// the eight cube corners and is reused by every tree, so this connectivity
// relies on a geometry transformation and is not suitable for Complete.
func NewSphere() *Connectivity {
	return build(
		[]r3.Vector{
			{X: -1, Y: -1, Z: -1},
			{X: 1, Y: -1, Z: -1},
			{X: -1, Y: 1, Z: -1},
			{X: 1, Y: 1, Z: -1},
			{X: -1, Y: -1, Z: 1},
			{X: 1, Y: -1, Z: 1},
			{X: -1, Y: 1, Z: 1},
			{X: 1, Y: 1, Z: 1},
		},
		[]int32{
			0, 1, 4, 5, 0, 1, 4, 5,
			4, 5, 6, 7, 4, 5, 6, 7,
			6, 7, 2, 3, 6, 7, 2, 3,
			7, 5, 3, 1, 7, 5, 3, 1,
			3, 1, 2, 0, 3, 1, 2, 0,
			2, 0, 6, 4, 2, 0, 6, 4,
			0, 1, 4, 5, 0, 1, 4, 5,
			4, 5, 6, 7, 4, 5, 6, 7,
			6, 7, 2, 3, 6, 7, 2, 3,
			7, 5, 3, 1, 7, 5, 3, 1,
			3, 1, 2, 0, 3, 1, 2, 0,
			2, 0, 6, 4, 2, 0, 6, 4,
			0, 1, 2, 3, 4, 5, 6, 7,
		},
		[]int32{
			5, 3, 4, 1, 6, 0,
			5, 3, 0, 2, 7, 1,
			5, 3, 1, 4, 8, 2,
			2, 0, 1, 4, 9, 3,
			2, 0, 3, 5, 10, 4,
			2, 0, 4, 1, 11, 5,
			11, 9, 10, 7, 12, 0,
			11, 9, 6, 8, 12, 1,
			11, 9, 7, 10, 12, 2,
			8, 6, 7, 10, 12, 3,
			8, 6, 9, 11, 12, 4,
			8, 6, 10, 7, 12, 5,
			11, 9, 6, 8, 10, 7,
		},
		[]int8{
			1, 7, 7, 2, 5, 5,
			9, 8, 3, 2, 5, 5,
			6, 0, 3, 6, 5, 5,
			1, 7, 7, 2, 5, 5,
			9, 8, 3, 2, 5, 5,
			6, 0, 3, 6, 5, 5,
			1, 7, 7, 2, 2, 4,
			9, 8, 3, 2, 5, 4,
			6, 0, 3, 6, 15, 4,
			1, 7, 7, 2, 19, 4,
			9, 8, 3, 2, 22, 4,
			6, 0, 3, 6, 6, 4,
			10, 22, 4, 16, 22, 4,
		},
		[]int32{
			0, 1, -1, -1, 2, 3, -1, -1, 4, 5, 6, 7,
			1, 8, -1, -1, 9, 10, -1, -1, 6, 7, 11, 12,
			8, 13, -1, -1, 14, 15, -1, -1, 11, 12, 16, 17,
			10, 18, -1, -1, 15, 3, -1, -1, 12, 7, 17, 5,
			18, 19, -1, -1, 13, 0, -1, -1, 17, 5, 16, 4,
			19, 9, -1, -1, 14, 2, -1, -1, 16, 4, 11, 6,
			20, 21, 0, 1, 22, 23, 2, 3, 24, 25, 26, 27,
			21, 28, 1, 8, 29, 30, 9, 10, 26, 27, 31, 32,
			28, 33, 8, 13, 34, 35, 14, 15, 31, 32, 36, 37,
			30, 38, 10, 18, 35, 23, 15, 3, 32, 27, 37, 25,
			38, 39, 18, 19, 33, 20, 13, 0, 37, 25, 36, 24,
			39, 29, 19, 9, 34, 22, 14, 2, 36, 24, 31, 26,
			20, 33, 21, 28, 39, 38, 29, 30, 22, 23, 34, 35,
		},
		[]int32{
			0, 4, 8, 12, 16, 19, 22, 25, 28, 32, 36, 40, 43, 46,
			50, 54, 58, 61, 64, 68, 72, 75, 78, 81, 84, 87, 90, 93,
			96, 99, 102, 105, 108, 111, 114, 117, 120, 123, 126, 129, 132,
		},
		[]int32{
			0, 4, 6, 10,
			0, 1, 6, 7,
			0, 5, 6, 11,
			0, 3, 6, 9,
			0, 4, 5,
			0, 3, 4,
			0, 1, 5,
			0, 1, 3,
			1, 2, 7, 8,
			1, 5, 7, 11,
			1, 3, 7, 9,
			1, 2, 5,
			1, 2, 3,
			2, 4, 8, 10,
			2, 5, 8, 11,
			2, 3, 8, 9,
			2, 4, 5,
			2, 3, 4,
			3, 4, 9, 10,
			4, 5, 10, 11,
			6, 10, 12,
			6, 7, 12,
			6, 11, 12,
			6, 9, 12,
			6, 10, 11,
			6, 9, 10,
			6, 7, 11,
			6, 7, 9,
			7, 8, 12,
			7, 11, 12,
			7, 9, 12,
			7, 8, 11,
			7, 8, 9,
			8, 10, 12,
			8, 11, 12,
			8, 9, 12,
			8, 10, 11,
			8, 9, 10,
			9, 10, 12,
			10, 11, 12,
		},
		[]int8{
			0, 17, 2, 19,
			1, 0, 3, 2,
			4, 5, 6, 7,
			5, 17, 7, 19,
			8, 11, 9,
			9, 11, 9,
			10, 8, 11,
			11, 9, 9,
			1, 0, 3, 2,
			4, 13, 6, 15,
			5, 12, 7, 14,
			10, 8, 10,
			11, 9, 8,
			1, 16, 3, 18,
			4, 16, 6, 18,
			5, 4, 7, 6,
			10, 10, 8,
			11, 10, 8,
			1, 0, 3, 2,
			1, 0, 3, 2,
			0, 17, 0,
			1, 0, 2,
			4, 5, 8,
			5, 17, 9,
			8, 11, 9,
			9, 11, 9,
			10, 8, 11,
			11, 9, 9,
			1, 0, 3,
			4, 13, 6,
			5, 12, 7,
			10, 8, 10,
			11, 9, 8,
			1, 16, 1,
			4, 16, 22,
			5, 4, 23,
			10, 10, 8,
			11, 10, 8,
			1, 0, 17,
			1, 0, 16,
		},
		nil, nil, nil, nil,
	)
}
