package connectivity

import (
	"testing"

	"go.viam.com/test"
)

func TestFactoriesAreValid(t *testing.T) {
	for name, conn := range map[string]*Connectivity{
		"unitcube": NewUnitCube(),
		"periodic": NewPeriodic(),
		"rotwrap":  NewRotWrap(),
		"twocubes": NewTwoCubes(),
		"twowrap":  NewTwoWrap(),
		"rotcubes": NewRotCubes(),
		"shell":    NewShell(),
		"sphere":   NewSphere(),
	} {
		t.Run(name, func(t *testing.T) {
			test.That(t, conn.IsValid(), test.ShouldBeTrue)
		})
	}
}

func TestFactoryCounts(t *testing.T) {
	for _, tc := range []struct {
		name                                     string
		conn                                     *Connectivity
		vertices, trees, edges, ett, corners, ctt int32
	}{
		{"unitcube", NewUnitCube(), 8, 1, 0, 0, 0, 0},
		{"periodic", NewPeriodic(), 8, 1, 3, 12, 1, 8},
		{"rotwrap", NewRotWrap(), 8, 1, 2, 8, 1, 8},
		{"twocubes", NewTwoCubes(), 12, 2, 0, 0, 0, 0},
		{"twowrap", NewTwoWrap(), 12, 2, 0, 0, 0, 0},
		{"rotcubes", NewRotCubes(), 26, 6, 4, 13, 2, 9},
		{"shell", NewShell(), 26, 24, 26, 96, 0, 0},
		{"sphere", NewSphere(), 8, 13, 40, 132, 0, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			test.That(t, tc.conn.NumVertices(), test.ShouldEqual, tc.vertices)
			test.That(t, tc.conn.NumTrees(), test.ShouldEqual, tc.trees)
			test.That(t, tc.conn.NumEdges(), test.ShouldEqual, tc.edges)
			test.That(t, tc.conn.NumEdgeEntries(), test.ShouldEqual, tc.ett)
			test.That(t, tc.conn.NumCorners(), test.ShouldEqual, tc.corners)
			test.That(t, tc.conn.NumCornerEntries(), test.ShouldEqual, tc.ctt)
		})
	}
}

func TestRotCubesCoversAllOrientations(t *testing.T) {
	conn := NewRotCubes()
	seen := map[int]bool{}
	for tr := int32(0); tr < conn.NumTrees(); tr++ {
		for f := 0; f < Faces; f++ {
			ntree, nface, orientation := conn.FaceNeighbor(tr, f)
			if ntree == tr && nface == f {
				continue
			}
			seen[orientation] = true
		}
	}
	for o := 0; o < 4; o++ {
		test.That(t, seen[o], test.ShouldBeTrue)
	}
}

func TestNewByName(t *testing.T) {
	for _, name := range []string{
		"unitcube", "periodic", "rotwrap", "twocubes",
		"twowrap", "rotcubes", "shell", "sphere",
	} {
		conn, err := NewByName(name)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, conn.IsValid(), test.ShouldBeTrue)
	}

	_, err := NewByName("moebius")
	test.That(t, err, test.ShouldNotBeNil)
}

func TestBrickCounts(t *testing.T) {
	for _, tc := range []struct {
		name                      string
		m, n, p                   int
		px, py, pz                bool
		edges, ett, corners, ctt  int32
	}{
		{"2x1x1", 2, 1, 1, false, false, false, 0, 0, 0, 0},
		{"2x2x1", 2, 2, 1, false, false, false, 1, 4, 0, 0},
		{"2x2x2", 2, 2, 2, false, false, false, 6, 24, 1, 8},
		{"3x2x2 periodic xz", 3, 2, 2, true, false, true, 24, 96, 6, 48},
		{"1x1x1 fully periodic", 1, 1, 1, true, true, true, 3, 12, 1, 8},
	} {
		t.Run(tc.name, func(t *testing.T) {
			conn := NewBrick(tc.m, tc.n, tc.p, tc.px, tc.py, tc.pz)
			test.That(t, conn.IsValid(), test.ShouldBeTrue)
			test.That(t, conn.NumTrees(), test.ShouldEqual, int32(tc.m*tc.n*tc.p))
			test.That(t, conn.NumVertices(), test.ShouldEqual,
				int32((tc.m+1)*(tc.n+1)*(tc.p+1)))
			test.That(t, conn.NumEdges(), test.ShouldEqual, tc.edges)
			test.That(t, conn.NumEdgeEntries(), test.ShouldEqual, tc.ett)
			test.That(t, conn.NumCorners(), test.ShouldEqual, tc.corners)
			test.That(t, conn.NumCornerEntries(), test.ShouldEqual, tc.ctt)
		})
	}
}

func TestBrickFullyPeriodicMatchesPeriodic(t *testing.T) {
	// a fully periodic unit brick carries the same topology as NewPeriodic,
	// only its vertex lattice differs
	brick := NewBrick(1, 1, 1, true, true, true)
	periodic := NewPeriodic()
	test.That(t, slicesEqual(brick.treeToTree, periodic.treeToTree), test.ShouldBeTrue)
	test.That(t, slicesEqual(brick.treeToFace, periodic.treeToFace), test.ShouldBeTrue)
	test.That(t, slicesEqual(brick.treeToEdge, periodic.treeToEdge), test.ShouldBeTrue)
	test.That(t, slicesEqual(brick.ettOffset, periodic.ettOffset), test.ShouldBeTrue)
	test.That(t, slicesEqual(brick.edgeToTree, periodic.edgeToTree), test.ShouldBeTrue)
	test.That(t, slicesEqual(brick.edgeToEdge, periodic.edgeToEdge), test.ShouldBeTrue)
	test.That(t, slicesEqual(brick.treeToCorner, periodic.treeToCorner), test.ShouldBeTrue)
	test.That(t, slicesEqual(brick.cornerToTree, periodic.cornerToTree), test.ShouldBeTrue)
	test.That(t, slicesEqual(brick.cornerToCorner, periodic.cornerToCorner), test.ShouldBeTrue)
}

func TestBrickAdjacency(t *testing.T) {
	conn := NewBrick(2, 1, 1, false, false, false)
	ntree, nface, orientation := conn.FaceNeighbor(0, 1)
	test.That(t, ntree, test.ShouldEqual, int32(1))
	test.That(t, nface, test.ShouldEqual, 0)
	test.That(t, orientation, test.ShouldEqual, 0)

	// outer faces are boundaries
	ntree, nface, _ = conn.FaceNeighbor(0, 0)
	test.That(t, ntree, test.ShouldEqual, int32(0))
	test.That(t, nface, test.ShouldEqual, 0)
}

func TestBrickBadDimsPanics(t *testing.T) {
	defer func() {
		test.That(t, recover(), test.ShouldNotBeNil)
	}()
	NewBrick(0, 1, 1, false, false, false)
}
