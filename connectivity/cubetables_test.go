package connectivity

import (
	"testing"

	"go.viam.com/test"
)

func TestFaceTables(t *testing.T) {
	for f := 0; f < Faces; f++ {
		test.That(t, FaceDual[FaceDual[f]], test.ShouldEqual, f)
		// a face and its dual share no corners
		for _, c := range FaceCorners[f] {
			for _, d := range FaceCorners[FaceDual[f]] {
				test.That(t, c, test.ShouldNotEqual, d)
			}
		}
		// face edges connect face corners
		for _, e := range FaceEdges[f] {
			test.That(t, CornerFaceCorners[EdgeCorners[e][0]][f], test.ShouldNotEqual, -1)
			test.That(t, CornerFaceCorners[EdgeCorners[e][1]][f], test.ShouldNotEqual, -1)
		}
	}
}

func TestCornerTables(t *testing.T) {
	for c := 0; c < Children; c++ {
		for _, f := range CornerFaces[c] {
			test.That(t, FaceCorners[f][CornerFaceCorners[c][f]], test.ShouldEqual, c)
		}
		for _, e := range CornerEdges[c] {
			onEdge := EdgeCorners[e][0] == c || EdgeCorners[e][1] == c
			test.That(t, onEdge, test.ShouldBeTrue)
		}
	}
}

func TestEdgeTables(t *testing.T) {
	for e := 0; e < Edges; e++ {
		c0, c1 := EdgeCorners[e][0], EdgeCorners[e][1]
		test.That(t, c0, test.ShouldBeLessThan, c1)
		// the endpoints differ in exactly the bit of the edge axis
		test.That(t, c1^c0, test.ShouldEqual, 1<<(e/4))
		test.That(t, ChildCornerEdges[c0][c1], test.ShouldEqual, e)
		for _, f := range EdgeFaces[e] {
			test.That(t, EdgeFaceCorners[e][f][0],
				test.ShouldEqual, CornerFaceCorners[c0][f])
			test.That(t, EdgeFaceCorners[e][f][1],
				test.ShouldEqual, CornerFaceCorners[c1][f])
		}
	}
}

func TestFacePermutationTables(t *testing.T) {
	// each permutation set entry is a valid permutation index and every
	// listed permutation is a bijection of 0..3
	for _, set := range FacePermutationSets {
		for _, p := range set {
			test.That(t, p, test.ShouldBeBetweenOrEqual, 0, 7)
		}
	}
	for _, perm := range FacePermutations {
		var seen [4]bool
		for _, v := range perm {
			seen[v] = true
		}
		test.That(t, seen, test.ShouldResemble, [4]bool{true, true, true, true})
	}

	// gluing a face pair one way and back must compose to the identity
	for f1 := 0; f1 < Faces; f1++ {
		for f2 := 0; f2 < Faces; f2++ {
			for o := 0; o < 4; o++ {
				perm := facePermutation(f1, f2, o)
				back := facePermutation(f2, f1, o)
				for i := 0; i < 4; i++ {
					test.That(t, back[perm[i]], test.ShouldEqual, i)
				}
			}
		}
	}
}

func TestGlueCornerReciprocal(t *testing.T) {
	for f1 := 0; f1 < Faces; f1++ {
		for f2 := 0; f2 < Faces; f2++ {
			for o := 0; o < 4; o++ {
				for _, c := range FaceCorners[f1] {
					nc := glueCorner(f1, f2, o, c)
					test.That(t, glueCorner(f2, f1, o, nc), test.ShouldEqual, c)
				}
			}
		}
	}
}

func TestChildTables(t *testing.T) {
	for c := 0; c < Children; c++ {
		for e := 0; e < Edges; e++ {
			f := ChildEdgeFaces[c][e]
			if EdgeCorners[e][0] == c || EdgeCorners[e][1] == c {
				test.That(t, f, test.ShouldEqual, -1)
				continue
			}
			if f != -1 {
				// the named face contains both the child corner and the edge
				test.That(t, CornerFaceCorners[c][f], test.ShouldNotEqual, -1)
				test.That(t, EdgeFaceCorners[e][f][0], test.ShouldNotEqual, -1)
			}
		}
		for k := 0; k < Children; k++ {
			if e := ChildCornerEdges[c][k]; e != -1 {
				test.That(t, c^k, test.ShouldEqual, 1<<(e/4))
			}
			if f := ChildCornerFaces[c][k]; f != -1 {
				test.That(t, CornerFaceCorners[c][f], test.ShouldNotEqual, -1)
				test.That(t, CornerFaceCorners[k][f], test.ShouldNotEqual, -1)
				// face diagonal, not an edge neighbor
				test.That(t, ChildCornerEdges[c][k], test.ShouldEqual, -1)
			}
		}
	}
}
