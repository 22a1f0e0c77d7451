package connectivity

// EdgeTransform describes one neighbor across a macro edge that is not
// already reachable through a face gluing.
type EdgeTransform struct {
	// NTree is the neighboring tree.
	NTree int32
	// NEdge is the neighbor's local edge number in 0..11.
	NEdge int
	// NAxis holds the axis the edge runs along in the origin frame and in the
	// neighbor frame; the third slot is unused and set to -1.
	NAxis [3]int
	// NFlip is 1 when the neighbor edge runs opposite to the origin edge.
	NFlip int
	// Corners is the transverse position 0..3 of the neighbor edge within its
	// axis group, distinguishing the alignments around the shared edge.
	Corners int
}

// CornerTransform describes one neighbor across a macro corner that is not
// already reachable through a face or edge gluing.
type CornerTransform struct {
	// NTree is the neighboring tree.
	NTree int32
	// NCorner is the neighbor's local corner number in 0..7.
	NCorner int
}

// facePermutation returns the face-corner permutation of the gluing
// (face, nface, orientation): my face corner i meets neighbor face corner
// perm[i].
func facePermutation(face, nface, orientation int) [4]int {
	set := FacePermutationRefs[face][nface]
	return FacePermutations[FacePermutationSets[set][orientation]]
}

// glueCorner maps corner c lying on my face onto the neighbor's corner under
// the gluing (face, nface, orientation).
func glueCorner(face, nface, orientation, c int) int {
	perm := facePermutation(face, nface, orientation)
	return FaceCorners[nface][perm[CornerFaceCorners[c][face]]]
}

// glueEdge maps edge e lying on my face onto the neighbor's edge under the
// gluing (face, nface, orientation); reversed reports a direction flip.
func glueEdge(face, nface, orientation, e int) (nedge int, reversed bool) {
	d0 := glueCorner(face, nface, orientation, EdgeCorners[e][0])
	d1 := glueCorner(face, nface, orientation, EdgeCorners[e][1])
	if d0 > d1 {
		return ChildCornerEdges[d1][d0], true
	}
	return ChildCornerEdges[d0][d1], false
}

// FindFaceTransform fills the axis encoding for transforming coordinates
// across face f of tree t and returns the neighbor tree, or -1 on a boundary
// face. The encoding holds:
//
//	ft[0..2]  the origin face's in-face axes and normal axis,
//	ft[3..5]  the target axes matching ft[0], ft[1] and the target normal,
//	ft[6..7]  direction reversal flags for the two in-face axes,
//	ft[8]     2*(target face sign) + (origin face sign).
func (conn *Connectivity) FindFaceTransform(t int32, f int, ft *[FTransformLen]int) int32 {
	ntree, nface, orientation := conn.FaceNeighbor(t, f)
	if ntree == t && nface == f {
		return -1
	}

	ft[0], ft[1], ft[2] = faceAxes(f)
	b0, b1, b2 := faceAxes(nface)
	ft[5] = b2

	perm := facePermutation(f, nface, orientation)
	// perm[1]^perm[0] tells whether my first in-face axis stays the first
	// target axis or crosses over to the second
	if perm[1]^perm[0] == 1 {
		ft[3], ft[4] = b0, b1
		ft[6], ft[7] = perm[0]&1, perm[0]>>1
	} else {
		ft[3], ft[4] = b1, b0
		ft[6], ft[7] = perm[0]>>1, perm[0]&1
	}

	ft[8] = 2*(nface&1) + f&1
	return ntree
}

func faceAxes(f int) (in0, in1, normal int) {
	in0 = 0
	if f < 2 {
		in0 = 1
	}
	in1 = 1
	if f < 4 {
		in1 = 2
	}
	return in0, in1, f / 2
}

// FindEdgeTransform collects the neighbors across local edge e of tree t that
// face gluings cannot reach. The result is appended to buf[:0], so a buffer
// can be reused across queries; an edge without a macro edge record yields an
// empty slice.
func (conn *Connectivity) FindEdgeTransform(t int32, e int, buf []EdgeTransform) []EdgeTransform {
	out := buf[:0]
	k := conn.TreeEdge(t, e)
	if k < 0 {
		return out
	}
	trees, codes := conn.EdgeBucket(k)
	myFlip := conn.bucketFlip(trees, codes, t, e)

	for i, ntree := range trees {
		nedge := int(codes[i]) % Edges
		if ntree == t && nedge == e {
			continue
		}
		if conn.edgeFaceReachable(t, e, ntree, nedge) {
			continue
		}
		nflip := (int(codes[i]) / Edges) ^ myFlip
		out = append(out, EdgeTransform{
			NTree:   ntree,
			NEdge:   nedge,
			NAxis:   [3]int{e / 4, nedge / 4, -1},
			NFlip:   nflip,
			Corners: nedge % 4,
		})
	}
	return out
}

// bucketFlip returns the direction bit the bucket stores for (t, e).
func (conn *Connectivity) bucketFlip(trees []int32, codes []int8, t int32, e int) int {
	for i, nt := range trees {
		if nt == t && int(codes[i])%Edges == e {
			return int(codes[i]) / Edges
		}
	}
	return 0
}

// edgeFaceReachable reports whether (ntree, nedge) is the image of my edge
// through one of the two face gluings adjacent to it.
func (conn *Connectivity) edgeFaceReachable(t int32, e int, ntree int32, nedge int) bool {
	for _, f := range EdgeFaces[e] {
		nt, nf, orientation := conn.FaceNeighbor(t, f)
		if nt == t && nf == f {
			continue
		}
		if image, _ := glueEdge(f, nf, orientation, e); nt == ntree && image == nedge {
			return true
		}
	}
	return false
}

// FindCornerTransform collects the neighbors across local corner c of tree t
// that neither face nor edge gluings can reach. The result is appended to
// buf[:0]; a corner without a macro corner record yields an empty slice.
func (conn *Connectivity) FindCornerTransform(t int32, c int, buf []CornerTransform) []CornerTransform {
	out := buf[:0]
	k := conn.TreeCorner(t, c)
	if k < 0 {
		return out
	}
	trees, corners := conn.CornerBucket(k)
	for i, ntree := range trees {
		ncorner := int(corners[i])
		if ntree == t && ncorner == c {
			continue
		}
		if conn.cornerFaceReachable(t, c, ntree, ncorner) ||
			conn.cornerEdgeReachable(t, c, ntree, ncorner) {
			continue
		}
		out = append(out, CornerTransform{NTree: ntree, NCorner: ncorner})
	}
	return out
}

func (conn *Connectivity) cornerFaceReachable(t int32, c int, ntree int32, ncorner int) bool {
	for _, f := range CornerFaces[c] {
		nt, nf, orientation := conn.FaceNeighbor(t, f)
		if nt == t && nf == f {
			continue
		}
		if nt == ntree && glueCorner(f, nf, orientation, c) == ncorner {
			return true
		}
	}
	return false
}

// cornerEdgeReachable reports whether (ntree, ncorner) sits in one of my
// corner's macro edge buckets with the endpoint matching under the bucket's
// relative direction.
func (conn *Connectivity) cornerEdgeReachable(t int32, c int, ntree int32, ncorner int) bool {
	for _, e := range CornerEdges[c] {
		k := conn.TreeEdge(t, e)
		if k < 0 {
			continue
		}
		trees, codes := conn.EdgeBucket(k)
		myFlip := conn.bucketFlip(trees, codes, t, e)
		pos := 0
		if EdgeCorners[e][1] == c {
			pos = 1
		}
		for i, nt := range trees {
			if nt != ntree {
				continue
			}
			ne := int(codes[i]) % Edges
			if nt == t && ne == e {
				continue
			}
			rel := (int(codes[i]) / Edges) ^ myFlip
			if EdgeCorners[ne][pos^rel] == ncorner {
				return true
			}
		}
	}
	return false
}
