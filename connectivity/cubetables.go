package connectivity

// Constants of the reference cube.
const (
	// Dim is the spatial dimension.
	Dim = 3
	// Faces is the number of faces of a tree.
	Faces = 2 * Dim
	// Children is the number of children of a refined tree.
	Children = 8
	// Half is the number of children touching one face.
	Half = Children / 2
	// Edges is the number of edges of a tree.
	Edges = 12
	// Insul is the size of the insulation layer around a tree.
	Insul = 27
	// FTransformLen is the length of a face transform encoding.
	FTransformLen = 9
)

// Corners are numbered 0..7 in zyx order: bit 0 is x, bit 1 is y, bit 2 is z.
// Faces are numbered -x, +x, -y, +y, -z, +z. Edges run parallel to x first,
// ordered by y then z, then parallel to y, then z. The tables below encode
// the cube symmetry in this numbering; query and validation code assumes them
// total and never re-derives.

// FaceCorners lists the corner numbers of each face, lowest in-face axis fastest.
var FaceCorners = [6][4]int{
	{0, 2, 4, 6},
	{1, 3, 5, 7},
	{0, 1, 4, 5},
	{2, 3, 6, 7},
	{0, 1, 2, 3},
	{4, 5, 6, 7},
}

// FaceEdges lists the edge numbers of each face in face-corner order.
var FaceEdges = [6][4]int{
	{4, 6, 8, 10},
	{5, 7, 9, 11},
	{0, 2, 8, 9},
	{1, 3, 10, 11},
	{0, 1, 4, 5},
	{2, 3, 6, 7},
}

// FaceDual is the opposite face of each face.
var FaceDual = [6]int{1, 0, 3, 2, 5, 4}

// FacePermutations stores the 8 of 24 face-corner permutations that occur
// between two glued cube faces.
var FacePermutations = [8][4]int{
	{0, 1, 2, 3},
	{0, 2, 1, 3},
	{1, 0, 3, 2},
	{1, 3, 0, 2},
	{2, 0, 3, 1},
	{2, 3, 0, 1},
	{3, 1, 2, 0},
	{3, 2, 1, 0},
}

// FacePermutationSets stores the 3 occurring sets of 4 permutations, indexed
// by orientation code.
var FacePermutationSets = [3][4]int{
	{1, 2, 5, 6},
	{0, 3, 4, 7},
	{0, 4, 3, 7},
}

// FacePermutationRefs selects the permutation set for a face combination.
// The order is [my face][neighbor face].
var FacePermutationRefs = [6][6]int{
	{0, 1, 1, 0, 0, 1},
	{2, 0, 0, 1, 1, 0},
	{2, 0, 0, 1, 1, 0},
	{0, 2, 2, 0, 0, 1},
	{0, 2, 2, 0, 0, 1},
	{2, 0, 0, 2, 2, 0},
}

// EdgeFaces lists the two faces touching each edge.
var EdgeFaces = [12][2]int{
	{2, 4},
	{3, 4},
	{2, 5},
	{3, 5},
	{0, 4},
	{1, 4},
	{0, 5},
	{1, 5},
	{0, 2},
	{1, 2},
	{0, 3},
	{1, 3},
}

// EdgeCorners lists the two endpoint corners of each edge, lower first.
var EdgeCorners = [12][2]int{
	{0, 1},
	{2, 3},
	{4, 5},
	{6, 7},
	{0, 2},
	{1, 3},
	{4, 6},
	{5, 7},
	{0, 4},
	{1, 5},
	{2, 6},
	{3, 7},
}

// EdgeFaceCorners stores the face-corner numbers of an edge's endpoints for
// the faces touching the edge, -1 elsewhere.
var EdgeFaceCorners = [12][6][2]int{
	{{-1, -1}, {-1, -1}, {0, 1}, {-1, -1}, {0, 1}, {-1, -1}},
	{{-1, -1}, {-1, -1}, {-1, -1}, {0, 1}, {2, 3}, {-1, -1}},
	{{-1, -1}, {-1, -1}, {2, 3}, {-1, -1}, {-1, -1}, {0, 1}},
	{{-1, -1}, {-1, -1}, {-1, -1}, {2, 3}, {-1, -1}, {2, 3}},
	{{0, 1}, {-1, -1}, {-1, -1}, {-1, -1}, {0, 2}, {-1, -1}},
	{{-1, -1}, {0, 1}, {-1, -1}, {-1, -1}, {1, 3}, {-1, -1}},
	{{2, 3}, {-1, -1}, {-1, -1}, {-1, -1}, {-1, -1}, {0, 2}},
	{{-1, -1}, {2, 3}, {-1, -1}, {-1, -1}, {-1, -1}, {1, 3}},
	{{0, 2}, {-1, -1}, {0, 2}, {-1, -1}, {-1, -1}, {-1, -1}},
	{{-1, -1}, {0, 2}, {1, 3}, {-1, -1}, {-1, -1}, {-1, -1}},
	{{1, 3}, {-1, -1}, {-1, -1}, {0, 2}, {-1, -1}, {-1, -1}},
	{{-1, -1}, {1, 3}, {-1, -1}, {1, 3}, {-1, -1}, {-1, -1}},
}

// CornerFaces lists the three faces touching each corner.
var CornerFaces = [8][3]int{
	{0, 2, 4},
	{1, 2, 4},
	{0, 3, 4},
	{1, 3, 4},
	{0, 2, 5},
	{1, 2, 5},
	{0, 3, 5},
	{1, 3, 5},
}

// CornerEdges lists the three edges touching each corner.
var CornerEdges = [8][3]int{
	{0, 4, 8},
	{0, 5, 9},
	{1, 4, 10},
	{1, 5, 11},
	{2, 6, 8},
	{2, 7, 9},
	{3, 6, 10},
	{3, 7, 11},
}

// CornerFaceCorners stores the face-corner number of each corner on the faces
// touching it, -1 elsewhere.
var CornerFaceCorners = [8][6]int{
	{0, -1, 0, -1, 0, -1},
	{-1, 0, 1, -1, 1, -1},
	{1, -1, -1, 0, 2, -1},
	{-1, 1, -1, 1, 3, -1},
	{2, -1, 2, -1, -1, 0},
	{-1, 2, 3, -1, -1, 1},
	{3, -1, -1, 2, -1, 2},
	{-1, 3, -1, 3, -1, 3},
}

// ChildEdgeFaces stores, per child and tree edge, the face through which the
// child touches an edge neighbor, or -1 if the child touches the edge itself
// or no single face contains both.
var ChildEdgeFaces = [8][12]int{
	{-1, 4, 2, -1, -1, 4, 0, -1, -1, 2, 0, -1},
	{-1, 4, 2, -1, 4, -1, -1, 1, 2, -1, -1, 1},
	{4, -1, -1, 3, -1, 4, 0, -1, 0, -1, -1, 3},
	{4, -1, -1, 3, 4, -1, -1, 1, -1, 1, 3, -1},
	{2, -1, -1, 5, 0, -1, -1, 5, -1, 2, 0, -1},
	{2, -1, -1, 5, -1, 1, 5, -1, 2, -1, -1, 1},
	{-1, 3, 5, -1, 0, -1, -1, 5, 0, -1, -1, 3},
	{-1, 3, 5, -1, -1, 1, 5, -1, -1, 1, 3, -1},
}

// ChildCornerFaces stores, per child and tree corner, the face shared by both
// when they are face-diagonal, -1 otherwise.
var ChildCornerFaces = [8][8]int{
	{-1, -1, -1, 4, -1, 2, 0, -1},
	{-1, -1, 4, -1, 2, -1, -1, 1},
	{-1, 4, -1, -1, 0, -1, -1, 3},
	{4, -1, -1, -1, -1, 1, 3, -1},
	{-1, 2, 0, -1, -1, -1, -1, 5},
	{2, -1, -1, 1, -1, -1, 5, -1},
	{0, -1, -1, 3, -1, 5, -1, -1},
	{-1, 1, 3, -1, 5, -1, -1, -1},
}

// ChildCornerEdges stores, per child and tree corner, the edge connecting both
// when they are edge neighbors, -1 otherwise.
var ChildCornerEdges = [8][8]int{
	{-1, 0, 4, -1, 8, -1, -1, -1},
	{0, -1, -1, 5, -1, 9, -1, -1},
	{4, -1, -1, 1, -1, -1, 10, -1},
	{-1, 5, 1, -1, -1, -1, -1, 11},
	{8, -1, -1, -1, -1, 2, 6, -1},
	{-1, 9, -1, -1, 2, -1, -1, 7},
	{-1, -1, 10, -1, 6, -1, -1, 3},
	{-1, -1, -1, 11, -1, 7, 3, -1},
}
