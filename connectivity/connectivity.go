// Package connectivity represents the inter-tree topology of a forest of
// octrees: a macro-mesh of reference cubes glued together at faces, edges and
// corners with arbitrary orientations, including periodic identifications.
package connectivity

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// ErrInvalidConnectivity is returned when a connectivity violates its
// structural invariants on construction or load.
var ErrInvalidConnectivity = errors.New("invalid connectivity")

// ErrOutOfRange reports a tree, face, edge or corner index outside its
// documented range. It is used as a panic value: an out-of-range index on a
// constructed connectivity is a programmer bug, not a recoverable condition.
var ErrOutOfRange = errors.New("index out of range")

// Connectivity is the macro-mesh graph of a forest of octrees. Trees are unit
// reference cubes; the tables record which tree meets which across every
// face, edge and corner, and with which orientation.
//
// All tables are flat and indexed in z order: tree t's entries start at
// t*Faces, t*Edges, t*Children respectively. A tree-to-face entry holds
// nface + 6*orientation in 0..23. Edge and corner records hold -1 or an index
// into the ragged edge/corner tables, whose bucket k spans
// [ettOffset[k], ettOffset[k+1]).
//
// Apart from Complete, SetTreeAttr and SetAttr, no method modifies a
// constructed Connectivity; concurrent readers need no synchronization.
type Connectivity struct {
	vertices     []r3.Vector
	treeToVertex []int32
	treeToAttr   []int8

	treeToTree []int32
	treeToFace []int8

	treeToEdge []int32
	ettOffset  []int32
	edgeToTree []int32
	edgeToEdge []int8

	treeToCorner   []int32
	cttOffset      []int32
	cornerToTree   []int32
	cornerToCorner []int8
}

// NewConnectivity allocates a connectivity with all tables sized for the
// given counts. Table contents are unspecified until populated; the result
// does not pass IsValid until then.
func NewConnectivity(numVertices, numTrees, numEdges, numETT, numCorners, numCTT int32) *Connectivity {
	conn := &Connectivity{
		treeToTree: make([]int32, numTrees*Faces),
		treeToFace: make([]int8, numTrees*Faces),
	}
	if numVertices > 0 {
		conn.vertices = make([]r3.Vector, numVertices)
		conn.treeToVertex = make([]int32, numTrees*Children)
	}
	if numEdges > 0 {
		conn.treeToEdge = make([]int32, numTrees*Edges)
		conn.ettOffset = make([]int32, numEdges+1)
		conn.edgeToTree = make([]int32, numETT)
		conn.edgeToEdge = make([]int8, numETT)
		conn.ettOffset[numEdges] = numETT
	}
	if numCorners > 0 {
		conn.treeToCorner = make([]int32, numTrees*Children)
		conn.cttOffset = make([]int32, numCorners+1)
		conn.cornerToTree = make([]int32, numCTT)
		conn.cornerToCorner = make([]int8, numCTT)
		conn.cttOffset[numCorners] = numCTT
	}
	return conn
}

// NewConnectivityFromArrays deep-copies the given tables into a fresh
// connectivity and validates it. Slices for absent vertex, edge or corner
// data may be nil. The caller keeps ownership of its arguments.
func NewConnectivityFromArrays(
	vertices []r3.Vector, treeToVertex []int32,
	treeToTree []int32, treeToFace []int8,
	treeToEdge, ettOffset, edgeToTree []int32, edgeToEdge []int8,
	treeToCorner, cttOffset, cornerToTree []int32, cornerToCorner []int8,
) (*Connectivity, error) {
	conn := &Connectivity{
		vertices:       append([]r3.Vector(nil), vertices...),
		treeToVertex:   append([]int32(nil), treeToVertex...),
		treeToTree:     append([]int32(nil), treeToTree...),
		treeToFace:     append([]int8(nil), treeToFace...),
		treeToEdge:     append([]int32(nil), treeToEdge...),
		ettOffset:      append([]int32(nil), ettOffset...),
		edgeToTree:     append([]int32(nil), edgeToTree...),
		edgeToEdge:     append([]int8(nil), edgeToEdge...),
		treeToCorner:   append([]int32(nil), treeToCorner...),
		cttOffset:      append([]int32(nil), cttOffset...),
		cornerToTree:   append([]int32(nil), cornerToTree...),
		cornerToCorner: append([]int8(nil), cornerToCorner...),
	}
	if !conn.IsValid() {
		conn.Destroy()
		return nil, errors.Wrap(ErrInvalidConnectivity, "constructing from arrays")
	}
	return conn, nil
}

// NumVertices returns the number of geometric vertices; zero when the
// connectivity carries no vertex information.
func (conn *Connectivity) NumVertices() int32 {
	return int32(len(conn.vertices))
}

// NumTrees returns the number of trees.
func (conn *Connectivity) NumTrees() int32 {
	return int32(len(conn.treeToTree) / Faces)
}

// NumEdges returns the number of tree-connecting macro edges.
func (conn *Connectivity) NumEdges() int32 {
	if conn.ettOffset == nil {
		return 0
	}
	return int32(len(conn.ettOffset) - 1)
}

// NumCorners returns the number of tree-connecting macro corners.
func (conn *Connectivity) NumCorners() int32 {
	if conn.cttOffset == nil {
		return 0
	}
	return int32(len(conn.cttOffset) - 1)
}

// NumEdgeEntries returns the total entry count of the edge-to-tree table.
func (conn *Connectivity) NumEdgeEntries() int32 {
	return int32(len(conn.edgeToTree))
}

// NumCornerEntries returns the total entry count of the corner-to-tree table.
func (conn *Connectivity) NumCornerEntries() int32 {
	return int32(len(conn.cornerToTree))
}

// Vertex returns the coordinates of vertex v.
func (conn *Connectivity) Vertex(v int32) r3.Vector {
	conn.checkRange(int64(v), int64(conn.NumVertices()), "vertex")
	return conn.vertices[v]
}

// TreeVertex returns the vertex index anchoring corner c of tree t, or -1
// when the connectivity carries no vertices.
func (conn *Connectivity) TreeVertex(t int32, c int) int32 {
	conn.checkRange(int64(t), int64(conn.NumTrees()), "tree")
	conn.checkRange(int64(c), Children, "corner")
	if conn.treeToVertex == nil {
		return -1
	}
	return conn.treeToVertex[int(t)*Children+c]
}

// FaceNeighbor returns the tree on the other side of face f of tree t, that
// tree's local face number, and the orientation code in 0..3. A face without
// a distinct neighbor reports the tree and face themselves with orientation 0.
func (conn *Connectivity) FaceNeighbor(t int32, f int) (ntree int32, nface, orientation int) {
	conn.checkRange(int64(t), int64(conn.NumTrees()), "tree")
	conn.checkRange(int64(f), Faces, "face")
	ttf := int(conn.treeToFace[int(t)*Faces+f])
	return conn.treeToTree[int(t)*Faces+f], ttf % Faces, ttf / Faces
}

// TreeEdge returns the macro edge index of local edge e of tree t, or -1 when
// the edge does not connect trees beyond its faces.
func (conn *Connectivity) TreeEdge(t int32, e int) int32 {
	conn.checkRange(int64(t), int64(conn.NumTrees()), "tree")
	conn.checkRange(int64(e), Edges, "edge")
	if conn.treeToEdge == nil {
		return -1
	}
	return conn.treeToEdge[int(t)*Edges+e]
}

// EdgeBucket returns the trees and edge codes meeting at macro edge k as
// slices borrowed from the connectivity. Codes are in 0..23; code % 12 is the
// local edge and code / 12 a direction flip relative to the bucket's first
// entry.
func (conn *Connectivity) EdgeBucket(k int32) ([]int32, []int8) {
	conn.checkRange(int64(k), int64(conn.NumEdges()), "macro edge")
	lo, hi := conn.ettOffset[k], conn.ettOffset[k+1]
	return conn.edgeToTree[lo:hi:hi], conn.edgeToEdge[lo:hi:hi]
}

// TreeCorner returns the macro corner index of local corner c of tree t, or
// -1 when the corner is described by its faces and edges alone.
func (conn *Connectivity) TreeCorner(t int32, c int) int32 {
	conn.checkRange(int64(t), int64(conn.NumTrees()), "tree")
	conn.checkRange(int64(c), Children, "corner")
	if conn.treeToCorner == nil {
		return -1
	}
	return conn.treeToCorner[int(t)*Children+c]
}

// CornerBucket returns the trees and local corners meeting at macro corner k
// as slices borrowed from the connectivity.
func (conn *Connectivity) CornerBucket(k int32) ([]int32, []int8) {
	conn.checkRange(int64(k), int64(conn.NumCorners()), "macro corner")
	lo, hi := conn.cttOffset[k], conn.cttOffset[k+1]
	return conn.cornerToTree[lo:hi:hi], conn.cornerToCorner[lo:hi:hi]
}

// SetTreeAttr allocates or releases the per-tree attribute bytes. Enabling is
// idempotent and zero-fills; disabling drops the array.
func (conn *Connectivity) SetTreeAttr(enable bool) {
	switch {
	case enable && conn.treeToAttr == nil:
		conn.treeToAttr = make([]int8, conn.NumTrees())
	case !enable:
		conn.treeToAttr = nil
	}
}

// TreeAttr returns the attribute byte of tree t. SetTreeAttr(true) must have
// been called.
func (conn *Connectivity) TreeAttr(t int32) int8 {
	conn.checkRange(int64(t), int64(len(conn.treeToAttr)), "tree attribute")
	return conn.treeToAttr[t]
}

// SetAttr stores the attribute byte of tree t. SetTreeAttr(true) must have
// been called.
func (conn *Connectivity) SetAttr(t int32, attr int8) {
	conn.checkRange(int64(t), int64(len(conn.treeToAttr)), "tree attribute")
	conn.treeToAttr[t] = attr
}

// MemoryUsed returns the bytes held by the connectivity and its tables.
func (conn *Connectivity) MemoryUsed() int {
	return 24*cap(conn.vertices) +
		4*(cap(conn.treeToVertex)+cap(conn.treeToTree)+cap(conn.treeToEdge)+
			cap(conn.ettOffset)+cap(conn.edgeToTree)+cap(conn.treeToCorner)+
			cap(conn.cttOffset)+cap(conn.cornerToTree)) +
		cap(conn.treeToFace) + cap(conn.edgeToEdge) +
		cap(conn.cornerToCorner) + cap(conn.treeToAttr)
}

// Destroy releases all owned tables. The connectivity must not be used
// afterwards. Calling Destroy twice is harmless.
func (conn *Connectivity) Destroy() {
	conn.vertices = nil
	conn.treeToVertex = nil
	conn.treeToAttr = nil
	conn.treeToTree = nil
	conn.treeToFace = nil
	conn.treeToEdge = nil
	conn.ettOffset = nil
	conn.edgeToTree = nil
	conn.edgeToEdge = nil
	conn.treeToCorner = nil
	conn.cttOffset = nil
	conn.cornerToTree = nil
	conn.cornerToCorner = nil
}

func (conn *Connectivity) checkRange(i, n int64, what string) {
	if i < 0 || i >= n {
		panic(errors.Wrapf(ErrOutOfRange, "%s %d not in [0, %d)", what, i, n))
	}
}
