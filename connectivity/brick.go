package connectivity

import (
	"sort"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// NewBrick returns an m by n by p lattice of trees, periodic per axis where
// requested. Trees are numbered x fastest. Vertices are the plain lattice
// points; periodic identifications live only in the face, edge and corner
// tables, so Complete on a periodic brick loses the periodicity. Panics with
// ErrOutOfRange when a dimension is not positive.
func NewBrick(m, n, p int, periodicX, periodicY, periodicZ bool) *Connectivity {
	if m <= 0 || n <= 0 || p <= 0 {
		panic(errors.Wrapf(ErrOutOfRange, "brick %dx%dx%d", m, n, p))
	}
	dims := [3]int{m, n, p}
	periodic := [3]bool{periodicX, periodicY, periodicZ}
	numTrees := m * n * p
	tid := func(cell [3]int) int32 {
		return int32(cell[0] + m*(cell[1]+n*cell[2]))
	}

	conn := &Connectivity{
		vertices:     make([]r3.Vector, 0, (m+1)*(n+1)*(p+1)),
		treeToVertex: make([]int32, numTrees*Children),
		treeToTree:   make([]int32, numTrees*Faces),
		treeToFace:   make([]int8, numTrees*Faces),
	}
	for k := 0; k <= p; k++ {
		for j := 0; j <= n; j++ {
			for i := 0; i <= m; i++ {
				conn.vertices = append(conn.vertices,
					r3.Vector{X: float64(i), Y: float64(j), Z: float64(k)})
			}
		}
	}

	for k := 0; k < p; k++ {
		for j := 0; j < n; j++ {
			for i := 0; i < m; i++ {
				t := int(tid([3]int{i, j, k}))
				for c := 0; c < Children; c++ {
					vi := i + (c & 1)
					vj := j + ((c >> 1) & 1)
					vk := k + ((c >> 2) & 1)
					conn.treeToVertex[t*Children+c] = int32(vi + (m+1)*(vj+(n+1)*vk))
				}
				pos := [3]int{i, j, k}
				for f := 0; f < Faces; f++ {
					axis, sign := f/2, f%2*2-1
					np := pos
					np[axis] += sign
					switch {
					case np[axis] >= 0 && np[axis] < dims[axis]:
						conn.treeToTree[t*Faces+f] = tid(np)
						conn.treeToFace[t*Faces+f] = int8(FaceDual[f])
					case periodic[axis]:
						np[axis] = (np[axis] + dims[axis]) % dims[axis]
						conn.treeToTree[t*Faces+f] = tid(np)
						conn.treeToFace[t*Faces+f] = int8(FaceDual[f])
					default:
						conn.treeToTree[t*Faces+f] = int32(t)
						conn.treeToFace[t*Faces+f] = int8(f)
					}
				}
			}
		}
	}

	conn.brickEdges(dims, periodic, tid)
	conn.brickCorners(dims, periodic, tid)
	return conn
}

// transverseRange lists the lattice positions along one axis where a macro
// edge or corner is interior: all positions when periodic, the strictly
// interior ones otherwise.
func transverseRange(dim int, periodic bool) (lo, hi int) {
	if periodic {
		return 0, dim
	}
	return 1, dim
}

type brickEntry struct {
	tree int32
	code int
}

// sortBuckets orders the entries of each bucket and the buckets themselves by
// their first entry, the canonical layout shared with Complete.
func sortBuckets(buckets [][]brickEntry) {
	less := func(a, b brickEntry) bool {
		return a.tree < b.tree || (a.tree == b.tree && a.code < b.code)
	}
	for _, entries := range buckets {
		sort.Slice(entries, func(i, j int) bool { return less(entries[i], entries[j]) })
	}
	sort.Slice(buckets, func(i, j int) bool { return less(buckets[i][0], buckets[j][0]) })
}

func (conn *Connectivity) brickEdges(dims [3]int, periodic [3]bool,
	tid func(cell [3]int) int32) {
	var buckets [][]brickEntry
	for axis := 0; axis < 3; axis++ {
		lowAxis, highAxis := (axis+1)%3, (axis+2)%3
		if lowAxis > highAxis {
			lowAxis, highAxis = highAxis, lowAxis
		}
		lo0, hi0 := transverseRange(dims[lowAxis], periodic[lowAxis])
		lo1, hi1 := transverseRange(dims[highAxis], periodic[highAxis])
		for w := 0; w < dims[axis]; w++ {
			for jv := lo1; jv < hi1; jv++ {
				for iv := lo0; iv < hi0; iv++ {
					var entries []brickEntry
					for dj := 0; dj < 2; dj++ {
						for di := 0; di < 2; di++ {
							if !periodic[lowAxis] && iv-di < 0 ||
								!periodic[highAxis] && jv-dj < 0 {
								continue
							}
							var cell [3]int
							cell[axis] = w
							cell[lowAxis] = (iv - di + dims[lowAxis]) % dims[lowAxis]
							cell[highAxis] = (jv - dj + dims[highAxis]) % dims[highAxis]
							entries = append(entries, brickEntry{
								tree: tid(cell),
								code: 4*axis + di + 2*dj,
							})
						}
					}
					buckets = append(buckets, entries)
				}
			}
		}
	}
	if len(buckets) == 0 {
		return
	}
	sortBuckets(buckets)

	numTrees := int(conn.NumTrees())
	conn.treeToEdge = make([]int32, numTrees*Edges)
	for i := range conn.treeToEdge {
		conn.treeToEdge[i] = -1
	}
	conn.ettOffset = make([]int32, 0, len(buckets)+1)
	conn.ettOffset = append(conn.ettOffset, 0)
	for k, entries := range buckets {
		for _, e := range entries {
			conn.edgeToTree = append(conn.edgeToTree, e.tree)
			conn.edgeToEdge = append(conn.edgeToEdge, int8(e.code))
			conn.treeToEdge[int(e.tree)*Edges+e.code] = int32(k)
		}
		conn.ettOffset = append(conn.ettOffset, int32(len(conn.edgeToTree)))
	}
}

func (conn *Connectivity) brickCorners(dims [3]int, periodic [3]bool,
	tid func(cell [3]int) int32) {
	var buckets [][]brickEntry
	lo0, hi0 := transverseRange(dims[0], periodic[0])
	lo1, hi1 := transverseRange(dims[1], periodic[1])
	lo2, hi2 := transverseRange(dims[2], periodic[2])
	for kv := lo2; kv < hi2; kv++ {
		for jv := lo1; jv < hi1; jv++ {
			for iv := lo0; iv < hi0; iv++ {
				var entries []brickEntry
				for dk := 0; dk < 2; dk++ {
					for dj := 0; dj < 2; dj++ {
						for di := 0; di < 2; di++ {
							if !periodic[0] && iv-di < 0 ||
								!periodic[1] && jv-dj < 0 ||
								!periodic[2] && kv-dk < 0 {
								continue
							}
							entries = append(entries, brickEntry{
								tree: tid([3]int{
									(iv - di + dims[0]) % dims[0],
									(jv - dj + dims[1]) % dims[1],
									(kv - dk + dims[2]) % dims[2],
								}),
								code: di + 2*dj + 4*dk,
							})
						}
					}
				}
				buckets = append(buckets, entries)
			}
		}
	}
	if len(buckets) == 0 {
		return
	}
	sortBuckets(buckets)

	numTrees := int(conn.NumTrees())
	conn.treeToCorner = make([]int32, numTrees*Children)
	for i := range conn.treeToCorner {
		conn.treeToCorner[i] = -1
	}
	conn.cttOffset = make([]int32, 0, len(buckets)+1)
	conn.cttOffset = append(conn.cttOffset, 0)
	for k, entries := range buckets {
		for _, e := range entries {
			conn.cornerToTree = append(conn.cornerToTree, e.tree)
			conn.cornerToCorner = append(conn.cornerToCorner, int8(e.code))
			conn.treeToCorner[int(e.tree)*Children+e.code] = int32(k)
		}
		conn.cttOffset = append(conn.cttOffset, int32(len(conn.cornerToTree)))
	}
}
