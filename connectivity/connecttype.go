package connectivity

import "github.com/pkg/errors"

// ConnectType selects how entities of a forest count as adjacent: across
// faces only, additionally across edges, or additionally across corners.
// The integer values are fixed by the on-disk and inter-process format and
// deliberately differ from their 2D counterparts.
type ConnectType int

const (
	// ConnectFace considers entities adjacent when they share a face.
	ConnectFace ConnectType = 31
	// ConnectEdge additionally considers entities sharing an edge adjacent.
	ConnectEdge ConnectType = 32
	// ConnectCorner additionally considers entities sharing a corner adjacent.
	ConnectCorner ConnectType = 33

	// ConnectDefault is the adjacency used when none is specified.
	ConnectDefault = ConnectEdge
	// ConnectFull is the widest adjacency.
	ConnectFull = ConnectCorner
)

// Int converts a connect type into the number of its codimension levels:
// 1 for faces, 2 for edges, 3 for corners.
func (ct ConnectType) Int() int {
	switch ct {
	case ConnectFace:
		return 1
	case ConnectEdge:
		return 2
	case ConnectCorner:
		return 3
	}
	panic(errOutOfRangeConnectType(ct))
}

// String names the connect type.
func (ct ConnectType) String() string {
	switch ct {
	case ConnectFace:
		return "FACE"
	case ConnectEdge:
		return "EDGE"
	case ConnectCorner:
		return "CORNER"
	}
	panic(errOutOfRangeConnectType(ct))
}

func errOutOfRangeConnectType(ct ConnectType) error {
	return errors.Wrapf(ErrOutOfRange, "connect type %d", int(ct))
}
