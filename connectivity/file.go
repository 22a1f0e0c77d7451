package connectivity

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// ErrCorruptFile is returned when loading a connectivity from a blob with a
// bad signature, an unsupported format version or a truncated payload.
var ErrCorruptFile = errors.New("corrupt connectivity file")

// magic identifies a connectivity blob; the trailing bytes pad it to a fixed
// eight-byte signature.
var magic = [8]byte{'p', '8', 'e', 's', 't', 0, 0, 0}

// onDiskFormat is the format version written and accepted by this package.
// It changes whenever the layout of any serialized structure changes.
const onDiskFormat uint32 = 0x03000008

// Save writes the connectivity as a little-endian blob: the signature, the
// format version, the six counts, then the tables in fixed order with their
// natural element sizes. Tables whose count is zero are omitted.
func (conn *Connectivity) Save(w io.Writer) error {
	header := []interface{}{
		magic,
		onDiskFormat,
		conn.NumVertices(),
		conn.NumTrees(),
		conn.NumEdges(),
		conn.NumEdgeEntries(),
		conn.NumCorners(),
		conn.NumCornerEntries(),
	}
	for _, v := range header {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return errors.Wrap(err, "writing connectivity header")
		}
	}
	payload := []interface{}{
		flattenVertices(conn.vertices),
		conn.treeToVertex,
		conn.treeToTree,
		conn.treeToFace,
		conn.treeToEdge,
		conn.ettOffset,
		conn.edgeToTree,
		conn.edgeToEdge,
		conn.treeToCorner,
		conn.cttOffset,
		conn.cornerToTree,
		conn.cornerToCorner,
	}
	for _, table := range payload {
		if err := binary.Write(w, binary.LittleEndian, table); err != nil {
			return errors.Wrap(err, "writing connectivity table")
		}
	}
	return nil
}

// Load reads a connectivity blob written by Save and validates it. It returns
// ErrCorruptFile on a signature, version or framing problem and
// ErrInvalidConnectivity when the decoded tables violate an invariant.
func Load(r io.Reader) (*Connectivity, error) {
	var gotMagic [8]byte
	if err := readLE(r, &gotMagic); err != nil {
		return nil, err
	}
	if gotMagic != magic {
		return nil, errors.Wrapf(ErrCorruptFile, "bad signature %q", gotMagic[:5])
	}
	var version uint32
	if err := readLE(r, &version); err != nil {
		return nil, err
	}
	if version != onDiskFormat {
		return nil, errors.Wrapf(ErrCorruptFile, "format version %#x, want %#x",
			version, onDiskFormat)
	}

	var counts [6]int32
	if err := readLE(r, &counts); err != nil {
		return nil, err
	}
	numVertices, numTrees := counts[0], counts[1]
	numEdges, numETT := counts[2], counts[3]
	numCorners, numCTT := counts[4], counts[5]
	if numVertices < 0 || numTrees <= 0 || numEdges < 0 || numETT < 0 ||
		numCorners < 0 || numCTT < 0 {
		return nil, errors.Wrap(ErrCorruptFile, "negative counts or no trees")
	}
	if (numEdges == 0 && numETT != 0) || (numCorners == 0 && numCTT != 0) {
		return nil, errors.Wrap(ErrCorruptFile, "inconsistent counts")
	}

	conn := NewConnectivity(numVertices, numTrees, numEdges, numETT, numCorners, numCTT)
	coords := make([]float64, 3*numVertices)
	tables := []interface{}{
		coords,
		conn.treeToVertex,
		conn.treeToTree,
		conn.treeToFace,
		conn.treeToEdge,
		conn.ettOffset,
		conn.edgeToTree,
		conn.edgeToEdge,
		conn.treeToCorner,
		conn.cttOffset,
		conn.cornerToTree,
		conn.cornerToCorner,
	}
	for _, table := range tables {
		if err := readLE(r, table); err != nil {
			conn.Destroy()
			return nil, err
		}
	}
	for i := range conn.vertices {
		conn.vertices[i] = r3.Vector{X: coords[3*i], Y: coords[3*i+1], Z: coords[3*i+2]}
	}
	if !conn.IsValid() {
		conn.Destroy()
		return nil, errors.Wrap(ErrInvalidConnectivity, "loading connectivity")
	}
	return conn, nil
}

func readLE(r io.Reader, data interface{}) error {
	if err := binary.Read(r, binary.LittleEndian, data); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return errors.Wrap(ErrCorruptFile, "short read")
		}
		return errors.Wrap(err, "reading connectivity")
	}
	return nil
}

func flattenVertices(vertices []r3.Vector) []float64 {
	coords := make([]float64, 0, 3*len(vertices))
	for _, v := range vertices {
		coords = append(coords, v.X, v.Y, v.Z)
	}
	return coords
}

// SaveFile writes the connectivity to the named file.
func (conn *Connectivity) SaveFile(fn string, logger golog.Logger) (err error) {
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Combine(err, f.Close())
	}()
	logger.Debugw("saving connectivity", "file", fn, "trees", conn.NumTrees())
	return conn.Save(f)
}

// LoadFile reads a connectivity from the named file.
func LoadFile(fn string, logger golog.Logger) (conn *Connectivity, err error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = multierr.Combine(err, f.Close())
	}()
	conn, err = Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %q", fn)
	}
	logger.Debugw("loaded connectivity", "file", fn, "trees", conn.NumTrees())
	return conn, nil
}
