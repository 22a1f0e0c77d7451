package connectivity

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.viam.com/test"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	for name, conn := range map[string]*Connectivity{
		"unitcube": NewUnitCube(),
		"periodic": NewPeriodic(),
		"rotwrap":  NewRotWrap(),
		"twocubes": NewTwoCubes(),
		"twowrap":  NewTwoWrap(),
		"rotcubes": NewRotCubes(),
		"shell":    NewShell(),
		"sphere":   NewSphere(),
		"brick":    NewBrick(3, 2, 2, true, false, true),
	} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			test.That(t, conn.Save(&buf), test.ShouldBeNil)

			loaded, err := Load(&buf)
			test.That(t, err, test.ShouldBeNil)
			test.That(t, loaded.Equal(conn), test.ShouldBeTrue)
			test.That(t, loaded.IsValid(), test.ShouldBeTrue)
		})
	}
}

func TestLoadRejectsBadMagic(t *testing.T) {
	var buf bytes.Buffer
	test.That(t, NewPeriodic().Save(&buf), test.ShouldBeNil)
	blob := buf.Bytes()
	blob[0] = 'q'

	_, err := Load(bytes.NewReader(blob))
	test.That(t, errors.Is(err, ErrCorruptFile), test.ShouldBeTrue)
}

func TestLoadRejectsBadVersion(t *testing.T) {
	var buf bytes.Buffer
	test.That(t, NewPeriodic().Save(&buf), test.ShouldBeNil)
	blob := buf.Bytes()
	blob[8] ^= 0xff

	_, err := Load(bytes.NewReader(blob))
	test.That(t, errors.Is(err, ErrCorruptFile), test.ShouldBeTrue)
}

func TestLoadRejectsTruncated(t *testing.T) {
	var buf bytes.Buffer
	test.That(t, NewShell().Save(&buf), test.ShouldBeNil)
	blob := buf.Bytes()

	for _, n := range []int{0, 4, 11, 30, len(blob) / 2, len(blob) - 1} {
		_, err := Load(bytes.NewReader(blob[:n]))
		test.That(t, errors.Is(err, ErrCorruptFile), test.ShouldBeTrue)
	}
}

func TestLoadRejectsInvalidTables(t *testing.T) {
	conn := NewTwoCubes()
	conn.treeToFace[1] = 17 // breaks reciprocity, caught after decoding
	var buf bytes.Buffer
	test.That(t, conn.Save(&buf), test.ShouldBeNil)

	_, err := Load(&buf)
	test.That(t, errors.Is(err, ErrInvalidConnectivity), test.ShouldBeTrue)
}

func TestSaveLoadFile(t *testing.T) {
	logger := golog.NewTestLogger(t)
	fn := filepath.Join(t.TempDir(), "sphere.p8c")

	conn := NewSphere()
	test.That(t, conn.SaveFile(fn, logger), test.ShouldBeNil)

	loaded, err := LoadFile(fn, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, loaded.Equal(conn), test.ShouldBeTrue)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.p8c"), logger)
	test.That(t, err, test.ShouldNotBeNil)
}
