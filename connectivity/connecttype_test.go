package connectivity

import (
	"testing"

	"go.viam.com/test"
)

func TestConnectTypeValues(t *testing.T) {
	// these values are part of the on-disk and inter-process format
	test.That(t, int(ConnectFace), test.ShouldEqual, 31)
	test.That(t, int(ConnectEdge), test.ShouldEqual, 32)
	test.That(t, int(ConnectCorner), test.ShouldEqual, 33)
	test.That(t, ConnectDefault, test.ShouldEqual, ConnectEdge)
	test.That(t, ConnectFull, test.ShouldEqual, ConnectCorner)
}

func TestConnectTypeInt(t *testing.T) {
	test.That(t, ConnectFace.Int(), test.ShouldEqual, 1)
	test.That(t, ConnectEdge.Int(), test.ShouldEqual, 2)
	test.That(t, ConnectCorner.Int(), test.ShouldEqual, 3)
}

func TestConnectTypeString(t *testing.T) {
	test.That(t, ConnectFace.String(), test.ShouldEqual, "FACE")
	test.That(t, ConnectEdge.String(), test.ShouldEqual, "EDGE")
	test.That(t, ConnectCorner.String(), test.ShouldEqual, "CORNER")
}

func TestConnectTypeBadValuePanics(t *testing.T) {
	defer func() {
		test.That(t, recover(), test.ShouldNotBeNil)
	}()
	ConnectType(30).Int()
}
