// Package geometry maps points of a tree's reference cube into Cartesian
// space under built-in curvilinear transformations and exposes their
// Jacobians. All built-ins guarantee a positive Jacobian determinant on the
// interior of every tree.
package geometry

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// ErrGeometryDegenerate reports a non-positive Jacobian determinant. It is
// used as a panic value: a degenerate built-in mapping is a programmer bug.
var ErrGeometryDegenerate = errors.New("degenerate geometry")

// ErrOutOfRange reports a tree index outside a geometry's tree range.
var ErrOutOfRange = errors.New("tree out of range")

// Jacobian is the matrix of partial derivatives of a forward map with respect
// to the reference coordinates, row i holding the derivatives of output
// coordinate i.
type Jacobian [3][3]float64

// Det returns the determinant.
func (j Jacobian) Det() float64 {
	return j[0][0]*(j[1][1]*j[2][2]-j[1][2]*j[2][1]) +
		j[0][1]*(j[1][2]*j[2][0]-j[1][0]*j[2][2]) +
		j[0][2]*(j[1][0]*j[2][1]-j[1][1]*j[2][0])
}

// Dense copies the Jacobian into a gonum matrix for callers doing further
// linear algebra.
func (j Jacobian) Dense() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		j[0][0], j[0][1], j[0][2],
		j[1][0], j[1][1], j[1][2],
		j[2][0], j[2][1], j[2][2],
	})
}

// Geometry maps reference coordinates of a tree into Cartesian space. The
// reference cube is [-1,1]^3, with [1,2] on the radial axis for shell trees.
// Implementations are immutable values; any number of goroutines may share
// one.
type Geometry interface {
	// X evaluates the forward map.
	X(tree int32, abc r3.Vector) r3.Vector
	// J returns the Jacobian of X and its determinant.
	J(tree int32, abc r3.Vector) (Jacobian, float64)
	// D returns the Jacobian determinant alone, which is cheaper for
	// mappings with a closed form.
	D(tree int32, abc r3.Vector) float64
	// Jit returns the inverse transpose of the Jacobian and the determinant.
	Jit(tree int32, abc r3.Vector) (Jacobian, float64)
}

// JitFromJ inverts the Jacobian of g at (tree, abc) by cofactor expansion and
// returns its transpose inverse together with the determinant. It is the
// shared Jit path for geometries without a specialized inverse.
func JitFromJ(g Geometry, tree int32, abc r3.Vector) (Jacobian, float64) {
	j, detJ := g.J(tree, abc)
	idet := 1.0 / detJ

	var jit Jacobian
	jit[0][0] = (j[1][1]*j[2][2] - j[1][2]*j[2][1]) * idet
	jit[0][1] = (j[1][2]*j[2][0] - j[1][0]*j[2][2]) * idet
	jit[0][2] = (j[1][0]*j[2][1] - j[1][1]*j[2][0]) * idet

	jit[1][0] = (j[0][2]*j[2][1] - j[0][1]*j[2][2]) * idet
	jit[1][1] = (j[0][0]*j[2][2] - j[0][2]*j[2][0]) * idet
	jit[1][2] = (j[0][1]*j[2][0] - j[0][0]*j[2][1]) * idet

	jit[2][0] = (j[0][1]*j[1][2] - j[1][1]*j[0][2]) * idet
	jit[2][1] = (j[0][2]*j[1][0] - j[1][2]*j[0][0]) * idet
	jit[2][2] = (j[0][0]*j[1][1] - j[1][0]*j[0][1]) * idet

	return jit, detJ
}

func checkDet(detJ float64) float64 {
	if detJ <= 0 {
		panic(errors.Wrapf(ErrGeometryDegenerate, "detJ = %g", detJ))
	}
	return detJ
}

func checkTree(tree, numTrees int32) {
	if tree < 0 || tree >= numTrees {
		panic(errors.Wrapf(ErrOutOfRange, "tree %d not in [0, %d)", tree, numTrees))
	}
}

var identityJacobian = Jacobian{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

type identity struct{}

// NewIdentity returns the geometry that maps every tree's reference cube to
// itself.
func NewIdentity() Geometry {
	return identity{}
}

func (identity) X(tree int32, abc r3.Vector) r3.Vector {
	return abc
}

func (identity) J(tree int32, abc r3.Vector) (Jacobian, float64) {
	return identityJacobian, 1
}

func (identity) D(tree int32, abc r3.Vector) float64 {
	return 1
}

func (identity) Jit(tree int32, abc r3.Vector) (Jacobian, float64) {
	// the identity Jacobian is its own inverse transpose
	return identityJacobian, 1
}

// UserGeometry adapts caller-supplied map functions to the Geometry
// interface. XFunc and JFunc are required; DFunc and JitFunc fall back to
// JFunc and the shared cofactor inverse.
type UserGeometry struct {
	XFunc   func(tree int32, abc r3.Vector) r3.Vector
	JFunc   func(tree int32, abc r3.Vector) (Jacobian, float64)
	DFunc   func(tree int32, abc r3.Vector) float64
	JitFunc func(tree int32, abc r3.Vector) (Jacobian, float64)
}

// X implements Geometry.
func (u *UserGeometry) X(tree int32, abc r3.Vector) r3.Vector {
	return u.XFunc(tree, abc)
}

// J implements Geometry.
func (u *UserGeometry) J(tree int32, abc r3.Vector) (Jacobian, float64) {
	return u.JFunc(tree, abc)
}

// D implements Geometry.
func (u *UserGeometry) D(tree int32, abc r3.Vector) float64 {
	if u.DFunc != nil {
		return u.DFunc(tree, abc)
	}
	_, detJ := u.JFunc(tree, abc)
	return detJ
}

// Jit implements Geometry.
func (u *UserGeometry) Jit(tree int32, abc r3.Vector) (Jacobian, float64) {
	if u.JitFunc != nil {
		return u.JitFunc(tree, abc)
	}
	return JitFromJ(u, tree, abc)
}
