package geometry

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

const shellTrees = 24

// shell maps the 24 trees of the spherical shell connectivity onto the
// volume between two concentric spheres. The two angular coordinates are
// graded with a tangent so that grid spacing is uniform on the sphere; the
// radial coordinate in [1,2] maps exponentially between the radii.
type shell struct {
	r2, r1    float64
	r2ByR1    float64
	r1SqrByR2 float64
	rLog      float64
}

// NewShell returns the shell geometry with outer radius r2 and inner radius
// r1. The radii must satisfy 0 < r1 < r2.
func NewShell(r2, r1 float64) (Geometry, error) {
	if r1 <= 0 || r2 <= r1 {
		return nil, errors.Errorf("shell radii must satisfy 0 < R1 < R2, got R1=%g R2=%g", r1, r2)
	}
	return &shell{
		r2:        r2,
		r1:        r1,
		r2ByR1:    r2 / r1,
		r1SqrByR2: r1 * r1 / r2,
		rLog:      math.Log(r2 / r1),
	}, nil
}

func (s *shell) X(tree int32, abc r3.Vector) r3.Vector {
	checkTree(tree, shellTrees)

	// grade the angular coordinates for uniform surface spacing
	x := math.Tan(abc.X * math.Pi / 4)
	y := math.Tan(abc.Y * math.Pi / 4)

	r := s.r1SqrByR2 * math.Pow(s.r2ByR1, abc.Z)
	q := r / math.Sqrt(x*x+y*y+1)

	switch tree / 4 {
	case 0: // right
		return r3.Vector{X: q, Y: -q * x, Z: -q * y}
	case 1: // bottom
		return r3.Vector{X: -q * y, Y: -q * x, Z: -q}
	case 2: // left
		return r3.Vector{X: -q, Y: -q * x, Z: q * y}
	case 3: // top
		return r3.Vector{X: q * y, Y: -q * x, Z: q}
	case 4: // back
		return r3.Vector{X: -q * x, Y: q, Z: q * y}
	default: // front
		return r3.Vector{X: q * x, Y: -q, Z: q * y}
	}
}

func (s *shell) J(tree int32, abc r3.Vector) (Jacobian, float64) {
	checkTree(tree, shellTrees)

	cx := math.Cos(abc.X * math.Pi / 4)
	derx := math.Pi / 4 / (cx * cx)
	x := math.Tan(abc.X * math.Pi / 4)
	cy := math.Cos(abc.Y * math.Pi / 4)
	dery := math.Pi / 4 / (cy * cy)
	y := math.Tan(abc.Y * math.Pi / 4)

	r := s.r1SqrByR2 * math.Pow(s.r2ByR1, abc.Z)
	t := 1 / (x*x + y*y + 1)
	q := r * math.Sqrt(t)
	rLog := s.rLog

	var j Jacobian
	switch tree / 4 {
	case 0: // right
		j[0][0] = -q * x * t * derx
		j[0][1] = -q * y * t * dery
		j[0][2] = q * rLog
		j[1][0] = -q * (1 - x*x*t) * derx
		j[1][1] = q * x * y * t * dery
		j[1][2] = -q * x * rLog
		j[2][0] = q * x * y * t * derx
		j[2][1] = -q * (1 - y*y*t) * dery
		j[2][2] = -q * y * rLog
	case 1: // bottom
		j[0][0] = q * x * y * t * derx
		j[0][1] = -q * (1 - y*y*t) * dery
		j[0][2] = -q * y * rLog
		j[1][0] = -q * (1 - x*x*t) * derx
		j[1][1] = q * x * y * t * dery
		j[1][2] = -q * x * rLog
		j[2][0] = q * x * t * derx
		j[2][1] = q * y * t * dery
		j[2][2] = -q * rLog
	case 2: // left
		j[0][0] = q * x * t * derx
		j[0][1] = q * y * t * dery
		j[0][2] = -q * rLog
		j[1][0] = -q * (1 - x*x*t) * derx
		j[1][1] = q * x * y * t * dery
		j[1][2] = -q * x * rLog
		j[2][0] = -q * x * y * t * derx
		j[2][1] = q * (1 - y*y*t) * dery
		j[2][2] = q * y * rLog
	case 3: // top
		j[0][0] = -q * x * y * t * derx
		j[0][1] = q * (1 - y*y*t) * dery
		j[0][2] = q * y * rLog
		j[1][0] = -q * (1 - x*x*t) * derx
		j[1][1] = q * x * y * t * dery
		j[1][2] = -q * x * rLog
		j[2][0] = -q * x * t * derx
		j[2][1] = -q * y * t * dery
		j[2][2] = q * rLog
	case 4: // back
		j[0][0] = -q * (1 - x*x*t) * derx
		j[0][1] = q * x * y * t * dery
		j[0][2] = -q * x * rLog
		j[1][0] = -q * x * t * derx
		j[1][1] = -q * y * t * dery
		j[1][2] = q * rLog
		j[2][0] = -q * x * y * t * derx
		j[2][1] = q * (1 - y*y*t) * dery
		j[2][2] = q * y * rLog
	default: // front
		j[0][0] = q * (1 - x*x*t) * derx
		j[0][1] = -q * x * y * t * dery
		j[0][2] = q * x * rLog
		j[1][0] = q * x * t * derx
		j[1][1] = q * y * t * dery
		j[1][2] = -q * rLog
		j[2][0] = -q * x * y * t * derx
		j[2][1] = q * (1 - y*y*t) * dery
		j[2][2] = q * y * rLog
	}

	return j, checkDet(j.Det())
}

func (s *shell) D(tree int32, abc r3.Vector) float64 {
	checkTree(tree, shellTrees)

	cx := math.Cos(abc.X * math.Pi / 4)
	derx := math.Pi / 4 / (cx * cx)
	x := math.Tan(abc.X * math.Pi / 4)
	cy := math.Cos(abc.Y * math.Pi / 4)
	dery := math.Pi / 4 / (cy * cy)
	y := math.Tan(abc.Y * math.Pi / 4)

	r := s.r1SqrByR2 * math.Pow(s.r2ByR1, abc.Z)
	t := 1 / (x*x + y*y + 1)
	q := r * math.Sqrt(t)

	// Jacobian modulo the patch permutation, whose determinant is one
	j := Jacobian{
		{1 - x*x*t, -x * y * t, x},
		{-x * y * t, 1 - y*y*t, y},
		{-x * t, -y * t, 1},
	}
	return checkDet(j.Det() * q * q * q * derx * dery * s.rLog)
}

func (s *shell) Jit(tree int32, abc r3.Vector) (Jacobian, float64) {
	return JitFromJ(s, tree, abc)
}
