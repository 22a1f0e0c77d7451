package geometry

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

const sphereTrees = 13

// sphere maps the 13 trees of the solid sphere connectivity: trees 0..5 form
// an outer shell between the radii r1 and r2, trees 6..11 an inner layer that
// blends from the sphere of radius r1 down to a cube, and tree 12 the cube at
// the center. The blend parameter p = 2 - c runs from 0 at the spherical side
// to 1 at the cubical side of the inner layer.
type sphere struct {
	r2, r1, r0 float64

	r2ByR1    float64
	r1SqrByR2 float64
	r1Log     float64

	r1ByR0    float64
	r0SqrByR1 float64
	r0Log     float64

	cubeLength float64
	cubeDetJ   float64
}

// sphereAxes and sphereSigns assign the q components of patch trees to the
// Cartesian axes with signs, indexed by tree mod 6 in the order front, top,
// back, right, bottom, left. Row entries are the output rows receiving the
// x-like, y-like and radial component.
var sphereAxes = [6][3]int{
	{0, 2, 1},
	{0, 1, 2},
	{0, 2, 1},
	{1, 2, 0},
	{1, 0, 2},
	{1, 2, 0},
}

var sphereSigns = [6][3]float64{
	{1, 1, -1},
	{1, 1, 1},
	{1, -1, 1},
	{-1, -1, 1},
	{-1, -1, -1},
	{-1, 1, -1},
}

// NewSphere returns the solid sphere geometry with outer radius r2, layer
// boundary r1 and center cube radius r0. The radii must satisfy
// 0 < r0 < r1 < r2.
func NewSphere(r2, r1, r0 float64) (Geometry, error) {
	if r0 <= 0 || r1 <= r0 || r2 <= r1 {
		return nil, errors.Errorf("sphere radii must satisfy 0 < R0 < R1 < R2, got R0=%g R1=%g R2=%g",
			r0, r1, r2)
	}
	return &sphere{
		r2:         r2,
		r1:         r1,
		r0:         r0,
		r2ByR1:     r2 / r1,
		r1SqrByR2:  r1 * r1 / r2,
		r1Log:      math.Log(r2 / r1),
		r1ByR0:     r1 / r0,
		r0SqrByR1:  r0 * r0 / r1,
		r0Log:      math.Log(r1 / r0),
		cubeLength: r0 / math.Sqrt(3),
		cubeDetJ:   math.Pow(r0/math.Sqrt(3), 3),
	}, nil
}

func (s *sphere) X(tree int32, abc r3.Vector) r3.Vector {
	checkTree(tree, sphereTrees)

	var x, y, q float64
	switch {
	case tree < 6: // outer shell
		x = math.Tan(abc.X * math.Pi / 4)
		y = math.Tan(abc.Y * math.Pi / 4)
		r := s.r1SqrByR2 * math.Pow(s.r2ByR1, abc.Z)
		q = r / math.Sqrt(x*x+y*y+1)
	case tree < 12: // inner blended layer
		p := 2 - abc.Z
		tanx := math.Tan(abc.X * math.Pi / 4)
		tany := math.Tan(abc.Y * math.Pi / 4)
		x = p*abc.X + (1-p)*tanx
		y = p*abc.Y + (1-p)*tany
		r := s.r0SqrByR1 * math.Pow(s.r1ByR0, abc.Z)
		q = r / math.Sqrt(1+(1-p)*(tanx*tanx+tany*tany)+2*p)
	default: // center cube
		return abc.Mul(s.cubeLength)
	}

	switch tree % 6 {
	case 0: // front
		return r3.Vector{X: q * x, Y: -q, Z: q * y}
	case 1: // top
		return r3.Vector{X: q * x, Y: q * y, Z: q}
	case 2: // back
		return r3.Vector{X: q * x, Y: q, Z: -q * y}
	case 3: // right
		return r3.Vector{X: q, Y: -q * x, Z: -q * y}
	case 4: // bottom
		return r3.Vector{X: -q * y, Y: -q * x, Z: -q}
	default: // left
		return r3.Vector{X: -q, Y: -q * x, Z: q * y}
	}
}

func (s *sphere) J(tree int32, abc r3.Vector) (Jacobian, float64) {
	checkTree(tree, sphereTrees)

	var j Jacobian
	if tree >= 12 { // center cube
		j[0][0], j[1][1], j[2][2] = s.cubeLength, s.cubeLength, s.cubeLength
		return j, s.cubeDetJ
	}

	pid := int(tree % 6)
	j0, j1, j2 := sphereAxes[pid][0], sphereAxes[pid][1], sphereAxes[pid][2]

	if tree < 6 { // outer shell
		cx := math.Cos(abc.X * math.Pi / 4)
		derx := math.Pi / 4 / (cx * cx)
		x := math.Tan(abc.X * math.Pi / 4)
		cy := math.Cos(abc.Y * math.Pi / 4)
		dery := math.Pi / 4 / (cy * cy)
		y := math.Tan(abc.Y * math.Pi / 4)

		r := s.r1SqrByR2 * math.Pow(s.r2ByR1, abc.Z)
		t := 1 / (x*x + y*y + 1)
		q := r * math.Sqrt(t)
		rLog := s.r1Log

		q0 := sphereSigns[pid][0] * q
		q1 := sphereSigns[pid][1] * q
		q2 := sphereSigns[pid][2] * q
		j[j0][0] = q0 * (1 - x*x*t) * derx
		j[j0][1] = -q0 * x * y * t * dery
		j[j0][2] = q0 * x * rLog
		j[j1][0] = -q1 * x * y * t * derx
		j[j1][1] = q1 * (1 - y*y*t) * dery
		j[j1][2] = q1 * y * rLog
		j[j2][0] = -q2 * x * t * derx
		j[j2][1] = -q2 * y * t * dery
		j[j2][2] = q2 * rLog
	} else { // inner blended layer
		p := 2 - abc.Z

		cx := math.Cos(abc.X * math.Pi / 4)
		derx := (1 - p) * math.Pi / 4 / (cx * cx)
		tanx := math.Tan(abc.X * math.Pi / 4)
		x := p*abc.X + (1-p)*tanx

		cy := math.Cos(abc.Y * math.Pi / 4)
		dery := (1 - p) * math.Pi / 4 / (cy * cy)
		tany := math.Tan(abc.Y * math.Pi / 4)
		y := p*abc.Y + (1-p)*tany

		r := s.r0SqrByR1 * math.Pow(s.r1ByR0, abc.Z)
		tsqr := tanx*tanx + tany*tany
		t := 1 / (1 + (1-p)*tsqr + 2*p)
		q := r * math.Sqrt(t)
		rLog := s.r0Log + t*(1-0.5*tsqr)

		q0 := sphereSigns[pid][0] * q
		q1 := sphereSigns[pid][1] * q
		q2 := sphereSigns[pid][2] * q
		j[j0][0] = q0 * (p + (1-x*tanx*t)*derx)
		j[j0][1] = -q0 * x * tany * t * dery
		j[j0][2] = q0 * (x*rLog - abc.X + tanx)
		j[j1][0] = -q1 * y * tanx * t * derx
		j[j1][1] = q1 * (p + (1-y*tany*t)*dery)
		j[j1][2] = q1 * (y*rLog - abc.Y + tany)
		j[j2][0] = -q2 * tanx * t * derx
		j[j2][1] = -q2 * tany * t * dery
		j[j2][2] = q2 * rLog
	}

	return j, checkDet(j.Det())
}

func (s *sphere) D(tree int32, abc r3.Vector) float64 {
	checkTree(tree, sphereTrees)

	var j Jacobian
	var factor float64
	switch {
	case tree < 6: // outer shell
		cx := math.Cos(abc.X * math.Pi / 4)
		derx := math.Pi / 4 / (cx * cx)
		x := math.Tan(abc.X * math.Pi / 4)
		cy := math.Cos(abc.Y * math.Pi / 4)
		dery := math.Pi / 4 / (cy * cy)
		y := math.Tan(abc.Y * math.Pi / 4)

		r := s.r1SqrByR2 * math.Pow(s.r2ByR1, abc.Z)
		t := 1 / (x*x + y*y + 1)
		q := r * math.Sqrt(t)

		j = Jacobian{
			{1 - x*x*t, -x * y * t, x},
			{-x * y * t, 1 - y*y*t, y},
			{-x * t, -y * t, 1},
		}
		factor = q * q * q * derx * dery * s.r1Log
	case tree < 12: // inner blended layer
		p := 2 - abc.Z

		cx := math.Cos(abc.X * math.Pi / 4)
		derx := (1 - p) * math.Pi / 4 / (cx * cx)
		tanx := math.Tan(abc.X * math.Pi / 4)
		x := p*abc.X + (1-p)*tanx

		cy := math.Cos(abc.Y * math.Pi / 4)
		dery := (1 - p) * math.Pi / 4 / (cy * cy)
		tany := math.Tan(abc.Y * math.Pi / 4)
		y := p*abc.Y + (1-p)*tany

		r := s.r0SqrByR1 * math.Pow(s.r1ByR0, abc.Z)
		tsqr := tanx*tanx + tany*tany
		t := 1 / (1 + (1-p)*tsqr + 2*p)
		q := r * math.Sqrt(t)
		rLog := s.r0Log + t*(1-0.5*tsqr)

		j = Jacobian{
			{p + (1-x*tanx*t)*derx, -x * tany * t * dery, x*rLog - abc.X + tanx},
			{-y * tanx * t * derx, p + (1-y*tany*t)*dery, y*rLog - abc.Y + tany},
			{-tanx * t * derx, -tany * t * dery, rLog},
		}
		factor = q * q * q
	default: // center cube
		return s.cubeDetJ
	}
	return checkDet(j.Det() * factor)
}

func (s *sphere) Jit(tree int32, abc r3.Vector) (Jacobian, float64) {
	return JitFromJ(s, tree, abc)
}
