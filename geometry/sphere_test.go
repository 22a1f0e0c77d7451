package geometry

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"github.com/octforest/octforest/connectivity"
)

func TestNewSphereBadRadii(t *testing.T) {
	for _, radii := range [][3]float64{
		{2, 1, 1}, {2, 1, 0}, {1, 1, 0.5}, {1, 2, 0.5}, {2, 1, -1},
	} {
		_, err := NewSphere(radii[0], radii[1], radii[2])
		test.That(t, err, test.ShouldNotBeNil)
	}
}

func TestSphereCenterCube(t *testing.T) {
	g, err := NewSphere(2, 1, 0.5)
	test.That(t, err, test.ShouldBeNil)

	half := 0.5 / math.Sqrt(3)
	got := g.X(12, r3.Vector{X: 1, Y: 1, Z: 1})
	test.That(t, math.Abs(got.X-half), test.ShouldBeLessThan, 1e-15)
	test.That(t, math.Abs(got.Y-half), test.ShouldBeLessThan, 1e-15)
	test.That(t, math.Abs(got.Z-half), test.ShouldBeLessThan, 1e-15)

	test.That(t, math.Abs(g.D(12, r3.Vector{})-half*half*half), test.ShouldBeLessThan, 1e-15)

	j, detJ := g.J(12, r3.Vector{X: -0.2, Y: 0.7, Z: 0})
	test.That(t, math.Abs(detJ-half*half*half), test.ShouldBeLessThan, 1e-15)
	test.That(t, j[0][0], test.ShouldEqual, half)
	test.That(t, j[0][1], test.ShouldEqual, 0.0)
}

func TestSphereSurfaceRadii(t *testing.T) {
	g, err := NewSphere(2, 1, 0.5)
	test.That(t, err, test.ShouldBeNil)

	for tree := int32(0); tree < 6; tree++ {
		inner := g.X(tree, r3.Vector{X: -0.6, Y: 0.1, Z: 1})
		outer := g.X(tree, r3.Vector{X: -0.6, Y: 0.1, Z: 2})
		test.That(t, math.Abs(inner.Norm()-1), test.ShouldBeLessThan, 1e-12)
		test.That(t, math.Abs(outer.Norm()-2), test.ShouldBeLessThan, 1e-12)
	}
	for tree := int32(6); tree < 12; tree++ {
		// the blended layer reaches the unit sphere at its outer surface
		outer := g.X(tree, r3.Vector{X: -0.6, Y: 0.1, Z: 2})
		test.That(t, math.Abs(outer.Norm()-1), test.ShouldBeLessThan, 1e-12)
	}
}

func TestSphereJacobianInvariants(t *testing.T) {
	g, err := NewSphere(2, 1, 0.5)
	test.That(t, err, test.ShouldBeNil)
	for tree := int32(0); tree < 12; tree++ {
		checkGeometryInvariants(t, g, tree, 1, 2)
	}
	checkGeometryInvariants(t, g, 12, -1, 1)
}

func sphereRadialFace(tree int32, f int) float64 {
	if tree < 12 {
		if f%2 == 0 {
			return 1
		}
		return 2
	}
	if f%2 == 0 {
		return -1
	}
	return 1
}

func sphereInFace(tree int32, axis int, s float64) float64 {
	if axis == 2 && tree < 12 {
		return (s + 3) / 2
	}
	return s
}

func sphereTransformed(myTree int32, myAxis int, nTree int32, nAxis, reverse int, v float64) float64 {
	s := v
	if myAxis == 2 && myTree < 12 {
		s = 2*v - 3
	}
	if reverse != 0 {
		s = -s
	}
	if nAxis == 2 && nTree < 12 {
		return (s + 3) / 2
	}
	return s
}

func TestSphereContinuityAcrossTrees(t *testing.T) {
	// every glued face of the sphere connectivity maps to the same Cartesian
	// points from both sides
	g, err := NewSphere(2, 1, 0.5)
	test.That(t, err, test.ShouldBeNil)
	conn := connectivity.NewSphere()

	samples := []float64{-0.83, -0.3, 0, 0.41, 0.97}
	var ft [connectivity.FTransformLen]int
	for tr := int32(0); tr < conn.NumTrees(); tr++ {
		for f := 0; f < connectivity.Faces; f++ {
			ntree := conn.FindFaceTransform(tr, f, &ft)
			if ntree < 0 {
				continue
			}
			_, nface, _ := conn.FaceNeighbor(tr, f)
			for _, s0 := range samples {
				for _, s1 := range samples {
					var p [3]float64
					p[ft[0]] = sphereInFace(tr, ft[0], s0)
					p[ft[1]] = sphereInFace(tr, ft[1], s1)
					if ft[2] == 2 {
						p[2] = sphereRadialFace(tr, f)
					} else if f%2 == 0 {
						p[ft[2]] = -1
					} else {
						p[ft[2]] = 1
					}

					var q [3]float64
					q[ft[3]] = sphereTransformed(tr, ft[0], ntree, ft[3], ft[6], p[ft[0]])
					q[ft[4]] = sphereTransformed(tr, ft[1], ntree, ft[4], ft[7], p[ft[1]])
					if ft[5] == 2 {
						q[2] = sphereRadialFace(ntree, nface)
					} else if nface%2 == 0 {
						q[ft[5]] = -1
					} else {
						q[ft[5]] = 1
					}

					a := g.X(tr, r3.Vector{X: p[0], Y: p[1], Z: p[2]})
					b := g.X(ntree, r3.Vector{X: q[0], Y: q[1], Z: q[2]})
					test.That(t, a.Sub(b).Norm(), test.ShouldBeLessThan, 1e-12)
				}
			}
		}
	}
}
