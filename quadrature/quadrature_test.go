package quadrature

import (
	"fmt"
	"math"
	"testing"

	"github.com/notargets/CGKernel/element"
)

// intervalMonomialIntegral is the exact value of the integral of x^i over
// [0,1].
func intervalMonomialIntegral(i int) float64 {
	return 1 / float64(i+1)
}

// triangleMonomialIntegral is the exact value of the integral of x^i y^j
// over the unit triangle: i! j! / (i+j+2)!.
func triangleMonomialIntegral(i, j int) float64 {
	logv := lgamma(i+1) + lgamma(j+1) - lgamma(i+j+3)
	return math.Exp(logv)
}

func lgamma(n int) float64 {
	v, _ := math.Lgamma(float64(n))
	return v
}

func TestIntervalQuadratureExactness(t *testing.T) {
	tol := 1e-12

	for degree := 1; degree <= 10; degree++ {
		t.Run(fmt.Sprintf("degree=%d", degree), func(t *testing.T) {
			rule, err := NewRule(element.ReferenceInterval, degree)
			if err != nil {
				t.Fatal(err)
			}

			var wsum float64
			for _, w := range rule.Weights {
				wsum += w
			}
			if math.Abs(wsum-1) > tol {
				t.Errorf("weights sum to %v, want 1", wsum)
			}

			for i := 0; i <= degree; i++ {
				got := rule.Integrate(func(x []float64) float64 {
					return intPow(x[0], i)
				})
				want := intervalMonomialIntegral(i)
				if math.Abs(got-want) > tol {
					t.Errorf("x^%d: got %v, want %v", i, got, want)
				}
			}
		})
	}
}

func TestTriangleQuadratureExactness(t *testing.T) {
	tol := 1e-12

	for degree := 1; degree <= 10; degree++ {
		t.Run(fmt.Sprintf("degree=%d", degree), func(t *testing.T) {
			rule, err := NewRule(element.ReferenceTriangle, degree)
			if err != nil {
				t.Fatal(err)
			}

			var wsum float64
			for _, w := range rule.Weights {
				wsum += w
			}
			if math.Abs(wsum-0.5) > tol {
				t.Errorf("weights sum to %v, want 0.5", wsum)
			}

			// All points strictly inside the closed triangle.
			for q := 0; q < rule.Np(); q++ {
				x, y := rule.Points.At(q, 0), rule.Points.At(q, 1)
				if x < -tol || y < -tol || x+y > 1+tol {
					t.Errorf("point %d = (%v, %v) outside the triangle", q, x, y)
				}
			}

			for i := 0; i <= degree; i++ {
				for j := 0; i+j <= degree; j++ {
					got := rule.Integrate(func(x []float64) float64 {
						return intPow(x[0], i) * intPow(x[1], j)
					})
					want := triangleMonomialIntegral(i, j)
					if math.Abs(got-want) > tol {
						t.Errorf("x^%d y^%d: got %v, want %v", i, j, got, want)
					}
				}
			}
		})
	}
}

func TestRuleDegreePromotion(t *testing.T) {
	// Degree 0 rules are promoted to degree 1.
	rule, err := NewRule(element.ReferenceInterval, 0)
	if err != nil {
		t.Fatal(err)
	}
	if rule.Np() < 1 {
		t.Fatalf("degree 0 rule has no points")
	}
}

func TestUnknownGeometryRejected(t *testing.T) {
	bad := &element.ReferenceCell{Geometry: element.CellGeometry(99), Dim: 2}
	if _, err := NewRule(bad, 2); err == nil {
		t.Fatal("expected error for unknown geometry")
	}
}

func intPow(x float64, n int) float64 {
	r := 1.0
	for i := 0; i < n; i++ {
		r *= x
	}
	return r
}
