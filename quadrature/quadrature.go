// Package quadrature provides Gauss quadrature rules on the reference
// interval and reference triangle, exact for polynomials up to a requested
// degree.
package quadrature

import (
	"fmt"

	"github.com/notargets/CGKernel/element"
	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/mat"
)

// Rule is a quadrature rule on a reference cell: a set of points (one per
// row) with matching weights. A rule constructed for degree d integrates
// every polynomial of total degree <= d exactly.
type Rule struct {
	Cell    *element.ReferenceCell
	Degree  int
	Points  *mat.Dense
	Weights []float64
}

// NewRule constructs a Gauss quadrature rule on the cell which is exact to
// the given polynomial degree. On the interval this is Gauss-Legendre; on
// the triangle a Duffy (collapsed coordinate) product of a Gauss-Legendre
// rule with a Gauss-Jacobi rule whose weight absorbs the collapse Jacobian.
func NewRule(cell *element.ReferenceCell, degree int) (*Rule, error) {
	if degree < 1 {
		degree = 1
	}
	npts := (degree + 2) / 2 // smallest n with 2n-1 >= degree

	switch cell.Geometry {
	case element.Interval:
		x := make([]float64, npts)
		w := make([]float64, npts)
		quad.Legendre{}.FixedLocations(x, w, 0, 1)
		points := mat.NewDense(npts, 1, x)
		return &Rule{Cell: cell, Degree: degree, Points: points, Weights: w}, nil

	case element.Triangle:
		// The map (xi, eta) -> (xi*(1-eta), eta) takes the unit square to
		// the triangle with area element (1-eta) dxi deta. The Jacobi rule
		// with alpha=1 integrates (1-t) * polynomial exactly, so the factor
		// never enters the integrand.
		gx := make([]float64, npts)
		gw := make([]float64, npts)
		quad.Legendre{}.FixedLocations(gx, gw, 0, 1)

		jx, jw := gaussJacobi(1, 0, npts)

		points := mat.NewDense(npts*npts, 2, nil)
		weights := make([]float64, npts*npts)
		q := 0
		for j := 0; j < npts; j++ {
			// Map from [-1,1]: eta = (1+t)/2, weight carries (1-t)/2 * dt/2.
			eta := (1 + jx[j]) / 2
			wj := jw[j] / 4
			for i := 0; i < npts; i++ {
				points.Set(q, 0, gx[i]*(1-eta))
				points.Set(q, 1, eta)
				weights[q] = gw[i] * wj
				q++
			}
		}
		return &Rule{Cell: cell, Degree: degree, Points: points, Weights: weights}, nil
	}
	return nil, fmt.Errorf("no quadrature rule for cell geometry %s", cell.Geometry)
}

// Np returns the number of quadrature points.
func (r *Rule) Np() int { return len(r.Weights) }

// Integrate applies the rule to f.
func (r *Rule) Integrate(f func(x []float64) float64) float64 {
	var sum float64
	for q, w := range r.Weights {
		sum += w * f(r.Points.RawRowView(q))
	}
	return sum
}
