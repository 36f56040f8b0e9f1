package element

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// monomialValue evaluates x^i * y^j at a point.
func monomialValue(x, y float64, i, j int) float64 {
	result := 1.0
	for n := 0; n < i; n++ {
		result *= x
	}
	for n := 0; n < j; n++ {
		result *= y
	}
	return result
}

// monomialDerivative computes the derivative of x^i * y^j with respect to
// x (deriv=0) or y (deriv=1).
func monomialDerivative(x, y float64, i, j, deriv int) float64 {
	switch deriv {
	case 0:
		if i == 0 {
			return 0
		}
		return float64(i) * monomialValue(x, y, i-1, j)
	case 1:
		if j == 0 {
			return 0
		}
		return float64(j) * monomialValue(x, y, i, j-1)
	default:
		panic("invalid derivative direction")
	}
}

// TestVandermondePolynomialInterpolation tests that the Vandermonde matrix
// at the Lagrange nodes can exactly interpolate all monomials up to the
// element degree.
func TestVandermondePolynomialInterpolation(t *testing.T) {
	maxDegree := 6
	tol := 1e-9

	for degree := 1; degree <= maxDegree; degree++ {
		t.Run(fmt.Sprintf("degree=%d", degree), func(t *testing.T) {
			nodes, err := LagrangePoints(ReferenceTriangle, degree)
			if err != nil {
				t.Fatal(err)
			}
			V := Vandermonde(ReferenceTriangle, degree, nodes)

			var Vinv mat.Dense
			if err := Vinv.Inverse(V); err != nil {
				t.Fatalf("Failed to invert Vandermonde matrix: %v", err)
			}

			np, _ := nodes.Dims()
			for total := 0; total <= degree; total++ {
				for i := 0; i <= total; i++ {
					j := total - i

					fValues := make([]float64, np)
					for r := 0; r < np; r++ {
						fValues[r] = monomialValue(nodes.At(r, 0), nodes.At(r, 1), i, j)
					}
					f := mat.NewVecDense(np, fValues)

					coeffs := mat.NewVecDense(np, nil)
					coeffs.MulVec(&Vinv, f)
					fRecon := mat.NewVecDense(np, nil)
					fRecon.MulVec(V, coeffs)

					maxErr := 0.0
					for r := 0; r < np; r++ {
						e := math.Abs(fRecon.AtVec(r) - fValues[r])
						if e > maxErr {
							maxErr = e
						}
					}
					if maxErr > tol {
						t.Errorf("monomial x^%d y^%d: max error = %e", i, j, maxErr)
					}
				}
			}
		})
	}
}

// TestVandermondeColumnOrder pins the 2D column ordering: within total
// degree k the columns run x^k, x^(k-1)y, ..., y^k.
func TestVandermondeColumnOrder(t *testing.T) {
	pts := mat.NewDense(1, 2, []float64{0.3, 0.5})
	V := Vandermonde(ReferenceTriangle, 2, pts)

	want := []float64{
		1,
		0.3, 0.5,
		0.09, 0.15, 0.25,
	}
	for c, w := range want {
		if math.Abs(V.At(0, c)-w) > 1e-14 {
			t.Errorf("column %d = %v, want %v", c, V.At(0, c), w)
		}
	}
}

// TestGradVandermondeExactDerivatives checks the gradient matrices against
// analytic monomial derivatives.
func TestGradVandermondeExactDerivatives(t *testing.T) {
	tol := 1e-12
	pts := mat.NewDense(4, 2, []float64{
		0.1, 0.2,
		0.5, 0.25,
		0, 0.75,
		1. / 3., 1. / 3.,
	})

	for degree := 1; degree <= 5; degree++ {
		t.Run(fmt.Sprintf("degree=%d", degree), func(t *testing.T) {
			grad := GradVandermonde(ReferenceTriangle, degree, pts)
			if len(grad) != 2 {
				t.Fatalf("got %d direction matrices, want 2", len(grad))
			}

			sk := 0
			for k := 0; k <= degree; k++ {
				for i, j := k, 0; i >= 0; i, j = i-1, j+1 {
					for r := 0; r < 4; r++ {
						x, y := pts.At(r, 0), pts.At(r, 1)
						for d := 0; d < 2; d++ {
							want := monomialDerivative(x, y, i, j, d)
							got := grad[d].At(r, sk)
							if math.Abs(got-want) > tol {
								t.Errorf("d/dx_%d of x^%d y^%d at point %d: got %v, want %v",
									d, i, j, r, got, want)
							}
						}
					}
					sk++
				}
			}
		})
	}
}

// TestGradVandermondeInterval checks the 1D derivative columns.
func TestGradVandermondeInterval(t *testing.T) {
	pts := mat.NewDense(3, 1, []float64{0, 0.5, 1})
	degree := 4
	grad := GradVandermonde(ReferenceInterval, degree, pts)
	if len(grad) != 1 {
		t.Fatalf("got %d direction matrices, want 1", len(grad))
	}
	for r := 0; r < 3; r++ {
		x := pts.At(r, 0)
		for i := 0; i <= degree; i++ {
			want := 0.0
			if i > 0 {
				want = float64(i) * intPow(x, i-1)
			}
			if math.Abs(grad[0].At(r, i)-want) > 1e-13 {
				t.Errorf("d/dx x^%d at %v: got %v, want %v", i, x, grad[0].At(r, i), want)
			}
		}
	}
}
