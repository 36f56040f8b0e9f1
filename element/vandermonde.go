package element

import (
	"gonum.org/v1/gonum/mat"
)

// basisSize returns the dimension of the complete polynomial space of the
// given degree on the cell.
func basisSize(cell *ReferenceCell, degree int) int {
	if cell.Dim == 1 {
		return degree + 1
	}
	return (degree + 1) * (degree + 2) / 2
}

// Vandermonde constructs the generalised Vandermonde matrix for the
// complete monomial basis of the specified degree on the cell, evaluated
// at the given points (one point per row).
//
// In 1D the columns are 1, x, ..., x^degree. In 2D the columns run through
// total degree k = 0..degree, ordered within each k as x^k, x^(k-1)y, ...,
// y^k, giving (degree+1)(degree+2)/2 columns.
func Vandermonde(cell *ReferenceCell, degree int, points *mat.Dense) *mat.Dense {
	nr, _ := points.Dims()
	V := mat.NewDense(nr, basisSize(cell, degree), nil)

	if cell.Dim == 1 {
		for r := 0; r < nr; r++ {
			x := points.At(r, 0)
			for i := 0; i <= degree; i++ {
				V.Set(r, i, intPow(x, i))
			}
		}
		return V
	}

	for r := 0; r < nr; r++ {
		x, y := points.At(r, 0), points.At(r, 1)
		sk := 0
		for k := 0; k <= degree; k++ {
			for i, j := k, 0; i >= 0; i, j = i-1, j+1 {
				V.Set(r, sk, intPow(x, i)*intPow(y, j))
				sk++
			}
		}
	}
	return V
}

// GradVandermonde constructs the derivative of the Vandermonde matrix in
// each coordinate direction. The result has one matrix per direction, each
// with the same shape as Vandermonde for the same arguments.
func GradVandermonde(cell *ReferenceCell, degree int, points *mat.Dense) []*mat.Dense {
	nr, _ := points.Dims()
	nc := basisSize(cell, degree)

	if cell.Dim == 1 {
		Vx := mat.NewDense(nr, nc, nil)
		for r := 0; r < nr; r++ {
			x := points.At(r, 0)
			for i := 1; i <= degree; i++ {
				Vx.Set(r, i, float64(i)*intPow(x, i-1))
			}
		}
		return []*mat.Dense{Vx}
	}

	Vx := mat.NewDense(nr, nc, nil)
	Vy := mat.NewDense(nr, nc, nil)
	for r := 0; r < nr; r++ {
		x, y := points.At(r, 0), points.At(r, 1)
		sk := 0
		for k := 0; k <= degree; k++ {
			for i, j := k, 0; i >= 0; i, j = i-1, j+1 {
				if i > 0 {
					Vx.Set(r, sk, float64(i)*intPow(x, i-1)*intPow(y, j))
				}
				if j > 0 {
					Vy.Set(r, sk, intPow(x, i)*float64(j)*intPow(y, j-1))
				}
				sk++
			}
		}
	}
	return []*mat.Dense{Vx, Vy}
}

// intPow computes x^n for non-negative integer n.
func intPow(x float64, n int) float64 {
	if n == 0 {
		return 1.0
	}
	result := x
	for i := 1; i < n; i++ {
		result *= x
	}
	return result
}
