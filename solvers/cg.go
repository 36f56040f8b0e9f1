package solvers

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Operator is a sparse symmetric positive definite matrix that can iterate
// its non-zero entries. The sparse CSR and DOK types both satisfy it.
type Operator interface {
	mat.Matrix
	DoNonZero(fn func(i, j int, v float64))
}

// matVec computes dst = A*x through the operator's non-zero entries.
func matVec(A Operator, x, dst []float64) {
	for i := range dst {
		dst[i] = 0
	}
	A.DoNonZero(func(i, j int, v float64) {
		dst[i] += v * x[j]
	})
}

func dot(a, b []float64) float64 {
	var s float64
	for i, v := range a {
		s += v * b[i]
	}
	return s
}

// CG solves A x = b by Jacobi-preconditioned conjugate gradients. It stops
// when the relative residual drops below tol and errors out on breakdown or
// after maxIter iterations.
func CG(A Operator, b []float64, tol float64, maxIter int) (x []float64, iters int, err error) {
	n := len(b)
	r, c := A.Dims()
	if r != n || c != n {
		return nil, 0, fmt.Errorf("operator is %dx%d, rhs has length %d", r, c, n)
	}

	diag := make([]float64, n)
	A.DoNonZero(func(i, j int, v float64) {
		if i == j {
			diag[i] = v
		}
	})
	for i, d := range diag {
		if d <= 0 {
			return nil, 0, fmt.Errorf("non-positive diagonal %g at row %d, operator is not SPD", d, i)
		}
	}

	bnorm := math.Sqrt(dot(b, b))
	x = make([]float64, n)
	if bnorm == 0 {
		return x, 0, nil
	}

	res := make([]float64, n)
	copy(res, b)
	z := make([]float64, n)
	for i := range z {
		z[i] = res[i] / diag[i]
	}
	p := append([]float64(nil), z...)
	rz := dot(res, z)
	Ap := make([]float64, n)

	for iters = 1; iters <= maxIter; iters++ {
		matVec(A, p, Ap)
		pAp := dot(p, Ap)
		if pAp <= 0 {
			return nil, iters, fmt.Errorf("conjugate gradient breakdown: p'Ap = %g", pAp)
		}
		alpha := rz / pAp
		for i := range x {
			x[i] += alpha * p[i]
			res[i] -= alpha * Ap[i]
		}
		if math.Sqrt(dot(res, res)) <= tol*bnorm {
			return x, iters, nil
		}
		for i := range z {
			z[i] = res[i] / diag[i]
		}
		rzNew := dot(res, z)
		beta := rzNew / rz
		rz = rzNew
		for i := range p {
			p[i] = z[i] + beta*p[i]
		}
	}
	return nil, iters - 1, fmt.Errorf("conjugate gradient did not converge in %d iterations", maxIter)
}
