package quadrature

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// gaussJacobi computes the n-point Gauss-Jacobi rule for the weight
// (1-x)^alpha (1+x)^beta on [-1,1] by the Golub-Welsch method: the points
// are the eigenvalues of the symmetric tridiagonal Jacobi matrix of the
// recurrence coefficients and the weights come from the first component of
// the eigenvectors.
func gaussJacobi(alpha, beta float64, n int) (x, w []float64) {
	if n == 1 {
		x = []float64{-(alpha - beta) / (alpha + beta + 2)}
		w = []float64{gamma0(alpha, beta)}
		return x, w
	}
	N := n - 1

	h1 := make([]float64, N+1)
	for i := 0; i <= N; i++ {
		h1[i] = 2*float64(i) + alpha + beta
	}

	// Main diagonal: -(beta^2-alpha^2)/((2i+alpha+beta)*(2i+alpha+beta+2))
	d0 := make([]float64, N+1)
	fac := beta*beta - alpha*alpha
	for i := 0; i <= N; i++ {
		d0[i] = fac / (h1[i] * (h1[i] + 2))
	}
	const eps = 1e-16
	if alpha+beta < 10*eps {
		d0[0] = 0
	}

	// First super-diagonal
	d1 := make([]float64, N)
	for i := 0; i < N; i++ {
		ip1 := float64(i + 1)
		val := h1[i]
		d1[i] = 2.0 / (val + 2.0) * math.Sqrt(
			ip1*(ip1+alpha+beta)*(ip1+alpha)*(ip1+beta)/(val+1)/(val+3),
		)
	}

	JJ := newSymTriDiagonal(d0, d1)

	var eig mat.EigenSym
	if ok := eig.Factorize(JJ, true); !ok {
		panic("jacobi matrix eigenvalue decomposition failed")
	}
	x = eig.Values(nil)

	VVr := mat.NewDense(len(x), len(x), nil)
	eig.VectorsTo(VVr)
	w = make([]float64, len(x))
	g0 := gamma0(alpha, beta)
	for i := range w {
		v := VVr.At(0, i)
		w[i] = v * v * g0
	}
	return x, w
}

// gamma0 is the total weight integral of (1-x)^alpha (1+x)^beta on [-1,1].
func gamma0(alpha, beta float64) float64 {
	ab1 := alpha + beta + 1
	a1 := alpha + 1
	b1 := beta + 1
	return math.Gamma(a1) * math.Gamma(b1) * math.Pow(2, ab1) / ab1 / math.Gamma(ab1)
}

func newSymTriDiagonal(d0, d1 []float64) *mat.SymDense {
	n := len(d0)
	dd := make([]float64, n*n)
	for i := 0; i < n; i++ {
		dd[i+i*n] = d0[i]
		if i != n-1 {
			dd[i+1+i*n] = d1[i]
		}
	}
	return mat.NewSymDense(n, dd)
}
