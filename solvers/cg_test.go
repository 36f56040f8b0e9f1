package solvers

import (
	"testing"

	"github.com/james-bowman/sparse"
	"github.com/stretchr/testify/require"
)

func spd3(t *testing.T) *sparse.DOK {
	t.Helper()
	// Diagonally dominant symmetric matrix.
	A := sparse.NewDOK(3, 3)
	A.Set(0, 0, 4)
	A.Set(1, 1, 5)
	A.Set(2, 2, 6)
	A.Set(0, 1, 1)
	A.Set(1, 0, 1)
	A.Set(1, 2, 2)
	A.Set(2, 1, 2)
	return A
}

func TestCGSolvesSPDSystem(t *testing.T) {
	A := spd3(t)

	// b = A * [1, -2, 3].
	want := []float64{1, -2, 3}
	b := make([]float64, 3)
	matVec(A, want, b)

	x, iters, err := CG(A, b, 1e-12, 100)
	require.NoError(t, err)
	require.LessOrEqual(t, iters, 3, "CG on a 3x3 system converges in at most 3 steps")
	for i := range want {
		require.InDelta(t, want[i], x[i], 1e-10)
	}
}

func TestCGZeroRHS(t *testing.T) {
	A := spd3(t)
	x, iters, err := CG(A, []float64{0, 0, 0}, 1e-12, 100)
	require.NoError(t, err)
	require.Equal(t, 0, iters)
	require.Equal(t, []float64{0, 0, 0}, x)
}

func TestCGRejectsBadInputs(t *testing.T) {
	A := spd3(t)
	_, _, err := CG(A, []float64{1, 2}, 1e-12, 100)
	require.Error(t, err)

	// Zero diagonal entry.
	B := sparse.NewDOK(2, 2)
	B.Set(0, 0, 1)
	B.Set(0, 1, 1)
	B.Set(1, 0, 1)
	_, _, err = CG(B, []float64{1, 1}, 1e-12, 100)
	require.Error(t, err)
}

func TestCGIndefiniteBreakdown(t *testing.T) {
	A := sparse.NewDOK(2, 2)
	A.Set(0, 0, 1)
	A.Set(1, 1, 1)
	A.Set(0, 1, 4)
	A.Set(1, 0, 4)
	_, _, err := CG(A, []float64{1, -1}, 1e-12, 100)
	require.Error(t, err)
}
