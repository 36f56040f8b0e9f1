package fespace

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/notargets/CGKernel/element"
	"github.com/notargets/CGKernel/mesh"
)

func square(t *testing.T, nx, ny int) *mesh.Mesh {
	t.Helper()
	m, err := mesh.NewUnitSquareMesh(nx, ny)
	require.NoError(t, err)
	return m
}

func space(t *testing.T, m *mesh.Mesh, degree int) *FunctionSpace {
	t.Helper()
	cell := element.ReferenceTriangle
	if m.Dim == 1 {
		cell = element.ReferenceInterval
	}
	el, err := element.NewLagrangeElement(cell, degree)
	require.NoError(t, err)
	fs, err := New(m, el)
	require.NoError(t, err)
	return fs
}

func TestFunctionSpaceDofCounts(t *testing.T) {
	nx, ny := 3, 2
	m := square(t, nx, ny)
	nv := m.NumVertices()
	ne := m.NumEdges()
	nc := m.NumCells()

	for degree := 1; degree <= 4; degree++ {
		t.Run(fmt.Sprintf("P%d", degree), func(t *testing.T) {
			fs := space(t, m, degree)
			want := nv + ne*(degree-1) + nc*(degree-1)*(degree-2)/2
			require.Equal(t, want, fs.NumDofs())
			require.Len(t, fs.CellDofs, nc)
			for _, dofs := range fs.CellDofs {
				require.Len(t, dofs, fs.Elem.Np())
			}
		})
	}
}

func TestFunctionSpaceDofCountsInterval(t *testing.T) {
	m, err := mesh.NewUnitIntervalMesh(6)
	require.NoError(t, err)
	for degree := 1; degree <= 3; degree++ {
		el, err := element.NewLagrangeElement(element.ReferenceInterval, degree)
		require.NoError(t, err)
		fs, err := New(m, el)
		require.NoError(t, err)
		require.Equal(t, 7+6*(degree-1), fs.NumDofs())
	}
}

// Shared dofs must land at the same physical point from either incident
// cell.
func TestFunctionSpaceSharedDofsCoincide(t *testing.T) {
	m := square(t, 2, 2)
	for degree := 1; degree <= 4; degree++ {
		fs := space(t, m, degree)
		coords := fs.Elem.DofCoords()

		where := make(map[int][]float64)
		for c, dofs := range fs.CellDofs {
			for i, g := range dofs {
				x := m.ToPhysical(c, coords.RawRowView(i))
				if prev, ok := where[g]; ok {
					require.InDelta(t, prev[0], x[0], 1e-12,
						"degree %d dof %d", degree, g)
					require.InDelta(t, prev[1], x[1], 1e-12,
						"degree %d dof %d", degree, g)
				} else {
					where[g] = []float64{x[0], x[1]}
				}
			}
		}
		// Every global dof is reachable from some cell.
		require.Len(t, where, fs.NumDofs())
	}
}

func TestFunctionSpaceBoundaryDofs(t *testing.T) {
	nx, ny := 3, 3
	m := square(t, nx, ny)
	for degree := 1; degree <= 3; degree++ {
		fs := space(t, m, degree)
		bd, err := fs.BoundaryDofs()
		require.NoError(t, err)
		// Perimeter carries 2(nx+ny) vertices and as many edges, each edge
		// holding degree-1 interior dofs.
		require.Len(t, bd, 2*(nx+ny)*degree)

		coords := fs.Elem.DofCoords()
		onBoundary := make(map[int]bool)
		for _, g := range bd {
			onBoundary[g] = true
		}
		for c, dofs := range fs.CellDofs {
			for i, g := range dofs {
				if !onBoundary[g] {
					continue
				}
				x := m.ToPhysical(c, coords.RawRowView(i))
				onEdge := x[0] < 1e-12 || x[0] > 1-1e-12 || x[1] < 1e-12 || x[1] > 1-1e-12
				require.True(t, onEdge, "dof %d at (%g,%g) marked boundary", g, x[0], x[1])
			}
		}
	}
}

func TestFunctionSpaceRejectsDimensionMismatch(t *testing.T) {
	m := square(t, 1, 1)
	el, err := element.NewLagrangeElement(element.ReferenceInterval, 1)
	require.NoError(t, err)
	_, err = New(m, el)
	require.Error(t, err)
}

func TestFunctionIntegrateExact(t *testing.T) {
	m := square(t, 3, 3)
	fs := space(t, m, 3)
	f := NewFunction(fs)

	// x^2 y has total degree 3: its interpolant is exact and the rule is
	// exact, so the integral is 1/6 to rounding.
	require.NoError(t, f.InterpolateScalar(func(x []float64) float64 {
		return x[0] * x[0] * x[1]
	}))
	v, err := f.Integrate()
	require.NoError(t, err)
	require.InDelta(t, 1.0/6.0, v, 1e-12)
}

func TestFunctionIntegrateConstant(t *testing.T) {
	m := square(t, 2, 2)
	fs := space(t, m, 1)
	f := NewFunction(fs)
	require.NoError(t, f.InterpolateScalar(func(x []float64) float64 { return 1 }))
	v, err := f.Integrate()
	require.NoError(t, err)
	require.InDelta(t, 1.0, v, 1e-13)
}

func TestErrorNormScalar(t *testing.T) {
	m := square(t, 2, 2)
	fs := space(t, m, 2)
	f := NewFunction(fs)

	linear := func(x []float64) float64 { return x[0] }
	require.NoError(t, f.InterpolateScalar(linear))

	// Interpolant of a representable function matches it exactly.
	e, err := ErrorNormScalar(f, linear)
	require.NoError(t, err)
	require.InDelta(t, 0, e, 1e-12)

	// Against zero the error norm is the L2 norm: sqrt(int x^2) = 1/sqrt(3).
	e, err = ErrorNormScalar(f, func(x []float64) float64 { return 0 })
	require.NoError(t, err)
	require.InDelta(t, 1.0/1.7320508075688772, e, 1e-12)
}

func TestInterpolateScalarRejectsVectorSpace(t *testing.T) {
	m := square(t, 1, 1)
	el, err := element.NewVectorLagrangeElement(element.ReferenceTriangle, 1)
	require.NoError(t, err)
	fs, err := New(m, el)
	require.NoError(t, err)
	f := NewFunction(fs)
	require.Error(t, f.InterpolateScalar(func(x []float64) float64 { return 0 }))
}
