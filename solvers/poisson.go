package solvers

import (
	"math"

	"github.com/notargets/CGKernel/element"
	"github.com/notargets/CGKernel/fespace"
	"github.com/notargets/CGKernel/mesh"
)

// poissonExact is the manufactured solution u = sin(pi x) sin(pi y), zero
// on the unit square boundary.
func poissonExact(x []float64) float64 {
	return math.Sin(math.Pi*x[0]) * math.Sin(math.Pi*x[1])
}

// poissonSource is f = -laplace(u) = 2 pi^2 u.
func poissonSource(x []float64) float64 {
	return 2 * math.Pi * math.Pi * poissonExact(x)
}

// SolvePoisson solves -laplace(u) = f with homogeneous Dirichlet boundary
// conditions on an n by n unit square mesh with degree-p Lagrange elements.
func SolvePoisson(n, degree int) (*Result, error) {
	m, err := mesh.NewUnitSquareMesh(n, n)
	if err != nil {
		return nil, err
	}
	el, err := element.NewLagrangeElement(element.ReferenceTriangle, degree)
	if err != nil {
		return nil, err
	}
	fs, err := fespace.New(m, el)
	if err != nil {
		return nil, err
	}

	f := fespace.NewFunction(fs)
	if err := f.InterpolateScalar(poissonSource); err != nil {
		return nil, err
	}
	mask, err := dirichletMask(fs)
	if err != nil {
		return nil, err
	}

	A, b, err := assembleSystem(fs, 0, f, mask)
	if err != nil {
		return nil, err
	}
	x, iters, err := CG(A, b, cgTol, cgMaxIterMul*fs.NumDofs())
	if err != nil {
		return nil, err
	}

	u := &fespace.Function{Space: fs, Values: x}
	l2, err := fespace.ErrorNormScalar(u, poissonExact)
	if err != nil {
		return nil, err
	}
	return &Result{U: u, L2Error: l2, Iterations: iters, Dofs: fs.NumDofs(), Resolution: n}, nil
}
