package solvers

import (
	"math"

	"github.com/notargets/CGKernel/element"
	"github.com/notargets/CGKernel/fespace"
	"github.com/notargets/CGKernel/mesh"
)

// vectorPoissonExact has independent manufactured components, both zero on
// the unit square boundary.
func vectorPoissonExact(x []float64) []float64 {
	return []float64{
		math.Sin(math.Pi*x[0]) * math.Sin(math.Pi*x[1]),
		math.Sin(2*math.Pi*x[0]) * math.Sin(math.Pi*x[1]),
	}
}

// vectorPoissonSource is f = -laplace(u) componentwise.
func vectorPoissonSource(x []float64) []float64 {
	u := vectorPoissonExact(x)
	return []float64{
		2 * math.Pi * math.Pi * u[0],
		5 * math.Pi * math.Pi * u[1],
	}
}

// SolveVectorPoisson solves the componentwise Poisson problem
// -laplace(u) = f with homogeneous Dirichlet boundary conditions on a
// vector-valued Lagrange space.
func SolveVectorPoisson(n, degree int) (*Result, error) {
	m, err := mesh.NewUnitSquareMesh(n, n)
	if err != nil {
		return nil, err
	}
	el, err := element.NewVectorLagrangeElement(element.ReferenceTriangle, degree)
	if err != nil {
		return nil, err
	}
	fs, err := fespace.New(m, el)
	if err != nil {
		return nil, err
	}

	f := fespace.NewFunction(fs)
	if err := f.Interpolate(vectorPoissonSource); err != nil {
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
	l2, err := fespace.ErrorNorm(u, vectorPoissonExact)
	if err != nil {
		return nil, err
	}
	return &Result{U: u, L2Error: l2, Iterations: iters, Dofs: fs.NumDofs(), Resolution: n}, nil
}
