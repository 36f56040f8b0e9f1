package solvers

import (
	"math"

	"github.com/notargets/CGKernel/element"
	"github.com/notargets/CGKernel/fespace"
	"github.com/notargets/CGKernel/mesh"
)

// Result collects the outcome of a model problem solve.
type Result struct {
	U          *fespace.Function
	L2Error    float64
	Iterations int
	Dofs       int
	Resolution int
}

const (
	cgTol        = 1e-10
	cgMaxIterMul = 10
)

// helmholtzExact is the manufactured solution u = cos(4 pi x) y^2 (1-y)^2,
// chosen so the normal derivative vanishes on the unit square boundary.
func helmholtzExact(x []float64) float64 {
	g := x[1] * x[1] * (1 - x[1]) * (1 - x[1])
	return math.Cos(4*math.Pi*x[0]) * g
}

// helmholtzSource is f = u - laplace(u) for the manufactured solution.
func helmholtzSource(x []float64) float64 {
	y := x[1]
	g := y * y * (1 - y) * (1 - y)
	gpp := 2 - 12*y + 12*y*y
	return math.Cos(4*math.Pi*x[0]) * ((1+16*math.Pi*math.Pi)*g - gpp)
}

// SolveHelmholtz solves u - laplace(u) = f with natural boundary
// conditions on an n by n unit square mesh with degree-p Lagrange
// elements, and reports the L2 error against the manufactured solution.
func SolveHelmholtz(n, degree int) (*Result, error) {
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
	if err := f.InterpolateScalar(helmholtzSource); err != nil {
		return nil, err
	}

	A, b, err := assembleSystem(fs, 1, f, nil)
	if err != nil {
		return nil, err
	}
	x, iters, err := CG(A, b, cgTol, cgMaxIterMul*fs.NumDofs())
	if err != nil {
		return nil, err
	}

	u := &fespace.Function{Space: fs, Values: x}
	l2, err := fespace.ErrorNormScalar(u, helmholtzExact)
	if err != nil {
		return nil, err
	}
	return &Result{U: u, L2Error: l2, Iterations: iters, Dofs: fs.NumDofs(), Resolution: n}, nil
}
