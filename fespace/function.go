package fespace

import (
	"fmt"
	"math"

	"github.com/notargets/CGKernel/quadrature"
)

// Function is a field in a function space, stored as one coefficient per
// global dof.
type Function struct {
	Space  *FunctionSpace
	Values []float64
}

// NewFunction allocates the zero function in fs.
func NewFunction(fs *FunctionSpace) *Function {
	return &Function{Space: fs, Values: make([]float64, fs.NumDofs())}
}

// Interpolate sets the function to the nodal interpolant of fn. The
// returned slice of fn must have ValueSize components; each dof applies its
// weight vector to fn evaluated at the dof's physical location. Shared dofs
// are written once per incident cell with identical values.
func (f *Function) Interpolate(fn func(x []float64) []float64) error {
	el := f.Space.Elem
	m := f.Space.Mesh
	coords := el.DofCoords()
	weights := el.DofWeights()
	vs := el.ValueSize()

	for c, dofs := range f.Space.CellDofs {
		for i, g := range dofs {
			x := m.ToPhysical(c, coords.RawRowView(i))
			fx := fn(x)
			if len(fx) != vs {
				return fmt.Errorf("interpolant returned %d components, space has %d", len(fx), vs)
			}
			var v float64
			for comp := 0; comp < vs; comp++ {
				v += weights.At(i, comp) * fx[comp]
			}
			f.Values[g] = v
		}
	}
	return nil
}

// InterpolateScalar is Interpolate for scalar-valued spaces.
func (f *Function) InterpolateScalar(fn func(x []float64) float64) error {
	if f.Space.Elem.ValueSize() != 1 {
		return fmt.Errorf("scalar interpolation on a space with value size %d", f.Space.Elem.ValueSize())
	}
	return f.Interpolate(func(x []float64) []float64 {
		return []float64{fn(x)}
	})
}

// Integrate computes the integral of a scalar function over the mesh using
// a quadrature rule exact for the element degree.
func (f *Function) Integrate() (float64, error) {
	el := f.Space.Elem
	if el.ValueSize() != 1 {
		return 0, fmt.Errorf("integrate requires a scalar space, value size is %d", el.ValueSize())
	}
	rule, err := quadrature.NewRule(el.RefCell(), el.Order())
	if err != nil {
		return 0, err
	}
	tab := el.TabulateValues(rule.Points)[0]

	var total float64
	for c, dofs := range f.Space.CellDofs {
		detJ := f.Space.Mesh.JacobianDet(c)
		for q, w := range rule.Weights {
			var v float64
			for i, g := range dofs {
				v += tab.At(q, i) * f.Values[g]
			}
			total += w * detJ * v
		}
	}
	return total, nil
}

// ErrorNorm computes the L2 norm of the difference between the function and
// the exact field, using a rule of elevated degree to resolve the error.
func ErrorNorm(f *Function, exact func(x []float64) []float64) (float64, error) {
	el := f.Space.Elem
	m := f.Space.Mesh
	rule, err := quadrature.NewRule(el.RefCell(), 2*el.Order()+2)
	if err != nil {
		return 0, err
	}
	tabs := el.TabulateValues(rule.Points)
	vs := el.ValueSize()

	var sum float64
	for c, dofs := range f.Space.CellDofs {
		detJ := m.JacobianDet(c)
		for q, w := range rule.Weights {
			x := m.ToPhysical(c, rule.Points.RawRowView(q))
			ex := exact(x)
			if len(ex) != vs {
				return 0, fmt.Errorf("exact field returned %d components, space has %d", len(ex), vs)
			}
			for comp := 0; comp < vs; comp++ {
				var v float64
				for i, g := range dofs {
					v += tabs[comp].At(q, i) * f.Values[g]
				}
				diff := v - ex[comp]
				sum += w * detJ * diff * diff
			}
		}
	}
	return math.Sqrt(sum), nil
}

// ErrorNormScalar is ErrorNorm against a scalar exact field.
func ErrorNormScalar(f *Function, exact func(x []float64) float64) (float64, error) {
	return ErrorNorm(f, func(x []float64) []float64 {
		return []float64{exact(x)}
	})
}
