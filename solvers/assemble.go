// Package solvers provides continuous-Galerkin solvers for model problems
// on the unit square, with sparse assembly, a conjugate-gradient solver and
// convergence studies.
package solvers

import (
	"github.com/james-bowman/sparse"
	"github.com/notargets/CGKernel/fespace"
	"github.com/notargets/CGKernel/quadrature"
)

// assembleSystem builds the global operator massCoeff*M + K and the load
// vector M*f for the weak form
//
//	massCoeff*(u, v) + (grad u, grad v) = (f, v)
//
// where f is the nodal interpolant held in rhs. Dofs flagged in dirichlet
// are constrained to zero: their rows and columns are dropped during the
// scatter and replaced by an identity row with zero load, which keeps the
// operator symmetric.
func assembleSystem(fs *fespace.FunctionSpace, massCoeff float64, rhs *fespace.Function, dirichlet []bool) (*sparse.CSR, []float64, error) {
	el := fs.Elem
	m := fs.Mesh
	n := el.Np()
	vs := el.ValueSize()
	dim := m.Dim

	rule, err := quadrature.NewRule(el.RefCell(), 2*el.Order())
	if err != nil {
		return nil, nil, err
	}
	nq := rule.Np()
	tabs := el.TabulateValues(rule.Points)
	grads := el.TabulateGradients(rule.Points)

	N := fs.NumDofs()
	dok := sparse.NewDOK(N, N)
	b := make([]float64, N)

	// Scratch: physical gradients per quadrature point, [comp][dir][dof].
	gx := make([][][]float64, vs)
	for c := range gx {
		gx[c] = make([][]float64, dim)
		for d := range gx[c] {
			gx[c][d] = make([]float64, n)
		}
	}
	localA := make([][]float64, n)
	localM := make([][]float64, n)
	for i := range localA {
		localA[i] = make([]float64, n)
		localM[i] = make([]float64, n)
	}

	for c, dofs := range fs.CellDofs {
		detJ := m.JacobianDet(c)
		Jinv := m.JacobianInv(c)

		for i := range localA {
			for j := range localA[i] {
				localA[i][j] = 0
				localM[i][j] = 0
			}
		}

		for q := 0; q < nq; q++ {
			w := rule.Weights[q] * detJ

			// Push reference gradients to physical space: the chain rule
			// gives d(phi)/dx_d = sum_r d(phi)/dxi_r * Jinv[r][d].
			for comp := 0; comp < vs; comp++ {
				for d := 0; d < dim; d++ {
					for i := 0; i < n; i++ {
						var g float64
						for r := 0; r < dim; r++ {
							g += grads[comp][r].At(q, i) * Jinv.At(r, d)
						}
						gx[comp][d][i] = g
					}
				}
			}

			for i := 0; i < n; i++ {
				for j := 0; j <= i; j++ {
					var kv, mv float64
					for comp := 0; comp < vs; comp++ {
						for d := 0; d < dim; d++ {
							kv += gx[comp][d][i] * gx[comp][d][j]
						}
						mv += tabs[comp].At(q, i) * tabs[comp].At(q, j)
					}
					localA[i][j] += w * (kv + massCoeff*mv)
					localM[i][j] += w * mv
					if i != j {
						localA[j][i] = localA[i][j]
						localM[j][i] = localM[i][j]
					}
				}
			}
		}

		for i, gi := range dofs {
			if dirichlet != nil && dirichlet[gi] {
				continue
			}
			for j, gj := range dofs {
				if dirichlet != nil && dirichlet[gj] {
					continue
				}
				if localA[i][j] != 0 {
					dok.Set(gi, gj, dok.At(gi, gj)+localA[i][j])
				}
			}
			for j, gj := range dofs {
				b[gi] += localM[i][j] * rhs.Values[gj]
			}
		}
	}

	if dirichlet != nil {
		for g, fixed := range dirichlet {
			if fixed {
				dok.Set(g, g, 1)
				b[g] = 0
			}
		}
	}
	return dok.ToCSR(), b, nil
}

// dirichletMask flags every dof supported on the mesh boundary.
func dirichletMask(fs *fespace.FunctionSpace) ([]bool, error) {
	bdofs, err := fs.BoundaryDofs()
	if err != nil {
		return nil, err
	}
	mask := make([]bool, fs.NumDofs())
	for _, g := range bdofs {
		mask[g] = true
	}
	return mask, nil
}
