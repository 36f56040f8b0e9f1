package element

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// VectorElement is the vector-valued element built from a scalar element by
// attaching one degree of freedom per value component to every scalar
// node. Dof d*j+c is the evaluation of component c at scalar node j, so the
// dofs stay in entity order and interleave by node.
type VectorElement struct {
	Scalar *FiniteElement

	// VDim is the number of value components, equal to the cell dimension.
	VDim int

	// Nodes repeats each scalar node coordinate once per component;
	// NodeWeights holds the canonical direction vector of each dof.
	Nodes       *mat.Dense
	NodeWeights *mat.Dense

	EntityNodes    [][][]int
	NodesPerEntity []int
	NodeCount      int
}

// NewVectorElement builds the vector-valued element over scalar.
func NewVectorElement(scalar *FiniteElement) *VectorElement {
	d := scalar.Cell.Dim
	n := scalar.NodeCount

	nodes := mat.NewDense(d*n, d, nil)
	weights := mat.NewDense(d*n, d, nil)
	for j := 0; j < n; j++ {
		for c := 0; c < d; c++ {
			nodes.SetRow(d*j+c, scalar.Nodes.RawRowView(j))
			weights.Set(d*j+c, c, 1)
		}
	}

	ve := &VectorElement{
		Scalar:      scalar,
		VDim:        d,
		Nodes:       nodes,
		NodeWeights: weights,
		EntityNodes: vectorEntityNodes(scalar.EntityNodes, d),
		NodeCount:   d * n,
	}
	ve.NodesPerEntity = make([]int, len(scalar.NodesPerEntity))
	for dim, npe := range scalar.NodesPerEntity {
		ve.NodesPerEntity[dim] = d * npe
	}
	return ve
}

// NewVectorLagrangeElement constructs the vector-valued equispaced Lagrange
// element of the given degree.
func NewVectorLagrangeElement(cell *ReferenceCell, degree int) (*VectorElement, error) {
	scalar, err := NewLagrangeElement(cell, degree)
	if err != nil {
		return nil, err
	}
	return NewVectorElement(scalar), nil
}

// Tabulate evaluates the basis at the given points, one matrix per value
// component. Entry (q, i) of component c is the c-th component of basis
// function i at point q: the scalar tabulation of dof d*j+c lands in
// component c only.
func (ve *VectorElement) Tabulate(points *mat.Dense) []*mat.Dense {
	scalarTab := ve.Scalar.Tabulate(points)
	nq, n := scalarTab.Dims()

	out := make([]*mat.Dense, ve.VDim)
	for c := 0; c < ve.VDim; c++ {
		T := mat.NewDense(nq, ve.NodeCount, nil)
		for q := 0; q < nq; q++ {
			for j := 0; j < n; j++ {
				T.Set(q, ve.VDim*j+c, scalarTab.At(q, j))
			}
		}
		out[c] = T
	}
	return out
}

// TabulateGradient evaluates the reference-space gradient of the basis,
// indexed [component][direction].
func (ve *VectorElement) TabulateGradient(points *mat.Dense) [][]*mat.Dense {
	scalarGrad := ve.Scalar.TabulateGradient(points)
	nq, _ := points.Dims()
	n := ve.Scalar.NodeCount

	out := make([][]*mat.Dense, ve.VDim)
	for c := 0; c < ve.VDim; c++ {
		out[c] = make([]*mat.Dense, len(scalarGrad))
		for d, G := range scalarGrad {
			T := mat.NewDense(nq, ve.NodeCount, nil)
			for q := 0; q < nq; q++ {
				for j := 0; j < n; j++ {
					T.Set(q, ve.VDim*j+c, G.At(q, j))
				}
			}
			out[c][d] = T
		}
	}
	return out
}

// Interpolate evaluates the vector-valued fn at each dof's node and takes
// the component selected by the dof's weight vector.
func (ve *VectorElement) Interpolate(fn func(x []float64) []float64) []float64 {
	vals := make([]float64, ve.NodeCount)
	for i := range vals {
		fx := fn(ve.Nodes.RawRowView(i))
		for c := 0; c < ve.VDim; c++ {
			vals[i] += ve.NodeWeights.At(i, c) * fx[c]
		}
	}
	return vals
}

func (ve *VectorElement) String() string {
	return fmt.Sprintf("VectorElement(%s)", ve.Scalar)
}

// Element interface implementation.

func (ve *VectorElement) Name() string            { return ve.String() }
func (ve *VectorElement) RefCell() *ReferenceCell { return ve.Scalar.Cell }
func (ve *VectorElement) Order() int              { return ve.Scalar.Degree }
func (ve *VectorElement) Np() int                 { return ve.NodeCount }
func (ve *VectorElement) ValueSize() int          { return ve.VDim }
func (ve *VectorElement) DofCoords() *mat.Dense   { return ve.Nodes }
func (ve *VectorElement) DofWeights() *mat.Dense  { return ve.NodeWeights }
func (ve *VectorElement) EntityDofs() [][][]int   { return ve.EntityNodes }
func (ve *VectorElement) DofsPerEntity() []int    { return ve.NodesPerEntity }

func (ve *VectorElement) TabulateValues(points *mat.Dense) []*mat.Dense {
	return ve.Tabulate(points)
}

func (ve *VectorElement) TabulateGradients(points *mat.Dense) [][]*mat.Dense {
	return ve.TabulateGradient(points)
}
