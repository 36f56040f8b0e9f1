package element

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FiniteElement is a scalar finite element defined over a reference cell by
// a set of point-evaluation nodes. The basis functions are the polynomials
// dual to the nodes: BasisCoefs holds the inverse of the Vandermonde matrix
// at the nodes, so column j of BasisCoefs contains the monomial
// coefficients of basis function j.
type FiniteElement struct {
	Cell   *ReferenceCell
	Degree int

	// Nodes holds the node coordinates, one node per row.
	Nodes *mat.Dense
	// EntityNodes[d][i] lists the nodes associated with entity (d, i).
	// Nil when the element carries no entity association.
	EntityNodes [][][]int
	// NodesPerEntity[d] is the number of nodes on each entity of dimension d.
	NodesPerEntity []int

	BasisCoefs *mat.Dense
	NodeCount  int
}

// NewFiniteElement builds a finite element from explicit nodes. The node
// count must match the dimension of the complete polynomial space of the
// given degree, otherwise the Vandermonde matrix is singular.
func NewFiniteElement(cell *ReferenceCell, degree int, nodes *mat.Dense, entityNodes [][][]int) (*FiniteElement, error) {
	nn, nd := nodes.Dims()
	if nd != cell.Dim {
		return nil, fmt.Errorf("node dimension %d does not match cell dimension %d", nd, cell.Dim)
	}
	if nn != basisSize(cell, degree) {
		return nil, fmt.Errorf("%d nodes cannot determine a degree %d basis on %s (need %d)",
			nn, degree, cell.Geometry, basisSize(cell, degree))
	}

	V := Vandermonde(cell, degree, nodes)
	coefs := mat.NewDense(nn, nn, nil)
	if err := coefs.Inverse(V); err != nil {
		return nil, fmt.Errorf("nodes do not define a unisolvent degree %d element: %w", degree, err)
	}

	fe := &FiniteElement{
		Cell:        cell,
		Degree:      degree,
		Nodes:       nodes,
		EntityNodes: entityNodes,
		BasisCoefs:  coefs,
		NodeCount:   nn,
	}
	if entityNodes != nil {
		fe.NodesPerEntity = make([]int, cell.Dim+1)
		for d := 0; d <= cell.Dim; d++ {
			fe.NodesPerEntity[d] = len(entityNodes[d][0])
		}
	}
	return fe, nil
}

// NewLagrangeElement constructs the equispaced Lagrange element of the
// given degree.
func NewLagrangeElement(cell *ReferenceCell, degree int) (*FiniteElement, error) {
	nodes, err := LagrangePoints(cell, degree)
	if err != nil {
		return nil, err
	}
	return NewFiniteElement(cell, degree, nodes, lagrangeEntityNodes(cell, degree))
}

// Tabulate evaluates the basis functions at the given points (one point per
// row). Entry (q, i) of the result is basis function i at point q.
func (fe *FiniteElement) Tabulate(points *mat.Dense) *mat.Dense {
	nq, _ := points.Dims()
	T := mat.NewDense(nq, fe.NodeCount, nil)
	T.Mul(Vandermonde(fe.Cell, fe.Degree, points), fe.BasisCoefs)
	return T
}

// TabulateGradient evaluates the reference-space gradient of the basis at
// the given points, one matrix per coordinate direction with entry (q, i)
// holding the derivative of basis function i at point q.
func (fe *FiniteElement) TabulateGradient(points *mat.Dense) []*mat.Dense {
	gradV := GradVandermonde(fe.Cell, fe.Degree, points)
	nq, _ := points.Dims()
	out := make([]*mat.Dense, len(gradV))
	for d, Vd := range gradV {
		T := mat.NewDense(nq, fe.NodeCount, nil)
		T.Mul(Vd, fe.BasisCoefs)
		out[d] = T
	}
	return out
}

// Interpolate evaluates fn at each node of the element.
func (fe *FiniteElement) Interpolate(fn func(x []float64) float64) []float64 {
	vals := make([]float64, fe.NodeCount)
	for i := range vals {
		vals[i] = fn(fe.Nodes.RawRowView(i))
	}
	return vals
}

func (fe *FiniteElement) String() string {
	return fmt.Sprintf("LagrangeElement(%s, %d)", fe.Cell.Geometry, fe.Degree)
}

// Element interface implementation.

func (fe *FiniteElement) Name() string            { return fe.String() }
func (fe *FiniteElement) RefCell() *ReferenceCell { return fe.Cell }
func (fe *FiniteElement) Order() int              { return fe.Degree }
func (fe *FiniteElement) Np() int                 { return fe.NodeCount }
func (fe *FiniteElement) ValueSize() int          { return 1 }
func (fe *FiniteElement) DofCoords() *mat.Dense   { return fe.Nodes }
func (fe *FiniteElement) EntityDofs() [][][]int   { return fe.EntityNodes }
func (fe *FiniteElement) DofsPerEntity() []int    { return fe.NodesPerEntity }

func (fe *FiniteElement) DofWeights() *mat.Dense {
	W := mat.NewDense(fe.NodeCount, 1, nil)
	for i := 0; i < fe.NodeCount; i++ {
		W.Set(i, 0, 1)
	}
	return W
}

func (fe *FiniteElement) TabulateValues(points *mat.Dense) []*mat.Dense {
	return []*mat.Dense{fe.Tabulate(points)}
}

func (fe *FiniteElement) TabulateGradients(points *mat.Dense) [][]*mat.Dense {
	return [][]*mat.Dense{fe.TabulateGradient(points)}
}
