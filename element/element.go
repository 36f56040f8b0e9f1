package element

import "gonum.org/v1/gonum/mat"

// Element is the interface shared by scalar and vector finite elements on a
// reference cell. Degrees of freedom are point-evaluation functionals
// (weighted by a direction vector for vector elements), listed in entity
// order.
type Element interface {
	Name() string
	RefCell() *ReferenceCell
	Order() int
	Np() int        // Number of degrees of freedom
	ValueSize() int // 1 for scalar elements, spatial dimension for vector

	// DofCoords returns the reference coordinates of each dof, one per row.
	DofCoords() *mat.Dense
	// DofWeights returns the evaluation weight vector of each dof as a
	// [Np, ValueSize] matrix. Scalar elements weight every dof by 1.
	DofWeights() *mat.Dense

	// EntityDofs returns, for each entity (d, i), the dofs associated with
	// it; DofsPerEntity returns the count per entity of each dimension.
	EntityDofs() [][][]int
	DofsPerEntity() []int

	// TabulateValues evaluates the basis at the given points, one matrix of
	// shape [npoints, Np] per value component. TabulateGradients returns
	// the reference-space derivative per component and direction.
	TabulateValues(points *mat.Dense) []*mat.Dense
	TabulateGradients(points *mat.Dense) [][]*mat.Dense
}
