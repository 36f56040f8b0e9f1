package mesh

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Jacobian returns the derivative of the affine map from the reference cell
// to cell c: column k holds vertex_{k+1} - vertex_0 in the cell's local
// (ascending) vertex order. For affine simplices it is constant over the
// cell.
func (m *Mesh) Jacobian(c int) *mat.Dense {
	verts := m.CellVertices[c]
	v0 := m.Vertex(verts[0])
	J := mat.NewDense(m.Dim, m.Dim, nil)
	for k := 1; k <= m.Dim; k++ {
		vk := m.Vertex(verts[k])
		for a := 0; a < m.Dim; a++ {
			J.Set(a, k-1, vk[a]-v0[a])
		}
	}
	return J
}

// JacobianDet returns |det J| for cell c, the volume scaling of the
// reference-to-physical map.
func (m *Mesh) JacobianDet(c int) float64 {
	J := m.Jacobian(c)
	if m.Dim == 1 {
		return math.Abs(J.At(0, 0))
	}
	return math.Abs(J.At(0, 0)*J.At(1, 1) - J.At(0, 1)*J.At(1, 0))
}

// JacobianInv returns the inverse of the cell Jacobian, used to push
// reference gradients to physical space.
func (m *Mesh) JacobianInv(c int) *mat.Dense {
	J := m.Jacobian(c)
	if m.Dim == 1 {
		return mat.NewDense(1, 1, []float64{1 / J.At(0, 0)})
	}
	det := J.At(0, 0)*J.At(1, 1) - J.At(0, 1)*J.At(1, 0)
	return mat.NewDense(2, 2, []float64{
		J.At(1, 1) / det, -J.At(0, 1) / det,
		-J.At(1, 0) / det, J.At(0, 0) / det,
	})
}

// CellOrigin returns the physical image of the reference origin: the
// cell's first (lowest-numbered) vertex.
func (m *Mesh) CellOrigin(c int) []float64 {
	return m.Vertex(m.CellVertices[c][0])
}

// ToPhysical maps the reference coordinate xi into cell c.
func (m *Mesh) ToPhysical(c int, xi []float64) []float64 {
	x := append([]float64(nil), m.CellOrigin(c)...)
	J := m.Jacobian(c)
	for a := 0; a < m.Dim; a++ {
		for b := 0; b < m.Dim; b++ {
			x[a] += J.At(a, b) * xi[b]
		}
	}
	return x
}
