package mesh

import (
	"fmt"
)

// EdgeConnector manages pick and place indices for exchanging cell data
// across shared edges of a partitioned 2D mesh. For every (cell, edge) slot
// of a partition it records which local cell of which partition supplies
// the neighbouring value, and where in the receiving partition's neighbour
// buffer that value lands. Boundary edges have no neighbour and occupy no
// slot.
type EdgeConnector struct {
	Layout *PartitionLayout

	// Pick/place indices per partition pair.
	PickIndices  [][]PickBuffer  // [sourcePartition][targetPartition]
	PlaceIndices [][]PlaceBuffer // [targetPartition][sourcePartition]

	// neighbour buffer length per partition: NumElements * 3 edge slots
	bufferLen []int
}

// PickBuffer contains local cell indices for gathering values to send.
type PickBuffer struct {
	Indices         []int
	TargetPartition int
}

// PlaceBuffer contains neighbour-buffer positions for scattering received
// values.
type PlaceBuffer struct {
	Indices         []int
	SourcePartition int
}

// NewEdgeConnector builds the edge exchange indices for a partitioned mesh.
func NewEdgeConnector(m *Mesh, pl *PartitionLayout) (*EdgeConnector, error) {
	if m.Dim != 2 {
		return nil, fmt.Errorf("edge connector requires a 2D mesh, got dimension %d", m.Dim)
	}

	ec := &EdgeConnector{
		Layout:    pl,
		bufferLen: make([]int, pl.NumPartitions),
	}
	for p := range ec.bufferLen {
		ec.bufferLen[p] = pl.Partitions[p].NumElements * 3
	}
	ec.initializeBuffers()

	for p := 0; p < pl.NumPartitions; p++ {
		for localElem, globalElem := range pl.LocalToGlobalElem[p] {
			for edge := 0; edge < 3; edge++ {
				neighbor, ok := m.edgeNeighbor(globalElem, edge)
				if !ok {
					continue
				}
				sourcePartition := pl.ElemToPart[neighbor]
				localSource := pl.GlobalToLocalElem[sourcePartition][neighbor]
				bufferPos := localElem*3 + edge

				ec.PickIndices[sourcePartition][p].Indices = append(
					ec.PickIndices[sourcePartition][p].Indices, localSource)
				ec.PlaceIndices[p][sourcePartition].Indices = append(
					ec.PlaceIndices[p][sourcePartition].Indices, bufferPos)
			}
		}
	}

	if err := ec.Verify(); err != nil {
		return nil, err
	}
	return ec, nil
}

func (ec *EdgeConnector) initializeBuffers() {
	n := ec.Layout.NumPartitions
	ec.PickIndices = make([][]PickBuffer, n)
	ec.PlaceIndices = make([][]PlaceBuffer, n)
	for p := 0; p < n; p++ {
		ec.PickIndices[p] = make([]PickBuffer, n)
		ec.PlaceIndices[p] = make([]PlaceBuffer, n)
		for q := 0; q < n; q++ {
			ec.PickIndices[p][q] = PickBuffer{TargetPartition: q}
			ec.PlaceIndices[p][q] = PlaceBuffer{SourcePartition: q}
		}
	}
}

// edgeNeighbor returns the cell across local edge i of cell c, if any.
func (m *Mesh) edgeNeighbor(c, i int) (int, bool) {
	e := m.CellEdges[c][i]
	for _, other := range m.EdgeCells[e] {
		if other != c {
			return other, true
		}
	}
	return 0, false
}

// GetPickIndices returns the pick indices for sending from source to target
// partition.
func (ec *EdgeConnector) GetPickIndices(sourcePartition, targetPartition int) []int {
	n := ec.Layout.NumPartitions
	if sourcePartition < 0 || sourcePartition >= n || targetPartition < 0 || targetPartition >= n {
		return nil
	}
	return ec.PickIndices[sourcePartition][targetPartition].Indices
}

// GetPlaceIndices returns the place indices for the target partition
// receiving from source.
func (ec *EdgeConnector) GetPlaceIndices(targetPartition, sourcePartition int) []int {
	n := ec.Layout.NumPartitions
	if targetPartition < 0 || targetPartition >= n || sourcePartition < 0 || sourcePartition >= n {
		return nil
	}
	return ec.PlaceIndices[targetPartition][sourcePartition].Indices
}

// Verify checks index validity and conservation properties.
func (ec *EdgeConnector) Verify() error {
	n := ec.Layout.NumPartitions

	// Local validity: pick indices address cells owned by the picker.
	for p := 0; p < n; p++ {
		maxLocal := ec.Layout.Partitions[p].NumElements
		for q := 0; q < n; q++ {
			for _, idx := range ec.PickIndices[p][q].Indices {
				if idx < 0 || idx >= maxLocal {
					return fmt.Errorf("invalid pick index %d for partition %d (max %d)",
						idx, p, maxLocal-1)
				}
			}
		}
	}

	// Correspondence: pick and place arrays pair up.
	for p := 0; p < n; p++ {
		for q := 0; q < n; q++ {
			pickLen := len(ec.PickIndices[p][q].Indices)
			placeLen := len(ec.PlaceIndices[q][p].Indices)
			if pickLen != placeLen {
				return fmt.Errorf("length mismatch: pick[%d][%d]=%d, place[%d][%d]=%d",
					p, q, pickLen, q, p, placeLen)
			}
		}
	}

	// Place positions stay within each partition's neighbour buffer.
	for p := 0; p < n; p++ {
		for q := 0; q < n; q++ {
			for _, pos := range ec.PlaceIndices[p][q].Indices {
				if pos < 0 || pos >= ec.bufferLen[p] {
					return fmt.Errorf("invalid place position %d for partition %d (buffer %d)",
						pos, p, ec.bufferLen[p])
				}
			}
		}
	}
	return nil
}
