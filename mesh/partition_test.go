package mesh

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPartitionLayoutBalanced(t *testing.T) {
	m, err := NewUnitSquareMesh(3, 3) // 18 cells
	require.NoError(t, err)

	pl, err := NewPartitionLayout(m, 4)
	require.NoError(t, err)

	require.Equal(t, 4, pl.NumPartitions)
	require.Equal(t, 18, pl.TotalElements)
	require.Equal(t, 5, pl.KpartMax)

	// 18 = 5 + 5 + 4 + 4, contiguous blocks covering every cell once.
	wantCounts := []int{5, 5, 4, 4}
	next := 0
	for p, part := range pl.Partitions {
		require.Equal(t, p, part.ID)
		require.Equal(t, wantCounts[p], part.NumElements)
		require.Len(t, part.Elements, part.NumElements)
		for local, global := range part.Elements {
			require.Equal(t, next, global)
			require.Equal(t, p, pl.ElemToPart[global])
			require.Equal(t, local, pl.GlobalToLocalElem[p][global])
			require.Equal(t, global, pl.LocalToGlobalElem[p][local])
			next++
		}
	}
	require.Equal(t, 18, next)
}

func TestPartitionLayoutSingle(t *testing.T) {
	m, err := NewUnitSquareMesh(2, 2)
	require.NoError(t, err)

	pl, err := NewPartitionLayout(m, 1)
	require.NoError(t, err)
	require.Equal(t, 8, pl.Partitions[0].NumElements)
	require.Equal(t, 8, pl.KpartMax)
}

func TestPartitionLayoutRejectsBadCounts(t *testing.T) {
	m, err := NewUnitSquareMesh(1, 1)
	require.NoError(t, err)

	_, err = NewPartitionLayout(m, 0)
	require.Error(t, err)
	_, err = NewPartitionLayout(m, 3) // only 2 cells
	require.Error(t, err)
}

func TestEdgeConnector(t *testing.T) {
	m, err := NewUnitSquareMesh(2, 2)
	require.NoError(t, err)
	pl, err := NewPartitionLayout(m, 2)
	require.NoError(t, err)

	ec, err := NewEdgeConnector(m, pl)
	require.NoError(t, err)
	require.NoError(t, ec.Verify())

	// Interior edge slots across all partitions: every interior edge is
	// seen from both sides, so total pick entries = 2 * interior edges.
	interior := 0
	for _, cells := range m.EdgeCells {
		if len(cells) == 2 {
			interior++
		}
	}
	total := 0
	for p := 0; p < 2; p++ {
		for q := 0; q < 2; q++ {
			pick := ec.GetPickIndices(p, q)
			place := ec.GetPlaceIndices(q, p)
			require.Equal(t, len(pick), len(place))
			total += len(pick)
		}
	}
	require.Equal(t, 2*interior, total)

	// Out-of-range partition queries return nil.
	require.Nil(t, ec.GetPickIndices(-1, 0))
	require.Nil(t, ec.GetPlaceIndices(0, 5))
}

func TestEdgeConnectorRejects1D(t *testing.T) {
	m, err := NewUnitIntervalMesh(4)
	require.NoError(t, err)
	pl, err := NewPartitionLayout(m, 2)
	require.NoError(t, err)
	_, err = NewEdgeConnector(m, pl)
	require.Error(t, err)
}
