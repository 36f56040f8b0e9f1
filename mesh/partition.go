package mesh

import (
	"fmt"
)

// Partition is a contiguous block of cells treated as one computational
// unit.
type Partition struct {
	ID          int
	Elements    []int // Global cell indices in this partition
	NumElements int
}

// PartitionLayout is a balanced decomposition of the mesh cells.
type PartitionLayout struct {
	Partitions    []Partition
	NumPartitions int
	TotalElements int
	KpartMax      int // max(NumElements) across partitions

	// ElemToPart maps each global cell to its partition.
	ElemToPart []int

	// Local/global cell maps per partition.
	GlobalToLocalElem []map[int]int
	LocalToGlobalElem [][]int
}

// NewPartitionLayout splits the mesh cells into numPartitions balanced
// contiguous blocks. The first TotalElements mod numPartitions partitions
// carry one extra cell.
func NewPartitionLayout(m *Mesh, numPartitions int) (*PartitionLayout, error) {
	K := m.NumCells()
	if numPartitions < 1 {
		return nil, fmt.Errorf("invalid partition count %d", numPartitions)
	}
	if numPartitions > K {
		return nil, fmt.Errorf("cannot split %d cells into %d partitions", K, numPartitions)
	}

	pl := &PartitionLayout{
		NumPartitions:     numPartitions,
		TotalElements:     K,
		ElemToPart:        make([]int, K),
		GlobalToLocalElem: make([]map[int]int, numPartitions),
		LocalToGlobalElem: make([][]int, numPartitions),
	}

	base := K / numPartitions
	extra := K % numPartitions
	next := 0
	for p := 0; p < numPartitions; p++ {
		count := base
		if p < extra {
			count++
		}
		part := Partition{ID: p, NumElements: count}
		pl.GlobalToLocalElem[p] = make(map[int]int, count)
		for local := 0; local < count; local++ {
			global := next
			next++
			part.Elements = append(part.Elements, global)
			pl.ElemToPart[global] = p
			pl.GlobalToLocalElem[p][global] = local
			pl.LocalToGlobalElem[p] = append(pl.LocalToGlobalElem[p], global)
		}
		pl.Partitions = append(pl.Partitions, part)
		if count > pl.KpartMax {
			pl.KpartMax = count
		}
	}
	return pl, nil
}
