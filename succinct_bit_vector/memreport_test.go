package succinct_bit_vector

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemReport_ComposesComponents(t *testing.T) {
	word := wordFromOnes(0, 1, 3, 5, 7)
	rank, err := NewRankDirectory([]uint32{word}, 8)
	require.NoError(t, err)
	sel := NewSelectIndex(rank)
	arr, err := NewCompactIntArray([]int32{1, 2, 3}, 7)
	require.NoError(t, err)

	report := BuildMemReport("index", []Sized{rank, sel, arr})
	require.Equal(t, "index", report.Name)
	require.Len(t, report.Children, 3)
	require.Equal(t, rank.ByteSize()+sel.ByteSize()+arr.ByteSize(), report.TotalBytes)
	require.NotEmpty(t, report.String())
}

func TestMemReport_RangeMinMaxTreeIncludesRankDirectory(t *testing.T) {
	bits := []bool{true, true, false, true, true, false, false, false}
	tree, err := NewRangeMinMaxTree(bitsToWords(bits), int32(len(bits)))
	require.NoError(t, err)

	report := tree.MemReport()
	require.Equal(t, "RangeMinMaxTree", report.Name)
	require.Len(t, report.Children, 2)
	require.Equal(t, tree.ByteSize()+tree.rank.ByteSize(), report.TotalBytes)
}
