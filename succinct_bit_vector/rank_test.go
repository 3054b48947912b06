package succinct_bit_vector

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func wordFromOnes(ones ...int) uint32 {
	var w uint32
	for _, b := range ones {
		w |= uint32(1) << uint(b)
	}
	return w
}

func TestRankDirectory_Scenario1(t *testing.T) {
	word := wordFromOnes(0, 1, 3, 5, 7)
	r, err := NewRankDirectory([]uint32{word}, 8)
	require.NoError(t, err)

	rk, err := r.Rank(7)
	require.NoError(t, err)
	require.Equal(t, int32(5), rk)

	rk, err = r.Rank(2)
	require.NoError(t, err)
	require.Equal(t, int32(2), rk)

	ex, err := r.Excess(7)
	require.NoError(t, err)
	require.Equal(t, int32(2), ex)
}

func TestRankDirectory_Scenario2(t *testing.T) {
	r, err := NewRankDirectory([]uint32{0x00A5A5A5}, 24)
	require.NoError(t, err)
	require.Equal(t, int32(12), r.Total())
}

func TestRankDirectory_Rank0(t *testing.T) {
	word := wordFromOnes(0, 1, 3, 5, 7)
	r, err := NewRankDirectory([]uint32{word}, 8)
	require.NoError(t, err)

	r0, err := r.Rank0(7)
	require.NoError(t, err)
	require.Equal(t, int32(3), r0)
}

func TestRankDirectory_RejectsBadSize(t *testing.T) {
	_, err := NewRankDirectory([]uint32{0}, 0)
	require.ErrorIs(t, err, ErrBadArgument)

	_, err = NewRankDirectory([]uint32{0}, 64)
	require.ErrorIs(t, err, ErrBadArgument)
}

func TestRankDirectory_CountWindow(t *testing.T) {
	word := wordFromOnes(0, 1, 3, 5, 7)
	r, err := NewRankDirectory([]uint32{word}, 8)
	require.NoError(t, err)

	c, err := r.Count(2, 4) // bits 2,3,4,5 -> ones at 3,5
	require.NoError(t, err)
	require.Equal(t, int32(2), c)

	c, err = r.Count(0, 8)
	require.NoError(t, err)
	require.Equal(t, int32(5), c)
}

func TestRankDirectory_SpansMultipleLargeBlocks(t *testing.T) {
	seed := time.Now().UnixNano()
	r := rand.New(rand.NewSource(seed))

	const size = 5000
	numWords := wordsFor(size)
	vector := make([]uint32, numWords)
	bitSet := make([]bool, size)
	for i := int32(0); i < size; i++ {
		if r.Intn(2) == 1 {
			bitSet[i] = true
			vector[i/32] |= uint32(1) << uint(i%32)
		}
	}

	dir, err := NewRankDirectory(vector, size)
	require.NoError(t, err)

	cum := int32(0)
	for i := int32(0); i < size; i++ {
		if bitSet[i] {
			cum++
		}
		got, err := dir.Rank(i)
		require.NoError(t, err)
		require.Equal(t, cum, got, "rank mismatch at %d (seed %d)", i, seed)
	}
	require.Equal(t, cum, dir.Total())
}
