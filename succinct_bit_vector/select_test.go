package succinct_bit_vector

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSelectIndex_Scenario1(t *testing.T) {
	word := wordFromOnes(0, 1, 3, 5, 7)
	r, err := NewRankDirectory([]uint32{word}, 8)
	require.NoError(t, err)
	s := NewSelectIndex(r)

	pos, err := s.Select(0)
	require.NoError(t, err)
	require.Equal(t, int32(0), pos)

	pos, err = s.Select(4)
	require.NoError(t, err)
	require.Equal(t, int32(7), pos)
}

func TestSelectIndex_Scenario2(t *testing.T) {
	r, err := NewRankDirectory([]uint32{0x00A5A5A5}, 24)
	require.NoError(t, err)
	s := NewSelectIndex(r)

	pos, err := s.Select(11)
	require.NoError(t, err)
	require.Equal(t, int32(23), pos)

	pos, err = s.Select(12)
	require.NoError(t, err)
	require.Equal(t, int32(-1), pos)

	pos, err = s.Select(0)
	require.NoError(t, err)
	require.Equal(t, int32(0), pos)
}

func TestSelectIndex_OutOfRange(t *testing.T) {
	r, err := NewRankDirectory([]uint32{0xFF}, 8)
	require.NoError(t, err)
	s := NewSelectIndex(r)

	_, err = s.Select(-1)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = s.Select(8)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestSelectIndex_RandomDifferentialAgainstScan(t *testing.T) {
	seed := time.Now().UnixNano()
	r := rand.New(rand.NewSource(seed))

	const size = 10_000
	numWords := wordsFor(size)
	vector := make([]uint32, numWords)
	var positions []int32
	for i := int32(0); i < size; i++ {
		if r.Intn(3) == 0 {
			vector[i/32] |= uint32(1) << uint(i%32)
			positions = append(positions, i)
		}
	}

	dir, err := NewRankDirectory(vector, size)
	require.NoError(t, err)
	sel := NewSelectIndex(dir)

	for i, want := range positions {
		got, err := sel.Select(int32(i))
		require.NoError(t, err)
		require.Equal(t, want, got, "select(%d) mismatch (seed %d)", i, seed)
	}

	beyond, err := sel.Select(int32(len(positions)))
	require.NoError(t, err)
	require.Equal(t, int32(-1), beyond)
}
