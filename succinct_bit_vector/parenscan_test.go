package succinct_bit_vector

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForwardExcessIndex_Scenario(t *testing.T) {
	bit, err := forwardExcessIndex(0b00101011, 0, 1, 0)
	require.NoError(t, err)
	require.Equal(t, int32(7), bit)

	bit, err = forwardExcessIndex(0b00101011, 0, 1, 3)
	require.NoError(t, err)
	require.Equal(t, int32(32), bit)
}

func TestForwardExcessIndex_ImmediateMatch(t *testing.T) {
	bit, err := forwardExcessIndex(0xABCDEF01, 10, 4, 4)
	require.NoError(t, err)
	require.Equal(t, int32(10), bit)
}

func TestForwardExcessIndex_RejectsBadStartBit(t *testing.T) {
	_, err := forwardExcessIndex(0, -1, 0, 0)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = forwardExcessIndex(0, 32, 0, 0)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestBackwardExcessIndex_BoundaryScenario(t *testing.T) {
	res, err := backwardExcessIndex(0b0011, 2, 1, 0)
	require.NoError(t, err)
	require.Equal(t, int32(-1), res)
}

func TestBackwardExcessIndex_ImmediateMatch(t *testing.T) {
	res, err := backwardExcessIndex(0xA0000000, 10, 10, 10)
	require.NoError(t, err)
	require.Equal(t, int32(10), res)
}

func TestBackwardExcessIndex_NotFound(t *testing.T) {
	res, err := backwardExcessIndex(0b1, 3, -1, 99)
	require.NoError(t, err)
	require.Equal(t, int32(-2), res)
}

func TestBackwardExcessIndex_RejectsBadStartBit(t *testing.T) {
	_, err := backwardExcessIndex(0, -1, 0, 0)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = backwardExcessIndex(0, 32, 0, 0)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestClassifyForwardBackward(t *testing.T) {
	require.Equal(t, scanFound, classifyForward(5))
	require.Equal(t, scanNotFound, classifyForward(32))

	require.Equal(t, scanFound, classifyBackward(5))
	require.Equal(t, scanBoundary, classifyBackward(-1))
	require.Equal(t, scanNotFound, classifyBackward(-2))
}
