package linear_test

import (
	"testing"

	"deedles.dev/linear"
	"github.com/stretchr/testify/require"
)

func TestIndexOutOfRange(t *testing.T) {
	require.NoError(t, linear.IndexOutOfRange(0, 1))
	require.NoError(t, linear.IndexOutOfRange(2, 3))
	require.ErrorIs(t, linear.IndexOutOfRange(-1, 3), linear.ErrIndexOutOfRange)
	require.ErrorIs(t, linear.IndexOutOfRange(3, 3), linear.ErrIndexOutOfRange)
	require.ErrorIs(t, linear.IndexOutOfRange(0, 0), linear.ErrIndexOutOfRange)
	require.EqualError(t, linear.IndexOutOfRange(5, 2), "index out of range: index 5, size 2")
}

func TestInvalidIndex(t *testing.T) {
	require.NoError(t, linear.InvalidIndex(0, 0))
	require.NoError(t, linear.InvalidIndex(3, 3))
	require.ErrorIs(t, linear.InvalidIndex(-1, 3), linear.ErrInvalidIndex)
	require.ErrorIs(t, linear.InvalidIndex(4, 3), linear.ErrInvalidIndex)
}

func TestEmpty(t *testing.T) {
	err := linear.Empty("remove first")
	require.ErrorIs(t, err, linear.ErrEmpty)
	require.EqualError(t, err, "remove first: container is empty")
}
