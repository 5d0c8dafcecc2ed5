package pairing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPair_FixedInputs(t *testing.T) {
	a, b := Inputs()
	pairs, err := Pair(a, b)
	require.NoError(t, err)

	require.Len(t, pairs, 17)
	assert.Equal(t, "ma", pairs[0])
	assert.Equal(t, []string{
		"ma", "ch", "in", "e", "pe", "rc", "ep", "ti", "on",
		"r", "ob", "ot", "ic", "s-", "gr", "ou", "p!",
	}, pairs)
}

func TestPair_BlankPlaceholders(t *testing.T) {
	a, b := Inputs()
	pairs, err := Pair(a, b)
	require.NoError(t, err)

	for i := range pairs {
		switch {
		case a[i] == "":
			assert.Equal(t, b[i], pairs[i], "position %d", i)
		case b[i] == "":
			assert.Equal(t, a[i], pairs[i], "position %d", i)
		default:
			assert.Len(t, pairs[i], 2, "position %d", i)
		}
	}
}

func TestPair_LengthMismatch(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
	}{
		{name: "left longer", a: []string{"a", "b", "c"}, b: []string{"x", "y"}},
		{name: "right longer", a: []string{"a"}, b: []string{"x", "y"}},
		{name: "one empty", a: nil, b: []string{"x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pairs, err := Pair(tt.a, tt.b)
			require.ErrorIs(t, err, ErrLengthMismatch)
			assert.Nil(t, pairs)
		})
	}
}

func TestPair_Empty(t *testing.T) {
	pairs, err := Pair(nil, []string{})
	require.NoError(t, err)
	assert.NotNil(t, pairs)
	assert.Empty(t, pairs)
}

func TestInputs_ReturnsCopies(t *testing.T) {
	a, _ := Inputs()
	a[0] = "z"

	again, _ := Inputs()
	assert.Equal(t, "m", again[0])
}

func TestJoin(t *testing.T) {
	a, b := Inputs()
	pairs, err := Pair(a, b)
	require.NoError(t, err)

	assert.Equal(t, "machineperceptionrobotics-group!", Join(pairs))
}

func TestPair_Idempotent(t *testing.T) {
	a, b := Inputs()
	first, err := Pair(a, b)
	require.NoError(t, err)
	second, err := Pair(a, b)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
