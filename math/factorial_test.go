package math

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactorial(t *testing.T) {
	testCases := []struct {
		input    int64
		expected string
	}{
		{0, "1"},
		{1, "1"},
		{2, "2"},
		{3, "6"},
		{4, "24"},
		{5, "120"},
		{10, "3628800"},
		{20, "2432902008176640000"},
		// first value past uint64
		{21, "51090942171709440000"},
		{25, "15511210043330985984000000"},
	}

	for _, tc := range testCases {
		result, err := Factorial(tc.input)
		require.NoError(t, err)
		if result.String() != tc.expected {
			t.Errorf("Factorial(%d) = %s; expected %s", tc.input, result, tc.expected)
		}
	}
}

func TestFactorialNegative(t *testing.T) {
	for _, n := range []int64{-1, -2, -1000} {
		_, err := Factorial(n)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNegativeInput), "Factorial(%d): %v", n, err)

		_, err = Recursive(n)
		assert.True(t, errors.Is(err, ErrNegativeInput), "Recursive(%d): %v", n, err)
	}
}

func TestFactorialRecurrence(t *testing.T) {
	prev, err := Factorial(1)
	require.NoError(t, err)
	assert.Equal(t, "1", prev.String())

	for n := int64(2); n <= 60; n++ {
		got, err := Factorial(n)
		require.NoError(t, err)

		want := new(big.Int).Mul(big.NewInt(n), prev)
		assert.Equal(t, 0, got.Cmp(want), "Factorial(%d) != %d * Factorial(%d)", n, n, n-1)
		prev = got
	}
}

func TestRecursiveMatchesLoop(t *testing.T) {
	for n := int64(0); n <= 200; n++ {
		loop, err := Factorial(n)
		require.NoError(t, err)
		rec, err := Recursive(n)
		require.NoError(t, err)
		assert.Equal(t, loop.String(), rec.String(), "n=%d", n)
	}
}

func TestFactorialContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := FactorialContext(ctx, 10*checkEvery)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))

	// below the first checkpoint the loop never looks at ctx
	got, err := FactorialContext(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "120", got.String())
}

func TestParseInput(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      int64
		wantError bool
	}{
		{"Plain", "5", 5, false},
		{"Spaces", "  12\n", 12, false},
		{"Plus sign", "+7", 7, false},
		{"Negative", "-3", -3, false},
		{"Zero", "0", 0, false},
		{"Letters", "abc", 0, true},
		{"Empty", "", 0, true},
		{"Float", "2.5", 0, true},
		{"Trailing junk", "5x", 0, true},
		{"Overflow", "99999999999999999999", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseInput(tc.input)
			if tc.wantError {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCheckLimit(t *testing.T) {
	assert.NoError(t, CheckLimit(1_000_000, 0))
	assert.NoError(t, CheckLimit(100, 100))

	err := CheckLimit(101, 100)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInputTooLarge))
}
