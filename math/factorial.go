package math

import (
	"context"
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrNegativeInput = errors.New("factorial is not defined for negative numbers")
	ErrInvalidInput  = errors.New("not a valid integer")
	ErrInputTooLarge = errors.New("input exceeds configured maximum")
)

// cancellation is checked once per this many multiplications
const checkEvery = 256

// Factorial calculates n! as an arbitrary-precision integer.
// 0! is 1; negative n returns ErrNegativeInput.
func Factorial(n int64) (*big.Int, error) {
	return FactorialContext(context.Background(), n)
}

// FactorialContext is Factorial with cancellation. Large inputs can take
// a long time, so the loop gives up as soon as ctx is done.
func FactorialContext(ctx context.Context, n int64) (*big.Int, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrNegativeInput, "factorial(%d)", n)
	}

	result := big.NewInt(1)
	factor := new(big.Int)
	for i := int64(2); i <= n; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, errors.Wrapf(err, "factorial(%d) abandoned at step %d", n, i)
			}
		}
		result.Mul(result, factor.SetInt64(i))
	}

	return result, nil
}

// Recursive is the textbook definition: 1! = 1, n! = n * (n-1)!.
// Recursion depth equals n, so prefer Factorial for big inputs.
func Recursive(n int64) (*big.Int, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrNegativeInput, "factorial(%d)", n)
	}
	if n <= 1 {
		return big.NewInt(1), nil
	}

	prev, err := Recursive(n - 1)
	if err != nil {
		return nil, err
	}

	return prev.Mul(prev, big.NewInt(n)), nil
}

// ParseInput parses a decimal integer literal such as "5", " -3 " or "+7".
func ParseInput(s string) (int64, error) {
	literal := strings.TrimSpace(s)
	n, err := strconv.ParseInt(literal, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidInput, "%q", s)
	}
	return n, nil
}

// CheckLimit rejects n when max is positive and n is above it.
// A max of zero or less disables the check.
func CheckLimit(n, max int64) error {
	if max > 0 && n > max {
		return errors.Wrapf(ErrInputTooLarge, "%d > %d", n, max)
	}
	return nil
}
