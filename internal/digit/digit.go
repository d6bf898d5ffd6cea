// Package digit implements decimal digit-sum computation over signed integers.
package digit

import (
	"errors"
	"strconv"

	apperrors "github.com/zorak1103/digitsum/internal/errors"
)

// Sum returns the sum of the base-10 digits of the absolute value of n.
//
// Each remainder is negated individually instead of negating n up front,
// so the minimum int64 (whose absolute value is not representable) is
// handled without a special case. Sum(0) is 0: the loop never runs and
// the zero-valued accumulator is the correct answer.
func Sum(n int64) int64 {
	var s int64
	for n != 0 {
		d := n % 10
		if d < 0 {
			d = -d
		}
		s += d
		n /= 10
	}
	return s
}

// Parse interprets arg as a signed base-10 64-bit integer.
// Failures (empty input, non-digit characters, values outside the int64
// range) are returned as *apperrors.ParseError wrapping the strconv cause,
// so callers can still test errors.Is(err, strconv.ErrRange).
func Parse(arg string) (int64, error) {
	n, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		// Strip the strconv.NumError envelope; it repeats the input,
		// which ParseError already carries.
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, &apperrors.ParseError{Input: arg, Err: err}
	}
	return n, nil
}
