package args

import (
	"errors"
	"math/big"
)

// Number parse failures. The texts are stable and appear in user-facing messages.
var (
	ErrEmptyNumber  = errors.New("cannot parse integer from empty string")
	ErrInvalidDigit = errors.New("invalid digit found in string")
	ErrNumberTooBig = errors.New("number too large to fit in target type")
	ErrNumberTooLow = errors.New("number too small to fit in target type")
	maxInt128       = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minInt128       = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
)

// ParseInt128 parses a decimal signed 128-bit integer. An optional leading '+' or
// '-' is accepted; anything else that is not an ASCII digit is rejected.
func ParseInt128(s string) (*big.Int, error) {
	if s == "" {
		return nil, ErrEmptyNumber
	}

	digits := s
	negative := false
	switch s[0] {
	case '+':
		digits = s[1:]
	case '-':
		digits = s[1:]
		negative = true
	}
	if digits == "" {
		return nil, ErrInvalidDigit
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return nil, ErrInvalidDigit
		}
	}

	n, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, ErrInvalidDigit
	}
	if negative {
		n.Neg(n)
	}

	if n.Cmp(maxInt128) > 0 {
		return nil, ErrNumberTooBig
	}
	if n.Cmp(minInt128) < 0 {
		return nil, ErrNumberTooLow
	}
	return n, nil
}
