package prompt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vsinha/reorder/pkg/domain/entities"
)

// Parser validates one line of input, returning the parsed value or the reason it
// was rejected
type Parser[T any] func(input string) (T, error)

var (
	errNotNumber      = errors.New("enter a valid number")
	errNotWholeNumber = errors.New("enter a valid whole number")
)

// Text accepts any input, trimmed
func Text(input string) (string, error) {
	return strings.TrimSpace(input), nil
}

// RequiredText accepts any non-blank input, trimmed
func RequiredText(input string) (string, error) {
	text := strings.TrimSpace(input)
	if text == "" {
		return "", errors.New("a value is required")
	}
	return text, nil
}

// Unit accepts one of the known units
func Unit(input string) (entities.Unit, error) {
	return entities.ParseUnit(input)
}

// NonNegativeQuantity accepts a number >= 0, with comma or dot as decimal separator
func NonNegativeQuantity(input string) (entities.Quantity, error) {
	q, err := entities.ParseQuantity(input)
	if err != nil {
		return entities.ZeroQuantity, errNotNumber
	}
	if q.IsNegative() {
		return entities.ZeroQuantity, errors.New("the quantity cannot be less than zero")
	}
	return q, nil
}

// PositiveQuantity accepts a number > 0, with comma or dot as decimal separator
func PositiveQuantity(input string) (entities.Quantity, error) {
	q, err := entities.ParseQuantity(input)
	if err != nil {
		return entities.ZeroQuantity, errNotNumber
	}
	if !q.IsPositive() {
		return entities.ZeroQuantity, errors.New("the value must be greater than zero")
	}
	return q, nil
}

// PositiveInt accepts a whole number > 0
func PositiveInt(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, errNotWholeNumber
	}
	if n <= 0 {
		return 0, errors.New("the value must be greater than zero")
	}
	return n, nil
}

// Choice accepts a whole number in [lo, hi]
func Choice(lo, hi int) Parser[int] {
	return func(input string) (int, error) {
		n, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil {
			return 0, errNotWholeNumber
		}
		if n < lo || n > hi {
			return 0, fmt.Errorf("invalid choice, pick a number from %d to %d", lo, hi)
		}
		return n, nil
	}
}
