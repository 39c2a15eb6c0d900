package categories

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrIndexOutOfRange = errors.New("index out of range")
)

type invalidInputError struct {
	reason string
}

func (e invalidInputError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidInput, e.reason)
}

func (e invalidInputError) Is(target error) bool { return target == ErrInvalidInput }

func errEmptyTitles() error {
	return invalidInputError{reason: "at least one category title is required"}
}

func errBlankTitle(i int) error {
	return invalidInputError{reason: fmt.Sprintf("category title %d is blank", i)}
}

// IndexError is returned when a mutation or lookup names an index outside the list.
type IndexError struct {
	Index int
	Len   int
}

func (e IndexError) Error() string {
	return fmt.Sprintf("%s: index %d (len %d)", ErrIndexOutOfRange, e.Index, e.Len)
}

func (e IndexError) Is(target error) bool { return target == ErrIndexOutOfRange }

func errIndexOutOfRange(i, n int) error {
	return IndexError{Index: i, Len: n}
}
