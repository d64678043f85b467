package trace

import (
	"errors"

	"github.com/ezrec/apbmon/translate"
)

var f = translate.From

var (
	// Trace format errors
	ErrTokenSyntax = errors.New(f("expected name=value"))

	// Script errors
	ErrTraceMissing = errors.New(f("script did not define a 'trace' list"))
	ErrTickInvalid  = errors.New(f("trace entry is not a dict"))
)

type ErrSignalInvalid string

func (err ErrSignalInvalid) Error() string {
	return f("'%v' is not an apb signal", string(err))
}

type ErrParseBool string

func (err ErrParseBool) Error() string {
	return f("'%v' is not 0, 1 or x", string(err))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseValue string

func (err ErrParseValue) Error() string {
	return f("'%v' is not a bool, int or \"x\"", string(err))
}

type ErrValueRange struct {
	Name  string
	Value uint64
	Width uint
}

func (err ErrValueRange) Error() string {
	return f("%v value %#x exceeds %d bits", err.Name, err.Value, err.Width)
}

// ErrTick indicates which generated tick a script error occurred on.
type ErrTick struct {
	Tick int
	Err  error
}

func (err *ErrTick) Error() string {
	return f("tick %d %v", err.Tick, err.Err)
}

func (err *ErrTick) Unwrap() error {
	return err.Err
}

// ErrSyntax indicates the location of a trace or script error.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
