package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/habitgrid/internal/logger"
)

// FetchFailure reports a failed read of habits or completions.
type FetchFailure struct {
	Op  string
	Err error
}

func (e *FetchFailure) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Op, e.Err)
}

func (e *FetchFailure) Unwrap() error { return e.Err }

// WriteFailure reports a failed habit insert or completion upsert.
type WriteFailure struct {
	Op  string
	Err error
}

func (e *WriteFailure) Error() string {
	return fmt.Sprintf("write %s: %v", e.Op, e.Err)
}

func (e *WriteFailure) Unwrap() error { return e.Err }

// NewFetchFailure wraps err, returning nil when err is nil.
func NewFetchFailure(op string, err error) error {
	if err == nil {
		return nil
	}
	return &FetchFailure{Op: op, Err: err}
}

// NewWriteFailure wraps err, returning nil when err is nil.
func NewWriteFailure(op string, err error) error {
	if err == nil {
		return nil
	}
	return &WriteFailure{Op: op, Err: err}
}

func IsFetchFailure(err error) bool {
	var f *FetchFailure
	return stderrors.As(err, &f)
}

func IsWriteFailure(err error) bool {
	var w *WriteFailure
	return stderrors.As(err, &w)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
