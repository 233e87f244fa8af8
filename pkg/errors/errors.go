// Package errors provides custom error types for the crosscheck system.
// These errors enable better error handling, programmatic error checking,
// and improved debugging throughout the application.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the crosscheck system
var (
	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates that a requested column or resource was not found
	ErrNotFound = errors.New("not found")

	// ErrHeaderMismatch indicates the two sheets' headers could not be aligned
	ErrHeaderMismatch = errors.New("header mismatch")

	// ErrRowCount indicates the first sheet has more rows than the second
	ErrRowCount = errors.New("row count exceeded")

	// ErrNotRectangular indicates a sheet has rows of inconsistent width
	ErrNotRectangular = errors.New("sheet not rectangular")
)

// ConfigError represents a configuration error
type ConfigError struct {
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.File, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewConfigError creates a new ConfigError
func NewConfigError(file, message string, err error) *ConfigError {
	return &ConfigError{File: file, Message: message, Err: err}
}

// MissingColumnError indicates a required column is absent from a header
type MissingColumnError struct {
	Column string
	Sheet  string
}

// Error implements the error interface
func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("sheet %s is missing required column %q", e.Sheet, e.Column)
}

// Is implements errors.Is support
func (e *MissingColumnError) Is(target error) bool {
	return target == ErrNotFound
}

// NewMissingColumnError creates a new MissingColumnError
func NewMissingColumnError(sheet, column string) *MissingColumnError {
	return &MissingColumnError{Sheet: sheet, Column: column}
}

// ColumnNotFoundError indicates a column selector named a column that is
// not present in a sheet's header
type ColumnNotFoundError struct {
	Column string
	Sheet  string
}

// Error implements the error interface
func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column %q not found in header of sheet %s", e.Column, e.Sheet)
}

// Is implements errors.Is support
func (e *ColumnNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewColumnNotFoundError creates a new ColumnNotFoundError
func NewColumnNotFoundError(sheet, column string) *ColumnNotFoundError {
	return &ColumnNotFoundError{Sheet: sheet, Column: column}
}

// RowTooShortError indicates a data row has fewer cells than a resolved
// column position, i.e. the sheet is not rectangular
type RowTooShortError struct {
	Sheet    string
	Row      int
	Width    int
	Position int
}

// Error implements the error interface
func (e *RowTooShortError) Error() string {
	return fmt.Sprintf("sheet %s row %d has %d cells, cannot reach column position %d",
		e.Sheet, e.Row, e.Width, e.Position)
}

// Is implements errors.Is support
func (e *RowTooShortError) Is(target error) bool {
	return target == ErrNotRectangular
}

// ColumnCountError indicates the two sheets have different numbers of columns
type ColumnCountError struct {
	SheetA  string
	SheetB  string
	CountA  int
	CountB  int
	OnlyInA []string
	OnlyInB []string
}

// Error implements the error interface
func (e *ColumnCountError) Error() string {
	msg := fmt.Sprintf("sheets %s and %s have different numbers of columns (%d vs %d)",
		e.SheetA, e.SheetB, e.CountA, e.CountB)
	if len(e.OnlyInA) > 0 {
		msg += fmt.Sprintf("; only in %s: %s", e.SheetA, strings.Join(e.OnlyInA, ", "))
	}
	if len(e.OnlyInB) > 0 {
		msg += fmt.Sprintf("; only in %s: %s", e.SheetB, strings.Join(e.OnlyInB, ", "))
	}
	return msg
}

// Is implements errors.Is support
func (e *ColumnCountError) Is(target error) bool {
	return target == ErrHeaderMismatch
}

// HeaderMismatchError indicates a column name differs from its counterpart
// at the same position without a declared synonym covering the pair
type HeaderMismatchError struct {
	Sheet       string
	OtherSheet  string
	Column      string
	Counterpart string
	Position    int
}

// Error implements the error interface
func (e *HeaderMismatchError) Error() string {
	return fmt.Sprintf("column %q at position %d in %s is unexpectedly different from column %q at the same position in %s",
		e.Column, e.Position+1, e.Sheet, e.Counterpart, e.OtherSheet)
}

// Is implements errors.Is support
func (e *HeaderMismatchError) Is(target error) bool {
	return target == ErrHeaderMismatch
}

// SynonymCountError indicates the headers differ in length after removing
// all names covered by synonym groups
type SynonymCountError struct {
	SheetA     string
	SheetB     string
	RemainingA []string
	RemainingB []string
}

// Error implements the error interface
func (e *SynonymCountError) Error() string {
	return fmt.Sprintf("different number of columns remain after removing expected differences (%s: %v, %s: %v); check the synonym groups or the sheet headers",
		e.SheetA, e.RemainingA, e.SheetB, e.RemainingB)
}

// Is implements errors.Is support
func (e *SynonymCountError) Is(target error) bool {
	return target == ErrHeaderMismatch
}

// UnreconciledHeaderError indicates the headers still differ positionally
// after all synonym-covered names were removed from both sides
type UnreconciledHeaderError struct {
	SheetA   string
	SheetB   string
	ColumnA  string
	ColumnB  string
	Position int
}

// Error implements the error interface
func (e *UnreconciledHeaderError) Error() string {
	return fmt.Sprintf("headers differ at remaining column %d: %s has %q, %s has %q",
		e.Position+1, e.SheetA, e.ColumnA, e.SheetB, e.ColumnB)
}

// Is implements errors.Is support
func (e *UnreconciledHeaderError) Is(target error) bool {
	return target == ErrHeaderMismatch
}

// RowCountError indicates the first sheet has strictly more rows than the
// second, so a complete comparison is impossible
type RowCountError struct {
	SheetA string
	SheetB string
	RowsA  int
	RowsB  int
}

// Error implements the error interface
func (e *RowCountError) Error() string {
	return fmt.Sprintf("sheet %s has more rows than sheet %s (%d vs %d), comparison can't continue; switch the order of the arguments if you want a partial comparison",
		e.SheetA, e.SheetB, e.RowsA, e.RowsB)
}

// Is implements errors.Is support
func (e *RowCountError) Is(target error) bool {
	return target == ErrRowCount
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "csv", "json", etc.
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{Format: format, File: file, Message: message, Err: err}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "open", "close"
	Path      string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("IO error during %s: %v", e.Operation, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Operation: operation, Path: path, Err: err}
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

// Helper functions for error checking

// IsNotFound checks if an error is a missing or unknown column error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsHeaderMismatch checks if an error is any of the header alignment errors
func IsHeaderMismatch(err error) bool {
	return errors.Is(err, ErrHeaderMismatch)
}

// IsRowCount checks if an error is a row count error
func IsRowCount(err error) bool {
	return errors.Is(err, ErrRowCount)
}

// IsNotRectangular checks if an error signals an inconsistent row width
func IsNotRectangular(err error) bool {
	return errors.Is(err, ErrNotRectangular)
}

// IsConfig checks if an error is a configuration error
func IsConfig(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// WrapConfig wraps an error as a ConfigError
func WrapConfig(file string, err error) error {
	if err == nil {
		return nil
	}
	return &ConfigError{File: file, Message: err.Error(), Err: err}
}
