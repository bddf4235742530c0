package models

import "fmt"

// ErrorType represents different categories of errors
type ErrorType int

const (
	ErrInvalidInput ErrorType = iota
	ErrMissingArchive
	ErrArchiveRead
	ErrNameFormat
	ErrPackageSet
	ErrFileOp
	ErrAnnotated
)

// String returns the string representation of ErrorType
func (e ErrorType) String() string {
	switch e {
	case ErrInvalidInput:
		return "InvalidInput"
	case ErrMissingArchive:
		return "MissingArchive"
	case ErrArchiveRead:
		return "ArchiveRead"
	case ErrNameFormat:
		return "NameFormat"
	case ErrPackageSet:
		return "PackageSet"
	case ErrFileOp:
		return "FileOp"
	case ErrAnnotated:
		return "Annotated"
	default:
		return "Unknown"
	}
}

// CompareError represents an error raised while comparing package sets
type CompareError struct {
	Type    ErrorType
	Package string
	Err     error
}

// Error implements the error interface
func (e *CompareError) Error() string {
	if e.Package != "" {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Package, e.Err)
	}
	return fmt.Sprintf("[%s] %v", e.Type, e.Err)
}

// Unwrap returns the wrapped error
func (e *CompareError) Unwrap() error {
	return e.Err
}
