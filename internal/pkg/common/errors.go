package common

import (
	"errors"
	"fmt"
)

// Not-found conditions are recoverable: the caller reports the miss and
// keeps processing other inputs.
var (
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrItemNotFound   = errors.New("item not found")
)

// ParseError reports a structural failure loading one of the data
// documents. It always identifies the offending file.
type ParseError struct {
	Document string // e.g. "household model", "scoring config", "recipe collection"
	Path     string
	Err      error
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to parse %s (%s): %v", e.Document, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to parse %s: %v", e.Document, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a ParseError for the given document kind and path.
func NewParseError(document, path string, err error) *ParseError {
	return &ParseError{Document: document, Path: path, Err: err}
}

// CustomError is a coded error carried to the CLI boundary.
type CustomError struct {
	Code     string
	Message  string
	Err      error
	ExitCode int
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewError creates a new coded error.
func NewError(code string, message string, exitCode int, err error) *CustomError {
	return &CustomError{
		Code:     code,
		Message:  message,
		ExitCode: exitCode,
		Err:      err,
	}
}

// Predefined error codes.
const (
	ErrCodeInvalidRequest = "INVALID_REQUEST"
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeParseFailure   = "PARSE_FAILURE"
	ErrCodeInternalError  = "INTERNAL_ERROR"
	ErrCodeChatSession    = "CHAT_SESSION_ERROR"
)
