package main

import (
	"errors"
	"fmt"

	"github.com/alexisbeaulieu97/frota/internal/validation"
	frotaerrors "github.com/alexisbeaulieu97/frota/pkg/errors"
)

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}

// apiCommandError maps an API or validation failure to a command error with
// a suggestion that fits its kind.
func apiCommandError(operation, context string, err error) error {
	var (
		vErr  *frotaerrors.ValidationError
		nfErr *frotaerrors.NotFoundError
		nErr  *frotaerrors.NetworkError
	)
	switch {
	case errors.As(err, &vErr):
		return newCommandError(operation, context, errors.New(validation.Message(err)), "Correct the highlighted field and try again.")
	case errors.As(err, &nfErr):
		return newCommandError(operation, context, err, "Run 'frota list' to see the registered vehicles.")
	case errors.As(err, &nErr):
		return newCommandError(operation, context, err, "Check that the vehicle API is running and that --api-url points to it.")
	default:
		return newCommandError(operation, context, err, "Retry the command with --verbose for details.")
	}
}
