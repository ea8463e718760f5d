// Package workon drives the lifecycle of the projects of a working directory:
// clone and open them, then remove them once nothing is left to push.
package workon

import (
	"context"
	"fmt"

	"github.com/lerenn/workon/pkg/dependencies"
)

// Workon interface provides the project lifecycle operations.
type Workon interface {
	// Start clones the project from the first source that works, then opens it.
	// A project already in the working directory is only opened.
	Start(ctx context.Context, params StartParams) error
	// Done removes one project, or every project of the working directory, when nothing would be lost.
	Done(ctx context.Context, params DoneParams) error
	// EditConfig creates the configuration file if needed and opens it in the editor.
	EditConfig(ctx context.Context, params EditConfigParams) error
}

// NewWorkonParams contains parameters for creating a new Workon instance.
type NewWorkonParams struct {
	Dependencies *dependencies.Dependencies
}

type realWorkon struct {
	deps *dependencies.Dependencies
}

// NewWorkon creates a new Workon instance.
func NewWorkon(params NewWorkonParams) (Workon, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}
	if err := deps.Validate(); err != nil {
		return nil, err
	}

	return &realWorkon{deps: deps}, nil
}

// executeOperation runs an operation, turning a panic into ErrUnexpected.
func (w *realWorkon) executeOperation(operationName string, operation func() error) (resultErr error) {
	w.deps.Logger.Debugf("Starting operation: %s", operationName)

	defer func() {
		if r := recover(); r != nil {
			resultErr = fmt.Errorf("%w in %s: %v", ErrUnexpected, operationName, r)
		}
		if resultErr != nil {
			w.deps.Logger.Debugf("Operation failed: %s, error: %v", operationName, resultErr)
		}
	}()

	return operation()
}
