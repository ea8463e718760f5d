package cli

import (
	"context"
	"errors"

	"github.com/lerenn/workon/pkg/config"
	"github.com/lerenn/workon/pkg/logger"
	"github.com/lerenn/workon/pkg/workon"
)

// Exit codes.
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitUnexpected = 2
)

// Report logs the outcome of a command and returns the process exit code.
// An interrupted command is not a failure.
func Report(ctx context.Context, log logger.Logger, err error) int {
	defer func() { _ = log.Sync() }()

	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled) || ctx.Err() != nil:
		log.Infof("\nCanceled by user")
		return ExitOK
	case errors.Is(err, workon.ErrUnexpected):
		log.Errorf("Unexpected script error: %v", err)
		return ExitUnexpected
	case errors.Is(err, config.ErrInvalidConfig), errors.Is(err, config.ErrUnsupportedConfigType):
		log.Errorf("Configuration error: %v", err)
		return ExitFailure
	default:
		log.Errorf("%v", err)
		return ExitFailure
	}
}
