package ports

import (
	"context"
	"io"

	"go.trai.ch/ship/internal/core/domain"
)

// Executor defines the interface for running external steps.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the step's command to completion in the step's directory.
	// It returns an error if the command cannot start or exits non-zero.
	Execute(ctx context.Context, step *domain.Step, stdout, stderr io.Writer) error
}
