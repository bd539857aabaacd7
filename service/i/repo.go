package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-paradox/domain"
)

// RunRepo defines the interface for run history persistence.
type RunRepo interface {
	// Save inserts or updates a finished run.
	Save(ctx context.Context, run *dmn.Run) error

	// Top returns up to limit runs, highest score first.
	Top(ctx context.Context, limit int64) ([]*dmn.Run, error)
}
