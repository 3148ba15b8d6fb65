package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/presence/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// SelectionRepo stores the last entity chosen in each report panel.
type SelectionRepo interface {
	Get(ctx context.Context, report domain.ReportKind) (*domain.PanelSelection, error)
	List(ctx context.Context) ([]domain.PanelSelection, error)
	Save(ctx context.Context, s *domain.PanelSelection) error
	Delete(ctx context.Context, report domain.ReportKind) error
}
