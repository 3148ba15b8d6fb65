package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/presence/internal/db"
	"github.com/alexanderramin/presence/internal/domain"
)

// SQLiteSelectionRepo implements SelectionRepo using a SQLite database.
type SQLiteSelectionRepo struct {
	db db.DBTX
}

// NewSQLiteSelectionRepo creates a new SQLiteSelectionRepo.
func NewSQLiteSelectionRepo(conn db.DBTX) *SQLiteSelectionRepo {
	return &SQLiteSelectionRepo{db: conn}
}

func (r *SQLiteSelectionRepo) Get(ctx context.Context, report domain.ReportKind) (*domain.PanelSelection, error) {
	query := `SELECT report, entity_id, entity_name, updated_at
		FROM panel_selections WHERE report = ?`
	s, err := scanSelection(r.db.QueryRowContext(ctx, query, string(report)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("selection %s: %w", report, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning selection: %w", err)
	}
	return s, nil
}

// List returns every stored selection, most recent first.
func (r *SQLiteSelectionRepo) List(ctx context.Context) ([]domain.PanelSelection, error) {
	query := `SELECT report, entity_id, entity_name, updated_at
		FROM panel_selections ORDER BY updated_at DESC, report`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing selections: %w", err)
	}
	defer rows.Close()

	var out []domain.PanelSelection
	for rows.Next() {
		s, err := scanSelection(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning selection: %w", err)
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

func (r *SQLiteSelectionRepo) Save(ctx context.Context, s *domain.PanelSelection) error {
	query := `INSERT INTO panel_selections (report, entity_id, entity_name, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(report) DO UPDATE SET
			entity_id = excluded.entity_id,
			entity_name = excluded.entity_name,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		string(s.Report),
		s.EntityID,
		s.EntityName,
		timeToString(s.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("saving selection %s: %w", s.Report, err)
	}
	return nil
}

// Delete forgets a panel's selection. Deleting a missing row is not an error.
func (r *SQLiteSelectionRepo) Delete(ctx context.Context, report domain.ReportKind) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM panel_selections WHERE report = ?`, string(report)); err != nil {
		return fmt.Errorf("deleting selection %s: %w", report, err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSelection(row scanner) (*domain.PanelSelection, error) {
	var (
		s         domain.PanelSelection
		report    string
		updatedAt string
	)
	if err := row.Scan(&report, &s.EntityID, &s.EntityName, &updatedAt); err != nil {
		return nil, err
	}
	s.Report = domain.ReportKind(report)
	s.UpdatedAt = parseStoredTime(updatedAt)
	return &s, nil
}

// SyncSelections stores the current selection of every panel in one
// transaction. Panels set to none are forgotten.
func SyncSelections(ctx context.Context, uow db.UnitOfWork, chosen []domain.PanelSelection, cleared []domain.ReportKind) error {
	return uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := NewSQLiteSelectionRepo(tx)
		for i := range chosen {
			if err := repo.Save(ctx, &chosen[i]); err != nil {
				return err
			}
		}
		for _, report := range cleared {
			if err := repo.Delete(ctx, report); err != nil {
				return err
			}
		}
		return nil
	})
}
