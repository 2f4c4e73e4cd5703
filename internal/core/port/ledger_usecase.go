package port

import (
	"context"

	"github.com/google/uuid"

	"campaign-ledger/internal/core/domain"
)

// LedgerUseCase defines the operations exposed by the campaign ledger.
// This is the inbound port used by the HTTP adapter and the bootstrap
// code. Every method is safe for concurrent use.
type LedgerUseCase interface {
	// Add validates the candidate, assigns a fresh id and appends the
	// campaign. A domain.ErrValidation error means nothing was stored.
	Add(ctx context.Context, candidate domain.Candidate) (domain.Campaign, error)

	// Remove deletes the campaign with the given id. Unknown ids are a
	// no-op.
	Remove(ctx context.Context, id uuid.UUID)

	// Get returns the campaign with the given id.
	Get(id uuid.UUID) (domain.Campaign, bool)

	// List returns all campaigns in insertion order.
	List() []domain.Campaign

	// SortBy returns campaigns ordered by the field and direction without
	// changing storage order or the tracked sort state.
	SortBy(field domain.SortField, direction domain.SortDirection) ([]domain.Campaign, error)

	// ToggleSort applies the column-header rule to the tracked sort state
	// and returns the new state with the campaigns in that order.
	ToggleSort(field domain.SortField) (domain.SortState, []domain.Campaign, error)

	// SortState returns the tracked sort state.
	SortState() domain.SortState

	// View returns the tracked sort state and the campaigns ordered by it.
	View() (domain.SortState, []domain.Campaign)

	// Aggregate returns totals over all stored campaigns.
	Aggregate() domain.Totals
}
