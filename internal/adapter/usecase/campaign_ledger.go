package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"

	"campaign-ledger/internal/core/domain"
	"campaign-ledger/internal/core/port"
)

// DefaultSnapshotKey is the key snapshots are stored under unless
// configured otherwise. The spelling matches existing browser stores.
const DefaultSnapshotKey = "campaings"

var _ port.LedgerUseCase = (*CampaignLedger)(nil)

// Observer is notified with a copy of the collection after each mutation.
type Observer func(campaigns []domain.Campaign)

// CampaignLedger holds campaigns in insertion order together with the
// tracked sort state of the dashboard view. It implements
// port.LedgerUseCase. All operations are serialized by a single mutex.
type CampaignLedger struct {
	mu        sync.Mutex
	campaigns []domain.Campaign
	sort      domain.SortState
	observers []Observer

	sink   port.SnapshotSink
	key    string
	logger *slog.Logger

	// newID generates campaign identifiers. UUIDv7 keeps ids ordered by
	// creation even within the same millisecond.
	newID func() (uuid.UUID, error)
}

// NewCampaignLedger creates an empty ledger mirroring snapshots into sink
// under key. A nil sink disables mirroring and an empty key falls back to
// DefaultSnapshotKey.
func NewCampaignLedger(sink port.SnapshotSink, key string, logger *slog.Logger) *CampaignLedger {
	if key == "" {
		key = DefaultSnapshotKey
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CampaignLedger{
		sort:   domain.DefaultSortState(),
		sink:   sink,
		key:    key,
		logger: logger,
		newID:  uuid.NewV7,
	}
}

// Subscribe registers an observer called after every Add and Remove.
// Observers run with the ledger locked and must not call back into it.
func (l *CampaignLedger) Subscribe(o Observer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.observers = append(l.observers, o)
}

// Add validates the candidate and appends the resulting campaign. On a
// validation error the ledger is left untouched and nothing is persisted.
func (l *CampaignLedger) Add(ctx context.Context, candidate domain.Candidate) (domain.Campaign, error) {
	id, err := l.newID()
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("generate campaign id: %w", err)
	}
	campaign, err := candidate.Build(id)
	if err != nil {
		return domain.Campaign{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.campaigns = append(l.campaigns, campaign)
	l.changed(ctx)
	return campaign, nil
}

// Remove deletes the campaign with id. Missing ids are not an error; the
// snapshot is written either way.
func (l *CampaignLedger) Remove(ctx context.Context, id uuid.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.campaigns = slices.DeleteFunc(l.campaigns, func(c domain.Campaign) bool {
		return c.ID == id
	})
	l.changed(ctx)
}

// Get returns the campaign with id.
func (l *CampaignLedger) Get(id uuid.UUID) (domain.Campaign, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := slices.IndexFunc(l.campaigns, func(c domain.Campaign) bool { return c.ID == id })
	if i < 0 {
		return domain.Campaign{}, false
	}
	return l.campaigns[i], true
}

// List returns a copy of the campaigns in insertion order.
func (l *CampaignLedger) List() []domain.Campaign {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.campaigns)
}

// SortBy returns a sorted copy of the campaigns. The sort is stable, so
// ties keep insertion order.
func (l *CampaignLedger) SortBy(field domain.SortField, direction domain.SortDirection) ([]domain.Campaign, error) {
	state, err := validSortState(field, direction)
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return sorted(l.campaigns, state), nil
}

// ToggleSort selects field as the active sort column and returns the new
// state together with the rows in that order. Selecting the active column
// again flips the direction.
func (l *CampaignLedger) ToggleSort(field domain.SortField) (domain.SortState, []domain.Campaign, error) {
	if _, err := validSortState(field, domain.Ascending); err != nil {
		return domain.SortState{}, nil, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sort = l.sort.Toggle(field)
	return l.sort, sorted(l.campaigns, l.sort), nil
}

// SortState returns the tracked sort state.
func (l *CampaignLedger) SortState() domain.SortState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sort
}

// View returns the tracked sort state and the campaigns ordered by it,
// read under the same lock so the two always agree.
func (l *CampaignLedger) View() (domain.SortState, []domain.Campaign) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sort, sorted(l.campaigns, l.sort)
}

// Aggregate sums clicks, cost, earnings and profit over all campaigns.
func (l *CampaignLedger) Aggregate() domain.Totals {
	l.mu.Lock()
	defer l.mu.Unlock()
	var totals domain.Totals
	for _, c := range l.campaigns {
		totals = totals.Add(c)
	}
	return totals
}

// Restore replaces the ledger contents with the snapshot stored in src.
// A missing snapshot leaves the ledger empty and is not an error.
// Duplicate ids in the snapshot are dropped, keeping the first record.
// Restoring does not write back to the sink.
func (l *CampaignLedger) Restore(ctx context.Context, src port.SnapshotSource) (int, error) {
	payload, err := src.Read(ctx, l.key)
	if errors.Is(err, port.ErrSnapshotNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read snapshot %q: %w", l.key, err)
	}

	var restored []domain.Campaign
	if err = json.Unmarshal(payload, &restored); err != nil {
		return 0, fmt.Errorf("decode snapshot %q: %w", l.key, err)
	}

	seen := make(map[uuid.UUID]struct{}, len(restored))
	campaigns := restored[:0]
	for _, c := range restored {
		if _, dup := seen[c.ID]; dup {
			l.logger.Warn("dropping duplicate campaign from snapshot", slog.String("id", c.ID.String()))
			continue
		}
		seen[c.ID] = struct{}{}
		campaigns = append(campaigns, c)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.campaigns = campaigns
	return len(campaigns), nil
}

// changed mirrors the collection to the sink and notifies observers.
// Sink failures are logged and otherwise ignored. Callers hold l.mu.
func (l *CampaignLedger) changed(ctx context.Context) {
	if l.sink != nil {
		payload, err := json.Marshal(l.snapshot())
		if err != nil {
			l.logger.Error("encode snapshot", slog.Any("error", err))
		} else if err = l.sink.Write(ctx, l.key, payload); err != nil {
			l.logger.Warn("write snapshot", slog.String("key", l.key), slog.Any("error", err))
		}
	}
	for _, o := range l.observers {
		o(slices.Clone(l.campaigns))
	}
}

// snapshot never returns nil so an empty ledger encodes as [].
func (l *CampaignLedger) snapshot() []domain.Campaign {
	if l.campaigns == nil {
		return []domain.Campaign{}
	}
	return l.campaigns
}

func sorted(campaigns []domain.Campaign, state domain.SortState) []domain.Campaign {
	out := slices.Clone(campaigns)
	slices.SortStableFunc(out, state.Comparator())
	return out
}

func validSortState(field domain.SortField, direction domain.SortDirection) (domain.SortState, error) {
	f, err := domain.ParseSortField(string(field))
	if err != nil {
		return domain.SortState{}, err
	}
	d, err := domain.ParseSortDirection(string(direction))
	if err != nil {
		return domain.SortState{}, err
	}
	return domain.SortState{Field: f, Direction: d}, nil
}
