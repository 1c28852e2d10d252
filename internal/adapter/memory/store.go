// Package memory implements the ledger and outbox ports in process. It is
// the default storage driver for local runs and the backing store for
// usecase tests.
package memory

import (
	"context"
	"encoding/json"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"collabhub/internal/core/domain"
	"collabhub/internal/core/port"
)

type outboxRow struct {
	record      port.OutboxRecord
	publishedAt *time.Time
	lastError   string
}

// Store keeps every ledger in maps guarded by mu. Read-modify-write units
// additionally hold a per-aggregate lock so mutations of one collaboration
// are serialized while different collaborations proceed in parallel.
type Store struct {
	mu sync.RWMutex

	campaigns      map[string]domain.Campaign
	applications   map[string]domain.Application
	appByPair      map[string]string
	collaborations map[string]domain.Collaboration
	collabByApp    map[string]string
	outbox         []outboxRow

	locks keyedMutex
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		campaigns:      make(map[string]domain.Campaign),
		applications:   make(map[string]domain.Application),
		appByPair:      make(map[string]string),
		collaborations: make(map[string]domain.Collaboration),
		collabByApp:    make(map[string]string),
	}
}

func (s *Store) UpsertCampaign(_ context.Context, c domain.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.Deliverables = slices.Clone(c.Deliverables)
	s.campaigns[c.ID] = c
	return nil
}

func (s *Store) GetCampaign(_ context.Context, id string) (*domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.campaigns[id]
	if !ok {
		return nil, nil
	}
	c.Deliverables = slices.Clone(c.Deliverables)
	return &c, nil
}

func pairKey(campaignID, creatorID string) string {
	return campaignID + "\x00" + creatorID
}

func (s *Store) CreateApplication(_ context.Context, app *domain.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := pairKey(app.CampaignID, app.CreatorID)
	if _, exists := s.appByPair[key]; exists {
		return domain.ErrDuplicateApplication
	}
	s.appendOutbox(app.PullEvents())
	s.applications[app.ID] = *app
	s.appByPair[key] = app.ID
	return nil
}

func (s *Store) GetApplication(_ context.Context, id string) (*domain.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.applications[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (s *Store) ListApplicationsByCampaign(_ context.Context, campaignID string) ([]domain.Application, error) {
	return s.listApplications(func(a domain.Application) bool { return a.CampaignID == campaignID }), nil
}

func (s *Store) ListApplicationsByCreator(_ context.Context, creatorID string) ([]domain.Application, error) {
	return s.listApplications(func(a domain.Application) bool { return a.CreatorID == creatorID }), nil
}

func (s *Store) listApplications(match func(domain.Application) bool) []domain.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Application, 0)
	for _, a := range s.applications {
		if match(a) {
			out = append(out, a)
		}
	}
	slices.SortFunc(out, func(a, b domain.Application) int { return a.SubmittedAt.Compare(b.SubmittedAt) })
	return out
}

func (s *Store) DecideApplication(ctx context.Context, id string, decide port.ApplicationDecision) (*domain.Collaboration, error) {
	unlock, err := s.locks.lock(ctx, "application:"+id)
	if err != nil {
		return nil, err
	}
	defer unlock()

	s.mu.RLock()
	app, ok := s.applications[id]
	var existing *domain.Collaboration
	if collabID, found := s.collabByApp[id]; found {
		c := s.collaborations[collabID].Clone()
		existing = &c
	}
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrNotFound
	}

	created, err := decide(&app, existing)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.appendOutbox(app.PullEvents())
	s.applications[id] = app
	if existing != nil || created == nil {
		return created, nil
	}
	s.appendOutbox(created.PullEvents())
	s.collaborations[created.ID] = created.Clone()
	s.collabByApp[id] = created.ID
	out := created.Clone()
	return &out, nil
}

func (s *Store) GetCollaboration(_ context.Context, id string) (*domain.Collaboration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.collaborations[id]
	if !ok {
		return nil, nil
	}
	out := c.Clone()
	return &out, nil
}

func (s *Store) ListCollaborationsByCreator(_ context.Context, creatorID string) ([]domain.Collaboration, error) {
	return s.listCollaborations(func(c domain.Collaboration) bool { return c.CreatorID == creatorID }), nil
}

func (s *Store) ListCollaborationsByCampaign(_ context.Context, campaignID string) ([]domain.Collaboration, error) {
	return s.listCollaborations(func(c domain.Collaboration) bool { return c.CampaignID == campaignID }), nil
}

func (s *Store) listCollaborations(match func(domain.Collaboration) bool) []domain.Collaboration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Collaboration, 0)
	for _, c := range s.collaborations {
		if match(c) {
			out = append(out, c.Clone())
		}
	}
	slices.SortFunc(out, func(a, b domain.Collaboration) int { return a.CreatedAt.Compare(b.CreatedAt) })
	return out
}

func (s *Store) MutateCollaboration(ctx context.Context, id string, mutate port.CollaborationMutation) (*domain.Collaboration, error) {
	unlock, err := s.locks.lock(ctx, "collaboration:"+id)
	if err != nil {
		return nil, err
	}
	defer unlock()

	s.mu.RLock()
	current, ok := s.collaborations[id]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrNotFound
	}

	work := current.Clone()
	if err := mutate(&work); err != nil {
		return nil, err
	}
	work.Version = current.Version + 1

	s.mu.Lock()
	s.appendOutbox(work.PullEvents())
	s.collaborations[id] = work.Clone()
	s.mu.Unlock()

	return &work, nil
}

// appendOutbox must be called with mu held for writing.
func (s *Store) appendOutbox(events []domain.Event) {
	for _, e := range events {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		payload, err := json.Marshal(e)
		if err != nil {
			continue
		}
		s.outbox = append(s.outbox, outboxRow{record: port.OutboxRecord{
			ID:           e.ID,
			EventType:    string(e.Type),
			PartitionKey: e.AggregateID,
			Payload:      payload,
			CreatedAt:    e.OccurredAt,
		}})
	}
}

func (s *Store) FetchUnpublished(_ context.Context, limit int) ([]port.OutboxRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]port.OutboxRecord, 0, limit)
	for _, row := range s.outbox {
		if len(out) >= limit {
			break
		}
		if row.publishedAt == nil {
			out = append(out, row.record)
		}
	}
	return out, nil
}

func (s *Store) MarkPublished(_ context.Context, id string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.outbox {
		if s.outbox[i].record.ID == id {
			s.outbox[i].publishedAt = &at
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *Store) MarkFailed(_ context.Context, id string, reason string, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.outbox {
		if s.outbox[i].record.ID == id {
			s.outbox[i].record.RetryCount++
			s.outbox[i].lastError = reason
			return nil
		}
	}
	return domain.ErrNotFound
}

// Events returns every event written so far, published or not.
func (s *Store) Events() []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Event, 0, len(s.outbox))
	for _, row := range s.outbox {
		var e domain.Event
		if err := json.Unmarshal(row.record.Payload, &e); err == nil {
			out = append(out, e)
		}
	}
	return out
}

// keyedMutex hands out one lock per key. Entries are never removed; the
// key space is bounded by the number of aggregates.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]chan struct{}
}

// lock waits for key until ctx is done.
func (k *keyedMutex) lock(ctx context.Context, key string) (func(), error) {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]chan struct{})
	}
	ch, ok := k.locks[key]
	if !ok {
		ch = make(chan struct{}, 1)
		k.locks[key] = ch
	}
	k.mu.Unlock()

	select {
	case ch <- struct{}{}:
		return func() { <-ch }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
