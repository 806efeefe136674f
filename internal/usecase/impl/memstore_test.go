package impl

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"spoolmeter/internal/domain/entity"
	domainerrors "spoolmeter/internal/domain/errors"
	"spoolmeter/internal/domain/repository"
	"spoolmeter/internal/domain/service"
	"spoolmeter/internal/usecase"

	"github.com/google/uuid"
)

// memStore is an in-memory backing store for scenario tests.
type memStore struct {
	mu           sync.Mutex
	meters       map[string]*entity.SpoolMeter
	secrets      map[string]string
	owners       map[string][]uuid.UUID
	prefs        map[uuid.UUID]*entity.NotificationPreference
	logs         []*entity.UsageLogEntry
	seq          int64
	destinations map[uuid.UUID]*entity.PushDestination
}

func newMemStore() *memStore {
	return &memStore{
		meters:       map[string]*entity.SpoolMeter{},
		secrets:      map[string]string{},
		owners:       map[string][]uuid.UUID{},
		prefs:        map[uuid.UUID]*entity.NotificationPreference{},
		destinations: map[uuid.UUID]*entity.PushDestination{},
	}
}

func (s *memStore) addMeter(meter *entity.SpoolMeter, secret string, owners ...uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.meters[meter.ID] = meter
	s.secrets[meter.ID] = secret
	s.owners[meter.ID] = owners
}

func (s *memStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(s)
}

func (s *memStore) SpoolMeterRepo() repository.SpoolMeterRepository { return s }

func (s *memStore) UsageLogRepo() repository.UsageLogRepository { return s }

func (s *memStore) FindSpoolMeterByID(_ context.Context, id string) (*entity.SpoolMeter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meter, ok := s.meters[id]
	if !ok {
		return nil, repository.ErrSpoolMeterNotFound
	}
	clone := *meter

	return &clone, nil
}

func (s *memStore) UpdateRemainingAmount(_ context.Context, id string, amount float64, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	meter, ok := s.meters[id]
	if !ok {
		return repository.ErrSpoolMeterNotFound
	}
	meter.RemainingAmount = amount
	meter.UpdatedAt = at

	return nil
}

func (s *memStore) UpdateBatteryStatus(_ context.Context, id string, status entity.BatteryStatus, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	meter, ok := s.meters[id]
	if !ok {
		return repository.ErrSpoolMeterNotFound
	}
	meter.BatteryStatus = status
	meter.UpdatedAt = at

	return nil
}

func (s *memStore) FindOwnerAccountIDs(_ context.Context, id string) ([]uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.owners[id]), nil
}

func (s *memStore) IsOwnedBy(_ context.Context, id string, accountID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Contains(s.owners[id], accountID), nil
}

func (s *memStore) AppendUsageLog(_ context.Context, entry *entity.UsageLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	clone := *entry
	clone.Sequence = s.seq
	s.logs = append(s.logs, &clone)

	return nil
}

func (s *memStore) ListUsageLogs(_ context.Context, spoolMeterID string) ([]*entity.UsageLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]*entity.UsageLogEntry, 0)
	for _, entry := range s.logs {
		if entry.SpoolMeterID == spoolMeterID {
			clone := *entry
			entries = append(entries, &clone)
		}
	}
	slices.SortStableFunc(entries, func(a, b *entity.UsageLogEntry) int {
		if c := a.Timestamp.Compare(b.Timestamp); c != 0 {
			return c
		}

		return cmp.Compare(a.Sequence, b.Sequence)
	})

	return entries, nil
}

func (s *memStore) DeleteUsageLogsBefore(_ context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.logs)
	s.logs = slices.DeleteFunc(s.logs, func(entry *entity.UsageLogEntry) bool {
		return entry.Timestamp.Before(cutoff)
	})

	return int64(before - len(s.logs)), nil
}

func (s *memStore) FindNotificationPreference(_ context.Context, accountID uuid.UUID) (*entity.NotificationPreference, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pref, ok := s.prefs[accountID]
	if !ok {
		return nil, repository.ErrNotificationPreferenceNotFound
	}

	return pref, nil
}

func (s *memStore) CreatePushDestination(_ context.Context, destination *entity.PushDestination) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.destinations {
		if existing.Token == destination.Token {
			return repository.ErrDuplicatePushDestination
		}
	}
	s.destinations[destination.ID] = destination

	return nil
}

func (s *memStore) FindPushDestinationByID(_ context.Context, id uuid.UUID) (*entity.PushDestination, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	destination, ok := s.destinations[id]
	if !ok {
		return nil, repository.ErrPushDestinationNotFound
	}

	return destination, nil
}

func (s *memStore) FindPushDestinationsByAccount(_ context.Context, accountID uuid.UUID) ([]*entity.PushDestination, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var destinations []*entity.PushDestination
	for _, destination := range s.destinations {
		if destination.AccountID == accountID {
			destinations = append(destinations, destination)
		}
	}
	slices.SortFunc(destinations, func(a, b *entity.PushDestination) int {
		return cmp.Compare(a.Token, b.Token)
	})

	return destinations, nil
}

func (s *memStore) DeletePushDestination(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.destinations[id]; !ok {
		return repository.ErrPushDestinationNotFound
	}
	delete(s.destinations, id)

	return nil
}

func (s *memStore) DeletePushDestinationByToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, destination := range s.destinations {
		if destination.Token == token {
			delete(s.destinations, id)
		}
	}

	return nil
}

// ResolveCredential compares plaintext secrets; hashing is covered by the auth package.
func (s *memStore) ResolveCredential(ctx context.Context, spoolMeterID, secret string) (*entity.SpoolMeter, error) {
	meter, err := s.FindSpoolMeterByID(ctx, spoolMeterID)
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.secrets[spoolMeterID] != secret {
		return nil, domainerrors.ErrUnauthenticated
	}

	return meter, nil
}

// memCache is a map-backed PredictionCache versioned like the Redis one.
type memCache struct {
	mu      sync.Mutex
	epoch   int
	gens    map[string]int
	entries map[string]*entity.Prediction
}

func newMemCache() *memCache {
	return &memCache{gens: map[string]int{}, entries: map[string]*entity.Prediction{}}
}

func (c *memCache) version(spoolMeterID string) service.PredictionVersion {
	return service.PredictionVersion(fmt.Sprintf("%d.%d", c.epoch, c.gens[spoolMeterID]))
}

func (c *memCache) Get(_ context.Context, spoolMeterID string) (*entity.Prediction, service.PredictionVersion, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	version := c.version(spoolMeterID)

	return c.entries[spoolMeterID+":"+string(version)], version, nil
}

func (c *memCache) Set(_ context.Context, version service.PredictionVersion, prediction *entity.Prediction) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[prediction.SpoolMeterID+":"+string(version)] = prediction

	return nil
}

func (c *memCache) Invalidate(_ context.Context, spoolMeterID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gens[spoolMeterID]++

	return nil
}

func (c *memCache) InvalidateAll(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.epoch++

	return nil
}

// dispatchingPublisher runs the dispatcher inline so scenarios can assert deliveries.
type dispatchingPublisher struct {
	mu       sync.Mutex
	notifier usecase.NotificationUsecase
	events   []*service.AlertEvent
}

func (p *dispatchingPublisher) PublishAlertEvent(ctx context.Context, event *service.AlertEvent) error {
	p.mu.Lock()
	p.events = append(p.events, event)
	p.mu.Unlock()

	_, err := p.notifier.Notify(ctx, event.SpoolMeterID, event.AlertKind)

	return err
}

func (p *dispatchingPublisher) Close() error { return nil }

// recordingPushService reports tokens listed in invalid as permanently invalid.
type recordingPushService struct {
	mu        sync.Mutex
	invalid   map[string]bool
	delivered []string
}

func (p *recordingPushService) Deliver(_ context.Context, destination *entity.PushDestination, _, _ string, _ map[string]string) (entity.DeliveryOutcome, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.invalid[destination.Token] {
		return entity.DeliveryPermanentlyInvalid, nil
	}
	p.delivered = append(p.delivered, destination.Token)

	return entity.DeliveryDelivered, nil
}
