package selection

import (
	"encoding/json"

	"go.uber.org/zap"

	"denpicker/internal/domain"
	"denpicker/internal/eventbus"
	"denpicker/internal/storage"
)

// MaxLength is the number of slots in the den
const MaxLength = 6

// DefaultKey is the storage key holding the serialized selection
const DefaultKey = "names"

// Store is the bounded, ordered, duplicate-free list of selected identifiers.
// It is not safe for concurrent use; the UI update loop is its only mutator.
type Store struct {
	items   []string
	storage storage.Storage
	key     string
	bus     eventbus.EventBus
	logger  *zap.Logger
}

// Option configures a Store
type Option func(*Store)

// WithKey overrides the storage key
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithLogger sets the logger used for storage failures
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithBus publishes selection events to bus
func WithBus(bus eventbus.EventBus) Option {
	return func(s *Store) {
		s.bus = bus
	}
}

// NewStore creates an empty store persisting to st. Call Initialize to load the saved selection.
func NewStore(st storage.Storage, opts ...Option) *Store {
	s := &Store{
		items:   []string{},
		storage: st,
		key:     DefaultKey,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.Named("selection")
	return s
}

// Initialize replaces the in-memory list with the persisted one. Anything
// that is not a JSON array of strings loads as an empty selection.
func (s *Store) Initialize() {
	s.items = s.load()
	s.logger.Debug("selection loaded", zap.Strings("items", s.items))
	s.persist()
}

func (s *Store) load() []string {
	raw, ok, err := s.storage.Get(s.key)
	if err != nil {
		s.logger.Warn("failed to read saved selection", zap.String("key", s.key), zap.Error(err))
		return []string{}
	}
	if !ok || raw == "" {
		return []string{}
	}

	var saved []string
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		s.logger.Debug("ignoring malformed saved selection", zap.String("key", s.key), zap.Error(err))
		return []string{}
	}

	items := make([]string, 0, MaxLength)
	for _, id := range saved {
		if len(items) == MaxLength {
			break
		}
		if id == "" || contains(items, id) {
			continue
		}
		items = append(items, id)
	}
	return items
}

// Append adds id at the end of the list. It returns false, leaving the list
// untouched, when id is empty, already present or the den is full.
func (s *Store) Append(id string) bool {
	if id == "" || s.Contains(id) || s.Full() {
		return false
	}
	s.items = append(s.items, id)
	s.persist()
	s.publish(domain.SelectionChangedEvent{Added: id, Items: s.Items()})
	return true
}

// Remove deletes id, shifting later entries down one slot. Absent ids are ignored.
func (s *Store) Remove(id string) bool {
	idx := indexOf(s.items, id)
	if idx < 0 {
		return false
	}
	s.items = append(s.items[:idx:idx], s.items[idx+1:]...)
	s.persist()
	s.publish(domain.SelectionChangedEvent{Removed: id, Items: s.Items()})
	return true
}

// Clear empties the list
func (s *Store) Clear() {
	previous := s.items
	s.items = []string{}
	s.persist()
	s.publish(domain.SelectionChangedEvent{Items: s.Items()})
	s.publish(domain.SelectionClearedEvent{Previous: previous})
}

// Items returns a copy of the selection in slot order
func (s *Store) Items() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of occupied slots
func (s *Store) Len() int {
	return len(s.items)
}

// Full reports whether every slot is occupied
func (s *Store) Full() bool {
	return len(s.items) >= MaxLength
}

// Contains reports whether id is selected
func (s *Store) Contains(id string) bool {
	return contains(s.items, id)
}

// At returns the identifier in slot i
func (s *Store) At(i int) (string, bool) {
	if i < 0 || i >= len(s.items) {
		return "", false
	}
	return s.items[i], true
}

// Slots projects the list onto the fixed MaxLength slots
func (s *Store) Slots() []domain.Slot {
	slots := make([]domain.Slot, MaxLength)
	for i := range slots {
		slots[i].Index = i
		if i < len(s.items) {
			slots[i].ID = s.items[i]
			slots[i].Occupied = true
		}
	}
	return slots
}

// persist writes the current list; failures are logged and never returned
func (s *Store) persist() {
	data, err := json.Marshal(s.items)
	if err != nil {
		s.logger.Error("failed to encode selection", zap.Error(err))
		return
	}
	if err := s.storage.Set(s.key, string(data)); err != nil {
		s.logger.Warn("failed to persist selection", zap.String("key", s.key), zap.Error(err))
		s.publish(domain.StorageWriteFailedEvent{Key: s.key, Err: err})
	}
}

func (s *Store) publish(event domain.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(event)
	}
}

func indexOf(items []string, id string) int {
	for i, item := range items {
		if item == id {
			return i
		}
	}
	return -1
}

func contains(items []string, id string) bool {
	return indexOf(items, id) >= 0
}
