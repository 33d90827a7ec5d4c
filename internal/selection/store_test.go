package selection

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"denpicker/internal/eventbus"
	"denpicker/internal/storage"
)

// failingStorage rejects every write and optionally every read
type failingStorage struct {
	getErr error
}

func (f *failingStorage) Get(key string) (string, bool, error) {
	if f.getErr != nil {
		return "", false, f.getErr
	}
	return "", false, nil
}

func (f *failingStorage) Set(string, string) error {
	return errors.New("quota exceeded")
}

func newStore(t *testing.T, st storage.Storage) *Store {
	t.Helper()
	s := NewStore(st, WithLogger(zaptest.NewLogger(t)))
	s.Initialize()
	return s
}

func saved(t *testing.T, st storage.Storage) string {
	t.Helper()
	v, ok, err := st.Get(DefaultKey)
	require.NoError(t, err)
	require.True(t, ok, "selection should have been persisted")
	return v
}

func TestAppendDistinctKeepsCallOrderUpToCapacity(t *testing.T) {
	for n := 0; n <= 9; n++ {
		t.Run(fmt.Sprintf("%d ids", n), func(t *testing.T) {
			s := newStore(t, storage.NewMemoryStore())
			var want []string
			for i := 1; i <= n; i++ {
				id := fmt.Sprint(i * 10)
				added := s.Append(id)
				if i <= MaxLength {
					want = append(want, id)
					assert.True(t, added)
				} else {
					assert.False(t, added)
				}
			}
			assert.Equal(t, min(n, MaxLength), s.Len())
			if diff := cmp.Diff(want, s.Items(), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("items mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAppendDuplicateIsNoop(t *testing.T) {
	s := newStore(t, storage.NewMemoryStore())
	require.True(t, s.Append("25"))
	require.True(t, s.Append("1"))

	assert.False(t, s.Append("25"))
	assert.Equal(t, []string{"25", "1"}, s.Items())
}

func TestAppendEmptyIsNoop(t *testing.T) {
	s := newStore(t, storage.NewMemoryStore())
	assert.False(t, s.Append(""))
	assert.Zero(t, s.Len())
}

func TestAppendWhenFull(t *testing.T) {
	s := newStore(t, storage.NewMemoryStore())
	for i := 1; i <= MaxLength; i++ {
		require.True(t, s.Append(fmt.Sprint(i)))
	}
	require.True(t, s.Full())

	assert.False(t, s.Append("99"))
	assert.Equal(t, MaxLength, s.Len())
	assert.False(t, s.Contains("99"))
}

func TestRemove(t *testing.T) {
	s := newStore(t, storage.NewMemoryStore())
	for _, id := range []string{"1", "2", "3", "4"} {
		s.Append(id)
	}

	assert.True(t, s.Remove("2"))
	assert.Equal(t, []string{"1", "3", "4"}, s.Items())

	assert.False(t, s.Remove("2"), "absent id is ignored")
	assert.False(t, s.Remove("42"))
	assert.Equal(t, []string{"1", "3", "4"}, s.Items())
}

func TestRemoveThenAppendMovesToEnd(t *testing.T) {
	s := newStore(t, storage.NewMemoryStore())
	s.Append("1")
	s.Append("2")
	s.Append("3")

	s.Remove("1")
	s.Append("1")

	assert.ElementsMatch(t, []string{"1", "2", "3"}, s.Items())
	assert.Equal(t, []string{"2", "3", "1"}, s.Items())
}

func TestClear(t *testing.T) {
	st := storage.NewMemoryStore()
	s := newStore(t, st)
	s.Append("1")
	s.Append("2")

	s.Clear()
	assert.Zero(t, s.Len())
	assert.Equal(t, "[]", saved(t, st))

	s.Clear()
	assert.Zero(t, s.Len())
}

func TestEndToEndScenario(t *testing.T) {
	st := storage.NewMemoryStore()
	s := newStore(t, st)

	s.Append("25")
	s.Append("1")
	s.Append("25")
	s.Remove("1")

	assert.Equal(t, []string{"25"}, s.Items())
	assert.Equal(t, `["25"]`, saved(t, st))
}

func TestPersistReloadRoundTrip(t *testing.T) {
	st := storage.NewMemoryStore()
	s := newStore(t, st)
	for _, id := range []string{"7", "3", "9", "12"} {
		s.Append(id)
	}
	s.Remove("3")
	s.Append("3")
	s.Append("3")

	reloaded := newStore(t, st)
	assert.Equal(t, s.Items(), reloaded.Items())
	assert.Equal(t, []string{"7", "9", "12", "3"}, reloaded.Items())
}

func TestInitializeMalformedOrAbsent(t *testing.T) {
	cases := map[string]*string{
		"absent":       nil,
		"empty":        ptr(""),
		"not json":     ptr("not-json"),
		"null":         ptr("null"),
		"object":       ptr(`{"a":1}`),
		"numbers":      ptr("[25, 1]"),
		"plain string": ptr(`"25"`),
	}
	for name, value := range cases {
		t.Run(name, func(t *testing.T) {
			st := storage.NewMemoryStore()
			if value != nil {
				require.NoError(t, st.Set(DefaultKey, *value))
			}
			s := newStore(t, st)
			assert.Zero(t, s.Len())
			assert.Equal(t, "[]", saved(t, st), "initialization writes the loaded list back")
		})
	}
}

func TestInitializeNormalizesSavedList(t *testing.T) {
	st := storage.NewMemoryStore()
	require.NoError(t, st.Set(DefaultKey, `["1","","1","2","3","4","5","6","7"]`))

	s := newStore(t, st)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, s.Items())
}

func TestInitializeKeepsStaleIds(t *testing.T) {
	st := storage.NewMemoryStore()
	require.NoError(t, st.Set(DefaultKey, `["999999","abc"]`))

	s := newStore(t, st)
	assert.Equal(t, []string{"999999", "abc"}, s.Items())
}

func TestInitializeReadErrorStartsEmpty(t *testing.T) {
	s := newStore(t, &failingStorage{getErr: errors.New("locked")})
	assert.Zero(t, s.Len())
	assert.True(t, s.Append("1"))
}

func TestWriteFailureKeepsMemoryAuthoritative(t *testing.T) {
	bus := eventbus.New(zaptest.NewLogger(t))
	defer bus.Close()

	failures := make(chan eventbus.StorageWriteFailedEvent, 8)
	bus.Subscribe(eventbus.EventStorageWriteFailed, func(e eventbus.DomainEvent) {
		failures <- e.(eventbus.StorageWriteFailedEvent)
	})

	s := NewStore(&failingStorage{}, WithBus(bus), WithLogger(zaptest.NewLogger(t)))
	s.Initialize()
	require.True(t, s.Append("25"))
	assert.Equal(t, []string{"25"}, s.Items())

	select {
	case ev := <-failures:
		assert.Equal(t, DefaultKey, ev.Key)
		assert.EqualError(t, ev.Err, "quota exceeded")
	case <-time.After(2 * time.Second):
		t.Fatal("expected a storage failure event")
	}
}

func TestCustomKey(t *testing.T) {
	st := storage.NewMemoryStore()
	s := NewStore(st, WithKey("den"))
	s.Initialize()
	s.Append("4")

	v, ok, err := st.Get("den")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `["4"]`, v)

	_, ok, err = st.Get(DefaultKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSlots(t *testing.T) {
	s := newStore(t, storage.NewMemoryStore())
	s.Append("25")
	s.Append("1")
	s.Append("4")
	s.Remove("1")

	slots := s.Slots()
	require.Len(t, slots, MaxLength)
	for i, slot := range slots {
		assert.Equal(t, i, slot.Index)
		assert.Equal(t, i < s.Len(), slot.Occupied)
	}
	assert.Equal(t, "25", slots[0].ID)
	assert.Equal(t, "4", slots[1].ID, "later entries shift down after a removal")
	assert.Empty(t, slots[2].ID)

	id, ok := s.At(1)
	assert.True(t, ok)
	assert.Equal(t, "4", id)
	_, ok = s.At(5)
	assert.False(t, ok)
	_, ok = s.At(-1)
	assert.False(t, ok)
}

func TestItemsReturnsCopy(t *testing.T) {
	s := newStore(t, storage.NewMemoryStore())
	s.Append("1")
	items := s.Items()
	items[0] = "mutated"
	assert.Equal(t, []string{"1"}, s.Items())
}

func TestEventsPublished(t *testing.T) {
	bus := eventbus.New(zaptest.NewLogger(t))
	defer bus.Close()

	changed := make(chan eventbus.SelectionChangedEvent, 8)
	cleared := make(chan eventbus.SelectionClearedEvent, 1)
	bus.Subscribe(eventbus.EventSelectionChanged, func(e eventbus.DomainEvent) {
		changed <- e.(eventbus.SelectionChangedEvent)
	})
	bus.Subscribe(eventbus.EventSelectionCleared, func(e eventbus.DomainEvent) {
		cleared <- e.(eventbus.SelectionClearedEvent)
	})

	s := NewStore(storage.NewMemoryStore(), WithBus(bus))
	s.Initialize()
	s.Append("25")
	s.Append("25")
	s.Remove("25")
	s.Append("1")
	s.Clear()

	wait := func() eventbus.SelectionChangedEvent {
		select {
		case ev := <-changed:
			return ev
		case <-time.After(2 * time.Second):
			t.Fatal("missing selection event")
		}
		return eventbus.SelectionChangedEvent{}
	}
	assert.Equal(t, "25", wait().Added)
	assert.Equal(t, "25", wait().Removed)
	assert.Equal(t, []string{"1"}, wait().Items)

	afterClear := wait()
	assert.Empty(t, afterClear.Added)
	assert.Empty(t, afterClear.Removed)
	assert.NotNil(t, afterClear.Items)
	assert.Empty(t, afterClear.Items)

	select {
	case ev := <-cleared:
		assert.Equal(t, []string{"1"}, ev.Previous)
	case <-time.After(2 * time.Second):
		t.Fatal("missing clear event")
	}
}

func ptr(s string) *string { return &s }
