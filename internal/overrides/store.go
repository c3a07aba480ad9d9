package overrides

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/five82/handydiet/internal/kv"
)

// Persistence keys, one per override layer.
const (
	SelectionsKey = "better_handy_diet_selections_v1"
	SwapsKey      = "better_handy_diet_swaps_v1"
	PromotionsKey = "better_handy_diet_promotions_v1"
)

// Store owns the override state and writes every mutation through to a
// kv.Store before returning.
type Store struct {
	mu     sync.Mutex
	kv     kv.Store
	logger *zap.Logger
	state  State
}

// Load reads all three layers from backend. Missing, corrupt or wrong-shaped
// data yields empty layers; Load never fails. A nil logger discards output.
func Load(backend kv.Store, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{kv: backend, logger: logger, state: NewState()}

	if data, ok := s.read(SelectionsKey); ok {
		sel, dropped, err := decodeSelectionsLenient(data)
		s.logDecode(SelectionsKey, dropped, err)
		s.state.Selections = sel
	}
	if data, ok := s.read(SwapsKey); ok {
		swaps, dropped, err := decodeSwapsLenient(data)
		s.logDecode(SwapsKey, dropped, err)
		s.state.Swaps = swaps
	}
	if data, ok := s.read(PromotionsKey); ok {
		promo, dropped, err := decodePromotionsLenient(data)
		s.logDecode(PromotionsKey, dropped, err)
		s.state.Promotions = promo
	}
	return s
}

func (s *Store) read(key string) ([]byte, bool) {
	data, err := s.kv.Get(key)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			s.logger.Debug("override read failed, using empty state",
				zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return data, true
}

func (s *Store) logDecode(key string, dropped int, err error) {
	if err != nil {
		s.logger.Debug("override data corrupt, using empty state",
			zap.String("key", key), zap.Error(err))
		return
	}
	if dropped > 0 {
		s.logger.Debug("dropped malformed override entries",
			zap.String("key", key), zap.Int("dropped", dropped))
	}
}

// State returns a deep copy of the current overrides for resolution.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Selection returns the alternative chosen for dishID in (day, mealType).
func (s *Store) Selection(day, mealType, dishID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Selections.Get(day, mealType, dishID)
}

// Select records altID for dishID; an empty altID clears the selection.
func (s *Store) Select(day, mealType, dishID, altID string) error {
	return s.mutate(func(st State) {
		st.Selections.Set(day, mealType, dishID, altID)
	}, SelectionsKey)
}

// ResetDay drops every selection made for day.
func (s *Store) ResetDay(day string) error {
	return s.mutate(func(st State) {
		st.Selections.ResetDay(day)
	}, SelectionsKey)
}

// Selections returns a deep copy of the selections layer.
func (s *Store) Selections() Selections {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Selections.Clone()
}

// ReplaceSelections swaps in sel wholesale and persists it.
func (s *Store) ReplaceSelections(sel Selections) error {
	replacement := sel.Clone()
	if replacement == nil {
		replacement = make(Selections)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	previous := s.state.Selections
	s.state.Selections = replacement
	if err := s.persistLocked(SelectionsKey); err != nil {
		s.state.Selections = previous
		return err
	}
	return nil
}

// ImportSelections replaces the selections layer with the decoded payload.
// Invalid payloads return an error wrapping ErrInvalidImport and leave the
// store unchanged.
func (s *Store) ImportSelections(data []byte) error {
	sel, err := DecodeSelections(data)
	if err != nil {
		return err
	}
	return s.ReplaceSelections(sel)
}

// ExportSelections renders the selections layer as indented JSON.
func (s *Store) ExportSelections() ([]byte, error) {
	return EncodeSelections(s.Selections())
}

// EffectiveDay returns the day whose dishes fill (day, mealType).
func (s *Store) EffectiveDay(day, mealType string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Swaps.EffectiveDay(day, mealType)
}

// Swap exchanges the mealType dish lists of days a and b.
func (s *Store) Swap(mealType, a, b string) error {
	return s.mutate(func(st State) {
		st.Swaps.Swap(mealType, a, b)
	}, SwapsKey)
}

// ResetSwap removes the swap day takes part in for mealType.
func (s *Store) ResetSwap(mealType, day string) error {
	return s.mutate(func(st State) {
		st.Swaps.Reset(mealType, day)
	}, SwapsKey)
}

// Promoted returns the alternative promoted for dishID.
func (s *Store) Promoted(dishID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Promotions.Promoted(dishID)
}

// Promote makes altID the main dish for dishID.
func (s *Store) Promote(dishID, altID string) error {
	return s.mutate(func(st State) {
		st.Promote(dishID, altID)
	}, SelectionsKey, PromotionsKey)
}

// Demote reverts dishID to its original main dish.
func (s *Store) Demote(dishID string) error {
	return s.mutate(func(st State) {
		st.Demote(dishID)
	}, PromotionsKey)
}

// mutate applies fn to the live state and persists the named keys. When
// persisting fails the in-memory state is rolled back and the keys already
// written are rewritten from it.
func (s *Store) mutate(fn func(State), keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	previous := s.state.Clone()
	fn(s.state)
	for i, k := range keys {
		if err := s.persistLocked(k); err != nil {
			s.state = previous
			for _, written := range keys[:i] {
				if rerr := s.persistLocked(written); rerr != nil {
					s.logger.Warn("restore overrides", zap.String("key", written), zap.Error(rerr))
				}
			}
			return err
		}
	}
	return nil
}

func (s *Store) persistLocked(key string) error {
	var value any
	switch key {
	case SelectionsKey:
		value = s.state.Selections
	case SwapsKey:
		value = s.state.Swaps
	case PromotionsKey:
		value = s.state.Promotions
	default:
		return fmt.Errorf("unknown override key %q", key)
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.Set(key, data); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	s.logger.Debug("persisted overrides", zap.String("key", key), zap.Int("bytes", len(data)))
	return nil
}
