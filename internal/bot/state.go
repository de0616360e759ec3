package bot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// Phase is the conversation's operating mode.
type Phase string

const (
	// PhaseNone: the identity has never started onboarding.
	PhaseNone Phase = ""
	// PhaseOnboarding: inside the profile-collection dialogue.
	PhaseOnboarding Phase = "onboarding"
	// PhaseMain: profile exists, commands and AI chat are available.
	PhaseMain Phase = "main"
	// PhasePlanRequest: waiting for optional plan preferences.
	PhasePlanRequest Phase = "plan_request"
	// PhaseGenerating: an AI request is in flight; new input is
	// answered with a wait notice, never queued.
	PhaseGenerating Phase = "generating"
	// PhaseEditing: waiting for a new value for one profile field.
	PhaseEditing Phase = "editing"
)

// Step is the current onboarding question, in strict linear order.
type Step int

const (
	StepAge Step = iota
	StepGender
	StepHeight
	StepWeight
	StepActivityLevel
	StepGoal
)

// Draft holds answers collected so far. It lives only in dialogue state
// and is never persisted as a partial profile.
type Draft struct {
	Age           int     `json:"age,omitempty"`
	Gender        string  `json:"gender,omitempty"`
	HeightCm      float64 `json:"height_cm,omitempty"`
	WeightKg      float64 `json:"weight_kg,omitempty"`
	ActivityLevel int     `json:"activity_level,omitempty"`
	Goal          string  `json:"goal,omitempty"`
}

// State is the per-identity dialogue state.
type State struct {
	Phase     Phase  `json:"phase"`
	Step      Step   `json:"step,omitempty"`
	Draft     Draft  `json:"draft,omitempty"`
	EditField string `json:"edit_field,omitempty"`
}

// Store keeps dialogue state keyed by identity. A missing identity
// reads back as the zero State.
type Store interface {
	Get(ctx context.Context, userID int64) (State, error)
	Set(ctx context.Context, userID int64, state State) error
	Clear(ctx context.Context, userID int64) error
}

// RedisStore keeps dialogue state in Redis, matching the bot's
// restart-survival expectations.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func stateKey(userID int64) string {
	return fmt.Sprintf("dialogue:%d:state", userID)
}

func (s *RedisStore) Get(ctx context.Context, userID int64) (State, error) {
	var state State
	data, err := s.client.Get(ctx, stateKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return state, nil
	}
	if err != nil {
		return state, err
	}
	if err := json.Unmarshal(data, &state); err != nil {
		return State{}, err
	}
	return state, nil
}

func (s *RedisStore) Set(ctx context.Context, userID int64, state State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, stateKey(userID), data, 0).Err()
}

func (s *RedisStore) Clear(ctx context.Context, userID int64) error {
	return s.client.Del(ctx, stateKey(userID)).Err()
}

// MemoryStore is an in-process Store for tests and redis-less runs.
type MemoryStore struct {
	cache *cache.Cache
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{cache: cache.New(cache.NoExpiration, 0)}
}

func (s *MemoryStore) Get(_ context.Context, userID int64) (State, error) {
	if v, ok := s.cache.Get(stateKey(userID)); ok {
		return v.(State), nil
	}
	return State{}, nil
}

func (s *MemoryStore) Set(_ context.Context, userID int64, state State) error {
	s.cache.Set(stateKey(userID), state, cache.NoExpiration)
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, userID int64) error {
	s.cache.Delete(stateKey(userID))
	return nil
}
