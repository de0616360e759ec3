package bot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreMissingIdentityIsZeroState(t *testing.T) {
	store := NewMemoryStore()

	state, err := store.Get(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, State{}, state)
	assert.Equal(t, PhaseNone, state.Phase)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	want := State{
		Phase: PhaseOnboarding,
		Step:  StepWeight,
		Draft: Draft{Age: 25, Gender: "male", HeightCm: 180},
	}
	require.NoError(t, store.Set(ctx, 42, want))

	got, err := store.Get(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, store.Clear(ctx, 42))
	got, err = store.Get(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, State{}, got)
}
