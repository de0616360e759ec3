package bot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fit-coach/internal/models"
)

func TestOnboardingHappyPath(t *testing.T) {
	backend := newFakeBackend()
	tb, sender := newTestBot(backend)
	ctx := context.Background()
	const userID int64 = 101

	tb.handleUpdate(ctx, commandUpdate(userID, "start"))
	for _, answer := range []string{"25", "Мужской", "180", "80,5", "2 — Лёгкий", "похудеть"} {
		tb.handleUpdate(ctx, textUpdate(userID, answer))
	}

	require.Len(t, backend.users, 1)
	user := backend.users[userID]
	assert.Equal(t, 25, user.Age)
	assert.Equal(t, "male", user.Gender)
	assert.Equal(t, 180.0, user.HeightCm)
	assert.Equal(t, 80.5, user.WeightKg)
	assert.Equal(t, 2, user.ActivityLevel)
	assert.Equal(t, "похудеть", user.Goal)
	assert.Equal(t, "tester", user.Username)

	assert.Equal(t, PhaseMain, mustState(tb, userID).Phase)
	assert.Equal(t, msgProfileDone, sender.lastText())
	assert.Equal(t, 1, backend.createCalls)
	assert.Zero(t, backend.updateCalls)
}

func TestOnboardingInvalidAnswerKeepsStep(t *testing.T) {
	backend := newFakeBackend()
	tb, sender := newTestBot(backend)
	ctx := context.Background()
	const userID int64 = 102

	tb.handleUpdate(ctx, commandUpdate(userID, "start"))
	tb.handleUpdate(ctx, textUpdate(userID, "двадцать"))

	state := mustState(tb, userID)
	assert.Equal(t, PhaseOnboarding, state.Phase)
	assert.Equal(t, StepAge, state.Step)
	assert.Contains(t, sender.lastText(), "Возраст")

	tb.handleUpdate(ctx, textUpdate(userID, "30"))
	assert.Equal(t, StepGender, mustState(tb, userID).Step)
}

func TestOnboardingBoundaryAgesRejected(t *testing.T) {
	backend := newFakeBackend()
	tb, _ := newTestBot(backend)
	ctx := context.Background()
	const userID int64 = 103

	tb.handleUpdate(ctx, commandUpdate(userID, "start"))
	for _, answer := range []string{"16", "100"} {
		tb.handleUpdate(ctx, textUpdate(userID, answer))
		assert.Equal(t, StepAge, mustState(tb, userID).Step, "age %s must be rejected", answer)
	}
}

func TestOnboardingExistingProfileOverwritten(t *testing.T) {
	backend := newFakeBackend()
	backend.users[104] = &models.User{ID: 104, Age: 40, Gender: "female", HeightCm: 160, WeightKg: 60, ActivityLevel: 1, Goal: "поддерживать форму"}
	tb, _ := newTestBot(backend)
	ctx := context.Background()

	tb.handleUpdate(ctx, commandUpdate(104, "start"))
	for _, answer := range []string{"33", "муж", "190", "95", "3", "набрать массу"} {
		tb.handleUpdate(ctx, textUpdate(104, answer))
	}

	assert.Equal(t, 1, backend.createCalls)
	assert.Equal(t, 1, backend.updateCalls, "existing profile is updated after the duplicate create")
	user := backend.users[104]
	assert.Equal(t, 33, user.Age)
	assert.Equal(t, "male", user.Gender)
	assert.Equal(t, "набрать массу", user.Goal)
	assert.Equal(t, PhaseMain, mustState(tb, 104).Phase)
}

func TestCancelWithoutProfileDenied(t *testing.T) {
	backend := newFakeBackend()
	tb, sender := newTestBot(backend)
	ctx := context.Background()
	const userID int64 = 105

	tb.handleUpdate(ctx, commandUpdate(userID, "start"))
	tb.handleUpdate(ctx, textUpdate(userID, "28"))
	tb.handleUpdate(ctx, commandUpdate(userID, "cancel"))

	assert.Equal(t, msgCancelNoUser, sender.lastText())
	state := mustState(tb, userID)
	assert.Equal(t, PhaseOnboarding, state.Phase)
	assert.Equal(t, StepGender, state.Step, "cancel must not disturb the dialogue")
}

func TestCancelWithProfileReturnsToMain(t *testing.T) {
	backend := newFakeBackend()
	backend.users[106] = &models.User{ID: 106, Age: 30, Gender: "male"}
	tb, sender := newTestBot(backend)
	ctx := context.Background()

	tb.handleUpdate(ctx, commandUpdate(106, "start"))
	tb.handleUpdate(ctx, commandUpdate(106, "cancel"))

	assert.Equal(t, msgCancelled, sender.lastText())
	assert.Equal(t, PhaseMain, mustState(tb, 106).Phase)
	assert.Equal(t, 30, backend.users[106].Age, "profile must stay untouched")
}

func TestCancelOutsideOnboardingDenied(t *testing.T) {
	backend := newFakeBackend()
	backend.users[107] = &models.User{ID: 107}
	tb, sender := newTestBot(backend)
	ctx := context.Background()
	tb.setPhase(ctx, 107, PhaseMain)

	tb.handleUpdate(ctx, commandUpdate(107, "cancel"))

	assert.Equal(t, msgCancelDenied, sender.lastText())
	assert.Equal(t, PhaseMain, mustState(tb, 107).Phase)
}

func TestRestartResetsToFirstStep(t *testing.T) {
	backend := newFakeBackend()
	tb, _ := newTestBot(backend)
	ctx := context.Background()
	const userID int64 = 108

	tb.handleUpdate(ctx, commandUpdate(userID, "start"))
	tb.handleUpdate(ctx, textUpdate(userID, "25"))
	tb.handleUpdate(ctx, textUpdate(userID, "жен"))
	tb.handleUpdate(ctx, commandUpdate(userID, "start"))

	state := mustState(tb, userID)
	assert.Equal(t, PhaseOnboarding, state.Phase)
	assert.Equal(t, StepAge, state.Step)
	assert.Zero(t, state.Draft.Age, "restart discards collected answers")
}

func TestNonTextInputRejected(t *testing.T) {
	backend := newFakeBackend()
	tb, sender := newTestBot(backend)

	tb.handleUpdate(context.Background(), photoUpdate(109))

	assert.Equal(t, msgOnlyText, sender.lastText())
}

func TestTextBeforeStartPromptsStart(t *testing.T) {
	backend := newFakeBackend()
	tb, sender := newTestBot(backend)

	tb.handleUpdate(context.Background(), textUpdate(110, "привет"))

	assert.Equal(t, msgUseStart, sender.lastText())
	assert.Zero(t, backend.chatCalls)
}
