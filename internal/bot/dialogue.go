package bot

import (
	"context"
	"errors"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"fit-coach/internal/models"
	"fit-coach/internal/validation"
)

// startOnboarding resets the dialogue to the first question. It runs for
// new and existing identities alike; an existing profile is only
// replaced when the whole dialogue completes.
func (t *TelegramBot) startOnboarding(ctx context.Context, chatID, userID int64) {
	if err := t.states.Set(ctx, userID, State{Phase: PhaseOnboarding, Step: StepAge}); err != nil {
		t.logger.Errorw("failed to start onboarding", "user_id", userID, "error", err)
		t.reply(chatID, msgInternalError)
		return
	}
	t.reply(chatID, msgGreeting)

	msg := tgbotapi.NewMessage(chatID, msgAskAge)
	msg.ReplyMarkup = removeKeyboard()
	t.send(msg)
}

// cancelOnboarding aborts profile collection, keeping the previous
// profile. Identities without a stored profile cannot cancel: a partial
// dialogue must either finish or restart.
func (t *TelegramBot) cancelOnboarding(ctx context.Context, chatID, userID int64, state State) {
	if state.Phase != PhaseOnboarding {
		t.reply(chatID, msgCancelDenied)
		return
	}

	if _, err := t.backend.GetUser(ctx, userID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			t.reply(chatID, msgCancelNoUser)
			return
		}
		t.logger.Errorw("failed to check profile before cancel", "user_id", userID, "error", err)
		t.reply(chatID, msgInternalError)
		return
	}

	t.setPhase(ctx, userID, PhaseMain)
	msg := tgbotapi.NewMessage(chatID, msgCancelled)
	msg.ReplyMarkup = removeKeyboard()
	t.send(msg)
}

// handleOnboardingAnswer validates the answer for the current step. A
// rejected answer leaves the step unchanged so the user simply retries.
func (t *TelegramBot) handleOnboardingAnswer(ctx context.Context, msg *tgbotapi.Message, state State) {
	userID := msg.From.ID
	chatID := msg.Chat.ID
	input := msg.Text

	switch state.Step {
	case StepAge:
		age, err := validation.Age(input)
		if err != nil {
			t.reply(chatID, err.Error())
			return
		}
		state.Draft.Age = age
		state.Step = StepGender
		t.saveState(ctx, userID, state)

		next := tgbotapi.NewMessage(chatID, msgAskGender)
		next.ReplyMarkup = genderKeyboard()
		t.send(next)

	case StepGender:
		gender, err := validation.Gender(input)
		if err != nil {
			t.reply(chatID, err.Error())
			return
		}
		state.Draft.Gender = gender
		state.Step = StepHeight
		t.saveState(ctx, userID, state)

		next := tgbotapi.NewMessage(chatID, msgAskHeight)
		next.ReplyMarkup = removeKeyboard()
		t.send(next)

	case StepHeight:
		height, err := validation.Height(input)
		if err != nil {
			t.reply(chatID, err.Error())
			return
		}
		state.Draft.HeightCm = height
		state.Step = StepWeight
		t.saveState(ctx, userID, state)
		t.reply(chatID, msgAskWeight)

	case StepWeight:
		weight, err := validation.Weight(input)
		if err != nil {
			t.reply(chatID, err.Error())
			return
		}
		state.Draft.WeightKg = weight
		state.Step = StepActivityLevel
		t.saveState(ctx, userID, state)
		t.askActivityLevel(ctx, chatID)

	case StepActivityLevel:
		levels, err := t.backend.GetActivityLevels(ctx)
		if err != nil {
			t.logger.Errorw("failed to fetch activity levels", "user_id", userID, "error", err)
			t.reply(chatID, msgInternalError)
			return
		}
		level, err := validation.ActivityLevel(input, levels)
		if err != nil {
			t.reply(chatID, err.Error())
			return
		}
		state.Draft.ActivityLevel = level
		state.Step = StepGoal
		t.saveState(ctx, userID, state)

		next := tgbotapi.NewMessage(chatID, msgAskGoal)
		next.ReplyMarkup = removeKeyboard()
		t.send(next)

	case StepGoal:
		goal, err := validation.Goal(input)
		if err != nil {
			t.reply(chatID, err.Error())
			return
		}
		state.Draft.Goal = goal
		t.submitProfile(ctx, chatID, userID, msg.From.UserName, state.Draft)
	}
}

// askActivityLevel sends the current level catalog with one button per
// level. The snapshot is fetched fresh so new tiers appear immediately.
func (t *TelegramBot) askActivityLevel(ctx context.Context, chatID int64) {
	levels, err := t.backend.GetActivityLevels(ctx)
	if err != nil {
		t.logger.Errorw("failed to fetch activity levels", "error", err)
		t.reply(chatID, msgInternalError)
		return
	}

	var b strings.Builder
	b.WriteString(msgAskLevel)
	b.WriteString("\n\n")
	for _, lvl := range levels {
		b.WriteString(lvl.FormattedString())
		b.WriteString("\n")
	}

	msg := tgbotapi.NewMessage(chatID, b.String())
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = levelKeyboard(levels)
	t.send(msg)
}

// submitProfile persists the completed draft. An existing profile is
// overwritten field by field; a failed submit keeps the dialogue on the
// last step so the user can retry.
func (t *TelegramBot) submitProfile(ctx context.Context, chatID, userID int64, username string, draft Draft) {
	input := &models.UserInput{
		ID:            userID,
		Username:      username,
		Age:           draft.Age,
		WeightKg:      draft.WeightKg,
		HeightCm:      draft.HeightCm,
		Gender:        draft.Gender,
		Goal:          draft.Goal,
		ActivityLevel: draft.ActivityLevel,
	}

	err := t.backend.CreateUser(ctx, input)
	if errors.Is(err, models.ErrAlreadyExists) {
		patch := &models.UserUpdate{
			Username:      &input.Username,
			Age:           &input.Age,
			WeightKg:      &input.WeightKg,
			HeightCm:      &input.HeightCm,
			Gender:        &input.Gender,
			Goal:          &input.Goal,
			ActivityLevel: &input.ActivityLevel,
		}
		err = t.backend.UpdateUser(ctx, userID, patch)
	}
	if err != nil {
		t.logger.Errorw("failed to save profile", "user_id", userID, "error", err)
		t.reply(chatID, msgInternalError)
		return
	}

	t.setPhase(ctx, userID, PhaseMain)
	t.reply(chatID, msgProfileDone)
	t.logger.Infow("profile saved", "user_id", userID)
}

func (t *TelegramBot) saveState(ctx context.Context, userID int64, state State) {
	if err := t.states.Set(ctx, userID, state); err != nil {
		t.logger.Errorw("failed to store dialogue state", "user_id", userID, "error", err)
	}
}
