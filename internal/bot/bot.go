package bot

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"fit-coach/pkg/logger"
)

// sender is the slice of the Telegram API the handlers use.
// *tgbotapi.BotAPI satisfies it; tests substitute a recorder.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type TelegramBot struct {
	bot      *tgbotapi.BotAPI
	api      sender
	backend  Backend
	states   Store
	throttle Throttle
	logger   *logger.Logger
}

func NewTelegramBot(token string, backend Backend, states Store, throttle Throttle, l *logger.Logger) (*TelegramBot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot: %w", err)
	}

	l.Infow("authorized on Telegram", "username", api.Self.UserName)

	return &TelegramBot{
		bot:      api,
		api:      api,
		backend:  backend,
		states:   states,
		throttle: throttle,
		logger:   l,
	}, nil
}

// Start removes any webhook and begins long polling.
func (t *TelegramBot) Start(ctx context.Context) error {
	_, err := t.bot.Request(tgbotapi.DeleteWebhookConfig{DropPendingUpdates: true})
	if err != nil {
		return fmt.Errorf("failed to delete webhook: %w", err)
	}

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := t.bot.GetUpdatesChan(updateConfig)

	t.logger.Info("started receiving Telegram updates")
	go t.handleUpdates(ctx, updates)
	return nil
}

func (t *TelegramBot) Stop(ctx context.Context) error {
	t.bot.StopReceivingUpdates()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(500 * time.Millisecond):
		return nil
	}
}

func (t *TelegramBot) handleUpdates(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		go func(update tgbotapi.Update) {
			defer func() {
				if r := recover(); r != nil {
					t.logger.Errorw("recovered from panic while processing update", "error", r)
				}
			}()
			t.handleUpdate(ctx, update)
		}(update)
	}
}

// handleUpdate applies the throttling guard, then routes the update.
func (t *TelegramBot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	var (
		userID int64
		chatID int64
	)
	switch {
	case update.Message != nil && update.Message.From != nil:
		userID = update.Message.From.ID
		chatID = update.Message.Chat.ID
	case update.CallbackQuery != nil:
		userID = update.CallbackQuery.From.ID
		if update.CallbackQuery.Message != nil {
			chatID = update.CallbackQuery.Message.Chat.ID
		}
	default:
		return
	}

	allowed, err := t.throttle.Allow(ctx, userID)
	if err != nil {
		t.logger.Errorw("throttle check failed", "user_id", userID, "error", err)
		// fail open: a broken cooldown store must not mute the bot
		allowed = true
	}
	if !allowed {
		t.logger.Infow("user is sending too many messages", "user_id", userID)
		t.reply(chatID, msgCooldown)
		return
	}

	if update.CallbackQuery != nil {
		t.handleCallback(ctx, update.CallbackQuery)
		return
	}

	msg := update.Message
	switch {
	case msg.IsCommand():
		t.handleCommand(ctx, msg)
	case msg.Text != "":
		t.handleText(ctx, msg)
	default:
		// photos, stickers, voice and the rest
		t.reply(chatID, msgOnlyText)
	}
}

func (t *TelegramBot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	chatID := msg.Chat.ID

	state, err := t.states.Get(ctx, userID)
	if err != nil {
		t.logger.Errorw("failed to load dialogue state", "user_id", userID, "error", err)
		t.reply(chatID, msgInternalError)
		return
	}

	t.logger.Infow("handling command", "command", msg.Command(), "user_id", userID, "phase", state.Phase)

	switch msg.Command() {
	case "start":
		// restart is always allowed and always resets to the first step
		t.startOnboarding(ctx, chatID, userID)
	case "cancel":
		t.cancelOnboarding(ctx, chatID, userID, state)
	case "help", "my_plan", "generate_plan", "profile":
		t.handleMainCommand(ctx, msg, state)
	default:
		t.reply(chatID, msgUnknownCommand)
	}
}

func (t *TelegramBot) handleMainCommand(ctx context.Context, msg *tgbotapi.Message, state State) {
	chatID := msg.Chat.ID

	switch state.Phase {
	case PhaseGenerating:
		t.reply(chatID, msgPleaseWait)
		return
	case PhaseMain:
	default:
		t.reply(chatID, msgProfileFirst)
		return
	}

	switch msg.Command() {
	case "help":
		t.reply(chatID, msgHelp)
	case "my_plan":
		t.handleMyPlan(ctx, chatID, msg.From.ID)
	case "generate_plan":
		t.startPlanRequest(ctx, chatID, msg.From.ID)
	case "profile":
		t.handleProfile(ctx, chatID, msg.From.ID)
	}
}

func (t *TelegramBot) handleText(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	chatID := msg.Chat.ID

	state, err := t.states.Get(ctx, userID)
	if err != nil {
		t.logger.Errorw("failed to load dialogue state", "user_id", userID, "error", err)
		t.reply(chatID, msgInternalError)
		return
	}

	switch state.Phase {
	case PhaseNone:
		t.reply(chatID, msgUseStart)
	case PhaseOnboarding:
		t.handleOnboardingAnswer(ctx, msg, state)
	case PhaseMain:
		t.handleChatRequest(ctx, chatID, userID, msg.Text)
	case PhasePlanRequest:
		t.handlePlanRequest(ctx, chatID, userID, msg.Text)
	case PhaseGenerating:
		t.reply(chatID, msgPleaseWait)
	case PhaseEditing:
		t.handleEditValue(ctx, chatID, userID, msg.Text, state)
	}
}

// reply sends a plain HTML-mode message, logging send failures.
func (t *TelegramBot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	t.send(msg)
}

func (t *TelegramBot) send(c tgbotapi.Chattable) {
	if _, err := t.api.Send(c); err != nil {
		t.logger.Errorw("failed to send message", "error", err)
	}
}

// sendTyping shows the "typing..." chat action during slow calls.
func (t *TelegramBot) sendTyping(chatID int64) {
	if _, err := t.api.Request(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)); err != nil {
		t.logger.Debugw("failed to send chat action", "error", err)
	}
}

// setPhase stores the phase, keeping the rest of the state zeroed.
func (t *TelegramBot) setPhase(ctx context.Context, userID int64, phase Phase) {
	if err := t.states.Set(ctx, userID, State{Phase: phase}); err != nil {
		t.logger.Errorw("failed to store dialogue state", "user_id", userID, "error", err)
	}
}
