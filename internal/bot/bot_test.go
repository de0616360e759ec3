package bot

import (
	"context"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"fit-coach/internal/models"
	"fit-coach/pkg/logger"
)

// fakeSender records outgoing messages instead of hitting Telegram.
type fakeSender struct {
	mu   sync.Mutex
	sent []tgbotapi.Chattable
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, nil
}

func (f *fakeSender) Request(tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	return &tgbotapi.APIResponse{Ok: true}, nil
}

// texts returns the text of every sent message, in order.
func (f *fakeSender) texts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, c := range f.sent {
		if m, ok := c.(tgbotapi.MessageConfig); ok {
			out = append(out, m.Text)
		}
	}
	return out
}

func (f *fakeSender) lastText() string {
	texts := f.texts()
	if len(texts) == 0 {
		return ""
	}
	return texts[len(texts)-1]
}

func (f *fakeSender) contains(text string) bool {
	for _, s := range f.texts() {
		if s == text {
			return true
		}
	}
	return false
}

// fakeBackend is an in-memory Backend returning domain error kinds.
type fakeBackend struct {
	mu     sync.Mutex
	users  map[int64]*models.User
	levels []models.ActivityLevel
	plans  map[int64]string

	createCalls int
	updateCalls int
	chatCalls   int
	genCalls    int
	lastWishes  string
	lastPatch   *models.UserUpdate

	chatAnswer string
	chatErr    error
	genErr     error
	onChat     func() // runs inside Chat, before returning
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		users: make(map[int64]*models.User),
		plans: make(map[int64]string),
		levels: []models.ActivityLevel{
			{Level: 1, Name: "Минимальный", Description: "Сидячий образ жизни"},
			{Level: 2, Name: "Лёгкий", Description: "Тренировки 1-2 раза в неделю"},
			{Level: 3, Name: "Средний", Description: "Тренировки 3-4 раза в неделю"},
		},
		chatAnswer: "ответ тренера",
	}
}

func (b *fakeBackend) GetUser(_ context.Context, userID int64) (*models.User, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	u, ok := b.users[userID]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (b *fakeBackend) CreateUser(_ context.Context, input *models.UserInput) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.createCalls++
	if _, ok := b.users[input.ID]; ok {
		return models.ErrAlreadyExists
	}
	b.users[input.ID] = &models.User{
		ID:            input.ID,
		Username:      input.Username,
		Age:           input.Age,
		WeightKg:      input.WeightKg,
		HeightCm:      input.HeightCm,
		Gender:        input.Gender,
		Goal:          input.Goal,
		ActivityLevel: input.ActivityLevel,
	}
	return nil
}

func (b *fakeBackend) UpdateUser(_ context.Context, userID int64, patch *models.UserUpdate) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.updateCalls++
	b.lastPatch = patch
	u, ok := b.users[userID]
	if !ok {
		return models.ErrNotFound
	}
	if patch.Username != nil {
		u.Username = *patch.Username
	}
	if patch.Age != nil {
		u.Age = *patch.Age
	}
	if patch.WeightKg != nil {
		u.WeightKg = *patch.WeightKg
	}
	if patch.HeightCm != nil {
		u.HeightCm = *patch.HeightCm
	}
	if patch.Gender != nil {
		u.Gender = *patch.Gender
	}
	if patch.Goal != nil {
		u.Goal = *patch.Goal
	}
	if patch.ActivityLevel != nil {
		u.ActivityLevel = *patch.ActivityLevel
	}
	return nil
}

func (b *fakeBackend) GetActivityLevels(context.Context) ([]models.ActivityLevel, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.ActivityLevel(nil), b.levels...), nil
}

func (b *fakeBackend) GetUserPlan(_ context.Context, userID int64) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	plan, ok := b.plans[userID]
	if !ok {
		return "", models.ErrNotFound
	}
	return plan, nil
}

func (b *fakeBackend) GeneratePlan(_ context.Context, userID int64, extraRequest string) error {
	b.mu.Lock()
	b.genCalls++
	b.lastWishes = extraRequest
	err := b.genErr
	if err == nil {
		b.plans[userID] = "понедельник: отдых"
	}
	b.mu.Unlock()
	return err
}

func (b *fakeBackend) Chat(_ context.Context, _ int64, _ string) (string, error) {
	b.mu.Lock()
	b.chatCalls++
	hook := b.onChat
	answer, err := b.chatAnswer, b.chatErr
	b.mu.Unlock()
	if hook != nil {
		hook()
	}
	return answer, err
}

// allowAll disables throttling so tests can drive rapid sequences.
type allowAll struct{}

func (allowAll) Allow(context.Context, int64) (bool, error) { return true, nil }

func newTestBot(backend Backend) (*TelegramBot, *fakeSender) {
	sender := &fakeSender{}
	return &TelegramBot{
		api:      sender,
		backend:  backend,
		states:   NewMemoryStore(),
		throttle: allowAll{},
		logger:   logger.NewNop(),
	}, sender
}

func textUpdate(userID int64, text string) tgbotapi.Update {
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			From: &tgbotapi.User{ID: userID, UserName: "tester"},
			Chat: &tgbotapi.Chat{ID: userID},
			Text: text,
		},
	}
}

func commandUpdate(userID int64, command string) tgbotapi.Update {
	text := "/" + command
	update := textUpdate(userID, text)
	update.Message.Entities = []tgbotapi.MessageEntity{
		{Type: "bot_command", Offset: 0, Length: len(text)},
	}
	return update
}

func photoUpdate(userID int64) tgbotapi.Update {
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			From:  &tgbotapi.User{ID: userID},
			Chat:  &tgbotapi.Chat{ID: userID},
			Photo: []tgbotapi.PhotoSize{{FileID: "photo"}},
		},
	}
}

func callbackUpdate(userID int64, data string) tgbotapi.Update {
	return tgbotapi.Update{
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:      "cb",
			From:    &tgbotapi.User{ID: userID},
			Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: userID}},
			Data:    data,
		},
	}
}

func mustState(tb *TelegramBot, userID int64) State {
	state, _ := tb.states.Get(context.Background(), userID)
	return state
}
