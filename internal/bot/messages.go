package bot

const (
	msgGreeting = "Привет! Я твой персональный фитнес-тренер. 💪\n" +
		"Чтобы составить для тебя программу тренировок, мне нужно узнать тебя поближе."
	msgAskAge      = "Сколько тебе лет?"
	msgAskGender   = "Укажи свой пол:"
	msgAskHeight   = "Какой у тебя рост (в сантиметрах)?"
	msgAskWeight   = "Какой у тебя вес (в килограммах)?"
	msgAskLevel    = "Выбери свой уровень активности:"
	msgAskGoal     = "Какая у тебя цель? (например: похудеть, набрать массу, поддерживать форму)"
	msgProfileDone = "Отлично, профиль заполнен! ✅\n\n" + msgHelp

	msgHelp = "Доступные команды:\n" +
		"/my_plan — показать текущий план тренировок\n" +
		"/generate_plan — сгенерировать новый план\n" +
		"/profile — посмотреть и изменить профиль\n" +
		"/start — заполнить профиль заново\n" +
		"/help — эта справка\n\n" +
		"Или просто напиши вопрос — я отвечу как тренер."

	msgPleaseWait   = "Пожалуйста, подожди, я ещё работаю над предыдущим запросом. ⏳"
	msgCooldown     = "Слишком много сообщений, подожди пару секунд. 🙏"
	msgOnlyText     = "Я понимаю только текст. Напиши сообщение словами."
	msgUseStart     = "Давай сначала познакомимся — отправь /start."
	msgProfileFirst = "Сначала нужно заполнить профиль — отправь /start."

	msgCancelDenied = "Отменять нечего: сейчас нет заполнения анкеты."
	msgCancelNoUser = "Отменить нельзя: профиль ещё не создан. Заполни анкету до конца."
	msgCancelled    = "Хорошо, оставил прежний профиль без изменений."

	msgPlanMissing    = "У тебя ещё нет плана тренировок. Отправь /generate_plan, чтобы создать его."
	msgAskPlanWish    = "Напиши пожелания к плану (или «нет», если особых пожеланий нет):"
	msgGenerating     = "Готовлю план, это может занять минуту... 🏋️"
	msgGenFailed      = "Не получилось сгенерировать ответ, попробуй ещё раз чуть позже."
	msgInternalError  = "Что-то пошло не так, попробуй ещё раз."
	msgUnknownCommand = "Не знаю такой команды. Отправь /help, чтобы увидеть список."

	msgEditSaved = "Готово, обновил профиль. ✅"
)
