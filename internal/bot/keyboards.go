package bot

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"fit-coach/internal/models"
	"fit-coach/internal/validation"
)

func genderKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("Мужской"),
			tgbotapi.NewKeyboardButton("Женский"),
		),
	)
	kb.OneTimeKeyboard = true
	return kb
}

// levelKeyboard builds one button per known activity level.
func levelKeyboard(levels []models.ActivityLevel) tgbotapi.ReplyKeyboardMarkup {
	rows := make([][]tgbotapi.KeyboardButton, 0, len(levels))
	for _, lvl := range levels {
		label := fmt.Sprintf("%d — %s", lvl.Level, lvl.Name)
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(label)))
	}
	kb := tgbotapi.NewReplyKeyboard(rows...)
	kb.OneTimeKeyboard = true
	return kb
}

func removeKeyboard() tgbotapi.ReplyKeyboardRemove {
	return tgbotapi.NewRemoveKeyboard(false)
}

// profileEditKeyboard offers one inline button per editable field.
func profileEditKeyboard() tgbotapi.InlineKeyboardMarkup {
	fields := []validation.Field{
		validation.FieldAge,
		validation.FieldGender,
		validation.FieldHeight,
		validation.FieldWeight,
		validation.FieldActivityLevel,
		validation.FieldGoal,
	}
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, (len(fields)+1)/2)
	for i := 0; i < len(fields); i += 2 {
		row := []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("Изменить "+fields[i].DisplayName(), "edit:"+string(fields[i])),
		}
		if i+1 < len(fields) {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData("Изменить "+fields[i+1].DisplayName(), "edit:"+string(fields[i+1])))
		}
		rows = append(rows, row)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func renderProfile(u *models.User) string {
	var b strings.Builder
	b.WriteString("<b>Твой профиль</b>\n\n")
	fmt.Fprintf(&b, "Возраст: %d\n", u.Age)
	fmt.Fprintf(&b, "Пол: %s\n", genderLabel(u.Gender))
	fmt.Fprintf(&b, "Рост: %g см\n", u.HeightCm)
	fmt.Fprintf(&b, "Вес: %g кг\n", u.WeightKg)
	if u.LevelInfo != nil {
		fmt.Fprintf(&b, "Уровень активности: %d — %s\n", u.LevelInfo.Level, u.LevelInfo.Name)
	} else {
		fmt.Fprintf(&b, "Уровень активности: %d\n", u.ActivityLevel)
	}
	fmt.Fprintf(&b, "Цель: %s\n", u.Goal)
	return b.String()
}

func genderLabel(g string) string {
	switch g {
	case "male":
		return "мужской"
	case "female":
		return "женский"
	default:
		return g
	}
}
