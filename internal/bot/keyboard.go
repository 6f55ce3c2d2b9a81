package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// mainKeyboard постоянная клавиатура с основными командами
func mainKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("/log_water"),
			tgbotapi.NewKeyboardButton("/log_food"),
			tgbotapi.NewKeyboardButton("/log_workout"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("/check_progress"),
			tgbotapi.NewKeyboardButton("/water_graph"),
			tgbotapi.NewKeyboardButton("/recommend"),
		),
	)
	keyboard.ResizeKeyboard = true
	return keyboard
}
