package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// buildCompletionKeyboard builds the dismiss control for the completion message.
func buildCompletionKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnClose, buildCompletionCloseCallback()),
		),
	)
}

// newAnswerPrompt builds the reply prompt that asks the user to type an
// answer, the bot-world version of requesting input focus.
func newAnswerPrompt(chatID int64) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, msgAnswerPrompt)
	msg.ReplyMarkup = tgbotapi.ForceReply{ForceReply: true, Selective: true}
	return msg
}
