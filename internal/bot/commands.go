package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// handleStart shows the welcome message
func (b *Bot) handleStart(message *tgbotapi.Message) {
	text := `Hello! Send me text, an image, or a PDF and I'll help convert it into flashcards, notes, or a quiz.

Commands:
/cancel - Discard the input you sent and start over`

	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	b.sendMessage(msg)
}

// handleCancel discards any pending input for the chat
func (b *Bot) handleCancel(message *tgbotapi.Message) {
	if _, ok := b.sessions.TakeInput(message.Chat.ID, message.From.ID); !ok {
		msg := tgbotapi.NewMessage(message.Chat.ID, "Nothing to cancel. Send me text, an image, or a PDF.")
		b.sendMessage(msg)
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, "Cancelled. Send me new content when you're ready.")
	b.sendMessage(msg)
}
