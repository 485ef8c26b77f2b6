package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// handleMessage processes a single message
func (b *Bot) handleMessage(message *tgbotapi.Message) {
	// Recover from panics to prevent bot crashes
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Recovered from panic in handleMessage", zap.Any("panic", r))
			msg := tgbotapi.NewMessage(message.Chat.ID, "An error occurred while processing your request. Please try again.")
			b.sendMessage(msg)
		}
	}()

	if message.From == nil {
		return
	}
	userID := message.From.ID
	chatID := message.Chat.ID

	// Handle commands
	if message.IsCommand() {
		switch message.Command() {
		case "start":
			b.handleStart(message)
		case "cancel":
			b.handleCancel(message)
		default:
			msg := tgbotapi.NewMessage(chatID, "Unknown command. Use /start to see what I can do.")
			b.sendMessage(msg)
		}
		return
	}

	switch {
	case len(message.Photo) > 0:
		b.handlePhoto(message)
	case message.Document != nil:
		b.handleDocument(message)
	case message.Text != "":
		b.processText(userID, chatID, message.Text)
	default:
		// Not a content kind we understand; drop without touching
		// the session
		b.logger.Debug("Ignoring unsupported message kind",
			zap.Int64("chat_id", chatID),
		)
	}
}

// processText stores the text as the session's pending input and offers
// the three mode buttons
func (b *Bot) processText(userID, chatID int64, text string) {
	session := b.sessions.Get(chatID, userID)
	session.PendingInput = text
	b.askMode(chatID)
}

// handlePhoto downloads the highest-resolution photo variant and runs
// it through OCR
func (b *Bot) handlePhoto(message *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), downloadTimeout)
	defer cancel()

	// The sizes are ordered smallest first; the last is the largest
	photo := message.Photo[len(message.Photo)-1]
	data, err := b.downloadFile(ctx, photo.FileID)
	if err != nil {
		b.logger.Warn("Failed to download photo",
			zap.Int64("chat_id", message.Chat.ID),
			zap.Error(err),
		)
		msg := tgbotapi.NewMessage(message.Chat.ID, "Couldn't extract text from the image.")
		b.sendMessage(msg)
		return
	}

	b.processPhoto(message.From.ID, message.Chat.ID, data)
}

// processPhoto extracts text from image bytes. An empty extraction
// leaves the session untouched.
func (b *Bot) processPhoto(userID, chatID int64, data []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), extractTimeout)
	defer cancel()

	text := b.extractor.FromImage(ctx, data)
	if text == "" {
		msg := tgbotapi.NewMessage(chatID, "Couldn't extract text from the image.")
		b.sendMessage(msg)
		return
	}

	b.processText(userID, chatID, text)
}

// handleDocument downloads the attached document and extracts its text
func (b *Bot) handleDocument(message *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), downloadTimeout)
	defer cancel()

	doc := message.Document
	data, err := b.downloadFile(ctx, doc.FileID)
	if err != nil {
		b.logger.Warn("Failed to download document",
			zap.Int64("chat_id", message.Chat.ID),
			zap.String("file_name", doc.FileName),
			zap.Error(err),
		)
		msg := tgbotapi.NewMessage(message.Chat.ID, "Couldn't extract text from the document.")
		b.sendMessage(msg)
		return
	}

	b.processDocument(message.From.ID, message.Chat.ID, doc.MimeType, doc.FileName, data)
}

// processDocument extracts text from document bytes. PDFs go through
// the PDF text layer; anything else is decoded as UTF-8 text on a
// best-effort basis. An empty extraction leaves the session untouched.
func (b *Bot) processDocument(userID, chatID int64, mimeType, fileName string, data []byte) {
	if isPDF(mimeType, fileName) {
		ctx, cancel := context.WithTimeout(context.Background(), extractTimeout)
		defer cancel()

		text := b.extractor.FromPDF(ctx, data)
		if text == "" {
			msg := tgbotapi.NewMessage(chatID, "Couldn't extract text from the document.")
			b.sendMessage(msg)
			return
		}
		b.processText(userID, chatID, text)
		return
	}

	text := b.extractor.FromPlainText(data)
	if text == "" {
		if len(data) > 0 {
			msg := tgbotapi.NewMessage(chatID, "Unsupported document type. Please send a PDF or a plain text file.")
			b.sendMessage(msg)
			return
		}
		msg := tgbotapi.NewMessage(chatID, "Couldn't extract text from the document.")
		b.sendMessage(msg)
		return
	}

	b.processText(userID, chatID, text)
}

// isPDF recognizes a PDF by declared MIME type or file-name suffix
func isPDF(mimeType, fileName string) bool {
	if strings.Contains(strings.ToLower(mimeType), "pdf") {
		return true
	}
	return strings.HasSuffix(strings.ToLower(fileName), ".pdf")
}

// askMode offers the three processing modes for the captured input
func (b *Bot) askMode(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, "Choose how you want me to process your input:")
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Flashcards", "mode|flashcards"),
			tgbotapi.NewInlineKeyboardButtonData("Notes", "mode|notes"),
			tgbotapi.NewInlineKeyboardButtonData("Quiz", "mode|quiz"),
		),
	)
	b.sendMessage(msg)
}
