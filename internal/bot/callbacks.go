package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"studybot/internal/gen"
	"studybot/internal/models"
)

// handleCallbackQuery processes inline keyboard button clicks
func (b *Bot) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	// Recover from panics
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Recovered from panic in handleCallbackQuery", zap.Any("panic", r))
		}
	}()

	// Answer the callback query to remove the loading state
	callback := tgbotapi.NewCallback(query.ID, "")
	if _, err := b.sender.Request(callback); err != nil {
		b.logger.Warn("Failed to answer callback query", zap.Error(err))
	}

	chatID := callbackChatID(query)
	if chatID == 0 {
		return
	}

	// Callback payload format: "mode|flashcards"
	parts := strings.SplitN(query.Data, "|", 2)
	if len(parts) != 2 || parts[0] != "mode" {
		b.editOrSend(query, chatID, "Unrecognized action.")
		return
	}

	mode, ok := models.ParseMode(parts[1])
	if !ok {
		b.editOrSend(query, chatID, "Unrecognized action.")
		return
	}

	b.handleModeSelected(query, query.From.ID, chatID, mode)
}

// handleModeSelected triggers a dispatch when input is pending, or asks
// the user to send content first. TakeInput clears the pending input
// before generation starts, so a repeated tap on the same button can
// never dispatch the same content twice.
func (b *Bot) handleModeSelected(query *tgbotapi.CallbackQuery, userID, chatID int64, mode models.Mode) {
	rawInput, ok := b.sessions.TakeInput(chatID, userID)
	if !ok {
		b.editOrSend(query, chatID, "No input found to process. Please send me a text, image, or PDF first.")
		return
	}

	b.dispatch(query, userID, chatID, mode, rawInput)
}

// dispatch runs the single orchestrated sequence: generate, persist,
// deliver. Persistence failures are logged and never surface; delivery
// to the user takes priority over durability.
func (b *Bot) dispatch(query *tgbotapi.CallbackQuery, userID, chatID int64, mode models.Mode, rawInput string) {
	b.editOrSend(query, chatID, fmt.Sprintf("Generating %s — please wait...", mode))

	genCtx, cancel := context.WithTimeout(context.Background(), generateTimeout)
	result := b.generator.Generate(genCtx, mode, rawInput)
	cancel()

	// Error notices are delivered but not persisted
	if !gen.IsError(result) {
		b.saveGeneration(userID, mode, rawInput, result)
	}

	b.deliver(chatID, mode, result)
}

// saveGeneration writes the record, logging any failure
func (b *Bot) saveGeneration(userID int64, mode models.Mode, rawInput, result string) {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	record := models.GenerationRecord{
		UserID:     userID,
		Task:       mode,
		RawText:    rawInput,
		ResultText: result,
		CreatedAt:  time.Now().UTC(),
	}
	if err := b.db.SaveGeneration(ctx, record); err != nil {
		b.logger.Error("Failed to save generation",
			zap.Int64("user_id", userID),
			zap.String("task", string(mode)),
			zap.Error(err),
		)
		return
	}

	b.logger.Info("Generation saved",
		zap.Int64("user_id", userID),
		zap.String("task", string(mode)),
	)
}

// deliver sends the generated text inline, or as a named file when it
// would not fit in a single message
func (b *Bot) deliver(chatID int64, mode models.Mode, result string) {
	if len(result) > inlineLimit {
		name := fmt.Sprintf("%s.txt", mode)
		b.sendDocument(chatID, name, []byte(result))

		msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("%s sent as a file.", capitalize(string(mode))))
		b.sendMessage(msg)
		return
	}

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("%s\n\n%s", capitalize(string(mode)), result))
	b.sendMessage(msg)
}

// callbackChatID resolves the conversation a callback belongs to
func callbackChatID(query *tgbotapi.CallbackQuery) int64 {
	if query.Message != nil && query.Message.Chat != nil {
		return query.Message.Chat.ID
	}
	return 0
}
