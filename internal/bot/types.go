package bot

import (
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"studybot/internal/extract"
	"studybot/internal/gen"
	"studybot/internal/storage"
)

// Operation timeouts and output sizing
const (
	downloadTimeout = 30 * time.Second
	extractTimeout  = 30 * time.Second
	generateTimeout = 60 * time.Second
	saveTimeout     = 10 * time.Second

	// Results longer than this are delivered as a file attachment to
	// stay under Telegram's single-message limit with margin
	inlineLimit = 1900
)

// sender is the outbound half of the Telegram API. *tgbotapi.BotAPI
// satisfies it; tests substitute their own implementation.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Bot represents the Telegram bot wrapper
type Bot struct {
	api        *tgbotapi.BotAPI
	sender     sender
	db         storage.Storage
	extractor  *extract.Extractor
	generator  gen.Generator
	sessions   *SessionStore
	queue      *chatQueue
	httpClient *http.Client
	logger     *zap.Logger
}

// Session tracks the per-conversation state: the most recent extracted
// input awaiting a mode selection. Sessions are only touched from their
// chat's serial queue, so no locking is needed beyond the store's own.
type Session struct {
	ChatID       int64
	UserID       int64
	PendingInput string
}
