package bot

import (
	"fmt"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"studybot/internal/extract"
	"studybot/internal/gen"
	"studybot/internal/storage"
)

// NewBot creates a new Telegram bot
func NewBot(token string, db storage.Storage, extractor *extract.Extractor, generator gen.Generator, sessionTTL time.Duration, workerLimit int, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		logger.Error("Failed to create bot API", zap.Error(err))
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	logger.Info("Bot created", zap.String("bot_username", api.Self.UserName))

	return &Bot{
		api:        api,
		sender:     api,
		db:         db,
		extractor:  extractor,
		generator:  generator,
		sessions:   NewSessionStore(sessionTTL),
		queue:      newChatQueue(workerLimit),
		httpClient: &http.Client{Timeout: downloadTimeout},
		logger:     logger,
	}, nil
}
