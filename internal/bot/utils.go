package bot

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// sendMessage sends a message, logging delivery failures
func (b *Bot) sendMessage(msg tgbotapi.MessageConfig) {
	if _, err := b.sender.Send(msg); err != nil {
		b.logger.Error("Failed to send message",
			zap.Int64("chat_id", msg.ChatID),
			zap.Error(err),
		)
	}
}

// sendDocument sends a named file attachment
func (b *Bot) sendDocument(chatID int64, name string, data []byte) {
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: name, Bytes: data})
	if _, err := b.sender.Send(doc); err != nil {
		b.logger.Error("Failed to send document",
			zap.Int64("chat_id", chatID),
			zap.String("name", name),
			zap.Error(err),
		)
	}
}

// editOrSend edits the message the callback button was attached to, or
// sends a new message when the original is no longer editable
func (b *Bot) editOrSend(query *tgbotapi.CallbackQuery, chatID int64, text string) {
	if query != nil && query.Message != nil {
		edit := tgbotapi.NewEditMessageText(chatID, query.Message.MessageID, text)
		if _, err := b.sender.Send(edit); err == nil {
			return
		}
	}

	b.sendMessage(tgbotapi.NewMessage(chatID, text))
}

// downloadFile fetches a Telegram file's contents
func (b *Bot) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	if b.api == nil {
		return nil, fmt.Errorf("bot API not available")
	}

	url, err := b.api.GetFileDirectURL(fileID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve file URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d downloading file", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read file body: %w", err)
	}
	return data, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
