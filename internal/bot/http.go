package bot

import (
	"encoding/json"
	"fmt"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// HTTPServer handles HTTP requests: health checks and, in webhook
// mode, the Telegram update endpoint
type HTTPServer struct {
	bot         *Bot
	webhookMode bool
}

// NewHTTPServer creates a new HTTP server wrapper for the bot
func NewHTTPServer(bot *Bot, webhookMode bool) *HTTPServer {
	return &HTTPServer{
		bot:         bot,
		webhookMode: webhookMode,
	}
}

// RegisterRoutes registers the bot routes on the provided mux
func (hs *HTTPServer) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/health", hs.handleHealth)
	mux.HandleFunc("/", hs.handleRoot)
	mux.HandleFunc("/telegram-webhook", hs.handleWebhook)
}

func (hs *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "OK")
}

func (hs *HTTPServer) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	mode := "polling"
	if hs.webhookMode {
		mode = "webhook"
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "Study Assistant Bot is running (mode: %s)", mode)
}

// handleWebhook decodes one Telegram update and hands it off. The
// update is enqueued, not processed inline, so Telegram gets its
// acknowledgment right away. Unparseable payloads are logged and
// dropped, but still acknowledged with a 200: Telegram keeps
// redelivering anything answered with a non-2xx status.
func (hs *HTTPServer) handleWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var update tgbotapi.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		hs.bot.logger.Warn("Dropping undecodable webhook update", zap.Error(err))
		w.WriteHeader(http.StatusOK)
		return
	}

	hs.bot.HandleWebhookUpdate(update)

	w.WriteHeader(http.StatusOK)
}
