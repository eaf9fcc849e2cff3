package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"calcapi/internal/models"
	"calcapi/pkg/api"
)

// InfoHandler обрабатывает запросы информации об API
type InfoHandler struct {
	logger  *slog.Logger
	version string
}

// NewInfoHandler создает новый handler для информации об API
func NewInfoHandler(logger *slog.Logger, version string) *InfoHandler {
	return &InfoHandler{
		logger:  logger,
		version: version,
	}
}

// Info обрабатывает GET /api/info
// Статичное описание поддерживаемых операций и endpoints,
// без обращений к хранилищам
func (h *InfoHandler) Info(w http.ResponseWriter, r *http.Request) {
	resp := api.InfoResponse{
		APIName: "Calculator History API",
		Version: h.version,
		Endpoints: map[string]string{
			"POST /api/calculate": "Perform a mathematical operation",
			"GET /api/history":    "Query the operation history",
			"POST /api/register":  "Register a new user",
			"POST /api/login":     "Verify user credentials",
			"GET /api/info":       "API information",
		},
		SupportedOperations: models.Operations,
		Timestamp:           formatTime(time.Now()),
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}
