package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"calcapi/internal/models"
	"calcapi/pkg/api"
)

// Машиночитаемые коды ошибок единого формата ответа
const (
	CodeValidation  = "VALIDATION_ERROR"
	CodeCalculation = "CALCULATION_ERROR"
	CodeAuthFailed  = "AUTHENTICATION_FAILED"
	CodeUserExists  = "USER_EXISTS"
	CodeStorage     = "STORAGE_ERROR"
	CodeInternal    = "INTERNAL_ERROR"
)

// timeLayout формат времени на проводе: ISO-8601 UTC с микросекундной точностью
const timeLayout = "2006-01-02T15:04:05.000000Z07:00"

// formatTime приводит время к UTC и форматирует для ответа API
func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// toOperationResponse преобразует запись истории в DTO ответа
func toOperationResponse(op *models.Operation) api.OperationResponse {
	return api.OperationResponse{
		OperationID: op.ID,
		Operation:   op.Operation,
		Operand1:    op.Operand1,
		Operand2:    op.Operand2,
		Result:      op.Result,
		Timestamp:   formatTime(op.Timestamp),
		UserID:      op.UserID,
		Status:      "success",
	}
}

// sendJSON отправляет JSON ответ
func sendJSON(logger *slog.Logger, w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой единого формата
// Сообщение не должно содержать детали backend-хранилища или хеши
func sendError(logger *slog.Logger, w http.ResponseWriter, message string, statusCode int, errorCode string) {
	resp := api.ErrorResponse{
		Error:     message,
		Status:    "error",
		ErrorCode: errorCode,
	}
	sendJSON(logger, w, resp, statusCode)
}
