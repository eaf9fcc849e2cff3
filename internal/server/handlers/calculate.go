package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"calcapi/internal/calculator"
	"calcapi/internal/models"
	"calcapi/internal/server/metrics"
	"calcapi/internal/server/storage"
	"calcapi/internal/validation"
	"calcapi/pkg/api"
)

// CalcHandler обрабатывает запросы вычислений и истории операций
type CalcHandler struct {
	logger  *slog.Logger
	history storage.HistoryStorage
}

// NewCalcHandler создает новый handler для вычислений
func NewCalcHandler(logger *slog.Logger, history storage.HistoryStorage) *CalcHandler {
	return &CalcHandler{
		logger:  logger,
		history: history,
	}
}

// Calculate обрабатывает POST /api/calculate
// Валидация → вычисление → запись в историю → ответ
// При любой ошибке валидации или вычисления запись в историю не выполняется
func (h *CalcHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode calculate request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest, CodeValidation)
		return
	}

	if err := validation.ValidateCalculation(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid calculate request", slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusBadRequest, CodeValidation)
		return
	}

	// Для sqrt второй операнд игнорируется, даже если клиент его прислал
	operand2 := req.Operand2
	if req.Operation == models.OpSqrt {
		operand2 = nil
	}

	result, err := calculator.Compute(req.Operation, *req.Operand1, operand2)
	if err != nil {
		if errors.Is(err, calculator.ErrDivisionByZero) ||
			errors.Is(err, calculator.ErrNegativeRoot) ||
			errors.Is(err, calculator.ErrNotFinite) {
			h.logger.WarnContext(ctx, "calculation rejected",
				slog.String("operation", req.Operation),
				slog.Any("error", err))
			metrics.CalculationErrors.WithLabelValues(req.Operation).Inc()
			sendError(h.logger, w, err.Error(), http.StatusBadRequest, CodeCalculation)
			return
		}
		h.logger.ErrorContext(ctx, "unexpected calculation error", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError, CodeInternal)
		return
	}

	op := &models.Operation{
		ID:        uuid.New().String(),
		Operation: req.Operation,
		Operand1:  *req.Operand1,
		Operand2:  operand2,
		Result:    result,
		Timestamp: time.Now().UTC(),
		UserID:    req.UserID,
	}

	// Вычисление без долговечной записи в историю не считается успехом:
	// клиент должен иметь возможность перечитать результат через /api/history
	if err := h.history.Append(ctx, op); err != nil {
		h.logger.ErrorContext(ctx, "failed to append operation to history",
			slog.String("operation_id", op.ID),
			slog.Any("error", err))
		sendError(h.logger, w, "failed to save operation to history", http.StatusInternalServerError, CodeStorage)
		return
	}

	metrics.CalculationsTotal.WithLabelValues(req.Operation).Inc()

	h.logger.InfoContext(ctx, "operation saved to history",
		slog.String("operation_id", op.ID),
		slog.String("operation", op.Operation))

	sendJSON(h.logger, w, toOperationResponse(op), http.StatusOK)
}

// History обрабатывает GET /api/history?user_id=&limit=&operation_type=
func (h *CalcHandler) History(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	params := r.URL.Query()
	query, err := validation.ValidateHistoryQuery(
		params.Get("user_id"),
		params.Get("limit"),
		params.Get("operation_type"),
	)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid history query", slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusBadRequest, CodeValidation)
		return
	}

	ops, err := h.history.Query(ctx, storage.HistoryFilter{
		UserID:        query.UserID,
		OperationType: query.OperationType,
		Limit:         query.Limit,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to query history", slog.Any("error", err))
		sendError(h.logger, w, "failed to retrieve operation history", http.StatusInternalServerError, CodeStorage)
		return
	}

	operations := make([]api.OperationResponse, 0, len(ops))
	for _, op := range ops {
		operations = append(operations, toOperationResponse(op))
	}

	h.logger.InfoContext(ctx, "retrieved operations from history", slog.Int("count", len(operations)))

	resp := api.HistoryResponse{
		TotalOperations: len(operations),
		Operations:      operations,
		RetrievedAt:     formatTime(time.Now()),
		Status:          "success",
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}
