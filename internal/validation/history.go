package validation

import (
	"fmt"
	"strconv"
	"strings"

	"calcapi/internal/models"
)

const (
	// DefaultHistoryLimit лимит записей по умолчанию
	DefaultHistoryLimit = 50
	// MinHistoryLimit минимально допустимый лимит
	MinHistoryLimit = 1
	// MaxHistoryLimit максимально допустимый лимит
	MaxHistoryLimit = 1000
)

// HistoryQuery представляет провалидированные параметры запроса истории
type HistoryQuery struct {
	UserID        string // фильтр по пользователю, пустая строка — без фильтра
	OperationType string // фильтр по типу операции, пустая строка — без фильтра
	Limit         int    // максимум записей в ответе
}

// ValidateHistoryQuery проверяет query-параметры запроса истории
// limit вне диапазона [1,1000] отклоняется, а не приводится к границе
func ValidateHistoryQuery(userID, limitStr, operationType string) (*HistoryQuery, error) {
	errs := Errors{}

	limit := DefaultHistoryLimit
	if limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			errs.Add("limit", "limit must be an integer")
		} else if parsed < MinHistoryLimit || parsed > MaxHistoryLimit {
			errs.Add("limit", fmt.Sprintf("limit must be between %d and %d", MinHistoryLimit, MaxHistoryLimit))
		} else {
			limit = parsed
		}
	}

	if operationType != "" && !models.IsValidOperation(operationType) {
		errs.Add("operation_type", fmt.Sprintf("operation_type must be one of: %s", strings.Join(models.Operations, ", ")))
	}

	if err := errs.ErrOrNil(); err != nil {
		return nil, err
	}

	return &HistoryQuery{
		UserID:        userID,
		OperationType: operationType,
		Limit:         limit,
	}, nil
}
