package validation

import (
	"fmt"
	"sort"
	"strings"
)

// Errors накапливает ошибки валидации по именам полей.
// Валидация проверяет все поля запроса и возвращает полный список
// нарушений, а не только первое.
type Errors map[string]string

// Add добавляет ошибку для поля
func (e Errors) Add(field, message string) {
	e[field] = message
}

// Error реализует интерфейс error
// Поля перечисляются в детерминированном порядке
func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e[field]))
	}
	return strings.Join(parts, "; ")
}

// ErrOrNil возвращает nil, если ошибок не накопилось
func (e Errors) ErrOrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
