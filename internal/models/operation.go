package models

import "time"

// Поддерживаемые математические операции
const (
	OpAdd      = "add"
	OpSubtract = "subtract"
	OpMultiply = "multiply"
	OpDivide   = "divide"
	OpPower    = "power"
	OpSqrt     = "sqrt"
)

// Operations список всех поддерживаемых операций
var Operations = []string{OpAdd, OpSubtract, OpMultiply, OpDivide, OpPower, OpSqrt}

// IsValidOperation проверяет, что имя операции входит в список поддерживаемых
func IsValidOperation(op string) bool {
	for _, known := range Operations {
		if op == known {
			return true
		}
	}
	return false
}

// Operation представляет одну выполненную операцию в истории
// Запись иммутабельна: после создания никогда не изменяется и не удаляется
type Operation struct {
	ID        string    `json:"operation_id"` // UUID операции
	Operation string    `json:"operation"`    // имя операции (add, subtract, ...)
	Operand1  float64   `json:"operand1"`     // первый операнд
	Operand2  *float64  `json:"operand2"`     // второй операнд, nil для sqrt
	Result    float64   `json:"result"`       // результат вычисления
	Timestamp time.Time `json:"timestamp"`    // момент вычисления, UTC
	UserID    string    `json:"user_id"`      // опциональный ID пользователя
}
