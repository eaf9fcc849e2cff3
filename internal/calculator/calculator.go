package calculator

import (
	"errors"
	"fmt"
	"math"
)

// Domain errors, distinct from validation errors: they occur only on
// already validated input.
var (
	// ErrDivisionByZero indicates division with a zero divisor
	ErrDivisionByZero = errors.New("division by zero is not allowed")

	// ErrNegativeRoot indicates square root of a negative number
	ErrNegativeRoot = errors.New("square root of a negative number is not allowed")

	// ErrNotFinite indicates the computation produced Inf or NaN
	ErrNotFinite = errors.New("computation produced a non-finite result")
)

// Compute выполняет одну математическую операцию над провалидированными операндами
// Для sqrt operand2 игнорируется, для остальных операций он обязателен
// Результат всегда конечное число: переполнение возвращает ErrNotFinite
func Compute(operation string, operand1 float64, operand2 *float64) (float64, error) {
	var result float64

	switch operation {
	case "add":
		result = operand1 + *operand2
	case "subtract":
		result = operand1 - *operand2
	case "multiply":
		result = operand1 * *operand2
	case "divide":
		if *operand2 == 0 {
			return 0, ErrDivisionByZero
		}
		result = operand1 / *operand2
	case "power":
		result = math.Pow(operand1, *operand2)
	case "sqrt":
		if operand1 < 0 {
			return 0, ErrNegativeRoot
		}
		result = math.Sqrt(operand1)
	default:
		// Не должно достигаться: валидация отклоняет неизвестные операции
		return 0, fmt.Errorf("unknown operation: %q", operation)
	}

	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, ErrNotFinite
	}

	return result, nil
}
