package validation

import (
	"fmt"
	"math"
	"strings"

	"calcapi/internal/models"
	"calcapi/pkg/api"
)

// ValidateCalculation проверяет запрос на вычисление
// operand2 обязателен для всех операций кроме sqrt; для sqrt он игнорируется
func ValidateCalculation(req *api.CalculateRequest) error {
	errs := Errors{}

	if req.Operation == "" {
		errs.Add("operation", "operation is required")
	} else if !models.IsValidOperation(req.Operation) {
		errs.Add("operation", fmt.Sprintf("operation must be one of: %s", strings.Join(models.Operations, ", ")))
	}

	if req.Operand1 == nil {
		errs.Add("operand1", "operand1 is required and must be a number")
	} else if !isFinite(*req.Operand1) {
		errs.Add("operand1", "operand1 must be a finite number")
	}

	if req.Operation != models.OpSqrt {
		if req.Operand2 == nil {
			errs.Add("operand2", "operand2 is required and must be a number")
		} else if !isFinite(*req.Operand2) {
			errs.Add("operand2", "operand2 must be a finite number")
		}
	}

	return errs.ErrOrNil()
}

// isFinite проверяет, что значение не NaN и не бесконечность
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
