package calculating

import (
	"strings"

	"github.com/vfg2006/profit-manager-api/internal/domain"
)

// ValidationError carrega a lista completa de violações encontradas na
// validação das entradas do cálculo
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "entradas inválidas para o cálculo: " + strings.Join(e.Errors, ", ")
}

// NewValidationError cria um erro de validação a partir do resultado da
// validação
func NewValidationError(result domain.ValidationResult) *ValidationError {
	return &ValidationError{Errors: result.Errors}
}
