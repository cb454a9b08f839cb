package metric

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de indicadores
var (
	// Erros de validação
	ErrUnitRequired    = errors.New("unidade do indicador é obrigatória")
	ErrNegativeTarget  = errors.New("metas do indicador não podem ser negativas")
	ErrInvalidCategory = errors.New("categoria de indicador inválida")
	ErrTypeRequired    = errors.New("tipo do indicador é obrigatório")

	// Violação de invariante: mínima <= padrão <= superação
	ErrTierOrderViolated = errors.New("metas fora de ordem: mínima deve ser <= padrão e padrão <= superação")

	// Erros de consulta
	ErrMetricNotFound = errors.New("indicador não encontrado")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
	ErrGenerateID        = errors.New("erro ao gerar identificador do indicador")
)

// MetricError é um erro com contexto adicional para indicadores
type MetricError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	MetricID string // ID do indicador envolvido (quando aplicável)
	Details  string // Detalhes adicionais
}

// Error implementa a interface error
func (e *MetricError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *MetricError) Unwrap() error {
	return e.Err
}

// NewMetricError cria um novo MetricError
func NewMetricError(err error, code string, details string) *MetricError {
	return &MetricError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// IsValidationError verifica se o erro é de validação de entrada
func IsValidationError(err error) bool {
	return errors.Is(err, ErrUnitRequired) ||
		errors.Is(err, ErrNegativeTarget) ||
		errors.Is(err, ErrInvalidCategory) ||
		errors.Is(err, ErrTypeRequired)
}

// IsInvariantViolation verifica se o erro quebra a ordenação das metas
func IsInvariantViolation(err error) bool {
	return errors.Is(err, ErrTierOrderViolated)
}
