package ledger

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto do razão de lançamentos diários
var (
	// Erros de validação
	ErrNegativeValue    = errors.New("valor realizado não pode ser negativo")
	ErrInvalidDateRange = errors.New("a data de início não pode ser posterior à data de fim")
	ErrOwnerRequired    = errors.New("responsável é obrigatório")

	// O lançamento referencia um indicador que não existe mais; a escrita é
	// rejeitada para não criar lançamentos órfãos
	ErrMetricNotFound = errors.New("indicador não encontrado para o lançamento")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// LedgerError é um erro com contexto adicional para lançamentos
type LedgerError struct {
	Err      error  // Erro base
	MetricID string // ID do indicador envolvido
	Details  string // Detalhes adicionais
}

// Error implementa a interface error
func (e *LedgerError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// IsValidationError verifica se o erro é de validação de entrada
func IsValidationError(err error) bool {
	return errors.Is(err, ErrNegativeValue) ||
		errors.Is(err, ErrInvalidDateRange) ||
		errors.Is(err, ErrOwnerRequired)
}
