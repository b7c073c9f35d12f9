package domain

import (
	"fmt"
	"strings"
)

// SchemaError indica colunas obrigatórias ausentes na fonte de dados.
// É fatal para o carregamento e vira erro de servidor na API.
type SchemaError struct {
	MissingColumns []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("colunas obrigatórias ausentes no dataset: %s",
		strings.Join(e.MissingColumns, ", "))
}

// ValidationError indica parâmetros de requisição inválidos, detectados
// antes de qualquer computação cara.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// FilterError indica um valor de filtro que não pôde ser interpretado.
// O filtro nunca é descartado silenciosamente.
type FilterError struct {
	Field   string
	Value   string
	Message string
}

func (e *FilterError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("filtro inválido em %s=%q: %s", e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("filtro inválido em %s: %s", e.Field, e.Message)
}

// InsufficientDataError indica histórico insuficiente para previsão.
type InsufficientDataError struct {
	Points  int
	Minimum int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("dados insuficientes para previsão: %d pontos diários, mínimo de %d",
		e.Points, e.Minimum)
}

// ModelTrainingError indica falha no treinamento do modelo primário.
// É recuperado localmente pelo fallback e nunca chega à API.
type ModelTrainingError struct {
	Model string
	Err   error
}

func (e *ModelTrainingError) Error() string {
	return fmt.Sprintf("falha ao treinar modelo %s: %v", e.Model, e.Err)
}

func (e *ModelTrainingError) Unwrap() error {
	return e.Err
}
