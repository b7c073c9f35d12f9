package apiErrors

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mohdanas86/hotelRevnue/internal/domain"
)

// Códigos de erro da API
const (
	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidFilter       = "VAL_004" // Filtro não interpretável

	// Erros de dados (4000-4999)
	ErrInsufficientData = "DATA_001" // Histórico insuficiente para previsão
	ErrDatasetSchema    = "DATA_002" // Colunas obrigatórias ausentes na fonte

	// Erros do servidor (5000-5999)
	ErrInternalServer  = "SRV_001" // Erro interno do servidor
	ErrDatasetLoad     = "SRV_002" // Erro ao carregar o dataset
	ErrExternalService = "SRV_003" // Erro em serviço externo
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInvalidFilter:       http.StatusBadRequest,
	ErrInsufficientData:    http.StatusUnprocessableEntity,
	ErrDatasetSchema:       http.StatusInternalServerError,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatasetLoad:         http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// WriteDomainError traduz erros de domínio para o código e status HTTP
// correspondentes. Erros não reconhecidos viram erro interno genérico,
// sem vazar a mensagem original para o cliente.
func WriteDomainError(w http.ResponseWriter, err error) {
	var filterErr *domain.FilterError
	if errors.As(err, &filterErr) {
		WriteError(w, ErrInvalidFilter, filterErr.Error(), nil)
		return
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		WriteError(w, ErrInvalidRequest, validationErr.Error(), nil)
		return
	}

	var insufficientErr *domain.InsufficientDataError
	if errors.As(err, &insufficientErr) {
		WriteError(w, ErrInsufficientData, insufficientErr.Error(), map[string]any{
			"data_points":    insufficientErr.Points,
			"required_min":   insufficientErr.Minimum,
			"recommendation": "Provide more historical data for accurate forecasting",
		})
		return
	}

	var schemaErr *domain.SchemaError
	if errors.As(err, &schemaErr) {
		WriteError(w, ErrDatasetSchema, schemaErr.Error(), map[string]any{
			"missing_columns": schemaErr.MissingColumns,
		})
		return
	}

	WriteError(w, ErrInternalServer, "Erro interno do servidor", nil)
}

// FromError cria um erro de API a partir de um erro Go
// Útil para quando você quer envolver um erro existente em um erro de API
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
