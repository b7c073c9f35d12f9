package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/mohdanas86/hotelRevnue/pkg/apiErrors"
	"github.com/mohdanas86/hotelRevnue/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// respondJSON serializa o corpo e escreve a resposta com o status dado.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("handler: erro ao serializar resposta")
	}
}

// respondError traduz o erro de domínio para o envelope padronizado.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	log.ForContext(r.Context()).WithError(err).Warn("handler: requisição falhou")
	apiErrors.WriteDomainError(w, err)
}
