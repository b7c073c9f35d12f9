package handler

import (
	"net/http"
)

// Root responde a raiz da API com uma mensagem de vivacidade.
func Root() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, r, http.StatusOK, map[string]string{
			"message": "Hotel Revenue API Running",
		})
	})
}
