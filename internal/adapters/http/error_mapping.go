package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/core/domain"
)

func mapErrorToHTTPStatus(err error) int {
	switch {
	case domain.IsKind(err, domain.ErrMissingSelection):
		return http.StatusUnprocessableEntity
	case domain.IsKind(err, domain.ErrInvalidInput), domain.IsKind(err, domain.ErrParsing):
		return http.StatusBadRequest
	case domain.IsKind(err, domain.ErrSchemaMismatch), domain.IsKind(err, domain.ErrPrediction):
		return http.StatusBadGateway
	case domain.IsKind(err, domain.ErrTemporary):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := mapErrorToHTTPStatus(err)
	if status >= http.StatusInternalServerError {
		slog.Error("request_failed",
			"request_id", requestIDFromContext(r.Context()),
			"path", r.URL.Path,
			"kind", domain.KindName(err),
			"error", err.Error(),
		)
	}
	payload := map[string]string{"error": err.Error()}
	if kind := domain.KindName(err); kind != "" {
		payload["kind"] = kind
	}
	writeJSON(w, status, payload)
}
