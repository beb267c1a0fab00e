package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"blog-service/internal/custom_errors"
	ports "blog-service/internal/domain/ports/output"
)

const maxBodyBytes = 1 << 20

type ErrorResponse struct {
	Error   string                         `json:"error"`
	Details []custom_errors.FieldViolation `json:"details,omitempty"`
	Message string                         `json:"message,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("write JSON response", slog.String("error", err.Error()))
	}
}

func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// WriteError maps err to a status code by its kind. Persistence failures are
// logged and answered with fallback so store details never reach the client.
func WriteError(w http.ResponseWriter, log ports.Logger, err error, fallback string) {
	var e *custom_errors.Error
	if !errors.As(err, &e) {
		e = custom_errors.ErrDatabaseQuery.Wrap(err)
	}

	switch e.Kind {
	case custom_errors.KindValidationFailed:
		WriteJSON(w, http.StatusBadRequest, ErrorResponse{Error: e.Message, Details: e.Details})
	case custom_errors.KindInvalidIdentifier, custom_errors.KindReferenceNotFound, custom_errors.KindDuplicateKey:
		WriteJSON(w, http.StatusBadRequest, ErrorResponse{Error: e.Message})
	case custom_errors.KindNotFound:
		WriteJSON(w, http.StatusNotFound, ErrorResponse{Error: e.Message})
	default:
		log.Error(fallback, slog.String("error", err.Error()))
		WriteJSON(w, http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}

// ParseID reads a positive base-10 identifier from the named path value.
func ParseID(r *http.Request, name string, invalid *custom_errors.Error) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, invalid
	}
	return id, nil
}

func ReadBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, custom_errors.NewValidation([]custom_errors.FieldViolation{
			{Field: "body", Rule: "read", Message: "Request body could not be read"},
		})
	}
	return body, nil
}
