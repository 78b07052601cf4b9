package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jdelacruz/tindahan/internal/domain"
)

// maxBodyBytes caps request bodies; every payload here is a handful of
// scalar fields.
const maxBodyBytes = 1 << 16

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

// writeError maps domain error kinds onto HTTP status codes. The
// persistence kind stays distinguishable so clients can tell a rejected
// request from an applied-but-not-saved one.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var (
		verr  *domain.ValidationError
		nferr *domain.NotFoundError
		iserr *domain.InsufficientStockError
		perr  *domain.PersistenceError
	)
	switch {
	case errors.As(err, &verr):
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Error(), Kind: "validation"})
	case errors.As(err, &nferr):
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: nferr.Error(), Kind: "not_found"})
	case errors.As(err, &iserr):
		s.writeJSON(w, http.StatusConflict, errorResponse{Error: iserr.Error(), Kind: "insufficient_stock"})
	case errors.As(err, &perr):
		s.logger.Error("persistence failure", "key", perr.Key, "error", perr.Err)
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: perr.Error(), Kind: "persistence"})
	default:
		s.logger.Error("unexpected error", "error", err)
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error", Kind: "internal"})
	}
}

// decodeBody parses and validates a JSON request body into dst.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("malformed request body: %v", err), Kind: "validation"})
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		var ferrs validator.ValidationErrors
		msg := "invalid request"
		if errors.As(err, &ferrs) && len(ferrs) > 0 {
			msg = fmt.Sprintf("invalid field %q", ferrs[0].Field())
		}
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg, Kind: "validation"})
		return false
	}
	return true
}
