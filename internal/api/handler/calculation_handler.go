package handler

import (
	"amortization-engine/internal/api/handler/dto"
	"amortization-engine/internal/domain/amortization"
	"amortization-engine/internal/pkg/apperrors"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

type CalculationHandler struct {
	service amortization.CalculationService
	logger  *slog.Logger
}

func NewCalculationHandler(s amortization.CalculationService, l *slog.Logger) *CalculationHandler {
	return &CalculationHandler{
		service: s,
		logger:  l.With("component", "CalculationHandler"),
	}
}

func decodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("no request body")
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Default().Error("Failed to marshal JSON response", "error", err)
		http.Error(w, `{"error":{"message":"Internal server error"}}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}

func respondError(w http.ResponseWriter, err error) {
	status, message, field := http.StatusInternalServerError, "An unexpected error occurred.", ""
	var termsError *apperrors.TermsError

	switch {
	case errors.As(err, &termsError):
		status, message, field = http.StatusBadRequest, termsError.Message, termsError.Field
	case errors.Is(err, apperrors.ErrInvalidLoanTerms), errors.Is(err, apperrors.ErrUnsupportedConfiguration):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, apperrors.ErrInvalidArgument):
		status, message = http.StatusBadRequest, err.Error()
	default:
		slog.Default().Error("Unhandled internal error", "error", err)
	}

	resp := dto.ErrorResponse{
		Error: dto.ErrorDetail{
			Message: message,
			Field:   field,
		},
	}
	respondJSON(w, status, resp)
}

// Calculate computes an amortization schedule for the loan terms in the
// request body and returns the schedule together with aggregate totals.
// Nothing is stored; identical terms always produce the identical response.
func (h *CalculationHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req dto.CalculateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	terms, err := req.ToTerms()
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	result, err := h.service.Calculate(r.Context(), terms)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewCalculationResponse(result))
}
