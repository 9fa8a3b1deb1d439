package handler

import (
	"encoding/json"
	"net/http"

	"medicor-backend/internal/delivery/dto"
	"medicor-backend/internal/usecase"
	"medicor-backend/pkg/response"
	"medicor-backend/pkg/validator"
)

type ContactHandler struct {
	contactUsecase usecase.ContactUsecase
	validator      *validator.CustomValidator
}

func NewContactHandler(contactUsecase usecase.ContactUsecase, validator *validator.CustomValidator) *ContactHandler {
	return &ContactHandler{
		contactUsecase: contactUsecase,
		validator:      validator,
	}
}

// SendMessage relays a contact-form submission by email
func (h *ContactHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req dto.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Failure(w, http.StatusBadRequest, "All fields are required")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.Failure(w, http.StatusBadRequest, "All fields are required")
		return
	}

	if err := h.contactUsecase.SendMessage(r.Context(), &req); err != nil {
		response.Failure(w, http.StatusInternalServerError, "Failed to send message. Please try again later.")
		return
	}

	response.JSON(w, http.StatusOK, response.StatusBody{
		Success: true,
		Message: "Message sent successfully!",
	})
}
