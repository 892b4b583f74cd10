package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse - standard single-message error body
type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// FieldErrors maps a field name to its validation messages
type FieldErrors map[string][]string

func WriteJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	WriteJSON(w, ErrorResponse{Error: message}, statusCode)
}

func WriteFieldErrors(w http.ResponseWriter, fields FieldErrors, statusCode int) {
	WriteJSON(w, fields, statusCode)
}

// fieldErrors converts validator output into per-field messages keyed by
// json tag name
func fieldErrors(err error) FieldErrors {
	out := FieldErrors{}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["non_field_errors"] = append(out["non_field_errors"], "Invalid input.")
		return out
	}

	for _, fe := range validationErrs {
		field := fe.Field()

		var message string
		switch fe.Tag() {
		case "required":
			message = field + " required"
		case "email":
			message = "Enter a valid email address."
		case "max":
			message = "Ensure this field has no more than " + fe.Param() + " characters."
		default:
			message = "Invalid value."
		}

		out[field] = append(out[field], message)
	}

	return out
}
