package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/secmon-lab/userform/pkg/domain/model"
	"github.com/secmon-lab/userform/pkg/utils/logging"
)

const maxRequestBodySize = 1 << 20

// Fields are pointers so that a missing field can be told apart from an
// empty one. Empty values are a business rule failure, not a bad request.
type validateRequest struct {
	UserName *string `json:"user_name" validate:"required"`
	Password *string `json:"password" validate:"required"`
	Age      *int    `json:"age" validate:"required"`
}

type userResponse struct {
	UserName string `json:"user_name"`
	Age      int    `json:"age"`
}

type validationErrorResponse struct {
	Code  string `json:"code"`
	Cause string `json:"cause"`
}

type validateResponse struct {
	Valid  bool                      `json:"valid"`
	User   *userResponse             `json:"user,omitempty"`
	Errors []validationErrorResponse `json:"errors,omitempty"`
}

type badRequestResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// validateHandler handles POST /api/validate
func (s *Server) validateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	var req validateRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		logging.From(ctx).Debug("failed to decode request", "error", err)
		writeJSON(ctx, w, http.StatusBadRequest, badRequestResponse{Error: "malformed JSON body"})
		return
	}
	// the body must hold exactly one JSON value
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		writeJSON(ctx, w, http.StatusBadRequest, badRequestResponse{Error: "unexpected data after JSON body"})
		return
	}

	if err := s.validator.Validate(req); err != nil {
		var fields fieldErrors
		if errors.As(err, &fields) {
			writeJSON(ctx, w, http.StatusBadRequest, badRequestResponse{
				Error:  fields.Error(),
				Fields: fields,
			})
			return
		}
		writeJSON(ctx, w, http.StatusBadRequest, badRequestResponse{Error: "invalid request body"})
		return
	}

	outcome := s.uc.ValidateForm(ctx, model.UserForm{
		UserName: *req.UserName,
		Password: *req.Password,
		Age:      *req.Age,
	})

	if user, ok := outcome.User(); ok {
		writeJSON(ctx, w, http.StatusOK, validateResponse{
			Valid: true,
			User: &userResponse{
				UserName: user.UserName(),
				Age:      user.Age(),
			},
		})
		return
	}

	resp := validateResponse{Valid: false}
	for _, e := range outcome.Errors() {
		resp.Errors = append(resp.Errors, validationErrorResponse{
			Code:  e.Code(),
			Cause: e.Cause(),
		})
	}
	writeJSON(ctx, w, http.StatusUnprocessableEntity, resp)
}
