package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	apperrors "github.com/prekshaaaaaaaa/coliving-backend/pkg/errors"
)

// ErrorResponse is the uniform failure envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// respondError maps the error taxonomy onto the wire contract. Errors
// outside the taxonomy surface as a generic 500 so internals never leak.
func respondError(c *gin.Context, err error) {
	msg := "Server error"
	var app *apperrors.AppError
	if errors.As(err, &app) {
		msg = app.Message
	}
	c.JSON(apperrors.StatusOf(err), ErrorResponse{Success: false, Error: msg})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(400, ErrorResponse{Success: false, Error: msg})
}

// FlexID is a user identifier that clients send either as a JSON string or
// a bare number.
type FlexID string

func (f *FlexID) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case string:
		*f = FlexID(t)
	case float64:
		*f = FlexID(strconv.FormatInt(int64(t), 10))
	case nil:
		*f = ""
	default:
		return fmt.Errorf("identifier must be a string or number")
	}
	return nil
}

func (f FlexID) String() string { return string(f) }
