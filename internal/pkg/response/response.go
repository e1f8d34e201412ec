package response

import (
	"HeidiCore/internal/service"
	stdjson "encoding/json"
	"errors"
	"fmt"
	log "log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// Success writes a 200 with the payload as the raw response body.
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, data)
}

// Created writes a 201 with the payload as the raw response body.
func Created(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusCreated, data)
}

// Fail writes an error status with a short message body.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// Error is the single translation point from errors to HTTP status codes.
// Validation failures map to 400, known domain errors to their mapped status,
// everything else to 500 with the underlying message.
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, http.StatusBadRequest, validationMessage(ve))
		return
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	var stdUnmarshalTypeError *stdjson.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) || errors.As(err, &stdUnmarshalTypeError) {
		Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	status, ok := service.ErrorMap[err]
	if !ok {
		status = http.StatusInternalServerError
		log.ErrorContext(c.Request.Context(), "Error", "err", err)
	}
	Fail(c, status, err.Error())
}

func validationMessage(ve validator.ValidationErrors) string {
	fe := ve[0]
	name := fieldName(fe)
	if fe.Tag() == "required" {
		return fmt.Sprintf("%s is required", name)
	}
	return fmt.Sprintf("%s is invalid", name)
}

// fieldName lower-camels the struct field name to match its JSON form.
func fieldName(fe validator.FieldError) string {
	f := fe.Field()
	if f == "" {
		return f
	}
	return strings.ToLower(f[:1]) + f[1:]
}
