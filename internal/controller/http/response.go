package http

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"hacktheshell/internal/entity"
	"hacktheshell/internal/usecase"
	"hacktheshell/pkg/logger"
	"hacktheshell/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// Report validation failures by their JSON names.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})
	}
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details"`
}

func validationFailed(c *gin.Context, details ...FieldError) {
	c.JSON(http.StatusBadRequest, ValidationErrorResponse{Error: "Validation failed", Details: details})
}

// bindingFailed turns a ShouldBind error into field level details.
func bindingFailed(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		validationFailed(c, FieldError{Field: "body", Message: "malformed request body"})
		return
	}

	details := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	validationFailed(c, details...)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "url":
		return "must be a valid URL"
	case "email":
		return "must be a valid email address"
	}
	return "failed " + fe.Tag() + " validation"
}

// respondError maps use case and storage errors to HTTP responses.
// Anything unrecognised is logged and reported as a generic 500.
func respondError(c *gin.Context, log *logger.Logger, err error, resource, action string) {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": resource + " not found"})
	case errors.Is(err, usecase.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not allowed to modify this " + strings.ToLower(resource)})
	case errors.Is(err, usecase.ErrInvalidStatus):
		validationFailed(c, FieldError{Field: "status", Message: "must be one of: draft pending published rejected"})
	case errors.Is(err, usecase.ErrInvalidRole):
		validationFailed(c, FieldError{Field: "role", Message: "must be one of: user creator admin"})
	case errors.Is(err, usecase.ErrInvalidMediaKind):
		validationFailed(c, FieldError{Field: "kind", Message: "must be one of: screenshot video gif"})
	case errors.Is(err, usecase.ErrInvalidConfigValue):
		validationFailed(c, FieldError{Field: "value", Message: "must be true or false"})
	case errors.Is(err, usecase.ErrEmptyQuery):
		validationFailed(c, FieldError{Field: "q", Message: "is required"})
	case errors.Is(err, usecase.ErrStorageUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Media storage is not available"})
	default:
		log.Error("Failed to %s: %v", action, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

func actorFrom(c *gin.Context) usecase.Actor {
	return usecase.Actor{
		UserID: c.GetString(middleware.ContextUserID),
		Role:   entity.UserRole(c.GetString(middleware.ContextRole)),
	}
}

// idParam parses a numeric path parameter, answering 400 when it is not one.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		validationFailed(c, FieldError{Field: name, Message: "must be a positive integer"})
		return 0, false
	}
	return uint(id), true
}
