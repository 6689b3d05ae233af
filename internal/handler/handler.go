// Package handler exposes the services over HTTP with gin.
package handler

import (
	"errors"
	"fmt"
	"net/http"

	"supportcenter/internal/logger"
	"supportcenter/pkg/apperror"
	"supportcenter/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

const internalErrorMessage = "internal server error"

// RegisterValidators installs the custom binding rules used by request DTOs.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}
	return v.RegisterValidation("notblank", validators.NotBlank)
}

// statusFor maps the error taxonomy to an HTTP status.
func statusFor(err error) int {
	switch apperror.KindOf(err) {
	case apperror.KindValidation:
		return http.StatusBadRequest
	case apperror.KindNotFound:
		return http.StatusNotFound
	case apperror.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as a response envelope. Storage and unknown errors
// are logged and replaced by a generic message.
func respondError(c *gin.Context, log logger.Recorder, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		log.Record(fmt.Sprintf("%s %s: %v", c.Request.Method, c.FullPath(), err), logger.SeverityError)
		msg = internalErrorMessage
	}
	c.JSON(status, response.Error(status, msg))
}

// bindJSON decodes the body into req, answering 400 on failure.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return false
	}
	return true
}

func notFound(c *gin.Context, what string) {
	c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, what+" not found"))
}
