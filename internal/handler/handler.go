package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/adrirubim/laser-packaging-laravel-sub008/internal/entity"
	"github.com/adrirubim/laser-packaging-laravel-sub008/internal/repository"
	"github.com/adrirubim/laser-packaging-laravel-sub008/internal/service"
	"github.com/gin-gonic/gin"
)

// Handlers is the HTTP handler set.
type Handlers struct {
	Planning *PlanningHandler
	Order    *OrderHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Planning: NewPlanningHandler(services.Planning, services.Summary, services.Line),
		Order:    NewOrderHandler(services.Order),
	}
}

// Response is the common envelope.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Error codes.
const (
	CodeOK                = 0
	CodeValidation        = 10001
	CodeNotFound          = 10002
	CodeInvalidSlot       = 10010
	CodeInvalidTransition = 10011
	CodeInternal          = 50001
)

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    CodeOK,
		Message: "success",
		Data:    data,
	})
}

func Error(c *gin.Context, status, code int, message string) {
	c.JSON(status, Response{
		Code:    code,
		Message: message,
	})
}

// errorCode maps a service error onto the wire taxonomy.
func errorCode(err error) (status, code int) {
	switch {
	case errors.Is(err, entity.ErrValidation):
		return http.StatusBadRequest, CodeValidation
	case errors.Is(err, entity.ErrInvalidSlot):
		return http.StatusBadRequest, CodeInvalidSlot
	case errors.Is(err, entity.ErrInvalidTransition):
		return http.StatusBadRequest, CodeInvalidTransition
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, CodeNotFound
	}
	return http.StatusInternalServerError, CodeInternal
}

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}
