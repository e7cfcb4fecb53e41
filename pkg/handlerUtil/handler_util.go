package handlerUtil

import (
	"GlamoraBackend/internal/api/chatbot"
	"GlamoraBackend/internal/api/order"
	"GlamoraBackend/internal/api/product"
	"GlamoraBackend/pkg/log"
	"GlamoraBackend/pkg/response"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

// InternalServerError is the only body a 5xx response ever carries.
const InternalServerError = "Internal Server Error"

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

type domainError struct {
	err     error
	status  int
	code    string
	message string
}

var domainErrors = []domainError{
	{chatbot.ErrSessionNotFound, fiber.StatusNotFound, "SESSION_NOT_FOUND", "Session not found"},
	{chatbot.ErrSessionBusy, fiber.StatusServiceUnavailable, "SESSION_BUSY", "Session is busy, try again"},
	{chatbot.ErrInvalidInput, fiber.StatusBadRequest, "INVALID_INPUT", "Invalid chat input"},
	{product.ErrProductNotFound, fiber.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found"},
	{product.ErrInvalidQuery, fiber.StatusBadRequest, "INVALID_QUERY", "Invalid product query"},
	{order.ErrOrderNotFound, fiber.StatusNotFound, "ORDER_NOT_FOUND", "Order not found"},
	{order.ErrInvalidOrderID, fiber.StatusBadRequest, "INVALID_ORDER_ID", "Invalid order ID"},
}

func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	fields := log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}

	for _, d := range domainErrors {
		if errors.Is(err, d.err) {
			fields["code"] = d.code
			h.logger.WithFields(fields).Warn(d.message)
			return c.Status(d.status).JSON(ErrorResponse{Error: d.message, Code: d.code})
		}
	}

	if status := response.StatusOf(err, fiber.StatusInternalServerError); status < fiber.StatusInternalServerError {
		fields["code"] = status
		h.logger.WithFields(fields).Warn("Operation failed with error response")
		return c.Status(status).JSON(ErrorResponse{Error: err.Error()})
	}

	h.logger.WithFields(fields).Error("Unexpected error")
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: InternalServerError})
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")

	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Error: "Validation failed: " + err.Error(),
		Code:  "VALIDATION_ERROR",
	})
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestTimeout).JSON(ErrorResponse{Error: utils.StatusMessage(fiber.StatusRequestTimeout)})
}

func (h *ErrorHandler) HandleUnauthorized(c *fiber.Ctx, requestID string, message string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"path":       c.Path(),
		"message":    message,
	}).Warn("Unauthorized access")

	return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
		Error: message,
		Code:  "UNAUTHORIZED",
	})
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.SendStatus(statusCode)
	}
	return c.Status(statusCode).JSON(data)
}
