package config

import (
	"GlamoraBackend/pkg/handlerUtil"
	"GlamoraBackend/pkg/log"
	"errors"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

func NewFiber(logger *logrus.Logger) *fiber.App {
	app := fiber.New(
		fiber.Config{
			AppName:           "Glamora Backend",
			BodyLimit:         1 * 1024 * 1024,
			DisableKeepalive:  false,
			StrictRouting:     true,
			CaseSensitive:     true,
			EnablePrintRoutes: false,
			JSONEncoder:       jsoniter.Marshal,
			JSONDecoder:       jsoniter.Unmarshal,
			ErrorHandler:      errorHandler(logger),
		})

	return app
}

// errorHandler answers errors that escape the handlers. Client errors keep
// fiber's message; everything else gets the generic 500 body.
func errorHandler(logger *logrus.Logger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) && fiberErr.Code < fiber.StatusInternalServerError {
			return ctx.Status(fiberErr.Code).JSON(handlerUtil.ErrorResponse{Error: fiberErr.Message})
		}

		requestID, _ := ctx.Locals("X-Request-ID").(string)
		traceID := log.ErrorWithTraceID(log.Fields{
			log.RequestIDKey: requestID,
			"path":           ctx.Path(),
			"error":          err.Error(),
		}, "Unhandled error")
		logger.WithField("trace_id", traceID).Debug("Returned generic internal server error")

		return ctx.Status(fiber.StatusInternalServerError).JSON(handlerUtil.ErrorResponse{Error: handlerUtil.InternalServerError})
	}
}
