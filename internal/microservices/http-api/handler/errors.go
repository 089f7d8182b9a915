package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"filmhub/internal/microservices/http-api/dto"
	"filmhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const defaultRequestTimeout = 5 * time.Second

// Options are shared by every handler.
type Options struct {
	RequestTimeout time.Duration
	UnknownFields  dto.UnknownFieldPolicy
}

func (o Options) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	timeout := o.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return context.WithTimeout(c.Request.Context(), timeout)
}

// bindPatch decodes a partial update body against the DTO's allow-list and
// runs its binding rules.
func (o Options) bindPatch(c *gin.Context, dst dto.Patch) error {
	body, err := c.GetRawData()
	if err != nil {
		return service.Validation(err)
	}
	if err := dto.DecodePatch(body, dst, o.UnknownFields); err != nil {
		return service.Validation(err)
	}
	if err := binding.Validator.ValidateStruct(dst); err != nil {
		return service.Validation(err)
	}
	return nil
}

// respondError writes the status matching the failure kind. Store failures
// are logged and reported without their internals.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrMissingReference), errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		slog.Error("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
