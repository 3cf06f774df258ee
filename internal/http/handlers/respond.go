package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/contactapp/backend/internal/domain"
	"github.com/contactapp/backend/internal/platform/apierr"
)

// respondError maps domain errors to API errors: invalid input is the
// caller's fault, anything else (illegal state included) is ours.
func respondError(c *gin.Context, err error) {
	var apiErr *apierr.Error
	if errors.Is(err, domain.ErrInvalidArgument) {
		apiErr = apierr.InvalidArgument(err)
	} else {
		apiErr = apierr.Internal(err)
	}
	c.JSON(apiErr.Status, gin.H{"error": apiErr.Code, "detail": apiErr.Error()})
}
