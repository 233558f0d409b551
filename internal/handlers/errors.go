package handlers

import (
	"net/http"
	"strings"

	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/models"
	apperrors "github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/errors"
	"github.com/gin-gonic/gin"
)

// attachError attaches err to the gin context so the observability middleware
// can include the reason in the request log. c.Error() returns *gin.Error (not
// the error interface), so we suppress errcheck here intentionally.
func attachError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err) //nolint:errcheck
	}
}

// respondOK sends a success envelope
func respondOK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, models.OK(data))
}

// respondError sends an error envelope and attaches the error to the gin
// context for the request log
func respondError(c *gin.Context, status int, message string, err error) {
	attachError(c, err)
	c.JSON(status, models.Fail(message))
}

// respondServiceError maps application sentinel errors to HTTP statuses with
// a generic message per class, keeping internals out of responses.
func respondServiceError(c *gin.Context, err error) {
	attachError(c, err)

	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case apperrors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
		message = publicReason(err, apperrors.ErrNotFound.Error())
	case apperrors.Is(err, apperrors.ErrUnauthorized):
		status = http.StatusUnauthorized
		message = publicReason(err, "Unauthorized")
	case apperrors.Is(err, apperrors.ErrAccessDenied):
		status = http.StatusForbidden
		message = publicReason(err, "Access denied")
	case apperrors.Is(err, apperrors.ErrInvalidInput):
		status = http.StatusBadRequest
		message = publicReason(err, "Invalid input")
	case apperrors.Is(err, apperrors.ErrConflict):
		status = http.StatusConflict
		message = publicReason(err, "Conflict")
	}

	c.JSON(status, models.Fail(message))
}

// publicReason exposes the sentinel wrap context, which is written to be
// user-facing ("slot already booked", "mentor not found"). Anything else
// falls back to the generic message.
func publicReason(err error, fallback string) string {
	msg := err.Error()
	if msg == "" || strings.Contains(msg, "failed to") {
		return fallback
	}
	return msg
}

// respondBindError distinguishes oversized payloads from validation failures
func respondBindError(c *gin.Context, err error) {
	attachError(c, err)

	if strings.Contains(err.Error(), "request body too large") {
		c.JSON(http.StatusRequestEntityTooLarge, models.Fail("Request body too large"))
		return
	}

	if fieldErrors := ParseValidationErrors(err); len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, models.FailValidation(fieldErrors))
		return
	}

	c.JSON(http.StatusBadRequest, models.Fail("Invalid request payload"))
}
