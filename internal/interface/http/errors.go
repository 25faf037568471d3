package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/teamkudos/kudos-backend/pkg/apperrors"
	"github.com/teamkudos/kudos-backend/pkg/response"
)

// writeError renders a domain error with its mapped status. Untyped errors
// surface as a generic 500 so internals never leak to clients.
func writeError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	msg := err.Error()
	if apperrors.KindOf(err) == apperrors.KindUnknown {
		msg = "internal server error"
	}
	response.Error[any](c, status, msg, nil)
}
