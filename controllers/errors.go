package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"eats-backend/pkg/resp"
	"eats-backend/services"
)

// writeServiceError maps the service error taxonomy onto HTTP statuses.
// Client-caused failures get 4xx with the message; everything else is 500.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrRestaurantNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrItemNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrMalformedEvent),
		errors.Is(err, services.ErrInvalidSignature),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrRestaurantExists):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrUnauthorized),
		errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
