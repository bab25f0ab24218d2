package services

import "errors"

// Sentinel errors. Controllers classify with errors.Is and map to HTTP
// status codes; wrapped variants carry the offending id/value.
var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrItemNotFound       = errors.New("menu item not found")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrInvalidSignature   = errors.New("webhook signature verification failed")
	ErrMalformedEvent     = errors.New("malformed webhook event")
	ErrGateway            = errors.New("payment gateway error")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRestaurantExists   = errors.New("user restaurant already exists")
)
