package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrUnauthenticated    = errors.New("could not validate credentials")
	ErrAccountInactive    = errors.New("inactive user account")
	ErrMissingGuestEmail  = errors.New("guest email is required for guest orders")
)
