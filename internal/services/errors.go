package services

import "errors"

// Sentinel errors raised by the service layer on business-rule violations.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountLocked      = errors.New("account is locked out")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUnauthorized       = errors.New("not allowed for this user")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrDiscountNotActive  = errors.New("discount is not active")
)
