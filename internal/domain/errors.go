package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

var (
	ErrUserExists = errors.New("user with this phone number already exists")
)

var (
	ErrValidation = errors.New("validation error")

	ErrPhoneRequired = fmt.Errorf("%w: phone number is required", ErrValidation)
)

// ErrInvalidSlotType is a storage-level constraint failure, not a client
// validation error: it is reported like any other store failure.
var (
	ErrInvalidSlotType = errors.New("bookslot validation failed")
)
