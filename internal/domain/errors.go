package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is inactive")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrDuplicateState     = errors.New("state name already exists")
	ErrStateInUse         = errors.New("state is referenced by elements")
	ErrInventoryNotEmpty  = errors.New("inventory still contains elements")
	ErrLocationNotEmpty   = errors.New("location still contains elements")
	ErrAccessCodeInvalid  = errors.New("access code is invalid")
	ErrAccessCodeExpired  = errors.New("access code has expired")
	ErrAlreadyMember      = errors.New("user is already a member of this inventory")
	ErrInsufficientRole   = errors.New("insufficient role for this action")
	ErrUnsupportedImage   = errors.New("unsupported image type")
	ErrImageTooLarge      = errors.New("image exceeds maximum allowed size")
	ErrUploadFailed       = errors.New("upload to object storage failed")
)
