package errors

import (
	"errors"
)

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrAccountDisabled       = errors.New("user account is not enabled")
	ErrAccountLocked         = errors.New("user account is locked")
	ErrBadCredentials        = errors.New("email and / or password is incorrect")
	ErrEmailAlreadyInUse     = errors.New("email already in use")
	ErrInvalidToken          = errors.New("invalid activation token")
	ErrTokenExpired          = errors.New("activation token has expired, a new token has been sent to the same email address")
	ErrRoleNotConfigured     = errors.New("default user role is not configured")
	ErrDuplicateCode         = errors.New("activation code already in use")
	ErrMailDelivery          = errors.New("failed to deliver activation email")
	ErrBookNotFound          = errors.New("book not found")
	ErrOperationNotPermitted = errors.New("operation not permitted")
	ErrAlreadyBorrowed       = errors.New("book is already borrowed")
	ErrNoOpenLoan            = errors.New("no open loan found for this book and borrower")
	ErrNoPendingReturn       = errors.New("no pending return found for this book")
)
