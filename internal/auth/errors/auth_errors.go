package autherrors

import (
	"net/http"

	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/shared/apperror"
)

var (
	// ErrInvalidCredentials is returned for both an unknown email and a wrong
	// password so login failures carry no enumeration signal.
	ErrInvalidCredentials = apperror.New(
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		http.StatusBadRequest,
	)
	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"User already exists",
		http.StatusBadRequest,
	)
	ErrInvalidToken = apperror.New(
		"INVALID_TOKEN",
		"Invalid token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		"TOKEN_EXPIRED",
		"Token has expired",
		http.StatusUnauthorized,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Could not generate token",
		http.StatusInternalServerError,
	)
)
