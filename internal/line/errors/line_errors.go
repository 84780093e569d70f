package lineerrors

import (
	"net/http"

	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/shared/apperror"
)

var (
	ErrLineNotFound = apperror.New(
		apperror.CodeNotFound,
		"Production line not found",
		http.StatusNotFound,
	)
	ErrLineNumberExists = apperror.New(
		apperror.CodeConflict,
		"Line number already exists",
		http.StatusConflict,
	)
	ErrInvalidLineID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid production line ID",
		http.StatusBadRequest,
	)
)
