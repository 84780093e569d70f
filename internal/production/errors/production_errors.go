package productionerrors

import (
	"net/http"

	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/shared/apperror"
)

var (
	ErrRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"Production record not found",
		http.StatusNotFound,
	)
	ErrNotRecordOwner = apperror.New(
		apperror.CodeForbidden,
		"Not authorized to update this record",
		http.StatusForbidden,
	)
	ErrInvalidRecordID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid production record ID",
		http.StatusBadRequest,
	)
	// ErrInvalidRecorderID means the authenticated principal's ID is not a
	// usable UUID, not that anything is wrong with a record.
	ErrInvalidRecorderID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date, expected YYYY-MM-DD or RFC3339",
		http.StatusBadRequest,
	)
)
