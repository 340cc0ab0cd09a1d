package errors

import "net/http"

var (
	ErrMissingCoordinates = New(
		"MISSING_COORDINATES",
		"Report coordinates are required",
		http.StatusBadRequest,
	)

	ErrMissingDescription = New(
		"MISSING_DESCRIPTION",
		"Report description is required",
		http.StatusBadRequest,
	)

	ErrUnauthenticated = New(
		"UNAUTHENTICATED",
		"Authentication required",
		http.StatusUnauthorized,
	)

	ErrInvalidCategory = New(
		"INVALID_CATEGORY",
		"Category must be one of: barrier, facilitator, poi",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrPointNotFound = New(
		"POINT_NOT_FOUND",
		"Accessibility point not found",
		http.StatusNotFound,
	)

	ErrPersistenceFailure = New(
		"PERSISTENCE_FAILURE",
		"Report could not be saved",
		http.StatusInternalServerError,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInvalidToken = New(
		"INVALID_TOKEN",
		"Invalid or expired token",
		http.StatusUnauthorized,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
