package errors

import "net/http"

var (
	ErrCityNotFound = New(
		"CITY_NOT_FOUND",
		"City not found",
		http.StatusNotFound,
	)

	// ErrMissingSelection covers reaching plan generation without a complete
	// city/category/subcategory selection. Recoverable: the client navigates
	// back and picks again.
	ErrMissingSelection = New(
		"MISSING_SELECTION",
		"Planning selection is incomplete, go back and pick a city, category and subcategory",
		http.StatusBadRequest,
	)

	ErrNoHistory = New(
		"NO_HISTORY",
		"No previous page in navigation history",
		http.StatusBadRequest,
	)

	ErrStoreError = New(
		"STORE_ERROR",
		"Durable store operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
