package errors

import (
	"net/http"

	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/shared/apperror"
)

var (
	ErrJobNotFound = apperror.New(
		apperror.CodeNotFound,
		"Job not found",
		http.StatusNotFound,
	)

	ErrNotJobOwner = apperror.New(
		apperror.CodeForbidden,
		"Only the user who added this job can modify or read its applications",
		http.StatusForbidden,
	)

	ErrNoJobsFound = apperror.New(
		apperror.CodeNotFound,
		"No jobs matched the given criteria",
		http.StatusNotFound,
	)
)
