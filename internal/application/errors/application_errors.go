package errors

import (
	"net/http"

	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/shared/apperror"
)

var (
	ErrApplicantNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrApplicantRoleRequired = apperror.New(
		apperror.CodeForbidden,
		"Only users with the User role can apply to jobs",
		http.StatusForbidden,
	)

	ErrNoApplicationsFound = apperror.New(
		apperror.CodeNotFound,
		"No applications found for the specified criteria",
		http.StatusNotFound,
	)

	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Date must be in YYYY-MM-DD format",
		http.StatusBadRequest,
	)

	ErrResumeRequired = apperror.New(
		apperror.CodeInvalidInput,
		"A resume file is required in the userResume field",
		http.StatusBadRequest,
	)

	ErrInvalidResume = apperror.New(
		apperror.CodeInvalidInput,
		"Resume must be a document of at most 10MB",
		http.StatusBadRequest,
	)
)
