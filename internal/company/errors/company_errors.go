package errors

import (
	"net/http"

	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/shared/apperror"
)

var (
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Company not found",
		http.StatusNotFound,
	)

	ErrNotCompanyOwner = apperror.New(
		apperror.CodeForbidden,
		"Only the owning HR user can access this company",
		http.StatusForbidden,
	)

	ErrCompanyExists = apperror.New(
		apperror.CodeConflict,
		"A company with this name or email already exists",
		http.StatusConflict,
	)

	ErrNoCompaniesFound = apperror.New(
		apperror.CodeNotFound,
		"No companies matched the given name",
		http.StatusNotFound,
	)
)
