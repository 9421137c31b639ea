package http

import (
	"errors"
	"net/http"

	commentDomain "clubdocs-backend/internal/domain/comment"
	docDomain "clubdocs-backend/internal/domain/document"
	"clubdocs-backend/internal/domain/user"
	"clubdocs-backend/internal/usecase/upload"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// writeDomainError maps usecase/domain errors onto HTTP responses so every
// handler speaks the same error dialect.
func writeDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, docDomain.ErrNotFound),
		errors.Is(err, docDomain.ErrSignatoryNotFound),
		errors.Is(err, user.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})

	case errors.Is(err, user.ErrForbidden),
		errors.Is(err, upload.ErrForbiddenPath):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})

	case errors.Is(err, docDomain.ErrSignatureUnchanged):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})

	case errors.Is(err, docDomain.ErrNameTooShort),
		errors.Is(err, docDomain.ErrFileRequired),
		errors.Is(err, docDomain.ErrApprovalNotRequired),
		errors.Is(err, commentDomain.ErrEmptyContent),
		errors.Is(err, upload.ErrFileTooLarge),
		errors.Is(err, upload.ErrExtensionNotAllowed),
		errors.Is(err, upload.ErrEmptyFile):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})

	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
