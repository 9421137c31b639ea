package http

import (
	"net/http"

	"clubdocs-backend/internal/adapter/middleware"
	"clubdocs-backend/internal/usecase/signing"

	"github.com/labstack/echo/v4"
)

type SigningHandler struct{ uc *signing.Usecase }

func NewSigningHandler(uc *signing.Usecase) *SigningHandler { return &SigningHandler{uc: uc} }

type toggleSignatureReq struct {
	Signed *bool   `json:"signed" validate:"required"`
	Note   *string `json:"note"`
}

// ToggleSignature flips a signatory between signed and unsigned. Any
// signatory may be toggled regardless of display order.
func (h *SigningHandler) ToggleSignature(c echo.Context) error {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "no session"})
	}
	var req toggleSignatureReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Toggle(c.Request().Context(), sess, signing.ToggleInput{
		DocumentID:  c.Param("document_id"),
		SignatoryID: c.Param("signatory_id"),
		Signed:      *req.Signed,
		Note:        req.Note,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
