package http

import (
	"net/http"

	"clubdocs-backend/internal/adapter/middleware"
	"clubdocs-backend/internal/usecase/document"

	"github.com/labstack/echo/v4"
)

type DocumentHandler struct{ uc *document.Usecase }

func NewDocumentHandler(uc *document.Usecase) *DocumentHandler { return &DocumentHandler{uc: uc} }

type createSignatoryReq struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Phone    string `json:"phone"`
}

type createDocumentReq struct {
	Name                  string               `json:"name"                    validate:"required,min=3"`
	Description           string               `json:"description"`
	FileURL               string               `json:"file_url"                validate:"required,url"`
	FileName              string               `json:"file_name"               validate:"required"`
	RequiresAdminApproval bool                 `json:"requires_admin_approval"`
	Signatories           []createSignatoryReq `json:"signatories"             validate:"dive"`
}

func (h *DocumentHandler) CreateDocument(c echo.Context) error {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "no session"})
	}
	var req createDocumentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	in := document.CreateDocumentInput{
		Name:                  req.Name,
		Description:           req.Description,
		FileURL:               req.FileURL,
		FileName:              req.FileName,
		RequiresAdminApproval: req.RequiresAdminApproval,
	}
	for _, s := range req.Signatories {
		in.Signatories = append(in.Signatories, document.SignatoryInput(s))
	}

	dto, err := h.uc.Create(c.Request().Context(), sess, in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *DocumentHandler) GetDocument(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("document_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *DocumentHandler) ListDocuments(c echo.Context) error {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "no session"})
	}
	dtos, err := h.uc.ListByCreator(c.Request().Context(), sess)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
