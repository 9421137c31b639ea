package http

import (
	"io"
	"net/http"

	"clubdocs-backend/internal/adapter/middleware"
	"clubdocs-backend/internal/usecase/upload"

	"github.com/labstack/echo/v4"
)

type UploadHandler struct{ uc *upload.Usecase }

func NewUploadHandler(uc *upload.Usecase) *UploadHandler { return &UploadHandler{uc: uc} }

// UploadFile accepts one multipart file and stores it as a pending upload.
func (h *UploadHandler) UploadFile(c echo.Context) error {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "no session"})
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing file field"})
	}
	// Size header check up front so an oversized body is refused without
	// buffering it.
	if fh.Size > upload.MaxFileSize {
		return writeDomainError(c, upload.ErrFileTooLarge)
	}

	f, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unreadable file"})
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, upload.MaxFileSize+1))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unreadable file"})
	}

	dto, err := h.uc.Upload(c.Request().Context(), sess, upload.UploadInput{
		Filename: fh.Filename,
		Content:  content,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type removeUploadReq struct {
	Path string `json:"path" validate:"required"`
}

// RemoveUpload deletes a pending (not-yet-attached) upload.
func (h *UploadHandler) RemoveUpload(c echo.Context) error {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "no session"})
	}
	var req removeUploadReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	if err := h.uc.Remove(c.Request().Context(), sess, req.Path); err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
