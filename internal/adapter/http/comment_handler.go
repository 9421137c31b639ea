package http

import (
	"net/http"

	"clubdocs-backend/internal/adapter/middleware"
	"clubdocs-backend/internal/usecase/comment"

	"github.com/labstack/echo/v4"
)

type CommentHandler struct{ uc *comment.Usecase }

func NewCommentHandler(uc *comment.Usecase) *CommentHandler { return &CommentHandler{uc: uc} }

type addCommentReq struct {
	Content string `json:"content" validate:"required"`
}

func (h *CommentHandler) AddComment(c echo.Context) error {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "no session"})
	}
	var req addCommentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Add(c.Request().Context(), sess, c.Param("document_id"), req.Content)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *CommentHandler) ListComments(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context(), c.Param("document_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *CommentHandler) ListActivity(c echo.Context) error {
	dtos, err := h.uc.Activity(c.Request().Context(), c.Param("document_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
