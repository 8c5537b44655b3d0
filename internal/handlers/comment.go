package handlers

import (
	"net/http"

	"qna/internal/db"
	"qna/internal/dto"
	"qna/internal/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	comments *services.CommentService
}

func NewCommentHandler() *CommentHandler {
	return &CommentHandler{
		comments: services.NewCommentService(db.DB),
	}
}

func (h *CommentHandler) CreateOnQuestion(c *gin.Context) {
	user := CurrentUser(c)

	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	view, err := h.comments.CreateOnQuestion(req, pathID(c, "qid"), user.ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *CommentHandler) CreateOnAnswer(c *gin.Context) {
	user := CurrentUser(c)

	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	view, err := h.comments.CreateOnAnswer(req, pathID(c, "aid"), user.ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *CommentHandler) ReplyOnAnswer(c *gin.Context) {
	user := CurrentUser(c)

	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	view, err := h.comments.ReplyOnAnswer(req, pathID(c, "aid"), pathID(c, "cid"), user.ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *CommentHandler) ReplyOnQuestion(c *gin.Context) {
	user := CurrentUser(c)

	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	view, err := h.comments.ReplyOnQuestion(req, pathID(c, "qid"), pathID(c, "cid"), user.ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *CommentHandler) Get(c *gin.Context) {
	view, err := h.comments.GetByID(pathID(c, "cid"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *CommentHandler) Update(c *gin.Context) {
	var req struct {
		dto.CommentRequest
		QuestionID *uint `json:"question_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	view, err := h.comments.Update(pathID(c, "cid"), req.CommentRequest, req.QuestionID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.comments.Delete(pathID(c, "cid")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
