package handlers

import (
	"net/http"

	"qna/internal/db"
	"qna/internal/dto"
	"qna/internal/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	questions *services.QuestionService
}

func NewQuestionHandler() *QuestionHandler {
	return &QuestionHandler{
		questions: services.NewQuestionService(db.DB),
	}
}

func (h *QuestionHandler) List(c *gin.Context) {
	page, size := pageParams(c)
	result, err := h.questions.List(page, size)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *QuestionHandler) Create(c *gin.Context) {
	user := CurrentUser(c)

	var req dto.QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	view, err := h.questions.Create(req, user.ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *QuestionHandler) Get(c *gin.Context) {
	view, err := h.questions.GetByID(pathID(c, "qid"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *QuestionHandler) Update(c *gin.Context) {
	user := CurrentUser(c)

	var req dto.QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	view, err := h.questions.Update(pathID(c, "qid"), req, user.ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *QuestionHandler) Delete(c *gin.Context) {
	user := CurrentUser(c)

	if err := h.questions.Delete(pathID(c, "qid"), user.ID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
