package handlers

import (
	"fmt"
	"net/http"
	"time"

	"qna/internal/db"
	"qna/internal/dto"
	"qna/internal/services"
	"qna/internal/utils"

	"github.com/gin-gonic/gin"
)

type AnswerHandler struct {
	answers *services.AnswerService
}

func NewAnswerHandler() *AnswerHandler {
	return &AnswerHandler{
		answers: services.NewAnswerService(db.DB, services.NewVoteService(db.DB)),
	}
}

// answerPagesPrefix keys every cached listing page of one question.
func answerPagesPrefix(questionID uint) string {
	return fmt.Sprintf("answers:q:%d:", questionID)
}

// ListForQuestion serves one page of a question's answers. Anonymous pages
// are cached briefly; any answer or vote write for the question evicts them.
func (h *AnswerHandler) ListForQuestion(c *gin.Context) {
	questionID := pathID(c, "qid")
	page, size := pageParams(c)
	sort := c.Query("sort")
	userID := currentUserID(c)

	cacheKey := fmt.Sprintf("%s%s:%d:%d", answerPagesPrefix(questionID), sort, page, size)
	if userID == 0 {
		if cached := utils.GetCache().Get(cacheKey); cached != nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	result, err := h.answers.ListForQuestion(page, size, sort, questionID, userID)
	if err != nil {
		fail(c, err)
		return
	}

	if userID == 0 {
		utils.GetCache().Set(cacheKey, result, 1*time.Minute)
	}
	c.JSON(http.StatusOK, result)
}

func (h *AnswerHandler) Create(c *gin.Context) {
	user := CurrentUser(c)
	questionID := pathID(c, "qid")

	var req dto.AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	aiGenerated := h.answers.IsAiGenerated(req.Body)
	view, err := h.answers.Create(req, questionID, user.ID, aiGenerated)
	if err != nil {
		fail(c, err)
		return
	}

	utils.GetCache().DeletePrefix(answerPagesPrefix(questionID))
	c.JSON(http.StatusCreated, view)
}

func (h *AnswerHandler) Get(c *gin.Context) {
	view, err := h.answers.GetByID(pathID(c, "aid"), currentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *AnswerHandler) Update(c *gin.Context) {
	answerID := pathID(c, "aid")

	var req struct {
		dto.AnswerRequest
		QuestionID uint `json:"question_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	// An update may move the answer to another question; remember where it
	// was listed so both questions' cached pages get evicted.
	before, err := h.answers.GetByID(answerID, 0)
	if err != nil {
		fail(c, err)
		return
	}

	view, err := h.answers.Update(answerID, req.QuestionID, req.AnswerRequest, currentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}

	utils.GetCache().DeletePrefix(answerPagesPrefix(before.QuestionID))
	if view.QuestionID != before.QuestionID {
		utils.GetCache().DeletePrefix(answerPagesPrefix(view.QuestionID))
	}
	c.JSON(http.StatusOK, view)
}

func (h *AnswerHandler) Delete(c *gin.Context) {
	answerID := pathID(c, "aid")

	// Fetch the question id before the row goes away, for cache eviction
	view, err := h.answers.GetByID(answerID, 0)
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.answers.Delete(answerID); err != nil {
		fail(c, err)
		return
	}

	utils.GetCache().DeletePrefix(answerPagesPrefix(view.QuestionID))
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (h *AnswerHandler) Accept(c *gin.Context) {
	user := CurrentUser(c)

	view, err := h.answers.Accept(pathID(c, "aid"), user.ID)
	if err != nil {
		fail(c, err)
		return
	}

	utils.GetCache().DeletePrefix(answerPagesPrefix(view.QuestionID))
	c.JSON(http.StatusOK, view)
}

// ListByUser returns every answer a user has written.
func (h *AnswerHandler) ListByUser(c *gin.Context) {
	views, err := h.answers.ListByUser(pathID(c, "id"), currentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}
