package handlers

import (
	"net/http"

	"qna/internal/db"
	"qna/internal/services"
	"qna/internal/utils"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	votes   *services.VoteService
	answers *services.AnswerService
}

func NewVoteHandler() *VoteHandler {
	votes := services.NewVoteService(db.DB)
	return &VoteHandler{
		votes:   votes,
		answers: services.NewAnswerService(db.DB, votes),
	}
}

// Up records an upvote on an answer and returns the new upvote count.
func (h *VoteHandler) Up(c *gin.Context) {
	h.cast(c, 1)
}

// Down records a downvote on an answer and returns the new downvote count.
func (h *VoteHandler) Down(c *gin.Context) {
	h.cast(c, -1)
}

func (h *VoteHandler) cast(c *gin.Context, value int) {
	user := CurrentUser(c)
	answerID := pathID(c, "aid")

	count, err := h.votes.Cast(user.ID, answerID, value)
	if err != nil {
		fail(c, err)
		return
	}

	// Evict cached listing pages; mostliked ordering just changed
	if view, err := h.answers.GetByID(answerID, 0); err == nil {
		utils.GetCache().DeletePrefix(answerPagesPrefix(view.QuestionID))
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}
