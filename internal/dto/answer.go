package dto

import (
	"html/template"
	"time"

	"qna/internal/models"
	"qna/internal/utils"
)

// AnswerView is the response shape for a single answer: persisted fields
// plus the vote counts and the caller's own vote status.
type AnswerView struct {
	ID          uint          `json:"id"`
	Aid         string        `json:"aid"`
	QuestionID  uint          `json:"question_id"`
	Body        string        `json:"body"`
	BodyHTML    template.HTML `json:"body_html"`
	Author      UserView      `json:"author"`
	Accepted    bool          `json:"accepted"`
	AiGenerated bool          `json:"ai_generated"`
	Upvotes     int64         `json:"upvotes"`
	Downvotes   int64         `json:"downvotes"`
	Upvoted     bool          `json:"upvoted"`
	Downvoted   bool          `json:"downvoted"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// NewAnswerView copies persisted fields into the view. Vote enrichment
// happens in the answer service, which owns the vote counter.
func NewAnswerView(a *models.Answer) AnswerView {
	return AnswerView{
		ID:          a.ID,
		Aid:         a.Aid,
		QuestionID:  a.QuestionID,
		Body:        a.Body,
		BodyHTML:    utils.RenderMarkdown(a.Body),
		Author:      NewUserView(&a.User),
		Accepted:    a.Accepted,
		AiGenerated: a.AiGenerated,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
