package dto

import (
	"time"

	"qna/internal/models"
)

type CommentView struct {
	ID         uint      `json:"id"`
	Cid        string    `json:"cid"`
	Body       string    `json:"body"`
	Author     UserView  `json:"author"`
	QuestionID *uint     `json:"question_id,omitempty"`
	AnswerID   *uint     `json:"answer_id,omitempty"`
	ParentID   *uint     `json:"parent_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewCommentView(c *models.Comment) CommentView {
	return CommentView{
		ID:         c.ID,
		Cid:        c.Cid,
		Body:       c.Body,
		Author:     NewUserView(&c.User),
		QuestionID: c.QuestionID,
		AnswerID:   c.AnswerID,
		ParentID:   c.ParentID,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
