package dto

import (
	"html/template"
	"time"

	"qna/internal/models"
	"qna/internal/utils"
)

type QuestionView struct {
	ID               uint          `json:"id"`
	Qid              string        `json:"qid"`
	Title            string        `json:"title"`
	Body             string        `json:"body"`
	BodyHTML         template.HTML `json:"body_html"`
	Author           UserView      `json:"author"`
	AnswerCount      int           `json:"answer_count"`
	AcceptedAnswerID *uint         `json:"accepted_answer_id"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

func NewQuestionView(q *models.Question) QuestionView {
	return QuestionView{
		ID:          q.ID,
		Qid:         q.Qid,
		Title:       q.Title,
		Body:        q.Body,
		BodyHTML:    utils.RenderMarkdown(q.Body),
		Author:      NewUserView(&q.User),
		AnswerCount: q.AnswerCount,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}
