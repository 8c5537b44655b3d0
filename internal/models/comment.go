package models

import (
	"time"
)

type Comment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Cid        string    `gorm:"uniqueIndex;size:8;not null" json:"cid"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	User       User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	QuestionID *uint     `gorm:"index" json:"question_id"` // Anchor when commenting on a question
	AnswerID   *uint     `gorm:"index" json:"answer_id"`   // Anchor when commenting on an answer
	ParentID   *uint     `gorm:"index" json:"parent_id"`   // Nullable for top-level comments
	Parent     *Comment  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"parent"`
	Body       string    `gorm:"type:text;not null" json:"body"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
