package models

import (
	"time"
)

type Answer struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Aid         string    `gorm:"uniqueIndex;size:8;not null" json:"aid"`
	QuestionID  uint      `gorm:"not null;index" json:"question_id"`
	Question    Question  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"question"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	User        User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Body        string    `gorm:"type:text;not null" json:"body"`
	Accepted    bool      `gorm:"default:false" json:"accepted"`
	AiGenerated bool      `gorm:"default:false" json:"ai_generated"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
