package models

import (
	"time"
)

type Vote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index:idx_votes_user_answer,unique" json:"user_id"`
	AnswerID  uint      `gorm:"not null;index:idx_votes_user_answer,unique" json:"answer_id"`
	Value     int       `gorm:"not null" json:"value"` // 1 or -1
	CreatedAt time.Time `json:"created_at"`
}

// One vote per (user, answer) pair: the unique index backs up the
// existence check done in the cast path.
