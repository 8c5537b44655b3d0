package dto

import (
	"time"

	"qna/internal/models"
)

type UserView struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	About     string    `json:"about"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserView(u *models.User) UserView {
	return UserView{
		ID:        u.ID,
		Username:  u.Username,
		About:     u.About,
		CreatedAt: u.CreatedAt,
	}
}
