package dto

// Request payloads bound from JSON bodies.

type AnswerRequest struct {
	Body string `json:"body" binding:"required"`
}

type CommentRequest struct {
	Body string `json:"body" binding:"required"`
}

type QuestionRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
