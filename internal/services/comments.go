package services

import (
	"errors"

	"qna/internal/dto"
	"qna/internal/models"
	"qna/internal/utils"

	"gorm.io/gorm"
)

// CommentService creates, mutates and deletes comments. A comment is always
// anchored at construction: to a question, to an answer, or as a reply under
// a parent comment. There is no path that produces an unanchored comment.
type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

func (s *CommentService) CreateOnQuestion(req dto.CommentRequest, questionID, userID uint) (dto.CommentView, error) {
	var question models.Question
	if err := s.db.First(&question, questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CommentView{}, notFound("Question", questionID)
		}
		return dto.CommentView{}, err
	}

	comment := models.Comment{
		UserID:     userID,
		QuestionID: &question.ID,
		Body:       req.Body,
	}
	return s.save(&comment)
}

func (s *CommentService) CreateOnAnswer(req dto.CommentRequest, answerID, userID uint) (dto.CommentView, error) {
	var answer models.Answer
	if err := s.db.First(&answer, answerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CommentView{}, notFound("Answer", answerID)
		}
		return dto.CommentView{}, err
	}

	comment := models.Comment{
		UserID:   userID,
		AnswerID: &answer.ID,
		Body:     req.Body,
	}
	return s.save(&comment)
}

// ReplyOnAnswer creates a reply under an existing comment on an answer.
// The child records both the answer anchor and the parent link.
func (s *CommentService) ReplyOnAnswer(req dto.CommentRequest, answerID, parentID, userID uint) (dto.CommentView, error) {
	var parent models.Comment
	if err := s.db.First(&parent, parentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CommentView{}, notFound("Comment", parentID)
		}
		return dto.CommentView{}, err
	}

	var answer models.Answer
	if err := s.db.First(&answer, answerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CommentView{}, notFound("Answer", answerID)
		}
		return dto.CommentView{}, err
	}

	comment := models.Comment{
		UserID:   userID,
		AnswerID: &answer.ID,
		ParentID: &parent.ID,
		Body:     req.Body,
	}
	return s.save(&comment)
}

// ReplyOnQuestion creates a reply under an existing comment on a question.
func (s *CommentService) ReplyOnQuestion(req dto.CommentRequest, questionID, parentID, userID uint) (dto.CommentView, error) {
	var parent models.Comment
	if err := s.db.First(&parent, parentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CommentView{}, notFound("Comment", parentID)
		}
		return dto.CommentView{}, err
	}

	var question models.Question
	if err := s.db.First(&question, questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CommentView{}, notFound("Question", questionID)
		}
		return dto.CommentView{}, err
	}

	comment := models.Comment{
		UserID:     userID,
		QuestionID: &question.ID,
		ParentID:   &parent.ID,
		Body:       req.Body,
	}
	return s.save(&comment)
}

func (s *CommentService) GetByID(commentID uint) (dto.CommentView, error) {
	var comment models.Comment
	if err := s.db.Preload("User").First(&comment, commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CommentView{}, notFound("Comment", commentID)
		}
		return dto.CommentView{}, err
	}
	return dto.NewCommentView(&comment), nil
}

// Update replaces the body and bumps UpdatedAt. A non-nil questionID
// reassigns the comment's question anchor after an existence check.
func (s *CommentService) Update(commentID uint, req dto.CommentRequest, questionID *uint) (dto.CommentView, error) {
	var comment models.Comment
	if err := s.db.First(&comment, commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CommentView{}, notFound("Comment", commentID)
		}
		return dto.CommentView{}, err
	}

	comment.Body = req.Body

	if questionID != nil {
		var question models.Question
		if err := s.db.First(&question, *questionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return dto.CommentView{}, notFound("Question", *questionID)
			}
			return dto.CommentView{}, err
		}
		comment.QuestionID = &question.ID
	}

	if err := s.db.Save(&comment).Error; err != nil {
		return dto.CommentView{}, err
	}

	if err := s.db.Preload("User").First(&comment, comment.ID).Error; err != nil {
		return dto.CommentView{}, err
	}
	return dto.NewCommentView(&comment), nil
}

// Delete removes a comment by id. No existence check: deleting an absent
// id is a no-op, so delete is idempotent for comments.
func (s *CommentService) Delete(commentID uint) error {
	return s.db.Delete(&models.Comment{}, commentID).Error
}

func (s *CommentService) save(comment *models.Comment) (dto.CommentView, error) {
	comment.Cid = utils.RandStringBytesMaskImpr(8)
	if err := s.db.Create(comment).Error; err != nil {
		return dto.CommentView{}, err
	}
	if err := s.db.Preload("User").First(comment, comment.ID).Error; err != nil {
		return dto.CommentView{}, err
	}
	return dto.NewCommentView(comment), nil
}
