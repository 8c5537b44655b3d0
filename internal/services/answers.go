package services

import (
	"errors"
	"math"
	"strings"

	"qna/internal/dto"
	"qna/internal/models"
	"qna/internal/utils"

	"gorm.io/gorm"
)

const DefaultPageSize = 10

type AnswerService struct {
	db         *gorm.DB
	votes      VoteCounter
	classifier Classifier
}

func NewAnswerService(db *gorm.DB, votes VoteCounter) *AnswerService {
	return &AnswerService{
		db:         db,
		votes:      votes,
		classifier: NewSubstringClassifier(),
	}
}

// View builds the response shape for one answer, including vote counts and
// the caller's vote status. currentUserID == 0 means anonymous: both
// Upvoted and Downvoted stay false.
func (s *AnswerService) View(answer *models.Answer, currentUserID uint) (dto.AnswerView, error) {
	view := dto.NewAnswerView(answer)

	upvotes, err := s.votes.UpvoteCount(answer.ID)
	if err != nil {
		return view, err
	}
	downvotes, err := s.votes.DownvoteCount(answer.ID)
	if err != nil {
		return view, err
	}
	view.Upvotes = upvotes
	view.Downvotes = downvotes

	if currentUserID != 0 {
		status, err := s.votes.Status(answer.ID, currentUserID)
		if err != nil {
			return view, err
		}
		view.Upvoted = status == VoteUp
		view.Downvoted = status == VoteDown
	}

	return view, nil
}

// Create stores a new answer under an existing question. The AI flag is
// caller-supplied; see IsAiGenerated for the classifier entry point.
func (s *AnswerService) Create(req dto.AnswerRequest, questionID, userID uint, aiGenerated bool) (dto.AnswerView, error) {
	var question models.Question
	if err := s.db.First(&question, questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AnswerView{}, notFound("Question", questionID)
		}
		return dto.AnswerView{}, err
	}

	answer := models.Answer{
		Aid:         utils.RandStringBytesMaskImpr(8),
		QuestionID:  question.ID,
		UserID:      userID,
		Body:        req.Body,
		Accepted:    false,
		AiGenerated: aiGenerated,
	}
	if err := s.db.Create(&answer).Error; err != nil {
		return dto.AnswerView{}, err
	}

	// Reload with the author for the view
	if err := s.db.Preload("User").First(&answer, answer.ID).Error; err != nil {
		return dto.AnswerView{}, err
	}
	return s.View(&answer, userID)
}

func (s *AnswerService) GetByID(answerID, currentUserID uint) (dto.AnswerView, error) {
	var answer models.Answer
	if err := s.db.Preload("User").First(&answer, answerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AnswerView{}, notFound("Answer", answerID)
		}
		return dto.AnswerView{}, err
	}
	return s.View(&answer, currentUserID)
}

// Update mutates only the body and the question reference. Author and
// creation timestamp are untouched; UpdatedAt bumps on save.
func (s *AnswerService) Update(answerID, questionID uint, req dto.AnswerRequest, currentUserID uint) (dto.AnswerView, error) {
	var answer models.Answer
	if err := s.db.Preload("User").First(&answer, answerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AnswerView{}, notFound("Answer", answerID)
		}
		return dto.AnswerView{}, err
	}

	var question models.Question
	if err := s.db.First(&question, questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AnswerView{}, notFound("Question", questionID)
		}
		return dto.AnswerView{}, err
	}

	answer.Body = req.Body
	answer.QuestionID = question.ID
	if err := s.db.Save(&answer).Error; err != nil {
		return dto.AnswerView{}, err
	}

	return s.View(&answer, currentUserID)
}

// Delete removes an answer by id. Unlike comment delete this checks
// existence first, so a second delete fails with NotFound.
func (s *AnswerService) Delete(answerID uint) error {
	var answer models.Answer
	if err := s.db.First(&answer, answerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Answer", answerID)
		}
		return err
	}
	return s.db.Delete(&models.Answer{}, answerID).Error
}

// ListByUser returns every answer authored by userID, newest first, each
// assembled independently.
func (s *AnswerService) ListByUser(userID, currentUserID uint) ([]dto.AnswerView, error) {
	var answers []models.Answer
	err := s.db.Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&answers).Error
	if err != nil {
		return nil, err
	}

	views := make([]dto.AnswerView, 0, len(answers))
	for i := range answers {
		view, err := s.View(&answers[i], currentUserID)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// sortClause maps a client sort mode onto an ORDER BY expression.
// Unrecognized input falls back to newest-created first. "mostliked" is
// handled separately because it needs the vote join.
func sortClause(sort string) string {
	switch strings.ToLower(sort) {
	case "oldest":
		return "created_at ASC"
	case "newest":
		return "updated_at DESC"
	default:
		return "created_at DESC"
	}
}

// ListForQuestion returns one zero-indexed page of a question's answers.
// Every sort branch, "mostliked" included, assembles through View so pages
// keep a uniform shape.
func (s *AnswerService) ListForQuestion(page, size int, sort string, questionID, currentUserID uint) (dto.Page[dto.AnswerView], error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	var result dto.Page[dto.AnswerView]

	var total int64
	if err := s.db.Model(&models.Answer{}).
		Where("question_id = ?", questionID).
		Count(&total).Error; err != nil {
		return result, err
	}

	query := s.db.Preload("User").Where("question_id = ?", questionID)
	if strings.EqualFold(sort, "mostliked") {
		// Upvote ordering happens in the database via a vote-count join.
		// answers.* keeps vote columns out of the scan targets.
		query = query.
			Select("answers.*").
			Joins("LEFT JOIN votes ON votes.answer_id = answers.id AND votes.value = 1").
			Group("answers.id").
			Order("COUNT(votes.id) DESC")
	} else {
		query = query.Order(sortClause(sort))
	}

	var answers []models.Answer
	if err := query.Limit(size).Offset(page * size).Find(&answers).Error; err != nil {
		return result, err
	}

	views := make([]dto.AnswerView, 0, len(answers))
	for i := range answers {
		view, err := s.View(&answers[i], currentUserID)
		if err != nil {
			return result, err
		}
		views = append(views, view)
	}

	totalPages := int(math.Ceil(float64(total) / float64(size)))
	if totalPages == 0 {
		totalPages = 1
	}

	result = dto.Page[dto.AnswerView]{
		Items:      views,
		Page:       page,
		Size:       size,
		Total:      total,
		TotalPages: totalPages,
	}
	return result, nil
}

// Accept marks one answer accepted for its question. Only the question's
// author may accept; the previously accepted sibling, if any, loses the flag.
func (s *AnswerService) Accept(answerID, userID uint) (dto.AnswerView, error) {
	var answer models.Answer
	if err := s.db.Preload("User").First(&answer, answerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AnswerView{}, notFound("Answer", answerID)
		}
		return dto.AnswerView{}, err
	}

	var question models.Question
	if err := s.db.First(&question, answer.QuestionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AnswerView{}, notFound("Question", answer.QuestionID)
		}
		return dto.AnswerView{}, err
	}
	if question.UserID != userID {
		return dto.AnswerView{}, ErrNotAuthor
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Answer{}).
			Where("question_id = ? AND accepted = ?", answer.QuestionID, true).
			UpdateColumn("accepted", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.Answer{}).
			Where("id = ?", answer.ID).
			UpdateColumn("accepted", true).Error
	})
	if err != nil {
		return dto.AnswerView{}, err
	}

	answer.Accepted = true
	return s.View(&answer, userID)
}

// IsAiGenerated runs the configured classifier over an answer body.
func (s *AnswerService) IsAiGenerated(body string) bool {
	return s.classifier.IsAiGenerated(body)
}
