package services

import (
	"errors"
	"math"

	"qna/internal/dto"
	"qna/internal/models"
	"qna/internal/utils"

	"gorm.io/gorm"
)

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

func (s *QuestionService) Create(req dto.QuestionRequest, userID uint) (dto.QuestionView, error) {
	question := models.Question{
		Qid:    utils.RandStringBytesMaskImpr(8),
		UserID: userID,
		Title:  req.Title,
		Body:   req.Body,
	}
	if err := s.db.Create(&question).Error; err != nil {
		return dto.QuestionView{}, err
	}

	if err := s.db.Preload("User").First(&question, question.ID).Error; err != nil {
		return dto.QuestionView{}, err
	}
	return s.view(&question)
}

func (s *QuestionService) GetByID(questionID uint) (dto.QuestionView, error) {
	var question models.Question
	if err := s.db.Preload("User").First(&question, questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.QuestionView{}, notFound("Question", questionID)
		}
		return dto.QuestionView{}, err
	}
	return s.view(&question)
}

// Update replaces title and body. Author-only; the author reference and
// creation timestamp never change.
func (s *QuestionService) Update(questionID uint, req dto.QuestionRequest, userID uint) (dto.QuestionView, error) {
	var question models.Question
	if err := s.db.Preload("User").First(&question, questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.QuestionView{}, notFound("Question", questionID)
		}
		return dto.QuestionView{}, err
	}
	if question.UserID != userID {
		return dto.QuestionView{}, ErrNotAuthor
	}

	question.Title = req.Title
	question.Body = req.Body
	if err := s.db.Save(&question).Error; err != nil {
		return dto.QuestionView{}, err
	}
	return s.view(&question)
}

func (s *QuestionService) Delete(questionID, userID uint) error {
	var question models.Question
	if err := s.db.First(&question, questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Question", questionID)
		}
		return err
	}
	if question.UserID != userID {
		return ErrNotAuthor
	}
	return s.db.Delete(&models.Question{}, questionID).Error
}

// List returns one zero-indexed page of questions, newest first.
func (s *QuestionService) List(page, size int) (dto.Page[dto.QuestionView], error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	var result dto.Page[dto.QuestionView]

	var total int64
	if err := s.db.Model(&models.Question{}).Count(&total).Error; err != nil {
		return result, err
	}

	var questions []models.Question
	err := s.db.Preload("User").
		Order("created_at DESC").
		Limit(size).
		Offset(page * size).
		Find(&questions).Error
	if err != nil {
		return result, err
	}

	if err := s.fillAnswerCounts(questions); err != nil {
		return result, err
	}

	views := make([]dto.QuestionView, 0, len(questions))
	for i := range questions {
		views = append(views, dto.NewQuestionView(&questions[i]))
	}

	totalPages := int(math.Ceil(float64(total) / float64(size)))
	if totalPages == 0 {
		totalPages = 1
	}

	result = dto.Page[dto.QuestionView]{
		Items:      views,
		Page:       page,
		Size:       size,
		Total:      total,
		TotalPages: totalPages,
	}
	return result, nil
}

// view assembles a single question with its answer count and the id of the
// accepted answer, when one exists.
func (s *QuestionService) view(question *models.Question) (dto.QuestionView, error) {
	var count int64
	if err := s.db.Model(&models.Answer{}).
		Where("question_id = ?", question.ID).
		Count(&count).Error; err != nil {
		return dto.QuestionView{}, err
	}
	question.AnswerCount = int(count)

	view := dto.NewQuestionView(question)

	var accepted models.Answer
	err := s.db.Select("id").
		Where("question_id = ? AND accepted = ?", question.ID, true).
		First(&accepted).Error
	if err == nil {
		view.AcceptedAnswerID = &accepted.ID
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.QuestionView{}, err
	}

	return view, nil
}

// fillAnswerCounts fills the answer count for a batch of questions with one
// grouped query.
func (s *QuestionService) fillAnswerCounts(questions []models.Question) error {
	if len(questions) == 0 {
		return nil
	}

	questionIDs := make([]uint, len(questions))
	for i, q := range questions {
		questionIDs[i] = q.ID
	}

	type CountResult struct {
		QuestionID uint
		Count      int
	}
	var results []CountResult
	err := s.db.Model(&models.Answer{}).
		Select("question_id, COUNT(*) as count").
		Where("question_id IN ?", questionIDs).
		Group("question_id").
		Scan(&results).Error
	if err != nil {
		return err
	}

	countMap := make(map[uint]int)
	for _, r := range results {
		countMap[r.QuestionID] = r.Count
	}

	for i := range questions {
		questions[i].AnswerCount = countMap[questions[i].ID]
	}
	return nil
}
