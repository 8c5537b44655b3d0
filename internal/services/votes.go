package services

import (
	"errors"
	"fmt"

	"qna/internal/models"

	"gorm.io/gorm"
)

// VoteStatus is the caller's own vote on an answer.
type VoteStatus int

const (
	VoteNone VoteStatus = iota
	VoteUp
	VoteDown
)

// VoteCounter is the read side of the vote store, consumed by answer assembly.
type VoteCounter interface {
	UpvoteCount(answerID uint) (int64, error)
	DownvoteCount(answerID uint) (int64, error)
	Status(answerID, userID uint) (VoteStatus, error)
}

type VoteService struct {
	db *gorm.DB
}

func NewVoteService(db *gorm.DB) *VoteService {
	return &VoteService{db: db}
}

func (s *VoteService) UpvoteCount(answerID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Vote{}).
		Where("answer_id = ? AND value = 1", answerID).
		Count(&count).Error
	return count, err
}

func (s *VoteService) DownvoteCount(answerID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Vote{}).
		Where("answer_id = ? AND value = -1", answerID).
		Count(&count).Error
	return count, err
}

// Status returns the user's vote on an answer. A missing row or a stored
// value outside {1, -1} both read as VoteNone.
func (s *VoteService) Status(answerID, userID uint) (VoteStatus, error) {
	var vote models.Vote
	err := s.db.Where("answer_id = ? AND user_id = ?", answerID, userID).First(&vote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return VoteNone, nil
		}
		return VoteNone, err
	}
	switch vote.Value {
	case 1:
		return VoteUp, nil
	case -1:
		return VoteDown, nil
	}
	return VoteNone, nil
}

// Cast records a vote for value = 1 (up) or -1 (down). A user who already
// voted on the answer keeps their existing vote; either way the current
// count for the requested direction comes back.
func (s *VoteService) Cast(userID, answerID uint, value int) (int64, error) {
	if value != 1 && value != -1 {
		return 0, fmt.Errorf("invalid vote value: %d", value)
	}

	var answer models.Answer
	if err := s.db.First(&answer, answerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, notFound("Answer", answerID)
		}
		return 0, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Vote
		err := tx.Where("user_id = ? AND answer_id = ?", userID, answerID).First(&existing).Error
		if err == nil {
			// Already voted
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx.Create(&models.Vote{
			UserID:   userID,
			AnswerID: answerID,
			Value:    value,
		}).Error
	})
	if err != nil {
		return 0, err
	}

	if value == 1 {
		return s.UpvoteCount(answerID)
	}
	return s.DownvoteCount(answerID)
}
