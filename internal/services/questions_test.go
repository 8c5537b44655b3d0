package services

import (
	"errors"
	"testing"

	"qna/internal/dto"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionGetByIDNotFound(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := NewQuestionService(gdb)

	mock.ExpectQuery(`SELECT \* FROM "questions"`).
		WillReturnRows(sqlmock.NewRows(questionColumns))

	_, err := svc.GetByID(404)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestQuestionUpdateAuthorOnly(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := NewQuestionService(gdb)

	mock.ExpectQuery(`SELECT \* FROM "questions"`).
		WillReturnRows(questionRow(7, 2, "the question"))
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(userRow(2, "grace"))

	_, err := svc.Update(7, dto.QuestionRequest{Title: "edited"}, 99)
	assert.ErrorIs(t, err, ErrNotAuthor)
}

func TestQuestionListAnswerCountFailure(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := NewQuestionService(gdb)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "questions"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "questions" ORDER BY created_at DESC`).
		WillReturnRows(questionRow(7, 2, "the question"))
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(userRow(2, "grace"))
	mock.ExpectQuery(`SELECT question_id, COUNT\(\*\) as count FROM "answers"`).
		WillReturnError(errors.New("connection reset"))

	_, err := svc.List(0, 10)
	require.Error(t, err)
	assert.ErrorContains(t, err, "connection reset")
}

func TestQuestionListEmpty(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := NewQuestionService(gdb)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "questions"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT \* FROM "questions" ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows(questionColumns))

	result, err := svc.List(0, 10)
	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.Equal(t, 1, result.TotalPages)
}
