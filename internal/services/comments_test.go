package services

import (
	"errors"
	"testing"
	"time"

	"qna/internal/dto"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commentRow(id, userID uint, questionID, answerID, parentID *uint, body string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(commentColumns).
		AddRow(id, userID, questionID, answerID, parentID, body, now, now)
}

func uintPtr(v uint) *uint { return &v }

func TestCreateOnQuestionMissingQuestion(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := NewCommentService(gdb)

	// No insert expectations: nothing may persist.
	mock.ExpectQuery(`SELECT \* FROM "questions"`).
		WillReturnRows(sqlmock.NewRows(questionColumns))

	_, err := svc.CreateOnQuestion(dto.CommentRequest{Body: "nice question"}, 7, 1)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "Question", nf.Resource)
}

func TestCreateOnAnswerAnchors(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := NewCommentService(gdb)

	mock.ExpectQuery(`SELECT \* FROM "answers"`).
		WillReturnRows(answerRow(3, 7, 2, "the answer", time.Now()))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "comments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT \* FROM "comments"`).
		WillReturnRows(commentRow(9, 1, nil, uintPtr(3), nil, "good point"))
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(userRow(1, "ada"))

	view, err := svc.CreateOnAnswer(dto.CommentRequest{Body: "good point"}, 3, 1)
	require.NoError(t, err)
	require.NotNil(t, view.AnswerID)
	assert.Equal(t, uint(3), *view.AnswerID)
	assert.Nil(t, view.QuestionID)
	assert.Nil(t, view.ParentID)
}

func TestReplyOnAnswerLinksParent(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := NewCommentService(gdb)

	mock.ExpectQuery(`SELECT \* FROM "comments"`).
		WillReturnRows(commentRow(5, 2, nil, uintPtr(3), nil, "parent"))
	mock.ExpectQuery(`SELECT \* FROM "answers"`).
		WillReturnRows(answerRow(3, 7, 2, "the answer", time.Now()))
	mock.ExpectBegin()
	// cid, user_id, question_id, answer_id, parent_id, body, created_at, updated_at
	mock.ExpectQuery(`INSERT INTO "comments"`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), nil, int64(3), int64(5), "i disagree", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT \* FROM "comments"`).
		WillReturnRows(commentRow(9, 1, nil, uintPtr(3), uintPtr(5), "i disagree"))
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(userRow(1, "ada"))

	view, err := svc.ReplyOnAnswer(dto.CommentRequest{Body: "i disagree"}, 3, 5, 1)
	require.NoError(t, err)
	require.NotNil(t, view.ParentID)
	assert.Equal(t, uint(5), *view.ParentID)
	require.NotNil(t, view.AnswerID)
	assert.Equal(t, uint(3), *view.AnswerID)
}

func TestReplyOnAnswerMissingParent(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := NewCommentService(gdb)

	mock.ExpectQuery(`SELECT \* FROM "comments"`).
		WillReturnRows(sqlmock.NewRows(commentColumns))

	_, err := svc.ReplyOnAnswer(dto.CommentRequest{Body: "reply"}, 3, 404, 1)
	require.Error(t, err)

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "Comment", nf.Resource)
	assert.Equal(t, uint(404), nf.ID)
}

func TestReplyOnQuestionLinksParent(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := NewCommentService(gdb)

	mock.ExpectQuery(`SELECT \* FROM "comments"`).
		WillReturnRows(commentRow(5, 2, uintPtr(7), nil, nil, "parent"))
	mock.ExpectQuery(`SELECT \* FROM "questions"`).
		WillReturnRows(questionRow(7, 2, "the question"))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "comments"`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), int64(7), nil, int64(5), "agreed", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT \* FROM "comments"`).
		WillReturnRows(commentRow(9, 1, uintPtr(7), nil, uintPtr(5), "agreed"))
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(userRow(1, "ada"))

	view, err := svc.ReplyOnQuestion(dto.CommentRequest{Body: "agreed"}, 7, 5, 1)
	require.NoError(t, err)
	require.NotNil(t, view.ParentID)
	assert.Equal(t, uint(5), *view.ParentID)
	require.NotNil(t, view.QuestionID)
	assert.Equal(t, uint(7), *view.QuestionID)
}

func TestUpdateReassignsQuestion(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := NewCommentService(gdb)

	mock.ExpectQuery(`SELECT \* FROM "comments"`).
		WillReturnRows(commentRow(9, 1, uintPtr(7), nil, nil, "old"))
	mock.ExpectQuery(`SELECT \* FROM "questions"`).
		WillReturnRows(questionRow(8, 2, "other question"))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "comments" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT \* FROM "comments"`).
		WillReturnRows(commentRow(9, 1, uintPtr(8), nil, nil, "new"))
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(userRow(1, "ada"))

	view, err := svc.Update(9, dto.CommentRequest{Body: "new"}, uintPtr(8))
	require.NoError(t, err)
	assert.Equal(t, "new", view.Body)
	require.NotNil(t, view.QuestionID)
	assert.Equal(t, uint(8), *view.QuestionID)
}

func TestUpdateMissingComment(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := NewCommentService(gdb)

	mock.ExpectQuery(`SELECT \* FROM "comments"`).
		WillReturnRows(sqlmock.NewRows(commentColumns))

	_, err := svc.Update(404, dto.CommentRequest{Body: "new"}, nil)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestDeleteIsIdempotent(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := NewCommentService(gdb)

	// Absent id: zero rows affected, still no error
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "comments"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	assert.NoError(t, svc.Delete(404))
}
