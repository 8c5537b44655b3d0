package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB wires gorm onto a sqlmock connection with automatic cleanup
// and expectation checking.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unfulfilled expectations: %v", err)
		}
		conn.Close()
	})
	return gdb, mock
}

var (
	answerColumns   = []string{"id", "question_id", "user_id", "body", "accepted", "ai_generated", "created_at", "updated_at"}
	questionColumns = []string{"id", "user_id", "title", "body", "created_at", "updated_at"}
	commentColumns  = []string{"id", "user_id", "question_id", "answer_id", "parent_id", "body", "created_at", "updated_at"}
	voteColumns     = []string{"id", "user_id", "answer_id", "value", "created_at"}
	userColumns     = []string{"id", "username", "email", "password", "about", "created_at", "updated_at"}
)

func answerRow(id, questionID, userID uint, body string, created time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(answerColumns).
		AddRow(id, questionID, userID, body, false, false, created, created)
}

func questionRow(id, userID uint, title string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(questionColumns).
		AddRow(id, userID, title, "body", now, now)
}

func userRow(id uint, username string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(userColumns).
		AddRow(id, username, username+"@example.com", "hash", "", now, now)
}

// stubCounter satisfies VoteCounter without touching storage.
type stubCounter struct {
	up, down int64
	status   VoteStatus
	err      error
}

func (s *stubCounter) UpvoteCount(uint) (int64, error)       { return s.up, s.err }
func (s *stubCounter) DownvoteCount(uint) (int64, error)     { return s.down, s.err }
func (s *stubCounter) Status(uint, uint) (VoteStatus, error) { return s.status, s.err }
