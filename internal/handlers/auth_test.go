package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func authRouter() *gin.Engine {
	r := gin.New()
	r.Use(sessions.Sessions("qna_session", cookie.NewStore([]byte("test-secret"))))
	r.POST("/api/auth/register", NewAuthHandler().Register)
	return r
}

func postRegister(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	mock := newHandlerDB(t)
	r := authRouter()

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(userRows(1, "grace", "grace@example.com"))

	w := postRegister(r, `{"username":"grace","email":"grace@example.com","password":"hunter22"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already registered")
}

func TestRegisterStorageFailureIsNotConflict(t *testing.T) {
	mock := newHandlerDB(t)
	r := authRouter()

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email"}))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	w := postRegister(r, `{"username":"ada","email":"ada@example.com","password":"hunter22"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
