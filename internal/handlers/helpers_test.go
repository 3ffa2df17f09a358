package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/pr-poehali-dev/quiz-telegram-blockchain/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var testDBSeq atomic.Int64

// setupRouter builds a router over a fresh in-memory database.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	r, _ := setupRouterDB(t)
	return r
}

// setupRouterDB also exposes the database for tests that seed rows directly.
func setupRouterDB(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:handlers_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	database.AutoMigrate(db)

	return NewRouter(db), db
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func assertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Fatalf("expected status %d, got %d, body: %s", expected, w.Code, w.Body.String())
	}
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

// authUser registers a user and returns the profile body.
func authUser(t *testing.T, r *gin.Engine, telegramID int64, username string) map[string]interface{} {
	t.Helper()
	w := postJSON(t, r, "/api/v1/auth", map[string]interface{}{
		"telegram_id": telegramID,
		"username":    username,
		"first_name":  username,
	})
	assertStatus(t, w, http.StatusOK)
	var user map[string]interface{}
	decodeJSON(t, w, &user)
	return user
}

// createRoom makes a room owned by telegramID and returns its room_id.
func createRoom(t *testing.T, r *gin.Engine, telegramID int64) string {
	t.Helper()
	w := postJSON(t, r, "/api/v1/rooms", map[string]interface{}{
		"action":      "create",
		"telegram_id": telegramID,
		"room_name":   "test room",
	})
	assertStatus(t, w, http.StatusOK)
	var created RoomCreatedResponse
	decodeJSON(t, w, &created)
	if created.RoomID == "" {
		t.Fatal("expected a non-empty room_id")
	}
	return created.RoomID
}
