package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pr-poehali-dev/quiz-telegram-blockchain/internal/models"
	"github.com/pr-poehali-dev/quiz-telegram-blockchain/internal/services"
)

func joinRoom(t *testing.T, r *gin.Engine, roomID string, telegramID int64) *httptest.ResponseRecorder {
	t.Helper()
	return postJSON(t, r, "/api/v1/rooms", map[string]interface{}{
		"action":      "join",
		"telegram_id": telegramID,
		"room_id":     roomID,
	})
}

func getRoomDetail(t *testing.T, r *gin.Engine, roomID string) services.RoomDetail {
	t.Helper()
	w := get(t, r, "/api/v1/rooms?room_id="+roomID)
	assertStatus(t, w, http.StatusOK)
	var detail services.RoomDetail
	decodeJSON(t, w, &detail)
	return detail
}

func TestCreateRoomRequiresTelegramID(t *testing.T) {
	r := setupRouter(t)

	w := postJSON(t, r, "/api/v1/rooms", map[string]interface{}{"action": "create"})
	assertStatus(t, w, http.StatusBadRequest)
}

func TestCreateRoomSeatsCreator(t *testing.T) {
	r := setupRouter(t)

	authUser(t, r, 1, "creator")
	roomID := createRoom(t, r, 1)

	detail := getRoomDetail(t, r, roomID)
	if detail.CurrentPlayers != 1 {
		t.Errorf("current_players = %d, want 1", detail.CurrentPlayers)
	}
	if detail.Status != "waiting" {
		t.Errorf("status = %q, want waiting", detail.Status)
	}
	if len(detail.Players) != 1 || detail.Players[0].TelegramID != 1 {
		t.Errorf("roster should hold only the creator: %+v", detail.Players)
	}
}

func TestCreateRoomDefaultsName(t *testing.T) {
	r := setupRouter(t)

	authUser(t, r, 1, "creator")
	w := postJSON(t, r, "/api/v1/rooms", map[string]interface{}{
		"action":      "create",
		"telegram_id": 1,
	})
	assertStatus(t, w, http.StatusOK)

	var created RoomCreatedResponse
	decodeJSON(t, w, &created)
	if created.RoomName != "Игровая комната" {
		t.Errorf("room_name = %q, want default", created.RoomName)
	}
}

func TestJoinRoomValidation(t *testing.T) {
	r := setupRouter(t)

	w := postJSON(t, r, "/api/v1/rooms", map[string]interface{}{"action": "join", "telegram_id": 5})
	assertStatus(t, w, http.StatusBadRequest)

	w = joinRoom(t, r, "no-such-room", 5)
	assertStatus(t, w, http.StatusNotFound)
}

func TestJoinRoomAtCapacityRejected(t *testing.T) {
	r := setupRouter(t)

	for id := int64(1); id <= 5; id++ {
		authUser(t, r, id, "player")
	}
	roomID := createRoom(t, r, 1)

	for id := int64(2); id <= 4; id++ {
		assertStatus(t, joinRoom(t, r, roomID, id), http.StatusOK)
	}

	w := joinRoom(t, r, roomID, 5)
	assertStatus(t, w, http.StatusBadRequest)
	var resp ErrorResponse
	decodeJSON(t, w, &resp)
	if resp.Error != "Room is full" {
		t.Errorf("unexpected error: %q", resp.Error)
	}

	detail := getRoomDetail(t, r, roomID)
	if detail.CurrentPlayers != 4 {
		t.Errorf("rejected join changed current_players to %d", detail.CurrentPlayers)
	}
	if len(detail.Players) != 4 {
		t.Errorf("rejected join left a roster row: %d players", len(detail.Players))
	}
}

func TestDuplicateJoinIsNoOp(t *testing.T) {
	r := setupRouter(t)

	authUser(t, r, 1, "creator")
	authUser(t, r, 2, "joiner")
	roomID := createRoom(t, r, 1)

	assertStatus(t, joinRoom(t, r, roomID, 2), http.StatusOK)
	assertStatus(t, joinRoom(t, r, roomID, 2), http.StatusOK)

	detail := getRoomDetail(t, r, roomID)
	if detail.CurrentPlayers != 2 {
		t.Errorf("duplicate join incremented current_players to %d", detail.CurrentPlayers)
	}
	if len(detail.Players) != 2 {
		t.Errorf("duplicate join created a roster row: %d players", len(detail.Players))
	}
}

func TestUnknownRoomActionRejected(t *testing.T) {
	r := setupRouter(t)

	w := postJSON(t, r, "/api/v1/rooms", map[string]interface{}{
		"action":      "explode",
		"telegram_id": 1,
	})
	assertStatus(t, w, http.StatusBadRequest)
	var resp ErrorResponse
	decodeJSON(t, w, &resp)
	if resp.Error != "unknown action" {
		t.Errorf("unexpected error: %q", resp.Error)
	}
}

func TestListOpenRooms(t *testing.T) {
	r := setupRouter(t)

	authUser(t, r, 1, "creator")
	publicRoom := createRoom(t, r, 1)

	w := postJSON(t, r, "/api/v1/rooms", map[string]interface{}{
		"action":      "create",
		"telegram_id": 1,
		"room_name":   "secret",
		"is_private":  true,
	})
	assertStatus(t, w, http.StatusOK)

	w = get(t, r, "/api/v1/rooms")
	assertStatus(t, w, http.StatusOK)

	var resp struct {
		Rooms []services.RoomSummary `json:"rooms"`
	}
	decodeJSON(t, w, &resp)
	if len(resp.Rooms) != 1 {
		t.Fatalf("expected 1 public room, got %d", len(resp.Rooms))
	}
	if resp.Rooms[0].RoomID != publicRoom {
		t.Errorf("listed wrong room: %q", resp.Rooms[0].RoomID)
	}
	if resp.Rooms[0].CreatorUsername != "creator" {
		t.Errorf("creator fields missing: %+v", resp.Rooms[0])
	}
}

func TestListOpenRoomsCappedAt20(t *testing.T) {
	r, db := setupRouterDB(t)

	authUser(t, r, 1, "creator")

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 25; i++ {
		room := models.Room{
			RoomID:            fmt.Sprintf("room-%02d", i),
			CreatorTelegramID: 1,
			RoomName:          "test room",
			MaxPlayers:        4,
			CurrentPlayers:    1,
			Status:            "waiting",
			CreatedAt:         base.Add(time.Duration(i) * time.Minute),
		}
		if err := db.Create(&room).Error; err != nil {
			t.Fatalf("failed to seed room: %v", err)
		}
	}

	w := get(t, r, "/api/v1/rooms")
	assertStatus(t, w, http.StatusOK)

	var resp struct {
		Rooms []services.RoomSummary `json:"rooms"`
	}
	decodeJSON(t, w, &resp)
	if len(resp.Rooms) != 20 {
		t.Fatalf("expected 20 rooms, got %d", len(resp.Rooms))
	}
	if resp.Rooms[0].RoomID != "room-24" {
		t.Errorf("newest room should lead the listing, got %q", resp.Rooms[0].RoomID)
	}
	if resp.Rooms[19].RoomID != "room-05" {
		t.Errorf("listing should stop at the 20 newest rooms, got %q", resp.Rooms[19].RoomID)
	}
}

func TestRoomTokenIsURLSafe(t *testing.T) {
	r := setupRouter(t)

	authUser(t, r, 1, "creator")
	roomID := createRoom(t, r, 1)

	if len(roomID) != 11 {
		t.Errorf("room token length = %d, want 11", len(roomID))
	}
	if strings.ContainsAny(roomID, "+/=") {
		t.Errorf("room token not URL-safe: %q", roomID)
	}
}

func TestRoomDetailNotFound(t *testing.T) {
	r := setupRouter(t)

	w := get(t, r, "/api/v1/rooms?room_id=missing")
	assertStatus(t, w, http.StatusNotFound)
}

func TestMethodNotAllowed(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/rooms", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assertStatus(t, w, http.StatusMethodNotAllowed)

	var resp ErrorResponse
	decodeJSON(t, w, &resp)
	if resp.Error != "Method not allowed" {
		t.Errorf("unexpected error: %q", resp.Error)
	}
}
