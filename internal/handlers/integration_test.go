package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// Full round: two players share a room, finish a game and show up on the
// leaderboard and the room roster in score order.
func TestFullGameFlow(t *testing.T) {
	r := setupRouter(t)

	authUser(t, r, 1, "alice")
	authUser(t, r, 2, "bob")

	roomID := createRoom(t, r, 1)
	assertStatus(t, joinRoom(t, r, roomID, 2), http.StatusOK)

	detail := getRoomDetail(t, r, roomID)
	if detail.CurrentPlayers != 2 {
		t.Fatalf("current_players = %d, want 2", detail.CurrentPlayers)
	}

	completeGame(t, r, roomID, 1, 10, 1)
	completeGame(t, r, roomID, 2, 20, 2)

	entries := getLeaderboard(t, r, "?limit=2")
	if len(entries) != 2 {
		t.Fatalf("expected 2 leaderboard entries, got %d", len(entries))
	}
	if entries[0].TelegramID != 2 || entries[0].TotalScore != 20 {
		t.Errorf("first place wrong: %+v", entries[0])
	}
	if entries[1].TelegramID != 1 || entries[1].TotalScore != 10 {
		t.Errorf("second place wrong: %+v", entries[1])
	}

	detail = getRoomDetail(t, r, roomID)
	if len(detail.Players) != 2 {
		t.Fatalf("expected 2 roster entries, got %d", len(detail.Players))
	}
	if detail.Players[0].TelegramID != 2 || detail.Players[0].Score != 20 {
		t.Errorf("roster leader wrong: %+v", detail.Players[0])
	}
	if detail.Players[1].TelegramID != 1 || detail.Players[1].Score != 10 {
		t.Errorf("roster runner-up wrong: %+v", detail.Players[1])
	}
}

func TestPreflightShortCircuits(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/rooms", nil)
	// httptest.NewRequest defaults Host to example.com; the Origin must
	// differ or gin-contrib/cors treats the request as same-origin and
	// skips CORS processing entirely.
	req.Header.Set("Origin", "https://app.other.test")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("preflight status = %d, want %d", w.Code, http.StatusOK)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
	if w.Body.Len() != 0 {
		t.Errorf("preflight body should be empty, got %q", w.Body.String())
	}
}

func TestResponsesCarryCORSHeader(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rooms", nil)
	req.Header.Set("Origin", "https://app.other.test")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assertStatus(t, w, http.StatusOK)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}
