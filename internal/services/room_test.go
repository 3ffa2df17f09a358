package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/pr-poehali-dev/quiz-telegram-blockchain/internal/database"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var serviceDBSeq atomic.Int64

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:services_test_%d?mode=memory&cache=shared", serviceDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	database.AutoMigrate(db)
	return db
}

func TestCreateRoomPropagatesStorageErrors(t *testing.T) {
	db := setupDB(t)
	svc := NewRoomService(db)

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.Close()

	if _, err := svc.CreateRoom(CreateRoomInput{TelegramID: 1}); err == nil {
		t.Fatal("expected an error when the database is unreachable")
	}
}

func TestCreateRoomTokensAreUnique(t *testing.T) {
	db := setupDB(t)
	svc := NewRoomService(db)

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		room, err := svc.CreateRoom(CreateRoomInput{TelegramID: int64(i + 1)})
		if err != nil {
			t.Fatalf("failed to create room: %v", err)
		}
		if seen[room.RoomID] {
			t.Fatalf("duplicate room token %q", room.RoomID)
		}
		seen[room.RoomID] = true
	}
}
