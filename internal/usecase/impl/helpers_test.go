package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"passport/internal/domain/entity"
	mockRepo "passport/internal/mocks/repository"

	"github.com/google/uuid"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

// expectRole makes profileRepo report role for the session's user.
func expectRole(t *testing.T, profileRepo *mockRepo.MockProfileRepository, session *entity.Session, role entity.Role) {
	t.Helper()

	profileRepo.EXPECT().
		FindByID(context.Background(), session.UserID).
		Return(&entity.Profile{ID: session.UserID, Email: session.Email, Role: role}, nil)
}

func newSession() *entity.Session {
	return &entity.Session{UserID: uuid.New(), Email: "cook@example.com", Role: entity.RoleUser}
}
