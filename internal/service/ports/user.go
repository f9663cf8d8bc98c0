package ports

import (
	"context"

	"github.com/thisuriee/peer-pulse/internal/domain"
)

type UserRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// ListTutors returns users holding the tutor role; subject filters on
	// declared skills when non-empty.
	ListTutors(ctx context.Context, subject string) ([]*domain.User, error)
}
