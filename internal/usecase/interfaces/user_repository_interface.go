package interfaces

import (
	"context"
	"meshguard_api/internal/domain/entities"
)

// IUserRepository abstracts persistence for User.
//
// Lookups return a zero-value User (empty ID) and a nil error when nothing matches,
// the same convention the quote and payment repositories follow.

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	UpdateRole(ctx context.Context, id string, role entities.Role) (entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
}
