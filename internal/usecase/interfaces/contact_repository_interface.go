package interfaces

import (
	"context"
	"meshguard_api/internal/domain/entities"
)

type IContactMessageRepository interface {
	Create(ctx context.Context, msg entities.ContactMessage) (entities.ContactMessage, error)
	List(ctx context.Context) ([]entities.ContactMessage, error)
}
