package repository

import (
	"context"

	"github.com/leaddesk/leaddesk-api/internal/domain/entity"
)

// ChannelPartnerRepository defines the interface for channel partner data operations
type ChannelPartnerRepository interface {
	Create(ctx context.Context, partner *entity.ChannelPartner) error
	GetByPhone(ctx context.Context, phone string) (*entity.ChannelPartner, error)
	// List returns all partners ordered by creation time descending.
	List(ctx context.Context) ([]entity.ChannelPartner, error)
}
