package repository

import (
	"context"
	"errors"

	"github.com/leaddesk/leaddesk-api/internal/domain/entity"
	domainRepo "github.com/leaddesk/leaddesk-api/internal/domain/repository"
	"gorm.io/gorm"
)

type channelPartnerRepository struct {
	db *gorm.DB
}

// NewChannelPartnerRepository creates a new channel partner repository
func NewChannelPartnerRepository(db *gorm.DB) domainRepo.ChannelPartnerRepository {
	return &channelPartnerRepository{db: db}
}

func (r *channelPartnerRepository) Create(ctx context.Context, partner *entity.ChannelPartner) error {
	err := r.db.WithContext(ctx).Create(partner).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainRepo.ErrDuplicateKey
	}
	return err
}

func (r *channelPartnerRepository) GetByPhone(ctx context.Context, phone string) (*entity.ChannelPartner, error) {
	var partner entity.ChannelPartner
	err := r.db.WithContext(ctx).First(&partner, "phone = ?", phone).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &partner, err
}

func (r *channelPartnerRepository) List(ctx context.Context) ([]entity.ChannelPartner, error) {
	var partners []entity.ChannelPartner
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&partners).Error
	return partners, err
}
