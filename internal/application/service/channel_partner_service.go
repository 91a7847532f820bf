package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/leaddesk/leaddesk-api/internal/domain/entity"
	"github.com/leaddesk/leaddesk-api/internal/domain/repository"
	"github.com/leaddesk/leaddesk-api/pkg/apperror"
)

// ChannelPartnerService handles channel partner registration
type ChannelPartnerService struct {
	partnerRepo repository.ChannelPartnerRepository
}

// NewChannelPartnerService creates a new channel partner service
func NewChannelPartnerService(partnerRepo repository.ChannelPartnerRepository) *ChannelPartnerService {
	return &ChannelPartnerService{partnerRepo: partnerRepo}
}

// CreateChannelPartnerInput represents the registration payload
type CreateChannelPartnerInput struct {
	Name     string
	FirmName string
	Phone    string
	Email    *string
}

// CreateChannelPartner registers a partner. Phone uniqueness is its own
// domain, independent of lead phones.
func (s *ChannelPartnerService) CreateChannelPartner(ctx context.Context, input *CreateChannelPartnerInput) (*entity.ChannelPartner, error) {
	existing, err := s.partnerRepo.GetByPhone(ctx, input.Phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError(fmt.Sprintf(
			"A channel partner with phone number %s already exists", input.Phone))
	}

	partner := &entity.ChannelPartner{
		Name:     input.Name,
		FirmName: input.FirmName,
		Phone:    input.Phone,
		Email:    input.Email,
	}
	if err := s.partnerRepo.Create(ctx, partner); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, apperror.NewConflictError(fmt.Sprintf(
				"A channel partner with phone number %s already exists", input.Phone))
		}
		return nil, err
	}

	return partner, nil
}

// ListChannelPartners returns all partners, newest first
func (s *ChannelPartnerService) ListChannelPartners(ctx context.Context) ([]entity.ChannelPartner, error) {
	partners, err := s.partnerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if partners == nil {
		partners = []entity.ChannelPartner{}
	}
	return partners, nil
}
