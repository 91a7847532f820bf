package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaddesk/leaddesk-api/internal/domain/entity"
	"github.com/leaddesk/leaddesk-api/pkg/apperror"
)

type fakePartnerRepo struct {
	partners []*entity.ChannelPartner
	nextID   uint
}

func (r *fakePartnerRepo) Create(_ context.Context, partner *entity.ChannelPartner) error {
	r.nextID++
	partner.ID = r.nextID
	partner.CreatedAt = time.Now()
	r.partners = append(r.partners, partner)
	return nil
}

func (r *fakePartnerRepo) GetByPhone(_ context.Context, phone string) (*entity.ChannelPartner, error) {
	for _, p := range r.partners {
		if p.Phone == phone {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePartnerRepo) List(_ context.Context) ([]entity.ChannelPartner, error) {
	out := make([]entity.ChannelPartner, 0, len(r.partners))
	for i := len(r.partners) - 1; i >= 0; i-- {
		out = append(out, *r.partners[i])
	}
	return out, nil
}

func TestCreateChannelPartner(t *testing.T) {
	svc := NewChannelPartnerService(&fakePartnerRepo{})

	partner, err := svc.CreateChannelPartner(context.Background(), &CreateChannelPartnerInput{
		Name:     "Vikram Mehta",
		FirmName: "Mehta Estates",
		Phone:    "7777777701",
	})
	require.NoError(t, err)
	assert.Equal(t, "Mehta Estates", partner.FirmName)
	assert.NotZero(t, partner.ID)
}

func TestCreateChannelPartner_DuplicatePhone(t *testing.T) {
	svc := NewChannelPartnerService(&fakePartnerRepo{})

	_, err := svc.CreateChannelPartner(context.Background(), &CreateChannelPartnerInput{
		Name:     "Vikram Mehta",
		FirmName: "Mehta Estates",
		Phone:    "7777777702",
	})
	require.NoError(t, err)

	_, err = svc.CreateChannelPartner(context.Background(), &CreateChannelPartnerInput{
		Name:     "Someone Else",
		FirmName: "Other Firm",
		Phone:    "7777777702",
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 409, appErr.Code)
	assert.Contains(t, appErr.Message, "7777777702")
}

func TestListChannelPartners_NewestFirst(t *testing.T) {
	svc := NewChannelPartnerService(&fakePartnerRepo{})

	_, err := svc.CreateChannelPartner(context.Background(), &CreateChannelPartnerInput{
		Name: "First", FirmName: "Firm A", Phone: "7777777703",
	})
	require.NoError(t, err)
	_, err = svc.CreateChannelPartner(context.Background(), &CreateChannelPartnerInput{
		Name: "Second", FirmName: "Firm B", Phone: "7777777704",
	})
	require.NoError(t, err)

	partners, err := svc.ListChannelPartners(context.Background())
	require.NoError(t, err)
	require.Len(t, partners, 2)
	assert.Equal(t, "Second", partners[0].Name)
}
