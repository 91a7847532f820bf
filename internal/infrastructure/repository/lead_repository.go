package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/leaddesk/leaddesk-api/internal/domain/entity"
	"github.com/leaddesk/leaddesk-api/internal/domain/enum"
	domainRepo "github.com/leaddesk/leaddesk-api/internal/domain/repository"
	"github.com/leaddesk/leaddesk-api/pkg/pagination"
	"gorm.io/gorm"
)

type leadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) domainRepo.LeadRepository {
	return &leadRepository{db: db}
}

// Create assigns the friendly ID from the current maximum primary key and
// inserts the lead in one transaction. Two racing creates can still read
// the same maximum; the unique index on friendly_id then fails the second
// insert, which surfaces as ErrDuplicateKey for the caller to retry.
func (r *leadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var last entity.Lead
		err := tx.Select("id").Order("id DESC").First(&last).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		// Past 9999 the numeric part simply outgrows the padding.
		lead.FriendlyID = fmt.Sprintf("LEAD-%04d", last.ID+1)
		return tx.Create(lead).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainRepo.ErrDuplicateKey
	}
	return err
}

func (r *leadRepository) GetByFriendlyID(ctx context.Context, friendlyID string) (*entity.Lead, error) {
	var lead entity.Lead
	err := r.db.WithContext(ctx).First(&lead, "friendly_id = ?", friendlyID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &lead, err
}

func (r *leadRepository) GetByPhone(ctx context.Context, phone string) (*entity.Lead, error) {
	var lead entity.Lead
	err := r.db.WithContext(ctx).First(&lead, "phone = ?", phone).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &lead, err
}

func (r *leadRepository) GetDetail(ctx context.Context, friendlyID string) (*entity.Lead, error) {
	var lead entity.Lead
	err := r.db.WithContext(ctx).
		Preload("Feedbacks").
		Preload("Interactions").
		First(&lead, "friendly_id = ?", friendlyID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &lead, err
}

// MarkRevisit flips the status and appends the interaction atomically.
// Each call appends a fresh interaction row, including repeat calls on a
// lead already in REVISIT: the rows double as a visit audit trail.
func (r *leadRepository) MarkRevisit(ctx context.Context, friendlyID, interactionType, content string) (*entity.Lead, error) {
	var lead entity.Lead
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&lead, "friendly_id = ?", friendlyID).Error; err != nil {
			return err
		}
		if err := tx.Model(&lead).Update("status", enum.LeadStatusRevisit).Error; err != nil {
			return err
		}
		return tx.Create(&entity.Interaction{
			LeadID:  lead.ID,
			Type:    interactionType,
			Content: content,
		}).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

func (r *leadRepository) Recent(ctx context.Context, limit int) ([]domainRepo.LeadSummary, error) {
	var summaries []domainRepo.LeadSummary
	err := r.db.WithContext(ctx).Model(&entity.Lead{}).
		Select("friendly_id, customer_name, phone, source, sources_list, purpose, status, created_at").
		Order("created_at DESC").
		Limit(limit).
		Scan(&summaries).Error
	return summaries, err
}

func (r *leadRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Lead, int64, error) {
	var leads []entity.Lead
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Lead{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC")
	if params != nil {
		params.Validate()
		query = query.Offset(params.Offset()).Limit(params.PerPage)
	}

	err := query.Find(&leads).Error
	return leads, total, err
}

func (r *leadRepository) Search(ctx context.Context, query, paddedCode string, limit int) ([]domainRepo.LeadSearchRow, error) {
	var rows []domainRepo.LeadSearchRow
	like := "%" + query + "%"

	match := r.db.
		Where("friendly_id ILIKE ?", like).
		Or("customer_name ILIKE ?", like).
		Or("phone ILIKE ?", like)
	if paddedCode != "" {
		match = match.Or("friendly_id LIKE ?", "%"+paddedCode+"%")
	}

	err := r.db.WithContext(ctx).Model(&entity.Lead{}).
		Select("friendly_id, customer_name, phone, EXISTS(SELECT 1 FROM feedbacks WHERE feedbacks.lead_id = leads.id) AS has_feedback").
		Where(match).
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *leadRepository) Stats(ctx context.Context) (*domainRepo.LeadStats, error) {
	stats := &domainRepo.LeadStats{}
	db := r.db.WithContext(ctx)

	if err := db.Model(&entity.Lead{}).Where("status = ?", enum.LeadStatusVisit).Count(&stats.VisitCount).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&entity.Lead{}).Where("status = ?", enum.LeadStatusRevisit).Count(&stats.RevisitCount).Error; err != nil {
		return nil, err
	}
	stats.TotalVisitsRevisits = stats.VisitCount + stats.RevisitCount

	var total int64
	if err := db.Model(&entity.Lead{}).Count(&total).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&entity.Lead{}).Where("assigned_to IS NOT NULL").Count(&stats.AssignedCount).Error; err != nil {
		return nil, err
	}
	stats.PendingCount = total - stats.AssignedCount

	return stats, nil
}

func (r *leadRepository) CreateFeedback(ctx context.Context, feedback *entity.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

// DeleteCascade removes the lead's children and then the lead itself as
// one transaction. A failure of any delete rolls back the rest.
func (r *leadRepository) DeleteCascade(ctx context.Context, leadID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("lead_id = ?", leadID).Delete(&entity.Feedback{}).Error; err != nil {
			return err
		}
		if err := tx.Where("lead_id = ?", leadID).Delete(&entity.Interaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Lead{}, leadID).Error
	})
}
