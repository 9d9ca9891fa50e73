package postgres

import (
	"context"
	"errors"

	"github.com/triviaswwe/tw-database-web-sub000/internal/domain"
	"gorm.io/gorm"
)

type reignRepository struct {
	db *gorm.DB
}

func NewReignRepository(db *gorm.DB) *reignRepository {
	return &reignRepository{db: db}
}

func (r *reignRepository) Create(ctx context.Context, reign *domain.Reign) error {
	return r.db.WithContext(ctx).Create(reign).Error
}

func (r *reignRepository) CreateMember(ctx context.Context, member *domain.ReignMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *reignRepository) GetByID(ctx context.Context, id int64) (*domain.Reign, error) {
	var reign domain.Reign
	err := r.db.WithContext(ctx).
		Preload("Wrestler").
		Preload("TagTeam").
		Preload("WonEvent").
		Preload("Members").
		Preload("Members.Wrestler").
		Preload("Members.Interpreter").
		First(&reign, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReignNotFound
		}
		return nil, err
	}
	return &reign, nil
}

func (r *reignRepository) GetByChampionshipID(ctx context.Context, championshipID int64) ([]domain.Reign, error) {
	var reigns []domain.Reign
	err := r.db.WithContext(ctx).
		Preload("Wrestler").
		Preload("TagTeam").
		Preload("WonEvent").
		Preload("Members").
		Preload("Members.Wrestler").
		Preload("Members.Interpreter").
		Where("championship_id = ?", championshipID).
		Order("won_at ASC, id ASC").
		Find(&reigns).Error
	if err != nil {
		return nil, err
	}
	return reigns, nil
}
