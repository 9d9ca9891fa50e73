package postgres

import (
	"context"
	"errors"

	"github.com/triviaswwe/tw-database-web-sub000/internal/domain"
	"gorm.io/gorm"
)

type championshipRepository struct {
	db *gorm.DB
}

func NewChampionshipRepository(db *gorm.DB) *championshipRepository {
	return &championshipRepository{db: db}
}

func (r *championshipRepository) Create(ctx context.Context, championship *domain.Championship) error {
	return r.db.WithContext(ctx).Create(championship).Error
}

func (r *championshipRepository) GetAll(ctx context.Context) ([]*domain.Championship, error) {
	var championships []*domain.Championship
	err := r.db.WithContext(ctx).
		Order("established_at ASC").
		Find(&championships).Error
	if err != nil {
		return nil, err
	}
	return championships, nil
}

func (r *championshipRepository) GetByID(ctx context.Context, id int64) (*domain.Championship, error) {
	var championship domain.Championship
	err := r.db.WithContext(ctx).First(&championship, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrChampionshipNotFound
		}
		return nil, err
	}
	return &championship, nil
}
