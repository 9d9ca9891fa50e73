package postgres

import (
	"context"
	"errors"

	"github.com/triviaswwe/tw-database-web-sub000/internal/domain"
	"gorm.io/gorm"
)

type wrestlerRepository struct {
	db *gorm.DB
}

func NewWrestlerRepository(db *gorm.DB) *wrestlerRepository {
	return &wrestlerRepository{db: db}
}

func (r *wrestlerRepository) Create(ctx context.Context, wrestler *domain.Wrestler) error {
	return r.db.WithContext(ctx).Create(wrestler).Error
}

func (r *wrestlerRepository) GetByID(ctx context.Context, id int64) (*domain.Wrestler, error) {
	var wrestler domain.Wrestler
	err := r.db.WithContext(ctx).First(&wrestler, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrWrestlerNotFound
		}
		return nil, err
	}
	return &wrestler, nil
}

func (r *wrestlerRepository) GetAll(ctx context.Context, limit, offset int) ([]*domain.Wrestler, error) {
	var wrestlers []*domain.Wrestler
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&wrestlers).Error
	if err != nil {
		return nil, err
	}
	return wrestlers, nil
}
