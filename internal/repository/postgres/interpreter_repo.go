package postgres

import (
	"context"
	"errors"

	"github.com/triviaswwe/tw-database-web-sub000/internal/domain"
	"gorm.io/gorm"
)

type interpreterRepository struct {
	db *gorm.DB
}

func NewInterpreterRepository(db *gorm.DB) *interpreterRepository {
	return &interpreterRepository{db: db}
}

func (r *interpreterRepository) Create(ctx context.Context, interpreter *domain.Interpreter) error {
	return r.db.WithContext(ctx).Create(interpreter).Error
}

func (r *interpreterRepository) GetByID(ctx context.Context, id int64) (*domain.Interpreter, error) {
	var interpreter domain.Interpreter
	err := r.db.WithContext(ctx).First(&interpreter, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInterpreterNotFound
		}
		return nil, err
	}
	return &interpreter, nil
}
