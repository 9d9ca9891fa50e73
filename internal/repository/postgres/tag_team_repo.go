package postgres

import (
	"context"
	"errors"

	"github.com/triviaswwe/tw-database-web-sub000/internal/domain"
	"gorm.io/gorm"
)

type tagTeamRepository struct {
	db *gorm.DB
}

func NewTagTeamRepository(db *gorm.DB) *tagTeamRepository {
	return &tagTeamRepository{db: db}
}

func (r *tagTeamRepository) Create(ctx context.Context, team *domain.TagTeam) error {
	return r.db.WithContext(ctx).Create(team).Error
}

func (r *tagTeamRepository) GetByID(ctx context.Context, id int64) (*domain.TagTeam, error) {
	var team domain.TagTeam
	err := r.db.WithContext(ctx).First(&team, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTagTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

func (r *tagTeamRepository) GetAll(ctx context.Context) ([]*domain.TagTeam, error) {
	var teams []*domain.TagTeam
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}
