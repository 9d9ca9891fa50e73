package postgres

import (
	"context"

	"github.com/triviaswwe/tw-database-web-sub000/internal/domain"
	"gorm.io/gorm"
)

type matchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) *matchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) Create(ctx context.Context, match *domain.Match) error {
	return r.db.WithContext(ctx).Create(match).Error
}

func (r *matchRepository) CreateParticipant(ctx context.Context, participant *domain.MatchParticipant) error {
	return r.db.WithContext(ctx).Create(participant).Error
}

func (r *matchRepository) CreateTeamScore(ctx context.Context, score *domain.MatchTeamScore) error {
	return r.db.WithContext(ctx).Create(score).Error
}

func (r *matchRepository) GetTitleMatchesByChampionshipID(ctx context.Context, championshipID int64) ([]domain.Match, error) {
	var matches []domain.Match
	err := r.db.WithContext(ctx).
		Preload("Event").
		Preload("Participants").
		Preload("Participants.Wrestler").
		Preload("Participants.Interpreter").
		Preload("TeamScores").
		Where("championship_id = ? AND is_title_match = ?", championshipID, true).
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *matchRepository) GetByEventID(ctx context.Context, eventID int64) ([]domain.Match, error) {
	var matches []domain.Match
	err := r.db.WithContext(ctx).
		Preload("Participants").
		Preload("Participants.Wrestler").
		Preload("TeamScores").
		Where("event_id = ?", eventID).
		Order("id ASC").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}
