package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/triviaswwe/tw-database-web-sub000/internal/domain"
	"github.com/triviaswwe/tw-database-web-sub000/internal/history"
	"github.com/triviaswwe/tw-database-web-sub000/internal/repository"
)

// HistoryService plays the Fact Store Adapter role: it assembles an immutable
// snapshot of one championship's facts and hands it to the pure engine. All
// derived views are recomputed from a fresh snapshot on every call.
type HistoryService struct {
	championshipRepo repository.ChampionshipRepository
	reignRepo        repository.ReignRepository
	matchRepo        repository.MatchRepository
	logger           zerolog.Logger

	// now is swappable so tests can pin the evaluation instant.
	now func() time.Time
}

func NewHistoryService(
	championshipRepo repository.ChampionshipRepository,
	reignRepo repository.ReignRepository,
	matchRepo repository.MatchRepository,
	logger zerolog.Logger,
) *HistoryService {
	return &HistoryService{
		championshipRepo: championshipRepo,
		reignRepo:        reignRepo,
		matchRepo:        matchRepo,
		logger:           logger,
		now:              time.Now,
	}
}

// WithNow returns a copy of the service pinned to a fixed evaluation instant.
func (s *HistoryService) WithNow(now func() time.Time) *HistoryService {
	clone := *s
	clone.now = now
	return &clone
}

// LoadSnapshot fetches all fact records for one championship. Retrieval is
// the only stage that touches the database; the engine then runs to
// completion over the in-memory snapshot.
func (s *HistoryService) LoadSnapshot(ctx context.Context, championshipID int64) (history.Snapshot, error) {
	championship, err := s.championshipRepo.GetByID(ctx, championshipID)
	if err != nil {
		return history.Snapshot{}, err
	}

	reigns, err := s.reignRepo.GetByChampionshipID(ctx, championshipID)
	if err != nil {
		return history.Snapshot{}, fmt.Errorf("failed to load reigns: %w", err)
	}

	matches, err := s.matchRepo.GetTitleMatchesByChampionshipID(ctx, championshipID)
	if err != nil {
		return history.Snapshot{}, fmt.Errorf("failed to load title matches: %w", err)
	}

	return history.Snapshot{
		Championship: *championship,
		Reigns:       reigns,
		Matches:      matches,
		Now:          s.now().UTC(),
	}, nil
}

// GetHistory computes the full derived view for a championship: timeline,
// defenses per reign, aggregates sorted per the given spec, and diagnostics.
func (s *HistoryService) GetHistory(ctx context.Context, championshipID int64, spec history.SortSpec) (history.History, error) {
	snap, err := s.LoadSnapshot(ctx, championshipID)
	if err != nil {
		return history.History{}, err
	}

	result := history.Compute(snap, spec)

	if len(result.Diagnostics) > 0 {
		s.logger.Warn().
			Int64("championship_id", championshipID).
			Int("diagnostics", len(result.Diagnostics)).
			Msg("championship history computed with diagnostics")
	}

	return result, nil
}

// GetDefenses resolves the defense records of a single reign, verifying the
// reign belongs to the requested championship.
func (s *HistoryService) GetDefenses(ctx context.Context, championshipID, reignID int64) ([]history.DefenseRecord, []history.Diagnostic, error) {
	reign, err := s.reignRepo.GetByID(ctx, reignID)
	if err != nil {
		return nil, nil, err
	}
	if reign.ChampionshipID != championshipID {
		// A reign requested under the wrong championship is indistinguishable
		// from a missing one as far as the caller is concerned.
		return nil, nil, domain.ErrReignNotFound
	}

	matches, err := s.matchRepo.GetTitleMatchesByChampionshipID(ctx, championshipID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load title matches: %w", err)
	}

	records, diags := history.ResolveDefenses(reign, matches)
	return records, diags, nil
}
