package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/triviaswwe/tw-database-web-sub000/internal/domain"
	"github.com/triviaswwe/tw-database-web-sub000/internal/service"
)

type ChampionshipHandler struct {
	championshipService *service.ChampionshipService
	logger              zerolog.Logger
}

func NewChampionshipHandler(championshipService *service.ChampionshipService, logger zerolog.Logger) *ChampionshipHandler {
	return &ChampionshipHandler{
		championshipService: championshipService,
		logger:              logger,
	}
}

// ChampionshipItem is the list-view projection of a championship.
type ChampionshipItem struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Abbreviation  string `json:"abbreviation,omitempty"`
	EstablishedAt string `json:"establishedAt"`
}

// ChampionshipDetail adds the current-holder lookup, derived by scanning the
// reigns on every request.
type ChampionshipDetail struct {
	ChampionshipItem
	Vacant         bool   `json:"vacant"`
	CurrentReignID int64  `json:"currentReignId,omitempty"`
	HolderKind     string `json:"holderKind,omitempty"`
	HolderID       int64  `json:"holderId,omitempty"`
	HolderName     string `json:"holderName,omitempty"`
	HeldSince      string `json:"heldSince,omitempty"`
}

func (h *ChampionshipHandler) List(w http.ResponseWriter, r *http.Request) {
	championships, err := h.championshipService.GetAll(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list championships")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	items := make([]ChampionshipItem, 0, len(championships))
	for _, c := range championships {
		items = append(items, ChampionshipItem{
			ID:            c.ID,
			Name:          c.Name,
			Abbreviation:  c.Abbreviation,
			EstablishedAt: formatTime(c.EstablishedAt),
		})
	}

	writeJSON(w, http.StatusOK, items)
}

func (h *ChampionshipHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "Invalid championship ID", http.StatusBadRequest)
		return
	}

	championship, err := h.championshipService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrChampionshipNotFound) {
			http.Error(w, "Championship not found", http.StatusNotFound)
			return
		}
		h.logger.Error().Err(err).Int64("championship_id", id).Msg("failed to get championship")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	current, err := h.championshipService.CurrentChampion(r.Context(), id)
	if err != nil {
		h.logger.Error().Err(err).Int64("championship_id", id).Msg("failed to resolve current champion")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	detail := ChampionshipDetail{
		ChampionshipItem: ChampionshipItem{
			ID:            championship.ID,
			Name:          championship.Name,
			Abbreviation:  championship.Abbreviation,
			EstablishedAt: formatTime(championship.EstablishedAt),
		},
		Vacant: current == nil,
	}

	if current != nil {
		detail.CurrentReignID = current.ID
		detail.HeldSince = formatTime(current.WonAt)
		if current.TagTeamID != nil {
			detail.HolderKind = "tagTeam"
			detail.HolderID = *current.TagTeamID
			if current.TagTeam != nil {
				detail.HolderName = current.TagTeam.Name
			}
		} else if current.WrestlerID != nil {
			detail.HolderKind = "wrestler"
			detail.HolderID = *current.WrestlerID
			if current.Wrestler != nil {
				detail.HolderName = current.Wrestler.Name
			}
		}
	}

	writeJSON(w, http.StatusOK, detail)
}
