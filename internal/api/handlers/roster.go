package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/triviaswwe/tw-database-web-sub000/internal/domain"
	"github.com/triviaswwe/tw-database-web-sub000/internal/service"
)

type RosterHandler struct {
	rosterService   *service.RosterService
	defaultPageSize int
	maxPageSize     int
	logger          zerolog.Logger
}

func NewRosterHandler(rosterService *service.RosterService, defaultPageSize, maxPageSize int, logger zerolog.Logger) *RosterHandler {
	return &RosterHandler{
		rosterService:   rosterService,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
		logger:          logger,
	}
}

type WrestlerDTO struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Country   string   `json:"country,omitempty"`
	Aliases   []string `json:"aliases"`
	DebutedAt string   `json:"debutedAt,omitempty"`
}

type TagTeamDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (h *RosterHandler) ListWrestlers(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r, h.defaultPageSize, h.maxPageSize)

	wrestlers, err := h.rosterService.GetWrestlers(r.Context(), limit, offset)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list wrestlers")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	items := make([]WrestlerDTO, 0, len(wrestlers))
	for _, wr := range wrestlers {
		items = append(items, toWrestlerDTO(wr))
	}

	writeJSON(w, http.StatusOK, items)
}

func (h *RosterHandler) GetWrestler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "Invalid wrestler ID", http.StatusBadRequest)
		return
	}

	wrestler, err := h.rosterService.GetWrestler(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrWrestlerNotFound) {
			http.Error(w, "Wrestler not found", http.StatusNotFound)
			return
		}
		h.logger.Error().Err(err).Int64("wrestler_id", id).Msg("failed to get wrestler")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toWrestlerDTO(wrestler))
}

func (h *RosterHandler) ListTagTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.rosterService.GetTagTeams(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list tag teams")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	items := make([]TagTeamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, TagTeamDTO{ID: t.ID, Name: t.Name})
	}

	writeJSON(w, http.StatusOK, items)
}

func toWrestlerDTO(wr *domain.Wrestler) WrestlerDTO {
	dto := WrestlerDTO{
		ID:      wr.ID,
		Name:    wr.Name,
		Country: wr.Country,
		Aliases: jsonToStringSlice(wr.Aliases),
	}
	if wr.DebutedAt != nil {
		dto.DebutedAt = formatTime(*wr.DebutedAt)
	}
	return dto
}

func jsonToStringSlice(data []byte) []string {
	if data == nil {
		return []string{}
	}
	var result []string
	if err := json.Unmarshal(data, &result); err != nil {
		return []string{}
	}
	return result
}
