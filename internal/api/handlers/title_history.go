package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/triviaswwe/tw-database-web-sub000/internal/domain"
	"github.com/triviaswwe/tw-database-web-sub000/internal/history"
	"github.com/triviaswwe/tw-database-web-sub000/internal/service"
)

type TitleHistoryHandler struct {
	historyService *service.HistoryService
	logger         zerolog.Logger
}

func NewTitleHistoryHandler(historyService *service.HistoryService, logger zerolog.Logger) *TitleHistoryHandler {
	return &TitleHistoryHandler{
		historyService: historyService,
		logger:         logger,
	}
}

// TimelineEntryDTO flattens a timeline entry for JSON consumers. Vacant
// entries carry only the interval fields.
type TimelineEntryDTO struct {
	Kind          string           `json:"kind"`
	ReignID       int64            `json:"reignId,omitempty"`
	ReignNumber   int              `json:"reignNumber,omitempty"`
	HolderKind    string           `json:"holderKind,omitempty"`
	HolderID      int64            `json:"holderId,omitempty"`
	HolderName    string           `json:"holderName,omitempty"`
	StartAt       string           `json:"startAt"`
	EndAt         string           `json:"endAt,omitempty"`
	Ongoing       bool             `json:"ongoing"`
	DaysHeld      int              `json:"daysHeld"`
	DaysHeldLabel string           `json:"daysHeldLabel"`
	WonEventID    int64            `json:"wonEventId,omitempty"`
	WonEventName  string           `json:"wonEventName,omitempty"`
	Members       []ReignMemberDTO `json:"members,omitempty"`
}

type ReignMemberDTO struct {
	WrestlerID      int64  `json:"wrestlerId"`
	Name            string `json:"name,omitempty"`
	InterpreterName string `json:"interpreterName,omitempty"`
	StartAt         string `json:"startAt"`
	EndAt           string `json:"endAt,omitempty"`
}

type TimelineResponse struct {
	ChampionshipID int64                `json:"championshipId"`
	Entries        []TimelineEntryDTO   `json:"entries"`
	Diagnostics    []history.Diagnostic `json:"diagnostics"`
}

type DefensesResponse struct {
	ReignID     int64                   `json:"reignId"`
	Defenses    []history.DefenseRecord `json:"defenses"`
	Diagnostics []history.Diagnostic    `json:"diagnostics"`
}

type StatsResponse struct {
	ChampionshipID int64                  `json:"championshipId"`
	SortKey        string                 `json:"sortKey"`
	SortDirection  string                 `json:"sortDirection"`
	Rows           []history.AggregateRow `json:"rows"`
	Diagnostics    []history.Diagnostic   `json:"diagnostics"`
}

func (h *TitleHistoryHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "Invalid championship ID", http.StatusBadRequest)
		return
	}

	result, err := h.historyService.GetHistory(r.Context(), id, history.DefaultSort())
	if err != nil {
		if errors.Is(err, domain.ErrChampionshipNotFound) {
			http.Error(w, "Championship not found", http.StatusNotFound)
			return
		}
		h.logger.Error().Err(err).Int64("championship_id", id).Msg("failed to compute timeline")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	entries := make([]TimelineEntryDTO, 0, len(result.Timeline))
	for i := range result.Timeline {
		entries = append(entries, toTimelineEntryDTO(&result.Timeline[i]))
	}

	writeJSON(w, http.StatusOK, TimelineResponse{
		ChampionshipID: id,
		Entries:        entries,
		Diagnostics:    diagnosticsOrEmpty(result.Diagnostics),
	})
}

func (h *TitleHistoryHandler) Defenses(w http.ResponseWriter, r *http.Request) {
	championshipID, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "Invalid championship ID", http.StatusBadRequest)
		return
	}
	reignID, ok := parseID(chi.URLParam(r, "reignId"))
	if !ok {
		http.Error(w, "Invalid reign ID", http.StatusBadRequest)
		return
	}

	defenses, diags, err := h.historyService.GetDefenses(r.Context(), championshipID, reignID)
	if err != nil {
		if errors.Is(err, domain.ErrReignNotFound) {
			http.Error(w, "Reign not found", http.StatusNotFound)
			return
		}
		h.logger.Error().Err(err).Int64("reign_id", reignID).Msg("failed to resolve defenses")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if defenses == nil {
		defenses = []history.DefenseRecord{}
	}
	writeJSON(w, http.StatusOK, DefensesResponse{
		ReignID:     reignID,
		Defenses:    defenses,
		Diagnostics: diagnosticsOrEmpty(diags),
	})
}

func (h *TitleHistoryHandler) Stats(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "Invalid championship ID", http.StatusBadRequest)
		return
	}

	spec, err := history.ParseSortSpec(r.URL.Query().Get("sort"), r.URL.Query().Get("dir"))
	if err != nil {
		http.Error(w, "Invalid sort parameters", http.StatusBadRequest)
		return
	}

	result, err := h.historyService.GetHistory(r.Context(), id, spec)
	if err != nil {
		if errors.Is(err, domain.ErrChampionshipNotFound) {
			http.Error(w, "Championship not found", http.StatusNotFound)
			return
		}
		h.logger.Error().Err(err).Int64("championship_id", id).Msg("failed to compute stats")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, StatsResponse{
		ChampionshipID: id,
		SortKey:        string(spec.Key),
		SortDirection:  string(spec.Direction),
		Rows:           result.Aggregates,
		Diagnostics:    diagnosticsOrEmpty(result.Diagnostics),
	})
}

func toTimelineEntryDTO(e *history.TimelineEntry) TimelineEntryDTO {
	dto := TimelineEntryDTO{
		Kind:          string(e.Kind),
		StartAt:       formatTime(e.StartAt),
		EndAt:         formatTimePtr(e.EndAt),
		Ongoing:       e.Ongoing,
		DaysHeld:      e.DaysHeld,
		DaysHeldLabel: e.DaysHeldLabel,
	}
	if e.Kind != history.EntryReign || e.Reign == nil {
		return dto
	}

	reign := e.Reign
	dto.ReignID = reign.ID
	dto.ReignNumber = e.ReignNumber

	if reign.TagTeamID != nil {
		dto.HolderKind = "tagTeam"
		dto.HolderID = *reign.TagTeamID
		if reign.TagTeam != nil {
			dto.HolderName = reign.TagTeam.Name
		}
	} else if reign.WrestlerID != nil {
		dto.HolderKind = "wrestler"
		dto.HolderID = *reign.WrestlerID
		if reign.Wrestler != nil {
			dto.HolderName = reign.Wrestler.Name
		}
	}

	if reign.WonEventID != nil {
		dto.WonEventID = *reign.WonEventID
		if reign.WonEvent != nil {
			dto.WonEventName = reign.WonEvent.Name
		}
	}

	for _, m := range reign.Members {
		member := ReignMemberDTO{
			WrestlerID: m.WrestlerID,
			StartAt:    formatTime(m.StartAt),
			EndAt:      formatTimePtr(m.EndAt),
		}
		if m.Wrestler != nil {
			member.Name = m.Wrestler.Name
		}
		if m.Interpreter != nil {
			member.InterpreterName = m.Interpreter.Name
		}
		dto.Members = append(dto.Members, member)
	}

	return dto
}

func diagnosticsOrEmpty(diags []history.Diagnostic) []history.Diagnostic {
	if diags == nil {
		return []history.Diagnostic{}
	}
	return diags
}
