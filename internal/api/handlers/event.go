package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/triviaswwe/tw-database-web-sub000/internal/domain"
	"github.com/triviaswwe/tw-database-web-sub000/internal/repository"
)

type EventHandler struct {
	eventRepo       repository.EventRepository
	matchRepo       repository.MatchRepository
	defaultPageSize int
	maxPageSize     int
	logger          zerolog.Logger
}

func NewEventHandler(eventRepo repository.EventRepository, matchRepo repository.MatchRepository, defaultPageSize, maxPageSize int, logger zerolog.Logger) *EventHandler {
	return &EventHandler{
		eventRepo:       eventRepo,
		matchRepo:       matchRepo,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
		logger:          logger,
	}
}

type EventItem struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Venue      string `json:"venue,omitempty"`
	Country    string `json:"country,omitempty"`
	OccurredAt string `json:"occurredAt"`
}

// EventDetail is the event card: the show plus its matches in card order.
type EventDetail struct {
	EventItem
	Matches []EventMatchDTO `json:"matches"`
}

type EventMatchDTO struct {
	ID             int64                `json:"id"`
	ChampionshipID int64                `json:"championshipId,omitempty"`
	Stipulation    string               `json:"stipulation,omitempty"`
	IsTitleMatch   bool                 `json:"isTitleMatch"`
	TitleChanged   bool                 `json:"titleChanged"`
	Participants   []EventParticipantDTO `json:"participants"`
}

type EventParticipantDTO struct {
	WrestlerID int64  `json:"wrestlerId"`
	Name       string `json:"name,omitempty"`
	TeamNumber int    `json:"teamNumber"`
	Result     string `json:"result,omitempty"`
}

func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r, h.defaultPageSize, h.maxPageSize)

	events, err := h.eventRepo.GetAll(r.Context(), limit, offset)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list events")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	items := make([]EventItem, 0, len(events))
	for _, e := range events {
		items = append(items, toEventItem(e))
	}

	writeJSON(w, http.StatusOK, items)
}

func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "Invalid event ID", http.StatusBadRequest)
		return
	}

	event, err := h.eventRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			http.Error(w, "Event not found", http.StatusNotFound)
			return
		}
		h.logger.Error().Err(err).Int64("event_id", id).Msg("failed to get event")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	matches, err := h.matchRepo.GetByEventID(r.Context(), id)
	if err != nil {
		h.logger.Error().Err(err).Int64("event_id", id).Msg("failed to get event matches")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	detail := EventDetail{
		EventItem: toEventItem(event),
		Matches:   make([]EventMatchDTO, 0, len(matches)),
	}
	for i := range matches {
		m := &matches[i]
		dto := EventMatchDTO{
			ID:           m.ID,
			Stipulation:  m.Stipulation,
			IsTitleMatch: m.IsTitleMatch,
			TitleChanged: m.TitleChanged,
			Participants: make([]EventParticipantDTO, 0, len(m.Participants)),
		}
		if m.ChampionshipID != nil {
			dto.ChampionshipID = *m.ChampionshipID
		}
		for _, p := range m.Participants {
			participant := EventParticipantDTO{
				WrestlerID: p.WrestlerID,
				TeamNumber: p.TeamNumber,
				Result:     string(p.Result),
			}
			if p.Wrestler != nil {
				participant.Name = p.Wrestler.Name
			}
			dto.Participants = append(dto.Participants, participant)
		}
		detail.Matches = append(detail.Matches, dto)
	}

	writeJSON(w, http.StatusOK, detail)
}

func toEventItem(e *domain.Event) EventItem {
	return EventItem{
		ID:         e.ID,
		Name:       e.Name,
		Venue:      e.Venue,
		Country:    e.Country,
		OccurredAt: formatTime(e.OccurredAt),
	}
}
