package domain

import "errors"

// Lookup errors
var (
	ErrChampionshipNotFound = errors.New("championship not found")
	ErrReignNotFound        = errors.New("reign not found")
	ErrWrestlerNotFound     = errors.New("wrestler not found")
	ErrInterpreterNotFound  = errors.New("interpreter not found")
	ErrTagTeamNotFound      = errors.New("tag team not found")
	ErrEventNotFound        = errors.New("event not found")
)

// Query validation errors
var (
	ErrInvalidSortKey       = errors.New("invalid sort key")
	ErrInvalidSortDirection = errors.New("invalid sort direction")
)
