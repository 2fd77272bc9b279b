package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddScheduleEntry    = "schedule entry added successfully"
	MessageSuccessGetScheduleEntries  = "schedule entries retrieved successfully"
	MessageSuccessDeleteScheduleEntry = "schedule entry deleted successfully"

	MessageFailedAddScheduleEntry    = "failed to add schedule entry"
	MessageFailedGetScheduleEntries  = "failed to retrieve schedule entries"
	MessageFailedDeleteScheduleEntry = "failed to delete schedule entry"

	ErrScheduleEntryNotFound = errors.New("schedule entry not found")
	ErrInvalidWeekday        = errors.New("weekday must be between 0 and 6")
	ErrInvalidTimeFormat     = errors.New("time must be in HH:MM format")
	ErrEndBeforeStart        = errors.New("end time must be after start time")
	ErrScheduleOverlap       = errors.New("activity overlaps an existing entry")
	ErrScheduleNotOwned      = errors.New("unauthorized access to schedule entry")
)

type (
	AddScheduleEntryRequest struct {
		Weekday   int    `json:"weekday" validate:"min=0,max=6"`
		StartTime string `json:"start_time" validate:"required"`
		EndTime   string `json:"end_time" validate:"required"`
		Activity  string `json:"activity" validate:"required"`
	}

	ScheduleEntryResponse struct {
		ID        string    `json:"id"`
		Weekday   int       `json:"weekday"`
		StartTime string    `json:"start_time"`
		EndTime   string    `json:"end_time"`
		Activity  string    `json:"activity"`
		CreatedAt time.Time `json:"created_at"`
	}
)
