package schedule

import (
	"Ralph-Backend/domain"
	"Ralph-Backend/entities"
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ScheduleService interface {
		AddEntry(ctx context.Context, req domain.AddScheduleEntryRequest, userID string) (domain.ScheduleEntryResponse, error)
		GetEntries(ctx context.Context, userID string) ([]domain.ScheduleEntryResponse, error)
		DeleteEntry(ctx context.Context, id string, userID string) error
	}

	scheduleService struct {
		scheduleRepository ScheduleRepository
	}
)

var timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

func NewScheduleService(scheduleRepository ScheduleRepository) ScheduleService {
	return &scheduleService{scheduleRepository: scheduleRepository}
}

func timeToMinutes(value string) int {
	parts := strings.SplitN(value, ":", 2)
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	return hours*60 + minutes
}

// overlaps reports whether [start, end) intersects any existing entry on the
// same weekday.
func overlaps(start, end string, entries []*entities.ScheduleEntry) bool {
	newStart := timeToMinutes(start)
	newEnd := timeToMinutes(end)
	for _, entry := range entries {
		existingStart := timeToMinutes(entry.StartTime)
		existingEnd := timeToMinutes(entry.EndTime)
		if newStart < existingEnd && existingStart < newEnd {
			return true
		}
	}
	return false
}

func (s *scheduleService) AddEntry(ctx context.Context, req domain.AddScheduleEntryRequest, userID string) (domain.ScheduleEntryResponse, error) {
	if req.Weekday < 0 || req.Weekday > 6 {
		return domain.ScheduleEntryResponse{}, domain.ErrInvalidWeekday
	}
	if !timePattern.MatchString(req.StartTime) || !timePattern.MatchString(req.EndTime) {
		return domain.ScheduleEntryResponse{}, domain.ErrInvalidTimeFormat
	}
	if timeToMinutes(req.EndTime) <= timeToMinutes(req.StartTime) {
		return domain.ScheduleEntryResponse{}, domain.ErrEndBeforeStart
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ScheduleEntryResponse{}, domain.ErrParseUUID
	}

	existing, err := s.scheduleRepository.GetEntriesByWeekday(ctx, userID, req.Weekday)
	if err != nil {
		return domain.ScheduleEntryResponse{}, err
	}
	if overlaps(req.StartTime, req.EndTime, existing) {
		return domain.ScheduleEntryResponse{}, domain.ErrScheduleOverlap
	}

	entry := &entities.ScheduleEntry{
		ID:        uuid.New(),
		UserID:    userUUID,
		Weekday:   req.Weekday,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Activity:  req.Activity,
	}

	if err := s.scheduleRepository.CreateEntry(ctx, entry); err != nil {
		return domain.ScheduleEntryResponse{}, err
	}

	return domain.ScheduleEntryResponse{
		ID:        entry.ID.String(),
		Weekday:   entry.Weekday,
		StartTime: entry.StartTime,
		EndTime:   entry.EndTime,
		Activity:  entry.Activity,
		CreatedAt: entry.CreatedAt,
	}, nil
}

func (s *scheduleService) GetEntries(ctx context.Context, userID string) ([]domain.ScheduleEntryResponse, error) {
	entries, err := s.scheduleRepository.GetEntries(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ScheduleEntryResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, domain.ScheduleEntryResponse{
			ID:        entry.ID.String(),
			Weekday:   entry.Weekday,
			StartTime: entry.StartTime,
			EndTime:   entry.EndTime,
			Activity:  entry.Activity,
			CreatedAt: entry.CreatedAt,
		})
	}

	return response, nil
}

func (s *scheduleService) DeleteEntry(ctx context.Context, id string, userID string) error {
	entry, err := s.scheduleRepository.GetEntryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrScheduleEntryNotFound
		}
		return err
	}

	if entry.UserID.String() != userID {
		return domain.ErrScheduleNotOwned
	}

	return s.scheduleRepository.DeleteEntry(ctx, id)
}
