package schedule

import (
	"Ralph-Backend/domain"
	"Ralph-Backend/entities"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type stubScheduleRepository struct {
	entries       []*entities.ScheduleEntry
	byID          *entities.ScheduleEntry
	byIDErr       error
	created       *entities.ScheduleEntry
	deletedID     string
	deleteCalled  bool
}

func (stub *stubScheduleRepository) CreateEntry(_ context.Context, entry *entities.ScheduleEntry) error {
	stub.created = entry
	return nil
}

func (stub *stubScheduleRepository) GetEntryByID(context.Context, string) (*entities.ScheduleEntry, error) {
	if stub.byIDErr != nil {
		return nil, stub.byIDErr
	}
	return stub.byID, nil
}

func (stub *stubScheduleRepository) GetEntries(context.Context, string) ([]*entities.ScheduleEntry, error) {
	return stub.entries, nil
}

func (stub *stubScheduleRepository) GetEntriesByWeekday(_ context.Context, _ string, weekday int) ([]*entities.ScheduleEntry, error) {
	selected := make([]*entities.ScheduleEntry, 0, len(stub.entries))
	for _, entry := range stub.entries {
		if entry.Weekday == weekday {
			selected = append(selected, entry)
		}
	}
	return selected, nil
}

func (stub *stubScheduleRepository) DeleteEntry(_ context.Context, id string) error {
	stub.deleteCalled = true
	stub.deletedID = id
	return nil
}

func scheduleRequest(weekday int, start, end string) domain.AddScheduleEntryRequest {
	return domain.AddScheduleEntryRequest{
		Weekday:   weekday,
		StartTime: start,
		EndTime:   end,
		Activity:  "Gym",
	}
}

func TestAddEntryValidatesWeekday(t *testing.T) {
	service := NewScheduleService(&stubScheduleRepository{})

	for _, weekday := range []int{-1, 7} {
		_, err := service.AddEntry(context.Background(), scheduleRequest(weekday, "09:00", "10:00"), uuid.NewString())
		if !errors.Is(err, domain.ErrInvalidWeekday) {
			t.Fatalf("weekday %d: expected ErrInvalidWeekday, got %v", weekday, err)
		}
	}
}

func TestAddEntryValidatesTimeFormat(t *testing.T) {
	service := NewScheduleService(&stubScheduleRepository{})

	tests := []struct {
		name  string
		start string
		end   string
	}{
		{name: "missing minutes", start: "9", end: "10:00"},
		{name: "hour out of range", start: "24:00", end: "25:00"},
		{name: "minute out of range", start: "09:60", end: "10:00"},
		{name: "not a time", start: "morning", end: "10:00"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := service.AddEntry(context.Background(), scheduleRequest(1, testCase.start, testCase.end), uuid.NewString())
			if !errors.Is(err, domain.ErrInvalidTimeFormat) {
				t.Fatalf("expected ErrInvalidTimeFormat, got %v", err)
			}
		})
	}
}

func TestAddEntryRejectsInvertedRange(t *testing.T) {
	service := NewScheduleService(&stubScheduleRepository{})

	_, err := service.AddEntry(context.Background(), scheduleRequest(1, "10:00", "09:00"), uuid.NewString())
	if !errors.Is(err, domain.ErrEndBeforeStart) {
		t.Fatalf("expected ErrEndBeforeStart, got %v", err)
	}

	_, err = service.AddEntry(context.Background(), scheduleRequest(1, "10:00", "10:00"), uuid.NewString())
	if !errors.Is(err, domain.ErrEndBeforeStart) {
		t.Fatalf("zero-length entry: expected ErrEndBeforeStart, got %v", err)
	}
}

func TestAddEntryRejectsOverlap(t *testing.T) {
	userID := uuid.New()
	repository := &stubScheduleRepository{entries: []*entities.ScheduleEntry{
		{ID: uuid.New(), UserID: userID, Weekday: 2, StartTime: "09:00", EndTime: "11:00", Activity: "Work"},
	}}
	service := NewScheduleService(repository)

	tests := []struct {
		name  string
		start string
		end   string
	}{
		{name: "starts inside", start: "10:00", end: "12:00"},
		{name: "ends inside", start: "08:00", end: "10:00"},
		{name: "contains existing", start: "08:00", end: "12:00"},
		{name: "contained by existing", start: "09:30", end: "10:30"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := service.AddEntry(context.Background(), scheduleRequest(2, testCase.start, testCase.end), userID.String())
			if !errors.Is(err, domain.ErrScheduleOverlap) {
				t.Fatalf("expected ErrScheduleOverlap, got %v", err)
			}
		})
	}
}

func TestAddEntryAllowsTouchingIntervalsAndOtherWeekdays(t *testing.T) {
	userID := uuid.New()
	repository := &stubScheduleRepository{entries: []*entities.ScheduleEntry{
		{ID: uuid.New(), UserID: userID, Weekday: 2, StartTime: "09:00", EndTime: "11:00", Activity: "Work"},
	}}
	service := NewScheduleService(repository)

	// Back to back on the same day is not an overlap.
	if _, err := service.AddEntry(context.Background(), scheduleRequest(2, "11:00", "12:00"), userID.String()); err != nil {
		t.Fatalf("touching interval: unexpected error %v", err)
	}

	// Same hours on another weekday never conflict.
	if _, err := service.AddEntry(context.Background(), scheduleRequest(3, "09:00", "11:00"), userID.String()); err != nil {
		t.Fatalf("other weekday: unexpected error %v", err)
	}

	if repository.created == nil {
		t.Fatal("expected the entry to be created")
	}
	if repository.created.UserID != userID {
		t.Fatalf("created entry belongs to %v, want %v", repository.created.UserID, userID)
	}
}

func TestDeleteEntryChecksOwnership(t *testing.T) {
	owner := uuid.New()
	entry := &entities.ScheduleEntry{ID: uuid.New(), UserID: owner, Weekday: 1, StartTime: "09:00", EndTime: "10:00"}
	repository := &stubScheduleRepository{byID: entry}
	service := NewScheduleService(repository)

	err := service.DeleteEntry(context.Background(), entry.ID.String(), uuid.NewString())
	if !errors.Is(err, domain.ErrScheduleNotOwned) {
		t.Fatalf("expected ErrScheduleNotOwned, got %v", err)
	}
	if repository.deleteCalled {
		t.Fatal("a foreign entry must not be deleted")
	}

	if err := service.DeleteEntry(context.Background(), entry.ID.String(), owner.String()); err != nil {
		t.Fatalf("owner delete: unexpected error %v", err)
	}
	if repository.deletedID != entry.ID.String() {
		t.Fatalf("deleted id %q, want %q", repository.deletedID, entry.ID.String())
	}
}

func TestDeleteEntryMissingRow(t *testing.T) {
	service := NewScheduleService(&stubScheduleRepository{byIDErr: gorm.ErrRecordNotFound})

	err := service.DeleteEntry(context.Background(), uuid.NewString(), uuid.NewString())
	if !errors.Is(err, domain.ErrScheduleEntryNotFound) {
		t.Fatalf("expected ErrScheduleEntryNotFound, got %v", err)
	}
}
