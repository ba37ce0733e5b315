package timeslot

import "context"

type Repository interface {
	// ListTimeSlots returns slots ordered by start time. A nil active lists
	// every slot.
	ListTimeSlots(ctx context.Context, active *bool) ([]TimeSlot, error)
	GetTimeSlotByID(ctx context.Context, id int) (*TimeSlot, error)
	CreateTimeSlot(ctx context.Context, startTime, endTime string) (*TimeSlot, error)
	SetActive(ctx context.Context, id int, active bool) (*TimeSlot, error)
}
