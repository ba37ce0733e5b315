package timeslot

import "time"

// TimeSlot is a fixed time-of-day window that can be booked on any date for
// any court. Times are rendered as HH:MM:SS.
type TimeSlot struct {
	ID        int       `db:"id" json:"id"`
	StartTime string    `db:"start_time" json:"start_time" example:"18:00:00"`
	EndTime   string    `db:"end_time" json:"end_time" example:"19:00:00"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type CreateTimeSlotRequest struct {
	StartTime string `json:"start_time" binding:"required" example:"18:00"`
	EndTime   string `json:"end_time" binding:"required" example:"19:00"`
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}
