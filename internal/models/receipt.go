package models

import "time"

// Receipt records a booking the backend accepted through this service.
type Receipt struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	BookingID     string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"booking_id"`
	EventDate     string    `gorm:"type:varchar(10);not null" json:"event_date"`
	EventTime     string    `gorm:"type:varchar(5);not null" json:"event_time"`
	EventDuration int64     `gorm:"not null" json:"event_duration"`
	GuestsCount   int64     `gorm:"not null" json:"guests_count"`
	EventType     string    `gorm:"type:varchar(20);not null" json:"event_type"`
	Services      []string  `gorm:"serializer:json" json:"services"`
	BaseCost      int64     `gorm:"not null" json:"base_cost"`
	ServicesCost  int64     `gorm:"not null" json:"services_cost"`
	TotalCost     int64     `gorm:"not null" json:"total_cost"`
	CreatedAt     time.Time `json:"created_at"`
}
