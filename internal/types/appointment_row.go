package types

import "time"

// AppointmentRow is the persisted shape of a domain Appointment. The date is
// stored as accepted; loading re-runs domain validation through the
// reconstitute path, which tolerates dates that have since gone by.
type AppointmentRow struct {
	AppointmentID   string    `gorm:"primaryKey;size:10;column:appointment_id" json:"appointment_id"`
	AppointmentDate time.Time `gorm:"not null;column:appointment_date" json:"appointment_date"`
	Description     string    `gorm:"size:50;not null;column:description" json:"description"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (AppointmentRow) TableName() string {
	return "appointments"
}
