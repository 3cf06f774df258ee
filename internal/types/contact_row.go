package types

import "time"

// ContactRow is the persisted shape of a domain Contact. Column sizes mirror
// the domain constraints so the schema always matches what validation admits.
type ContactRow struct {
	ContactID string    `gorm:"primaryKey;size:10;column:contact_id" json:"contact_id"`
	FirstName string    `gorm:"size:10;not null;column:first_name" json:"first_name"`
	LastName  string    `gorm:"size:10;not null;column:last_name" json:"last_name"`
	Phone     string    `gorm:"size:10;not null;column:phone" json:"phone"`
	Address   string    `gorm:"size:30;not null;column:address" json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ContactRow) TableName() string {
	return "contacts"
}
