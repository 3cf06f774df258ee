package types

import "time"

// TaskRow is the persisted shape of a domain Task.
type TaskRow struct {
	TaskID      string    `gorm:"primaryKey;size:10;column:task_id" json:"task_id"`
	Name        string    `gorm:"size:20;not null;column:name" json:"name"`
	Description string    `gorm:"size:50;not null;column:description" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (TaskRow) TableName() string {
	return "tasks"
}
