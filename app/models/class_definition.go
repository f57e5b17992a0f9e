package models

import "time"

// ClassDefinition is the recurring weekly template for a class. Concrete
// occurrences are derived from it, never stored.
type ClassDefinition struct {
	ID          string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	FranchiseID string        `json:"franchise_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Name        string        `json:"name" gorm:"not null" validate:"required"`
	Category    ClassCategory `json:"category" gorm:"not null;type:varchar(20)" validate:"required,oneof=gi nogi kids open_mat wrestling"`
	DayOfWeek   int           `json:"day_of_week" gorm:"not null" validate:"min=0,max=6"` // 0 = Sunday
	StartTime   string        `json:"start_time" gorm:"not null;type:time" validate:"required"` // "15:04"
	EndTime     string        `json:"end_time" gorm:"not null;type:time" validate:"required"`
	Capacity    int           `json:"capacity" gorm:"not null" validate:"required,min=1"`
	IsActive    bool          `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}
