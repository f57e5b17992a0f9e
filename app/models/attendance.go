package models

import "time"

// Attendance is the record of a student physically checking into one class
// occurrence. At most one row exists per (student, class, occurrence_date);
// it is created by the registrar only and removed only by an explicit revoke.
type Attendance struct {
	ID                string           `json:"id" gorm:"primaryKey;type:uuid" validate:"required,uuid"`
	FranchiseID       string           `json:"franchise_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	StudentID         string           `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	ClassDefinitionID string           `json:"class_definition_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	OccurrenceDate    time.Time        `json:"occurrence_date" gorm:"not null;index;type:date" validate:"required"`
	CheckedInAt       time.Time        `json:"checked_in_at" gorm:"not null"`
	Status            AttendanceStatus `json:"status" gorm:"not null;type:varchar(10)" validate:"required,oneof=present absent late"`
	CheckInMethod     CheckInMethod    `json:"check_in_method" gorm:"not null;type:varchar(15)" validate:"required,oneof=self_service teacher"`
	MarkedBy          *string          `json:"marked_by,omitempty" gorm:"type:uuid"`

	// Geofence metadata, present for self-service check-ins only.
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	DistanceMeters *float64 `json:"distance_meters,omitempty"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
