package models

import "time"

// Booking is a student's reservation of a seat in one class occurrence.
// At most one row exists per (student, class, occurrence_date); cancelled
// bookings are reactivated in place, never duplicated.
type Booking struct {
	ID                string        `json:"id" gorm:"primaryKey;type:uuid" validate:"required,uuid"`
	FranchiseID       string        `json:"franchise_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	ClassDefinitionID string        `json:"class_definition_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	StudentID         string        `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	OccurrenceDate    time.Time     `json:"occurrence_date" gorm:"not null;index;type:date" validate:"required"`
	Status            BookingStatus `json:"status" gorm:"not null;type:varchar(10)" validate:"required,oneof=reserved confirmed cancelled"`
	CreatedAt         time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt         time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}

// BookingSeat is the student-projected view of an active booking used by
// the class roster listing.
type BookingSeat struct {
	BookingID        string        `json:"booking_id"`
	StudentID        string        `json:"student_id"`
	StudentFirstName string        `json:"student_first_name"`
	StudentLastName  string        `json:"student_last_name"`
	Belt             Belt          `json:"belt"`
	Status           BookingStatus `json:"status"`
	CreatedAt        time.Time     `json:"created_at"`
}
