package models

import "time"

// Student is the slice of the student record the booking and graduation core
// consumes. Full student management lives in the admin backend.
type Student struct {
	ID                 string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	FranchiseID        string        `json:"franchise_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	FirstName          string        `json:"first_name" gorm:"not null" validate:"required"`
	LastName           string        `json:"last_name" gorm:"not null" validate:"required"`
	Belt               Belt          `json:"belt" gorm:"not null;type:varchar(10)" validate:"required"`
	Degree             int           `json:"degree" gorm:"not null;default:0" validate:"min=0"`
	PaymentStatus      PaymentStatus `json:"payment_status" gorm:"not null;type:varchar(10);default:'active'"`
	EnrolledAt         time.Time     `json:"enrolled_at" gorm:"not null"`
	LastGraduationDate *time.Time    `json:"last_graduation_date,omitempty"`
	IsActive           bool          `json:"is_active" gorm:"default:true"`
	CreatedAt          time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt          time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}

// GraduationStart returns the reference date eligibility is measured from:
// the last promotion, or enrollment for students who never graduated.
func (s *Student) GraduationStart() time.Time {
	if s.LastGraduationDate != nil {
		return *s.LastGraduationDate
	}
	return s.EnrolledAt
}
