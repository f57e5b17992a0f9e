package models

import "time"

// GraduationRule maps one rung of the belt ladder to the next. The ladder is
// data: irregular transitions (black-belt degrees, coral) are just rows,
// unique per (from_belt, from_degree).
type GraduationRule struct {
	ID              string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	FromBelt        Belt      `json:"from_belt" gorm:"not null;type:varchar(10)" validate:"required"`
	FromDegree      int       `json:"from_degree" gorm:"not null" validate:"min=0"`
	ToBelt          Belt      `json:"to_belt" gorm:"not null;type:varchar(10)" validate:"required"`
	ToDegree        int       `json:"to_degree" gorm:"not null" validate:"min=0"`
	ClassesRequired int       `json:"classes_required" gorm:"not null" validate:"min=0"`
	MinDaysRequired int       `json:"min_days_required" gorm:"not null" validate:"min=0"`
	Fee             int64     `json:"fee" gorm:"not null;default:0"` // cents, charged by the (out-of-scope) billing backend
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// GraduationHistory is the append-only log of a student's promotions.
type GraduationHistory struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid" validate:"required,uuid"`
	StudentID  string    `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Belt       Belt      `json:"belt" gorm:"not null;type:varchar(10)"`
	Degree     int       `json:"degree" gorm:"not null"`
	PromotedBy string    `json:"promoted_by" gorm:"not null;type:uuid"`
	PromotedAt time.Time `json:"promoted_at" gorm:"not null"`
}

// GraduationNotice is one hit of the nightly eligibility sweep; at most one
// notice per student per sweep day.
type GraduationNotice struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	StudentID  string    `json:"student_id" gorm:"not null;index;type:uuid"`
	NoticeDate time.Time `json:"notice_date" gorm:"not null;type:date"`
	ToBelt     Belt      `json:"to_belt" gorm:"not null;type:varchar(10)"`
	ToDegree   int       `json:"to_degree" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}
