package models

import "time"

// User is a staff login (franchise owner, instructor, admin).
type User struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Email     string     `json:"email" gorm:"uniqueIndex;not null" validate:"required,email"`
	Password  string     `json:"-" gorm:"not null"`
	FirstName string     `json:"first_name" gorm:"not null" validate:"required"`
	LastName  string     `json:"last_name" gorm:"not null" validate:"required"`
	IsActive  bool       `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	Roles     []*Role    `json:"roles,omitempty" gorm:"-"`
	Teacher   *Teacher   `json:"teacher,omitempty" gorm:"-"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

// Role is a named permission group attached to a user.
type Role struct {
	ID   string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name string `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
}

// Teacher links a staff user to the franchise they teach at. Promotions
// record the teacher as promoter.
type Teacher struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	UserID      string    `json:"user_id" gorm:"not null;uniqueIndex;type:uuid" validate:"required,uuid"`
	FranchiseID string    `json:"franchise_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Belt        Belt      `json:"belt" gorm:"not null;type:varchar(10)"`
	Degree      int       `json:"degree" gorm:"not null;default:0"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}
