package models

import "time"

// Student defines the student model based on the 'students' table. StudentID
// is the primary lookup key and is immutable after registration; Email
// carries a unique index. Password holds the bcrypt hash and is excluded from
// JSON so no response path can leak it.
type Student struct {
	StudentID    string    `json:"student_id" db:"student_id"`
	Email        string    `json:"email" db:"email"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	Birthdate    time.Time `json:"birthdate" db:"birthdate"`
	Gender       string    `json:"gender" db:"gender"`
	MobileNumber string    `json:"mobile_number" db:"mobile_number"`
	Password     string    `json:"-" db:"password"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
