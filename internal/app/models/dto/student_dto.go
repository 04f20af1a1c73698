package dto

import (
	"time"

	"github.com/jlmarcelo/studentportal/internal/app/models"
	"github.com/jlmarcelo/studentportal/internal/pkg/validation"
)

// RegisterStudentRequest represents student registration data. Fields carry
// no binding tags on purpose: the service-level rule set checks every field
// and reports all violations together instead of failing on the first one.
type RegisterStudentRequest struct {
	StudentID    string `json:"student_id"`
	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Birthdate    string `json:"birthdate"`
	Gender       string `json:"gender"`
	MobileNumber string `json:"mobile_number"`
	Password     string `json:"password"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse represents a successful registration
type RegisterResponse struct {
	Message   string `json:"message"`
	StudentID string `json:"studentId"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	Message string          `json:"message"`
	Student StudentResponse `json:"student"`
}

// StudentResponse represents a student record in API responses. The password
// hash is not part of this structure at all.
type StudentResponse struct {
	StudentID    string    `json:"student_id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Birthdate    string    `json:"birthdate"`
	Gender       string    `json:"gender"`
	MobileNumber string    `json:"mobile_number"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewStudentResponse builds a StudentResponse from a student model.
func NewStudentResponse(student *models.Student) StudentResponse {
	return StudentResponse{
		StudentID:    student.StudentID,
		Email:        student.Email,
		FirstName:    student.FirstName,
		LastName:     student.LastName,
		Birthdate:    student.Birthdate.Format(validation.BirthdateLayout),
		Gender:       student.Gender,
		MobileNumber: student.MobileNumber,
		CreatedAt:    student.CreatedAt,
		UpdatedAt:    student.UpdatedAt,
	}
}

// NewStudentListResponse builds the list payload for a slice of students.
func NewStudentListResponse(students []models.Student) []StudentResponse {
	responses := make([]StudentResponse, 0, len(students))
	for i := range students {
		responses = append(responses, NewStudentResponse(&students[i]))
	}
	return responses
}
