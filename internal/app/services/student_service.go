package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jlmarcelo/studentportal/internal/app/models"
	"github.com/jlmarcelo/studentportal/internal/app/models/dto"
	"github.com/jlmarcelo/studentportal/internal/app/repositories"
	"github.com/jlmarcelo/studentportal/internal/pkg/apperrors"
	"github.com/jlmarcelo/studentportal/internal/pkg/auth"
	"github.com/jlmarcelo/studentportal/internal/pkg/validation"
)

// StudentService handles student registration, authentication and record
// operations.
type StudentService interface {
	Register(ctx context.Context, req *dto.RegisterStudentRequest) (string, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*models.Student, error)
	List(ctx context.Context) ([]models.Student, error)
	Get(ctx context.Context, studentID string) (*models.Student, error)
	Update(ctx context.Context, studentID string, fields map[string]interface{}) error
	Delete(ctx context.Context, studentID string) error
}

type studentService struct {
	repo   repositories.StudentRepository
	logger zerolog.Logger
}

// NewStudentService creates a new StudentService.
func NewStudentService(repo repositories.StudentRepository, logger zerolog.Logger) StudentService {
	return &studentService{
		repo:   repo,
		logger: logger,
	}
}

// validateRegistration checks every field rule and returns all violations
// together.
func (s *studentService) validateRegistration(req *dto.RegisterStudentRequest) *validation.Errors {
	verrs := &validation.Errors{}

	if req.FirstName == "" {
		verrs.Add("first_name", "First name is required")
	}
	if req.LastName == "" {
		verrs.Add("last_name", "Last name is required")
	}
	if _, err := time.Parse(validation.BirthdateLayout, req.Birthdate); err != nil {
		verrs.Add("birthdate", "Invalid birthdate")
	}
	if !validation.IsValidGender(req.Gender) {
		verrs.Add("gender", "Invalid gender")
	}
	if !validation.IsValidEmail(req.Email) {
		verrs.Add("email", "Invalid email address")
	}
	if !validation.IsValidMobileNumber(req.MobileNumber) {
		verrs.Add("mobile_number", "Invalid Philippine mobile number")
	}
	if len(req.StudentID) != validation.StudentIDLength {
		verrs.Add("student_id", "Student ID must be 8 characters")
	}
	if len(req.Password) < validation.PasswordMinLength {
		verrs.Add("password", "Password must be at least 6 characters")
	} else if !validation.IsStrongPassword(req.Password) {
		verrs.Add("password", "Password must contain uppercase, lowercase, and number")
	}

	return verrs
}

// Register validates a candidate record, enforces uniqueness of email and
// student ID, hashes the password and persists the student.
func (s *studentService) Register(ctx context.Context, req *dto.RegisterStudentRequest) (string, error) {
	if verrs := s.validateRegistration(req); verrs.HasErrors() {
		return "", verrs
	}

	// Early-rejection check. Concurrent registrations can still race past it;
	// the store's unique constraints are the actual enforcement.
	exists, err := s.repo.ExistsByEmailOrStudentID(ctx, req.Email, req.StudentID)
	if err != nil {
		return "", fmt.Errorf("error checking student existence: %w", err)
	}
	if exists {
		return "", apperrors.ErrDuplicateStudent
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	// Birthdate already validated against the layout.
	birthdate, _ := time.Parse(validation.BirthdateLayout, req.Birthdate)

	student := &models.Student{
		StudentID:    req.StudentID,
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Birthdate:    birthdate,
		Gender:       req.Gender,
		MobileNumber: req.MobileNumber,
		Password:     hashedPassword,
	}

	if err := s.repo.Create(ctx, student); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateStudent) {
			return "", apperrors.ErrDuplicateStudent
		}
		return "", fmt.Errorf("student creation error: %w", err)
	}

	return student.StudentID, nil
}

// Login authenticates a student by email and password. Unknown email and
// wrong password produce the same error so the response does not reveal which
// one failed.
func (s *studentService) Login(ctx context.Context, req *dto.LoginRequest) (*models.Student, error) {
	student, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error retrieving student for login: %w", err)
	}

	if !auth.CheckPassword(student.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return student, nil
}

// List retrieves all student records.
func (s *studentService) List(ctx context.Context) ([]models.Student, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	return students, nil
}

// Get retrieves a student by student ID.
func (s *studentService) Get(ctx context.Context, studentID string) (*models.Student, error) {
	student, err := s.repo.GetByStudentID(ctx, studentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// Update replaces the given fields of a student record. Registration rules
// are not reapplied on this path, but a supplied password is still hashed:
// plaintext never reaches the store from any operation.
func (s *studentService) Update(ctx context.Context, studentID string, fields map[string]interface{}) error {
	if raw, ok := fields["password"]; ok {
		plaintext, ok := raw.(string)
		if !ok {
			return fmt.Errorf("%w: password must be a string", apperrors.ErrBadRequest)
		}
		hashed, err := auth.HashPassword(plaintext)
		if err != nil {
			return fmt.Errorf("error hashing password: %w", err)
		}
		fields["password"] = hashed
	}

	if err := s.repo.Update(ctx, studentID, fields); err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}

	s.logger.Info().Str("studentID", studentID).Msg("Student updated")
	return nil
}

// Delete removes a student record by student ID.
func (s *studentService) Delete(ctx context.Context, studentID string) error {
	if err := s.repo.Delete(ctx, studentID); err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	s.logger.Info().Str("studentID", studentID).Msg("Student deleted")
	return nil
}
