package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jlmarcelo/studentportal/internal/app/models"
	"github.com/jlmarcelo/studentportal/internal/pkg/apperrors"
	"github.com/jlmarcelo/studentportal/internal/pkg/dberrors"
	"github.com/jlmarcelo/studentportal/internal/pkg/logger"
)

// studentColumns is the full column list scanned for a student row.
const studentColumns = "student_id, email, first_name, last_name, birthdate, gender, mobile_number, password, created_at, updated_at"

// updatableColumns restricts the partial-update path to real table columns.
// student_id is immutable after registration and is deliberately absent.
var updatableColumns = map[string]struct{}{
	"email":         {},
	"first_name":    {},
	"last_name":     {},
	"birthdate":     {},
	"gender":        {},
	"mobile_number": {},
	"password":      {},
}

// StudentRepository handles student database operations.
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByStudentID(ctx context.Context, studentID string) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	List(ctx context.Context) ([]models.Student, error)
	ExistsByEmailOrStudentID(ctx context.Context, email, studentID string) (bool, error)
	Update(ctx context.Context, studentID string, fields map[string]interface{}) error
	Delete(ctx context.Context, studentID string) error
}

type studentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository backed by a pgx pool.
func NewStudentRepository(db *pgxpool.Pool) StudentRepository {
	return &studentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new student row. The primary key on student_id and the
// unique index on email are the authoritative uniqueness guarantees; a
// violation from a concurrent insert surfaces as ErrDuplicateStudent.
func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Insert("students").
		Columns("student_id", "email", "first_name", "last_name", "birthdate", "gender", "mobile_number", "password").
		Values(student.StudentID, student.Email, student.FirstName, student.LastName,
			student.Birthdate, student.Gender, student.MobileNumber, student.Password).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			logger.Warn().Str("studentID", student.StudentID).Msg("Attempted to create student with duplicate student ID or email")
			return apperrors.ErrDuplicateStudent
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	logger.Info().Str("studentID", student.StudentID).Msg("Student created successfully")
	return nil
}

// GetByStudentID retrieves a student by student ID.
func (r *studentRepository) GetByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+studentColumns+`
		FROM students
		WHERE student_id = $1`,
		studentID)

	student, err := scanStudent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetByEmail retrieves a student by email.
func (r *studentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+studentColumns+`
		FROM students
		WHERE email = $1`,
		email)

	student, err := scanStudent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student by email: %w", err)
	}

	return student, nil
}

// List retrieves all student records.
func (r *studentRepository) List(ctx context.Context) ([]models.Student, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+studentColumns+`
		FROM students
		ORDER BY created_at, student_id`)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	students := make([]models.Student, 0)
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, *student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// ExistsByEmailOrStudentID checks if a record with the given email or student
// ID already exists. This is the early-rejection path; the store constraints
// remain the source of truth under concurrent registrations.
func (r *studentRepository) ExistsByEmailOrStudentID(ctx context.Context, email, studentID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE email = $1 OR student_id = $2)`,
		email, studentID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}

	return exists, nil
}

// Update replaces the given fields of a student row. Keys that are not known
// table columns are dropped so arbitrary input never reaches the SQL text.
// Updating a missing student ID is not an error.
func (r *studentRepository) Update(ctx context.Context, studentID string, fields map[string]interface{}) error {
	setMap := squirrel.Eq{}
	for column, value := range fields {
		if _, ok := updatableColumns[column]; !ok {
			logger.Warn().Str("column", column).Msg("Ignoring unknown column in student update")
			continue
		}
		setMap[column] = value
	}

	if len(setMap) == 0 {
		return nil
	}
	setMap["updated_at"] = time.Now()

	sql, args, err := r.sb.Update("students").
		SetMap(setMap).
		Where(squirrel.Eq{"student_id": studentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDuplicateStudent
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	return nil
}

// Delete removes a student row by student ID. Deleting a missing student ID
// is not an error.
func (r *studentRepository) Delete(ctx context.Context, studentID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM students WHERE student_id = $1`, studentID)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	return nil
}

// scanStudent scans a full student row in studentColumns order.
func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.StudentID, &student.Email, &student.FirstName, &student.LastName,
		&student.Birthdate, &student.Gender, &student.MobileNumber, &student.Password,
		&student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &student, nil
}
