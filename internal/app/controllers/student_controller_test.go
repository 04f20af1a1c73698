package controllers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jlmarcelo/studentportal/internal/app/controllers"
	"github.com/jlmarcelo/studentportal/internal/app/models"
	"github.com/jlmarcelo/studentportal/internal/app/models/dto"
	"github.com/jlmarcelo/studentportal/internal/app/routes"
	"github.com/jlmarcelo/studentportal/internal/pkg/apperrors"
	"github.com/jlmarcelo/studentportal/internal/pkg/validation"
)

// mockStudentService implements services.StudentService for handler tests.
// Each method field can be overridden per test case.
type mockStudentService struct {
	registerFn func(ctx context.Context, req *dto.RegisterStudentRequest) (string, error)
	loginFn    func(ctx context.Context, req *dto.LoginRequest) (*models.Student, error)
	listFn     func(ctx context.Context) ([]models.Student, error)
	getFn      func(ctx context.Context, studentID string) (*models.Student, error)
	updateFn   func(ctx context.Context, studentID string, fields map[string]interface{}) error
	deleteFn   func(ctx context.Context, studentID string) error
}

func (m *mockStudentService) Register(ctx context.Context, req *dto.RegisterStudentRequest) (string, error) {
	return m.registerFn(ctx, req)
}

func (m *mockStudentService) Login(ctx context.Context, req *dto.LoginRequest) (*models.Student, error) {
	return m.loginFn(ctx, req)
}

func (m *mockStudentService) List(ctx context.Context) ([]models.Student, error) {
	return m.listFn(ctx)
}

func (m *mockStudentService) Get(ctx context.Context, studentID string) (*models.Student, error) {
	return m.getFn(ctx, studentID)
}

func (m *mockStudentService) Update(ctx context.Context, studentID string, fields map[string]interface{}) error {
	return m.updateFn(ctx, studentID, fields)
}

func (m *mockStudentService) Delete(ctx context.Context, studentID string) error {
	return m.deleteFn(ctx, studentID)
}

// newTestRouter builds a gin engine with the real route table over a mock
// service.
func newTestRouter(t *testing.T, svc *mockStudentService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	routes.SetupRouter(router, controllers.NewStudentController(svc, zerolog.Nop()))
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// sampleStudent returns a stored student fixture with a fake hash in place.
func sampleStudent() *models.Student {
	return &models.Student{
		StudentID:    "20231234",
		Email:        "a@b.com",
		FirstName:    "Juan",
		LastName:     "Dela Cruz",
		Birthdate:    time.Date(2003, 6, 15, 0, 0, 0, 0, time.UTC),
		Gender:       "male",
		MobileNumber: "09171234567",
		Password:     "$2a$10$fakefakefakefakefakefakefakefakefakefakefakefakefake",
	}
}

func TestRegister_Created(t *testing.T) {
	svc := &mockStudentService{
		registerFn: func(_ context.Context, req *dto.RegisterStudentRequest) (string, error) {
			assert.Equal(t, "a@b.com", req.Email)
			return "20231234", nil
		},
	}

	rec := doRequest(t, newTestRouter(t, svc), http.MethodPost, "/api/students",
		`{"student_id":"20231234","email":"a@b.com","password":"Abc123"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.RegisterResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Student registered successfully", resp.Message)
	assert.Equal(t, "20231234", resp.StudentID)
}

func TestRegister_ValidationErrorsEnumerated(t *testing.T) {
	verrs := &validation.Errors{}
	verrs.Add("email", "Invalid email address")
	verrs.Add("mobile_number", "Invalid Philippine mobile number")

	svc := &mockStudentService{
		registerFn: func(_ context.Context, _ *dto.RegisterStudentRequest) (string, error) {
			return "", verrs
		},
	}

	rec := doRequest(t, newTestRouter(t, svc), http.MethodPost, "/api/students", `{}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeValidationFailed, resp.Error.Code)

	details, err := json.Marshal(resp.Error.Details)
	require.NoError(t, err)
	assert.Contains(t, string(details), "Invalid email address")
	assert.Contains(t, string(details), "Invalid Philippine mobile number")
}

func TestRegister_Conflict(t *testing.T) {
	svc := &mockStudentService{
		registerFn: func(_ context.Context, _ *dto.RegisterStudentRequest) (string, error) {
			return "", apperrors.ErrDuplicateStudent
		},
	}

	rec := doRequest(t, newTestRouter(t, svc), http.MethodPost, "/api/students",
		`{"student_id":"20235678","email":"a@b.com","password":"Abc123"}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email or Student ID already exists")
}

func TestRegister_MalformedJSON(t *testing.T) {
	svc := &mockStudentService{
		registerFn: func(_ context.Context, _ *dto.RegisterStudentRequest) (string, error) {
			t.Fatal("service must not be called for malformed JSON")
			return "", nil
		},
	}

	rec := doRequest(t, newTestRouter(t, svc), http.MethodPost, "/api/students", `{"email":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_SuccessStripsPassword(t *testing.T) {
	svc := &mockStudentService{
		loginFn: func(_ context.Context, req *dto.LoginRequest) (*models.Student, error) {
			assert.Equal(t, "a@b.com", req.Email)
			return sampleStudent(), nil
		},
	}

	rec := doRequest(t, newTestRouter(t, svc), http.MethodPost, "/api/students/login",
		`{"email":"a@b.com","password":"Abc123"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "$2a$")

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Login successful", resp.Message)
	assert.Equal(t, "20231234", resp.Student.StudentID)
	assert.Equal(t, "2003-06-15", resp.Student.Birthdate)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := &mockStudentService{
		loginFn: func(_ context.Context, _ *dto.LoginRequest) (*models.Student, error) {
			return nil, apperrors.ErrInvalidCredentials
		},
	}

	rec := doRequest(t, newTestRouter(t, svc), http.MethodPost, "/api/students/login",
		`{"email":"a@b.com","password":"wrong"}`)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")
}

func TestLogin_MissingFields(t *testing.T) {
	svc := &mockStudentService{
		loginFn: func(_ context.Context, _ *dto.LoginRequest) (*models.Student, error) {
			t.Fatal("service must not be called when binding fails")
			return nil, nil
		},
	}

	rec := doRequest(t, newTestRouter(t, svc), http.MethodPost, "/api/students/login", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestList_StripsPasswordFromEveryRecord(t *testing.T) {
	second := sampleStudent()
	second.StudentID = "20235678"
	second.Email = "b@c.com"

	svc := &mockStudentService{
		listFn: func(_ context.Context) ([]models.Student, error) {
			return []models.Student{*sampleStudent(), *second}, nil
		},
	}

	rec := doRequest(t, newTestRouter(t, svc), http.MethodGet, "/api/students", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "$2a$")

	var resp []dto.StudentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "20231234", resp[0].StudentID)
	assert.Equal(t, "20235678", resp[1].StudentID)
}

func TestGetByID_Found(t *testing.T) {
	svc := &mockStudentService{
		getFn: func(_ context.Context, studentID string) (*models.Student, error) {
			assert.Equal(t, "20231234", studentID)
			return sampleStudent(), nil
		},
	}

	rec := doRequest(t, newTestRouter(t, svc), http.MethodGet, "/api/students/20231234", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")

	var resp dto.StudentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "a@b.com", resp.Email)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := &mockStudentService{
		getFn: func(_ context.Context, _ string) (*models.Student, error) {
			return nil, apperrors.ErrStudentNotFound
		},
	}

	rec := doRequest(t, newTestRouter(t, svc), http.MethodGet, "/api/students/00000000", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Student not found")
}

func TestUpdate_OK(t *testing.T) {
	svc := &mockStudentService{
		updateFn: func(_ context.Context, studentID string, fields map[string]interface{}) error {
			assert.Equal(t, "20231234", studentID)
			assert.Equal(t, "Maria", fields["first_name"])
			return nil
		},
	}

	rec := doRequest(t, newTestRouter(t, svc), http.MethodPut, "/api/students/20231234",
		`{"first_name":"Maria"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Student updated")
}

func TestDelete_OK(t *testing.T) {
	svc := &mockStudentService{
		deleteFn: func(_ context.Context, studentID string) error {
			assert.Equal(t, "20231234", studentID)
			return nil
		},
	}

	rec := doRequest(t, newTestRouter(t, svc), http.MethodDelete, "/api/students/20231234", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Student deleted")
}

func TestStoreFailure_GenericInternalError(t *testing.T) {
	svc := &mockStudentService{
		listFn: func(_ context.Context) ([]models.Student, error) {
			return nil, errors.New("pq: relation students does not exist")
		},
	}

	rec := doRequest(t, newTestRouter(t, svc), http.MethodGet, "/api/students", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal server error")
	// Store detail never reaches the caller.
	assert.NotContains(t, rec.Body.String(), "relation students")
}
