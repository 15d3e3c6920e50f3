package handlers

import (
	"Inventory-API/domain"
	"Inventory-API/internal/api/presenters"
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Signup(ctx context.Context, req domain.SignupRequest) (domain.SignupResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.SignupResponse), args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.LoginResponse), args.Error(1)
}

func (m *mockAuthService) DeleteAccount(ctx context.Context, phoneNumber string) (domain.DeleteAccountResponse, error) {
	args := m.Called(ctx, phoneNumber)
	return args.Get(0).(domain.DeleteAccountResponse), args.Error(1)
}

func newAuthApp(service *mockAuthService) *fiber.App {
	app := fiber.New()
	handler := NewAuthHandler(service, validator.New())
	app.Post("/auth/signup", handler.Signup)
	app.Post("/auth/login", handler.Login)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) (*presenters.Response, int) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope presenters.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return &envelope, resp.StatusCode
}

func TestSignupHandlerSuccess(t *testing.T) {
	service := new(mockAuthService)
	app := newAuthApp(service)

	service.On("Signup", mock.Anything, domain.SignupRequest{
		PhoneNumber: "010-0000-0000",
		Password:    "12312312",
	}).Return(domain.SignupResponse{PhoneNumber: "010-0000-0000"}, nil).Once()

	envelope, status := postJSON(t, app, "/auth/signup", fiber.Map{
		"phone_number": "010-0000-0000",
		"password":     "12312312",
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 200, envelope.Meta.Code)
	assert.Empty(t, envelope.Meta.Error)
}

func TestSignupHandlerBadRequest(t *testing.T) {
	service := new(mockAuthService)
	app := newAuthApp(service)

	service.On("Signup", mock.Anything, mock.Anything).
		Return(domain.SignupResponse{}, domain.ErrPhoneNumberExists).Once()

	envelope, status := postJSON(t, app, "/auth/signup", fiber.Map{
		"phone_number": "010-0000-0000",
		"password":     "12312312",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, domain.ErrPhoneNumberExists.Error(), envelope.Meta.Error)
}

func TestLoginHandlerWrongPassword(t *testing.T) {
	service := new(mockAuthService)
	app := newAuthApp(service)

	service.On("Login", mock.Anything, mock.Anything).
		Return(domain.LoginResponse{}, domain.ErrWrongPassword).Once()

	envelope, status := postJSON(t, app, "/auth/login", fiber.Map{
		"phone_number": "010-0000-0000",
		"password":     "A12312312",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, domain.ErrWrongPassword.Error(), envelope.Meta.Error)
}

func TestLoginHandlerInfraFailureIsSwallowed(t *testing.T) {
	service := new(mockAuthService)
	app := newAuthApp(service)

	service.On("Login", mock.Anything, mock.Anything).
		Return(domain.LoginResponse{}, assert.AnError).Once()

	envelope, status := postJSON(t, app, "/auth/login", fiber.Map{
		"phone_number": "010-0000-0000",
		"password":     "12312312",
	})
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, domain.MessageInfraFailure, envelope.Meta.Message)
	// The underlying cause never reaches the client.
	assert.NotContains(t, envelope.Meta.Error, assert.AnError.Error())
}

func TestSignupHandlerMissingFields(t *testing.T) {
	service := new(mockAuthService)
	app := newAuthApp(service)

	_, status := postJSON(t, app, "/auth/signup", fiber.Map{
		"phone_number": "010-0000-0000",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	service.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything)
}
