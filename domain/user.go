package domain

import (
	"errors"
)

var (
	MessageFailedSignup        = "Please check your phone number."
	MessageFailedLogin         = "failed to log in"
	MessageFailedDeleteAccount = "failed to delete account"

	ErrInvalidPhoneNumber = errors.New("The input does not fit the phone number format.")
	ErrPhoneNumberExists  = errors.New("This phone number already exists. Please log in with your existing account.")
	ErrUnknownPhoneNumber = errors.New("Invalid phone number. Please check your phone number.")
	ErrWrongPassword      = errors.New("Wrong password. Please check your password.")

	ErrEncryptPassword = errors.New("failed to encrypt password")
	ErrDecryptPassword = errors.New("failed to decrypt password")
)

type (
	SignupRequest struct {
		PhoneNumber string `json:"phone_number" validate:"required"`
		Password    string `json:"password" validate:"required"`
	}

	SignupResponse struct {
		PhoneNumber string `json:"phone_number"`
	}

	LoginRequest struct {
		PhoneNumber string `json:"phone_number" validate:"required"`
		Password    string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		User  string `json:"user"`
		Token string `json:"token"`
	}

	DeleteAccountResponse struct {
		PhoneNumber string `json:"phone_number"`
	}
)
