package auth

import (
	"Inventory-API/domain"
	"Inventory-API/entities"
	"Inventory-API/pkg/cipher"
	"Inventory-API/pkg/jwt"
	"context"
	"regexp"
	"time"
)

type (
	AuthService interface {
		Signup(ctx context.Context, req domain.SignupRequest) (domain.SignupResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		DeleteAccount(ctx context.Context, phoneNumber string) (domain.DeleteAccountResponse, error)
	}

	authService struct {
		authRepository AuthRepository
		cipherService  cipher.CipherService
		jwtService     jwt.JWTService
	}
)

var phoneNumberPattern = regexp.MustCompile(`^\d{3}-\d{4}-\d{4}$`)

func NewAuthService(authRepository AuthRepository, cipherService cipher.CipherService, jwtService jwt.JWTService) AuthService {
	return &authService{
		authRepository: authRepository,
		cipherService:  cipherService,
		jwtService:     jwtService,
	}
}

// Signup registers a fresh account. The existence check and the insert are
// not combined in one transaction: two concurrent signups with the same
// number can both pass the check. Uniqueness is an application invariant,
// not a storage constraint.
func (s *authService) Signup(ctx context.Context, req domain.SignupRequest) (domain.SignupResponse, error) {
	if !phoneNumberPattern.MatchString(req.PhoneNumber) {
		return domain.SignupResponse{}, domain.ErrInvalidPhoneNumber
	}

	exists, err := s.authRepository.Exists(ctx, req.PhoneNumber)
	if err != nil {
		return domain.SignupResponse{}, err
	}
	if exists {
		return domain.SignupResponse{}, domain.ErrPhoneNumberExists
	}

	encrypted, err := s.cipherService.Encrypt(req.Password)
	if err != nil {
		return domain.SignupResponse{}, err
	}

	userAuth := &entities.UserAuth{
		PhoneNumber: req.PhoneNumber,
		Password:    encrypted,
		Timestamp:   time.Now().UTC(),
	}
	if err := s.authRepository.Insert(ctx, userAuth); err != nil {
		return domain.SignupResponse{}, err
	}

	return domain.SignupResponse{PhoneNumber: req.PhoneNumber}, nil
}

func (s *authService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	if !phoneNumberPattern.MatchString(req.PhoneNumber) {
		return domain.LoginResponse{}, domain.ErrInvalidPhoneNumber
	}

	exists, err := s.authRepository.Exists(ctx, req.PhoneNumber)
	if err != nil {
		return domain.LoginResponse{}, err
	}
	if !exists {
		return domain.LoginResponse{}, domain.ErrUnknownPhoneNumber
	}

	userAuth, err := s.authRepository.Get(ctx, req.PhoneNumber)
	if err != nil {
		return domain.LoginResponse{}, err
	}

	password, err := s.cipherService.Decrypt(userAuth.Password)
	if err != nil {
		return domain.LoginResponse{}, err
	}
	if password != req.Password {
		return domain.LoginResponse{}, domain.ErrWrongPassword
	}

	token, err := s.jwtService.GenerateToken(req.PhoneNumber)
	if err != nil {
		return domain.LoginResponse{}, err
	}

	return domain.LoginResponse{
		User:  req.PhoneNumber,
		Token: token,
	}, nil
}

// DeleteAccount removes the auth record only. Items owned by the number are
// left in place, matching the no-cascade behavior of the schema.
func (s *authService) DeleteAccount(ctx context.Context, phoneNumber string) (domain.DeleteAccountResponse, error) {
	if err := s.authRepository.Delete(ctx, phoneNumber); err != nil {
		return domain.DeleteAccountResponse{}, err
	}
	return domain.DeleteAccountResponse{PhoneNumber: phoneNumber}, nil
}
