package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"recircleBack/internal/models"
	"recircleBack/internal/repositories"
)

type UserService struct {
	UserRepo *repositories.UserRepository
}

// SignUp registers a new user. The confirmation field is checked and
// discarded, the password is stored bcrypt-hashed.
func (s *UserService) SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	if errs := req.Validate(); errs != nil {
		return models.User{}, errs
	}

	_, err := s.UserRepo.GetUserByUsername(ctx, req.Username)
	if err == nil {
		return models.User{}, models.ValidationErrors{"username": "A user with that username already exists."}
	}
	if !errors.Is(err, models.ErrUserNotFound) {
		return models.User{}, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username:    req.Username,
		Email:       req.Email,
		Password:    string(hashedPassword),
		Bio:         req.Bio,
		Location:    req.Location,
		PhoneNumber: req.PhoneNumber,
	}
	return s.UserRepo.CreateUser(ctx, user)
}

// Authenticate checks a username/password pair. It deliberately returns
// the same error for an unknown user and a wrong password.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	user, err := s.UserRepo.GetUserByUsername(ctx, username)
	if errors.Is(err, models.ErrUserNotFound) {
		return models.User{}, models.ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, models.ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id int) (models.User, error) {
	return s.UserRepo.GetUserByID(ctx, id)
}

func (s *UserService) GetUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.UserRepo.GetUsers(ctx, limit, offset)
}

// UpdateProfile applies a partial update to the requester's own
// profile. Fields left out of the request are unchanged.
func (s *UserService) UpdateProfile(ctx context.Context, userID int, req models.UpdateProfileRequest) (models.User, error) {
	if errs := req.Validate(); errs != nil {
		return models.User{}, errs
	}

	user, err := s.UserRepo.GetUserByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	if req.Username != nil && *req.Username != user.Username {
		_, err := s.UserRepo.GetUserByUsername(ctx, *req.Username)
		if err == nil {
			return models.User{}, models.ValidationErrors{"username": "A user with that username already exists."}
		}
		if !errors.Is(err, models.ErrUserNotFound) {
			return models.User{}, err
		}
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}

	return s.UserRepo.UpdateProfile(ctx, user)
}
