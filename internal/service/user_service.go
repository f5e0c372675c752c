package service

import (
	"context"
	"time"

	"github.com/freshmart/catalog-service/config"
	"github.com/freshmart/catalog-service/internal/domain"
	"github.com/freshmart/catalog-service/internal/dto"
	"github.com/freshmart/catalog-service/internal/repository"
	"github.com/freshmart/catalog-service/pkg/errs"
	"github.com/freshmart/catalog-service/pkg/utils"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	userRepo repository.UserRepository
	config   config.Config
}

func CreateUserService(userRepo repository.UserRepository, config config.Config) UserService {
	return &UserServiceImpl{userRepo: userRepo, config: config}
}

func (s *UserServiceImpl) SignUp(ctx context.Context, data dto.SignUpRequest) (resp dto.LoginResponse, err error) {
	_, err = s.userRepo.GetUserByEmail(ctx, data.Email)
	if err == nil {
		return resp, errs.ErrEmailAlreadyUsed
	}
	if err != errs.ErrNotFound {
		return
	}

	_, err = s.userRepo.GetUserByUsername(ctx, data.Username)
	if err == nil {
		return resp, errs.ErrUsernameAlreadyUsed
	}
	if err != errs.ErrNotFound {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return
	}

	now := time.Now()
	user := domain.User{
		Username:       data.Username,
		Email:          data.Email,
		HashedPassword: string(hash),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	userID, err := s.userRepo.AddUser(ctx, user)
	if err != nil {
		return
	}

	token, err := utils.CreateJWTToken(userID.Hex(), user.Username, s.config.JWTSecret)
	if err != nil {
		return
	}

	resp.Token = token
	resp.User = dto.UserResponse{
		ID:       userID.Hex(),
		Username: user.Username,
		Email:    user.Email,
	}

	return resp, nil
}

func (s *UserServiceImpl) Login(ctx context.Context, data dto.LoginRequest) (resp dto.LoginResponse, err error) {
	user, err := s.userRepo.GetUserByEmail(ctx, data.Email)
	if err != nil {
		if err == errs.ErrNotFound {
			return resp, errs.ErrInvalidCredentials
		}
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(data.Password))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Login").Msg("")
		return resp, errs.ErrInvalidCredentials
	}

	token, err := utils.CreateJWTToken(user.ID.Hex(), user.Username, s.config.JWTSecret)
	if err != nil {
		return
	}

	resp.Token = token
	resp.User = dto.UserResponse{
		ID:       user.ID.Hex(),
		Username: user.Username,
		Email:    user.Email,
	}

	return resp, nil
}
