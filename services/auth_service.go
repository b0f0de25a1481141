package services

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/albertkemp/home-cooking/entity"
	"github.com/albertkemp/home-cooking/pkg/apperr"
	"github.com/albertkemp/home-cooking/repository"
	"github.com/albertkemp/home-cooking/utils"
)

type AuthService struct {
	UserRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{UserRepo: repo, jwtSecret: secret, jwtTTL: ttl}
}

type RegisterIn struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Address  string `json:"address" binding:"required"`
	Bio      string `json:"bio"`
}

// Register creates a new account. "USER" is accepted as a legacy alias
// for EATER.
func (s *AuthService) Register(in *RegisterIn) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	role := strings.ToUpper(in.Role)
	if role == "USER" {
		role = entity.RoleEater
	}
	if role != entity.RoleEater && role != entity.RoleCook {
		return nil, apperr.Wrap(apperr.ErrInvalidInput, "role must be EATER or COOK")
	}

	count, err := s.UserRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Wrap(apperr.ErrConflict, "user already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:    email,
		Password: string(hashed),
		Name:     strings.TrimSpace(in.Name),
		Role:     role,
		Address:  strings.TrimSpace(in.Address),
		Bio:      in.Bio,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", nil, apperr.Wrap(apperr.ErrUnauthorized, "invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperr.Wrap(apperr.ErrUnauthorized, "invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Wrap(apperr.ErrNotFound, "user not found")
		}
		return nil, err
	}
	return user, nil
}

type UpdateAccountIn struct {
	Name        *string `json:"name"`
	Address     *string `json:"address"`
	Bio         *string `json:"bio"`
	Role        *string `json:"role"`
	NewPassword *string `json:"newPassword" binding:"omitempty,min=6"`
}

// UpdateAccount applies partial profile updates. Role may change after
// registration (an eater becoming a cook), but never to ADMIN.
func (s *AuthService) UpdateAccount(userID uint, in *UpdateAccountIn) (*entity.User, error) {
	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Address != nil {
		updates["address"] = strings.TrimSpace(*in.Address)
	}
	if in.Bio != nil {
		updates["bio"] = *in.Bio
	}
	if in.Role != nil {
		role := strings.ToUpper(*in.Role)
		if role == "USER" {
			role = entity.RoleEater
		}
		if role != entity.RoleEater && role != entity.RoleCook {
			return nil, apperr.Wrap(apperr.ErrInvalidInput, "role must be EATER or COOK")
		}
		updates["role"] = role
	}
	if in.NewPassword != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updates["password"] = string(hashed)
	}

	if len(updates) > 0 {
		if err := s.UserRepo.Update(userID, updates); err != nil {
			return nil, err
		}
	}
	return s.GetProfile(userID)
}
