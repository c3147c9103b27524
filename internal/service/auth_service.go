package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"bizhub-backend/internal/config"
	"bizhub-backend/internal/models"
	"bizhub-backend/internal/repository"
	"bizhub-backend/pkg/logger"
	"bizhub-backend/pkg/validator"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrRIFTaken           = errors.New("company RIF already registered")
)

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Name        string `json:"name" binding:"required"`
	CompanyName string `json:"company_name" binding:"required"`
	CompanyRIF  string `json:"company_rif" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type Claims struct {
	UserID    uint `json:"user_id"`
	CompanyID uint `json:"company_id"`
	jwt.RegisteredClaims
}

// AuthService registers accounts and issues session tokens. Every account
// belongs to exactly one company, created together with the first user.
type AuthService struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	cfg         *config.Config
}

func NewAuthService(userRepo repository.UserRepository, companyRepo repository.CompanyRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		cfg:         cfg,
	}
}

func (s *AuthService) Register(req RegisterRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if ok, reason := validator.ValidatePassword(req.Password); !ok {
		return nil, errors.New(reason)
	}

	exists, err := s.userRepo.ExistsByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	rif := strings.ToUpper(strings.TrimSpace(req.CompanyRIF))
	rifExists, err := s.companyRepo.ExistsByRIF(rif)
	if err != nil {
		return nil, fmt.Errorf("failed to check company RIF: %w", err)
	}
	if rifExists {
		return nil, ErrRIFTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	company := &models.Company{
		Name: strings.TrimSpace(req.CompanyName),
		RIF:  rif,
	}
	if err := s.companyRepo.Create(company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	user := &models.User{
		Email:     email,
		Password:  string(hash),
		Name:      strings.TrimSpace(req.Name),
		CompanyID: company.ID,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.Info("Account registered", map[string]interface{}{
		"user_id":    user.ID,
		"company_id": company.ID,
	})

	user.Company = *company
	return user, nil
}

func (s *AuthService) Login(req LoginRequest) (string, *models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	claims := Claims{
		UserID:    user.ID,
		CompanyID: user.CompanyID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   fmt.Sprintf("%d", user.ID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

func (s *AuthService) GetUser(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}
