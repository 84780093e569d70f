package auth

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	autherrors "github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/auth/errors"
	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/domain"
)

// Sessions are valid for a fixed 7 days; there is no revocation list, a role
// change becomes effective at the next login.
const tokenTTL = 7 * 24 * time.Hour

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (SessionResponse, error)
	Login(ctx context.Context, email, password string) (SessionResponse, error)
	GetMe(ctx context.Context, userID string) (*UserResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (SessionResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return SessionResponse{}, err
	}

	role := req.Role
	if role == "" {
		role = domain.RoleOperator
	}

	user := &User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if isDuplicateEmail(err) {
			return SessionResponse{}, autherrors.ErrEmailAlreadyRegistered
		}
		s.logger.Error("register persist failed", zap.Error(err))
		return SessionResponse{}, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return SessionResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("user registered",
		zap.String("user_id", user.ID.String()),
		zap.String("role", user.Role),
	)

	return SessionResponse{Token: token, User: mapToUserResponse(user)}, nil
}

func (s *service) Login(ctx context.Context, email, password string) (SessionResponse, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return SessionResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return SessionResponse{}, autherrors.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return SessionResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("user logged in", zap.String("user_id", user.ID.String()))

	return SessionResponse{Token: token, User: mapToUserResponse(user)}, nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}

	resp := mapToUserResponse(user)
	return &resp, nil
}

// generateToken signs the principal fields into an HS256 token. The policy
// layer re-derives permissions from these claims on every request.
func (s *service) generateToken(user *User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func mapToUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:    u.ID.String(),
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

func isDuplicateEmail(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
