package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Lagicart/SalesManager-pro-sub000/internal/config"
	"github.com/Lagicart/SalesManager-pro-sub000/internal/dto"
	"github.com/Lagicart/SalesManager-pro-sub000/internal/model"
	"github.com/Lagicart/SalesManager-pro-sub000/internal/store"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	st  *store.Store
	cfg *config.Config
}

func NewAuthService(st *store.Store, cfg *config.Config) AuthService {
	return &authService{st: st, cfg: cfg}
}

// Login verifies the operator's credentials and issues a bearer token whose
// claims carry the identity and role every scoped read is computed from.
// Password comparison is plaintext: credential hardening is explicitly out of
// scope for this system.
func (s *authService) Login(_ context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	op, ok := s.st.FindOperatorePerEmail(req.Email)
	if !ok {
		return nil, errors.New("credenziali non valide")
	}
	if op.Password != req.Password {
		return nil, errors.New("credenziali non valide")
	}

	token, err := s.generateToken(op)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
		Operatore: dto.OperatoreResponse{
			ID:       op.ID,
			Nome:     op.Nome,
			Email:    op.Email,
			Ruolo:    op.Ruolo,
			Protetto: op.Protetto,
		},
	}, nil
}

func (s *authService) generateToken(op model.Operatore) (string, error) {
	claims := jwt.MapClaims{
		"email": op.Email,
		"nome":  op.Nome,
		"ruolo": op.Ruolo,
		"exp":   time.Now().Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
