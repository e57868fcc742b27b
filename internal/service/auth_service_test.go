package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lagicart/SalesManager-pro-sub000/internal/config"
	"github.com/Lagicart/SalesManager-pro-sub000/internal/dto"
	"github.com/Lagicart/SalesManager-pro-sub000/internal/model"
	"github.com/Lagicart/SalesManager-pro-sub000/internal/store"
)

type fakePersister struct {
	blobs map[string][]byte
}

func (p *fakePersister) Get(_ context.Context, key string, dest any) (bool, error) {
	raw, ok := p.blobs[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (p *fakePersister) Put(_ context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	p.blobs[key] = raw
	return nil
}

func authSvc(t *testing.T) AuthService {
	t.Helper()
	st := store.New(&fakePersister{blobs: make(map[string][]byte)})
	require.NoError(t, st.Load(context.Background()))
	return NewAuthService(st, &config.Config{JWTSecret: "segreto-di-test", JWTExpirationHours: 1})
}

func TestLogin(t *testing.T) {
	svc := authSvc(t)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "admin@example.com", Password: "admin",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, model.RuoloAdmin, resp.Operatore.Ruolo)
}

func TestLogin_EmailCaseInsensitive(t *testing.T) {
	svc := authSvc(t)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "ADMIN@Example.COM", Password: "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", resp.Operatore.Email)
}

func TestLogin_CredenzialiErrate(t *testing.T) {
	svc := authSvc(t)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "admin@example.com", Password: "sbagliata",
	})
	assert.Error(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Email: "nessuno@example.com", Password: "admin",
	})
	assert.Error(t, err)
}
