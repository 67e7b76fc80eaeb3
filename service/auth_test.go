package service

import (
	"context"
	"testing"

	"github.com/Nascian/socialnetwork-backend/internal/dbtest"
	"github.com/Nascian/socialnetwork-backend/pkg/errs"
	"github.com/Nascian/socialnetwork-backend/pkg/jwt"
	"github.com/Nascian/socialnetwork-backend/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	demo := dbtest.CreateUser(t, f.db, "demo1")

	res, err := f.auth.Login(ctx, &types.LoginRequest{Username: "demo1", Password: "password"})
	require.NoError(t, err)
	claims, err := jwt.ParseToken([]byte(f.conf.Jwt.Secret), jwt.TypeAccess, res.Token)
	require.NoError(t, err)
	assert.Equal(t, demo.ID, claims.UserID)

	res, err = f.auth.Login(ctx, &types.LoginRequest{Email: "demo1@example.com", Password: "password"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
}

func TestLoginFailures(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	dbtest.CreateUser(t, f.db, "demo1")

	cases := []struct {
		name string
		req  types.LoginRequest
		is   func(error) bool
	}{
		{"no identity", types.LoginRequest{Password: "password"}, errs.IsValidation},
		{"no password", types.LoginRequest{Username: "demo1"}, errs.IsValidation},
		{"unknown user", types.LoginRequest{Username: "ghost", Password: "password"}, errs.IsUnauthorized},
		{"wrong password", types.LoginRequest{Username: "demo1", Password: "nope"}, errs.IsUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.auth.Login(ctx, &tc.req)
			require.Error(t, err)
			assert.True(t, tc.is(err), "unexpected error %v", err)
		})
	}
}
