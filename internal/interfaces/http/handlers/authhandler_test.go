package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subwatch-inc/subwatch/internal/application/user/usecases"
)

func newAuthRouter(repo *fakeUserRepo) *gin.Engine {
	log := testLogger()
	handler := NewAuthHandler(
		usecases.NewRegisterUserUseCase(repo, fakeHasher{}, fakeTokenIssuer{}, fakeTxManager{}, log),
		usecases.NewLoginUserUseCase(repo, fakeHasher{}, fakeTokenIssuer{}, log),
		log,
	)

	router := gin.New()
	auth := router.Group("/api/v1/auth")
	auth.POST("/sign-up", handler.SignUp)
	auth.POST("/sign-in", handler.SignIn)
	return router
}

func TestSignUpEndpoint(t *testing.T) {
	repo := newFakeUserRepo()
	router := newAuthRouter(repo)

	recorder := performRequest(router, http.MethodPost, "/api/v1/auth/sign-up", `{
		"name": "Alice",
		"email": "alice@example.com",
		"password": "secret123"
	}`)

	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Token string `json:"token"`
			User  struct {
				ID    string `json:"id"`
				Email string `json:"email"`
			} `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, "alice@example.com", resp.Data.User.Email)
	assert.Equal(t, "token-for-"+resp.Data.User.ID, resp.Data.Token, "sign-up logs the caller in")
	assert.Len(t, repo.users, 1)
}

func TestSignUpEndpoint_DuplicateEmail(t *testing.T) {
	router := newAuthRouter(newFakeUserRepo())

	body := `{"name": "Alice", "email": "alice@example.com", "password": "secret123"}`
	first := performRequest(router, http.MethodPost, "/api/v1/auth/sign-up", body)
	require.Equal(t, http.StatusCreated, first.Code)

	second := performRequest(router, http.MethodPost, "/api/v1/auth/sign-up", body)
	assert.Equal(t, http.StatusConflict, second.Code)
}

func TestSignUpEndpoint_BindingErrors(t *testing.T) {
	router := newAuthRouter(newFakeUserRepo())

	tests := []struct {
		name string
		body string
	}{
		{"missing email", `{"name": "Alice", "password": "secret123"}`},
		{"malformed email", `{"name": "Alice", "email": "nope", "password": "secret123"}`},
		{"short password", `{"name": "Alice", "email": "alice@example.com", "password": "123"}`},
		{"short name", `{"name": "A", "email": "alice@example.com", "password": "secret123"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := performRequest(router, http.MethodPost, "/api/v1/auth/sign-up", tt.body)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
}

func TestSignInEndpoint(t *testing.T) {
	account := newTestAccount(t, "alice@example.com", "secret123")
	router := newAuthRouter(newFakeUserRepo(account))

	recorder := performRequest(router, http.MethodPost, "/api/v1/auth/sign-in", `{
		"email": "alice@example.com",
		"password": "secret123"
	}`)

	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "token-for-"+account.SID(), resp.Data.Token)
}

func TestSignInEndpoint_BadCredentials(t *testing.T) {
	account := newTestAccount(t, "alice@example.com", "secret123")
	router := newAuthRouter(newFakeUserRepo(account))

	unknownEmail := performRequest(router, http.MethodPost, "/api/v1/auth/sign-in",
		`{"email": "nobody@example.com", "password": "secret123"}`)
	wrongPassword := performRequest(router, http.MethodPost, "/api/v1/auth/sign-in",
		`{"email": "alice@example.com", "password": "wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, unknownEmail.Body.String(), wrongPassword.Body.String(),
		"responses must not reveal which accounts exist")
}
