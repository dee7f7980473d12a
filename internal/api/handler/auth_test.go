package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrstudios/estate_go_server/config"
	"github.com/wrstudios/estate_go_server/internal/model/dto"
	"github.com/wrstudios/estate_go_server/internal/pkg/response"
	"github.com/wrstudios/estate_go_server/internal/repository"
	"github.com/wrstudios/estate_go_server/internal/service"
	"github.com/wrstudios/estate_go_server/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testSecret = "test-secret-key"

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:      testSecret,
			ExpireHours: 24,
		},
		Membership: config.MembershipConfig{
			DefaultPostLimit: 10,
			DefaultCurrency:  "VND",
		},
	}
}

func setupAuthHandler(t *testing.T) *AuthHandler {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	userRepo := repository.NewUserRepository(db)
	cfg := testConfig()

	authService := service.NewAuthService(userRepo, cfg)
	userService := service.NewUserService(userRepo, cfg)

	return NewAuthHandler(authService, userService)
}

func performRequest(r http.Handler, method, path string, body interface{}, headers ...map[string]string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	for _, h := range headers {
		for k, v := range h {
			req.Header.Set(k, v)
		}
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func authHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	return resp
}

func TestAuthHandler_Register_Success(t *testing.T) {
	handler := setupAuthHandler(t)

	router := gin.New()
	router.POST("/register", handler.Register)

	w := performRequest(router, "POST", "/register", dto.RegisterRequest{
		Name:     "Nguyen Van A",
		Email:    "test@example.com",
		Password: "password123",
	})
	resp := parseResponse(t, w)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, resp.Success)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	handler := setupAuthHandler(t)

	router := gin.New()
	router.POST("/register", handler.Register)

	req := dto.RegisterRequest{
		Name:     "Nguyen Van A",
		Email:    "test@example.com",
		Password: "password123",
	}

	w := performRequest(router, "POST", "/register", req)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(router, "POST", "/register", req)
	resp := parseResponse(t, w)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, resp.Success)
}

func TestAuthHandler_Register_InvalidRequest(t *testing.T) {
	handler := setupAuthHandler(t)

	router := gin.New()
	router.POST("/register", handler.Register)

	// 密码太短
	w := performRequest(router, "POST", "/register", dto.RegisterRequest{
		Name:     "Nguyen Van A",
		Email:    "test@example.com",
		Password: "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 邮箱非法
	w = performRequest(router, "POST", "/register", dto.RegisterRequest{
		Name:     "Nguyen Van A",
		Email:    "not-an-email",
		Password: "password123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	handler := setupAuthHandler(t)

	router := gin.New()
	router.POST("/register", handler.Register)
	router.POST("/login", handler.Login)

	performRequest(router, "POST", "/register", dto.RegisterRequest{
		Name:     "Nguyen Van A",
		Email:    "login@example.com",
		Password: "password123",
	})

	w := performRequest(router, "POST", "/login", dto.LoginRequest{
		Email:    "login@example.com",
		Password: "password123",
	})
	resp := parseResponse(t, w)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, data["token"])
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	handler := setupAuthHandler(t)

	router := gin.New()
	router.POST("/register", handler.Register)
	router.POST("/login", handler.Login)

	performRequest(router, "POST", "/register", dto.RegisterRequest{
		Name:     "Nguyen Van A",
		Email:    "login@example.com",
		Password: "password123",
	})

	w := performRequest(router, "POST", "/login", dto.LoginRequest{
		Email:    "login@example.com",
		Password: "wrongpassword",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
