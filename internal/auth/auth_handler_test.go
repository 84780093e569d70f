package auth_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/auth"
	autherrors "github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/auth/errors"
)

type fakeAuthService struct {
	registerFn func(auth.RegisterRequest) (auth.SessionResponse, error)
	loginFn    func(email, password string) (auth.SessionResponse, error)
	getMeFn    func(userID string) (*auth.UserResponse, error)
}

func (f *fakeAuthService) Register(_ context.Context, req auth.RegisterRequest) (auth.SessionResponse, error) {
	return f.registerFn(req)
}

func (f *fakeAuthService) Login(_ context.Context, email, password string) (auth.SessionResponse, error) {
	return f.loginFn(email, password)
}

func (f *fakeAuthService) GetMe(_ context.Context, userID string) (*auth.UserResponse, error) {
	return f.getMeFn(userID)
}

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func postJSON(router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandler_Register(t *testing.T) {
	service := &fakeAuthService{}
	handler := auth.NewHandler(service)
	router := setupAuthRouter()
	router.POST("/auth/register", handler.Register)

	t.Run("Success", func(t *testing.T) {
		service.registerFn = func(req auth.RegisterRequest) (auth.SessionResponse, error) {
			return auth.SessionResponse{
				Token: "signed-token",
				User:  auth.UserResponse{ID: "user-1", Name: req.Name, Email: req.Email, Role: "operator"},
			}, nil
		}

		w := postJSON(router, "/auth/register", auth.RegisterRequest{
			Name:     "John Operator",
			Email:    "operator@example.com",
			Password: "password123",
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var res map[string]any
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, true, res["ok"])
		data := res["data"].(map[string]any)
		assert.Equal(t, "signed-token", data["token"])
		assert.Equal(t, "operator", data["user"].(map[string]any)["role"])
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		service.registerFn = func(auth.RegisterRequest) (auth.SessionResponse, error) {
			return auth.SessionResponse{}, autherrors.ErrEmailAlreadyRegistered
		}

		w := postJSON(router, "/auth/register", auth.RegisterRequest{
			Name:     "John Operator",
			Email:    "operator@example.com",
			Password: "password123",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Validation Failure", func(t *testing.T) {
		w := postJSON(router, "/auth/register", gin.H{"email": "not-an-email"})

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var res map[string]any
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, false, res["ok"])
		assert.Equal(t, "VALIDATION_ERROR", res["error"].(map[string]any)["code"])
	})

	t.Run("Rejects Unknown Role", func(t *testing.T) {
		w := postJSON(router, "/auth/register", gin.H{
			"name":     "John Operator",
			"email":    "operator@example.com",
			"password": "password123",
			"role":     "superuser",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Login(t *testing.T) {
	service := &fakeAuthService{}
	handler := auth.NewHandler(service)
	router := setupAuthRouter()
	router.POST("/auth/login", handler.Login)

	t.Run("Success", func(t *testing.T) {
		service.loginFn = func(email, password string) (auth.SessionResponse, error) {
			return auth.SessionResponse{
				Token: "signed-token",
				User:  auth.UserResponse{ID: "user-1", Email: email, Role: "manager"},
			}, nil
		}

		w := postJSON(router, "/auth/login", auth.LoginRequest{
			Email:    "manager@example.com",
			Password: "password123",
		})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Invalid Credentials", func(t *testing.T) {
		service.loginFn = func(string, string) (auth.SessionResponse, error) {
			return auth.SessionResponse{}, autherrors.ErrInvalidCredentials
		}

		w := postJSON(router, "/auth/login", auth.LoginRequest{
			Email:    "manager@example.com",
			Password: "wrong",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var res map[string]any
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, "INVALID_CREDENTIALS", res["error"].(map[string]any)["code"])
	})
}

func TestHandler_Me(t *testing.T) {
	service := &fakeAuthService{
		getMeFn: func(userID string) (*auth.UserResponse, error) {
			return &auth.UserResponse{ID: userID, Email: "operator@example.com", Role: "operator"}, nil
		},
	}
	handler := auth.NewHandler(service)
	router := setupAuthRouter()
	router.GET("/auth/me", func(c *gin.Context) {
		c.Set("user_id", "user-1")
	}, handler.Me)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res map[string]any
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "user-1", res["data"].(map[string]any)["id"])
}
