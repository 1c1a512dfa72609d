package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/RenoBuildCo/reno-marketplace/internal/config"
	"github.com/RenoBuildCo/reno-marketplace/internal/models"
	"github.com/RenoBuildCo/reno-marketplace/internal/store"
)

func newAuthRouter(s store.Store) (*gin.Engine, *config.Config) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{JWTSecret: "test-secret"}
	h := NewAuthHandler(s, cfg)

	r := gin.New()
	r.POST("/api/auth/login", h.Login)
	return r, cfg
}

func seedUser(t *testing.T, s store.Store, username, password string) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	u := &models.User{Username: username, PasswordHash: string(hashed), Email: username + "@example.com", Name: "Test User"}
	if err := s.CreateUser(context.Background(), u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func TestLoginIssuesToken(t *testing.T) {
	s := store.NewMemoryStore()
	r, cfg := newAuthRouter(s)
	u := seedUser(t, s, "priya", "secret123")

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"username": "Priya",
		"password": "secret123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.User.Username != "priya" {
		t.Errorf("username = %q", resp.User.Username)
	}

	token, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	claims := token.Claims.(jwt.MapClaims)
	if sub, _ := claims["sub"].(float64); uint(sub) != u.ID {
		t.Errorf("sub = %v, want %d", claims["sub"], u.ID)
	}
}

func TestLoginRejectsBadPassword(t *testing.T) {
	s := store.NewMemoryStore()
	r, _ := newAuthRouter(s)
	seedUser(t, s, "priya", "secret123")

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"username": "priya",
		"password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	s := store.NewMemoryStore()
	r, _ := newAuthRouter(s)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"username": "nobody",
		"password": "whatever",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
