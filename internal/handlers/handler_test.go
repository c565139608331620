package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	"github.com/ByteOps02/URL-Shortener/internal/config"
	"github.com/ByteOps02/URL-Shortener/internal/models"
	"github.com/ByteOps02/URL-Shortener/internal/services"
	"github.com/ByteOps02/URL-Shortener/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var testDBCounter atomic.Int64

func setupTestHandler() (*Handler, *gorm.DB) {
	dsn := fmt.Sprintf("file:handlers%d?mode=memory&cache=shared", testDBCounter.Add(1))
	db, _ := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	db.AutoMigrate(&models.User{}, &models.URL{}, &models.AuditLog{})

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg := config.Config{
		JWTSecret:  "test-secret-12345678901234567890123456789012",
		CORSOrigin: "http://localhost:5173",
	}

	tokens := token.NewService(cfg.JWTSecret)
	audit := services.NewAuditService(db, logger)
	shortener := services.NewShortenerService(db, audit)

	h := NewHandler(cfg, logger, db, tokens, shortener, audit)
	return h, db
}

func setupTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return h.SetupRouter(RateLimiters{})
}

func doJSON(r *gin.Engine, method, path string, body interface{}, bearer string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// signupAndLogin registers a fresh user and returns its id and a bearer token.
func signupAndLogin(t *testing.T, r *gin.Engine, email string) (string, string) {
	t.Helper()

	w := doJSON(r, "POST", "/user/signup", map[string]string{
		"firstname": "Test",
		"lastname":  "User",
		"email":     email,
		"password":  "password123",
	}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("signup failed: %d %s", w.Code, w.Body.String())
	}

	var signupResp struct {
		Data struct {
			UserID string `json:"userId"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &signupResp)

	w = doJSON(r, "POST", "/user/login", map[string]string{
		"email":    email,
		"password": "password123",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", w.Code, w.Body.String())
	}

	var loginResp struct {
		Token string `json:"token"`
	}
	json.Unmarshal(w.Body.Bytes(), &loginResp)

	return signupResp.Data.UserID, loginResp.Token
}
