package controllers

import (
	"encoding/json"
	"net/http"
	"os"
	"testing"

	"fixit-be/directory"
	"fixit-be/middlewares"
	"fixit-be/store"

	"github.com/gin-gonic/gin"
)

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret")

	Setup(store.NewIssueStore(store.NewMemoryStorage()), directory.New())

	r := gin.New()
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", RegisterUser)
		auth.POST("/login", LoginUser)
		auth.GET("/me", middlewares.AuthMiddleware(), GetMe)
	}
	user := r.Group("/api/user")
	{
		user.GET("/profile", middlewares.AuthMiddleware(), GetProfile)
		user.PUT("/profile", middlewares.AuthMiddleware(), UpdateProfile)
	}
	return r
}

func TestRegisterAndLogin(t *testing.T) {
	r := newAuthRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    "citizen@example.com",
		"password": "password",
		"role":     "citizen",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register = %d, body %s", w.Code, w.Body.String())
	}

	// Duplicate registration is rejected.
	w = doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    "citizen@example.com",
		"password": "password",
		"role":     "citizen",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("duplicate register = %d, want 400", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "citizen@example.com",
		"password": "password",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login = %d, body %s", w.Code, w.Body.String())
	}
	cookieSet := false
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "auth_token" && cookie.Value != "" {
			cookieSet = true
		}
	}
	if !cookieSet {
		t.Error("login did not set the auth_token cookie")
	}
}

func TestLoginRoleScoping(t *testing.T) {
	r := newAuthRouter(t)

	doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    "citizen@example.com",
		"password": "password",
		"role":     "citizen",
	})

	// The admin login page cannot log a citizen account in.
	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "citizen@example.com",
		"password": "password",
		"role":     "admin",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("cross-role login = %d, want 401", w.Code)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	r := newAuthRouter(t)

	doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    "citizen@example.com",
		"password": "password",
		"role":     "citizen",
	})

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "citizen@example.com",
		"password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong password login = %d, want 401", w.Code)
	}
}

func TestProfileRoundTrip(t *testing.T) {
	r := newAuthRouter(t)

	doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":       "citizen@example.com",
		"password":    "password",
		"role":        "citizen",
		"displayName": "Jordan",
	})
	token := authToken(t, "citizen@example.com", "citizen")

	w := doJSON(t, r, http.MethodGet, "/api/user/profile", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get profile = %d", w.Code)
	}
	var profile map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &profile); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if profile["displayName"] != "Jordan" {
		t.Errorf("displayName = %v, want the one given at registration", profile["displayName"])
	}

	// Read-modify-write the whole profile.
	profile["bio"] = "Reports potholes."
	w = doJSON(t, r, http.MethodPut, "/api/user/profile", token, profile)
	if w.Code != http.StatusOK {
		t.Fatalf("update profile = %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/auth/me", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me = %d", w.Code)
	}
	var me map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &me); err != nil {
		t.Fatalf("decode me: %v", err)
	}
	if me["bio"] != "Reports potholes." {
		t.Errorf("bio = %v, want the updated value", me["bio"])
	}
	if me["role"] != "citizen" {
		t.Errorf("role = %v, want citizen", me["role"])
	}
}
