package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"gosocial/internal/model"
	"gosocial/internal/pkg/jwtutil"
)

type fakeUserStore struct {
	users map[uint]*model.User
}

func (f *fakeUserStore) GetByID(id uint) (*model.User, error) {
	return f.users[id], nil
}

func newAuthRouter(secret string, store UserStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthJWT(secret, store), func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.String(http.StatusInternalServerError, "no user in context")
			return
		}
		c.String(http.StatusOK, strconv.FormatUint(uint64(user.ID), 10))
	})
	return router
}

func TestAuthJWT(t *testing.T) {
	const secret = "test-secret"
	store := &fakeUserStore{users: map[uint]*model.User{
		1: {ID: 1, Name: "Alice", Username: "alice"},
	}}
	router := newAuthRouter(secret, store)

	validToken, _, err := jwtutil.GenerateToken(secret, time.Hour, 1)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	expiredToken, _, err := jwtutil.GenerateToken(secret, -time.Minute, 1)
	if err != nil {
		t.Fatalf("GenerateToken expired: %v", err)
	}
	deletedUserToken, _, err := jwtutil.GenerateToken(secret, time.Hour, 99)
	if err != nil {
		t.Fatalf("GenerateToken deleted user: %v", err)
	}
	foreignToken, _, err := jwtutil.GenerateToken("other-secret", time.Hour, 1)
	if err != nil {
		t.Fatalf("GenerateToken foreign: %v", err)
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"missing header", "", http.StatusUnauthorized, ""},
		{"bare token without scheme", validToken, http.StatusUnauthorized, ""},
		{"wrong scheme", "Token " + validToken, http.StatusUnauthorized, ""},
		{"three parts", "Bearer " + validToken + " extra", http.StatusUnauthorized, ""},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized, ""},
		{"mis-signed token", "Bearer " + foreignToken, http.StatusUnauthorized, ""},
		{"expired token", "Bearer " + expiredToken, http.StatusUnauthorized, ""},
		{"deleted subject", "Bearer " + deletedUserToken, http.StatusUnauthorized, ""},
		{"valid token", "Bearer " + validToken, http.StatusOK, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}
