package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"newsroom/models"
)

func TestNewJWTManagerFromEnvRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_ISSUER", "issuer-for-test")

	manager, err := NewJWTManagerFromEnv()
	if err == nil {
		t.Fatalf("expected error when JWT_SECRET is empty")
	}
	if manager != nil {
		t.Fatalf("expected nil manager when env is invalid")
	}
}

func TestNewJWTManagerFromEnvUsesDefaultIssuer(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_ISSUER", "")

	manager, err := NewJWTManagerFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if manager.issuer != "newsroom" {
		t.Fatalf("expected default issuer newsroom, got %q", manager.issuer)
	}
	if manager.ttl != 24*time.Hour {
		t.Fatalf("expected default ttl 24h, got %s", manager.ttl)
	}
}

func TestJWTManagerSignAndParseRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_ISSUER", "test-issuer")

	manager, err := NewJWTManagerFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := manager.Sign("uid-001", models.RoleAdmin)
	if err != nil {
		t.Fatalf("unexpected sign error: %v", err)
	}

	uid, role, err := manager.Parse(token)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if uid != "uid-001" {
		t.Fatalf("expected uid uid-001, got %q", uid)
	}
	if role != models.RoleAdmin {
		t.Fatalf("expected role admin, got %q", role)
	}
}

func TestJWTManagerRejectsForeignSignature(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_ISSUER", "test-issuer")

	manager, err := NewJWTManagerFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "uid-001",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := foreign.SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("unexpected sign error: %v", err)
	}

	if _, _, err := manager.Parse(signed); err == nil {
		t.Fatalf("expected parse to reject token signed with a different secret")
	}
}

func TestExtractBearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		header  string
		want    string
		wantErr error
	}{
		{header: "", wantErr: ErrMissingHeader},
		{header: "Basic abc", wantErr: ErrInvalidFormat},
		{header: "Bearer ", wantErr: ErrEmptyToken},
		{header: "Bearer token1", want: "token1"},
		{header: "bearer token1", want: "token1"},
	}

	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.header != "" {
			c.Request.Header.Set("Authorization", tc.header)
		}

		got, err := ExtractBearerToken(c)
		if tc.wantErr != nil {
			if err != tc.wantErr {
				t.Fatalf("header %q: expected %v, got %v", tc.header, tc.wantErr, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("header %q: unexpected error: %v", tc.header, err)
		}
		if got != tc.want {
			t.Fatalf("header %q: expected %q, got %q", tc.header, tc.want, got)
		}
	}
}
