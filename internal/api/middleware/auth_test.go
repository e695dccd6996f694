package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

func signedToken(t *testing.T, secret string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 42,
		"role":    "USER",
		"exp":     exp.Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func requestWithCookie(token string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	}
	return req, httptest.NewRecorder()
}

func assertHTTPError(t *testing.T, err error, wantCode int) {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != wantCode {
		t.Fatalf("expected status %d, got %d", wantCode, he.Code)
	}
}

func TestAuthMiddleware_ValidCookie(t *testing.T) {
	e := echo.New()
	req, rec := requestWithCookie(signedToken(t, "secret", time.Now().Add(time.Hour)))
	c := e.NewContext(req, rec)

	called := false
	mw := Auth("secret")
	handler := mw(func(c echo.Context) error {
		called = true
		if id, ok := c.Get("user_id").(uint); !ok || id != 42 {
			t.Fatalf("user_id not injected: %v", c.Get("user_id"))
		}
		if c.Get("role") != "USER" {
			t.Fatalf("role not injected: %v", c.Get("role"))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthMiddleware_MissingCookie(t *testing.T) {
	e := echo.New()
	req, rec := requestWithCookie("")
	c := e.NewContext(req, rec)

	mw := Auth("secret")
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	assertHTTPError(t, handler(c), http.StatusUnauthorized)
}

func TestAuthMiddleware_BadSignature(t *testing.T) {
	e := echo.New()
	req, rec := requestWithCookie(signedToken(t, "other-secret", time.Now().Add(time.Hour)))
	c := e.NewContext(req, rec)

	handler := Auth("secret")(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	assertHTTPError(t, handler(c), http.StatusUnauthorized)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	e := echo.New()
	req, rec := requestWithCookie(signedToken(t, "secret", time.Now().Add(-time.Minute)))
	c := e.NewContext(req, rec)

	handler := Auth("secret")(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	assertHTTPError(t, handler(c), http.StatusUnauthorized)
}
