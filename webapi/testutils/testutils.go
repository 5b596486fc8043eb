// Package testutils provides the shared harness for endpoint tests: an
// app wired over in-memory repositories, plus request helpers that carry
// the session cookie.
package testutils

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/hamzaimran/bitpro/internal/fixtures/memory"
	"github.com/hamzaimran/bitpro/pkg/app"
	"github.com/hamzaimran/bitpro/pkg/config"
	"github.com/hamzaimran/bitpro/pkg/dto"
	"github.com/hamzaimran/bitpro/pkg/utils"
	"github.com/hamzaimran/bitpro/webapi"
)

// E2ETestSuite boots the full HTTP surface over the in-memory store. Each
// test gets a fresh store and a fresh session store.
type E2ETestSuite struct {
	suite.Suite

	Store *memory.Store
	App   *fiber.App
}

// SetupTest rebuilds the app before every test.
func (s *E2ETestSuite) SetupTest() {
	s.Store = memory.NewStore()
	cfg := &config.App{
		Env: "test",
		Session: config.Session{
			CookieName: "bitpro_session",
			Expiry:     time.Hour,
		},
		RateLimit: config.RateLimit{MaxRequests: 10000, Window: time.Minute},
	}
	a := app.New(&app.Deps{
		Uow:    s.Store,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, cfg)
	s.App = webapi.SetupAppWithStore(a, webapi.NewSessionStore(a))
}

// MakeRequest performs one request against the app. cookie, when not
// empty, is sent as the Cookie header.
func (s *E2ETestSuite) MakeRequest(method, path, body, cookie string) *http.Response {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	resp, err := s.App.Test(req, -1)
	s.Require().NoError(err)
	return resp
}

// CreateTestUser seeds an account directly in the store, bypassing the
// signup endpoint, and returns its read view. The password is "password123".
func (s *E2ETestSuite) CreateTestUser(email, role string, active bool) *dto.UserRead {
	hashed, err := utils.HashPassword("password123")
	s.Require().NoError(err)
	id := uuid.New()
	err = s.Store.Users().Create(s.T().Context(), &dto.UserCreate{
		ID:        id,
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Phone:     "03001234567",
		Easypaisa: "03001234567",
		Role:      role,
		Password:  hashed,
		IsActive:  active,
	})
	s.Require().NoError(err)
	u, err := s.Store.Users().Get(s.T().Context(), id)
	s.Require().NoError(err)
	return u
}

// Login authenticates the account and returns the session cookie to carry
// on subsequent requests.
func (s *E2ETestSuite) Login(email, password string) string {
	resp := s.MakeRequest("POST", "/login",
		`{"email":"`+email+`","password":"`+password+`"}`, "")
	defer resp.Body.Close() //nolint: errcheck
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	for _, raw := range resp.Header.Values("Set-Cookie") {
		if strings.HasPrefix(raw, "bitpro_session=") {
			return strings.SplitN(raw, ";", 2)[0]
		}
	}
	s.Require().FailNow("login response carried no session cookie")
	return ""
}
