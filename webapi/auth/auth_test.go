package auth_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/hamzaimran/bitpro/pkg/dto"
	"github.com/hamzaimran/bitpro/webapi/testutils"
	"github.com/stretchr/testify/suite"
)

type AuthTestSuite struct {
	testutils.E2ETestSuite
	testUser *dto.UserRead
}

func (s *AuthTestSuite) SetupTest() {
	s.E2ETestSuite.SetupTest()
	s.testUser = s.CreateTestUser("hamza@example.com", "user", true)
}

func (s *AuthTestSuite) TestSignup_Success() {
	body := `{"firstName":"Ali","lastName":"Khan","email":"ali@example.com",` +
		`"phone":"03007654321","easypaisa":"03007654321","password":"password123"}`
	resp := s.MakeRequest("POST", "/signup", body, "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusCreated, resp.StatusCode)

	var response map[string]any
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))
	s.Equal("Signup successful", response["message"])
	s.NotEmpty(response["userId"])
}

func (s *AuthTestSuite) TestSignup_DuplicateEmail() {
	body := `{"firstName":"Ali","lastName":"Khan","email":"hamza@example.com",` +
		`"phone":"03007654321","easypaisa":"03007654321","password":"password123"}`
	resp := s.MakeRequest("POST", "/signup", body, "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusConflict, resp.StatusCode)

	var response map[string]any
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))
	s.Equal("email already exists", response["error"])
}

func (s *AuthTestSuite) TestSignup_MissingFields() {
	resp := s.MakeRequest("POST", "/signup", `{"firstName":"Ali"}`, "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *AuthTestSuite) TestLogin_Success() {
	body := fmt.Sprintf(`{"email":"%s","password":"password123"}`, s.testUser.Email)
	resp := s.MakeRequest("POST", "/login", body, "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode)
	s.NotEmpty(resp.Header.Get("Set-Cookie"))

	var response struct {
		Message string `json:"message"`
		User    struct {
			FirstName string `json:"firstName"`
			Email     string `json:"email"`
		} `json:"user"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))
	s.Equal("Login successful", response.Message)
	s.Equal(s.testUser.Email, response.User.Email)
}

func (s *AuthTestSuite) TestLogin_UnknownEmail() {
	resp := s.MakeRequest("POST", "/login", `{"email":"nobody@example.com","password":"password123"}`, "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
}

func (s *AuthTestSuite) TestLogin_WrongPassword() {
	body := fmt.Sprintf(`{"email":"%s","password":"wrongpassword"}`, s.testUser.Email)
	resp := s.MakeRequest("POST", "/login", body, "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)
}

func (s *AuthTestSuite) TestLogin_DeactivatedGetsNoSession() {
	deactivated := s.CreateTestUser("gone@example.com", "user", false)
	body := fmt.Sprintf(`{"email":"%s","password":"password123"}`, deactivated.Email)
	resp := s.MakeRequest("POST", "/login", body, "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusForbidden, resp.StatusCode)
	s.Empty(resp.Header.Get("Set-Cookie"))

	var response map[string]any
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))
	s.Equal("account deactivated", response["error"])
}

func (s *AuthTestSuite) TestCurrentUser() {
	cookie := s.Login(s.testUser.Email, "password123")
	resp := s.MakeRequest("GET", "/api/user", "", cookie)
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode)

	var response map[string]any
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))
	s.Equal("Test User", response["fullName"])
	s.Equal(s.testUser.Email, response["email"])
	s.NotContains(response, "password")
}

func (s *AuthTestSuite) TestCurrentUser_Unauthenticated() {
	resp := s.MakeRequest("GET", "/api/user", "", "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)

	var response map[string]any
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))
	s.Equal("Not authenticated. Please login.", response["error"])
}

func (s *AuthTestSuite) TestLogout_EndsSession() {
	cookie := s.Login(s.testUser.Email, "password123")

	resp := s.MakeRequest("GET", "/logout", "", cookie)
	resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode)

	resp = s.MakeRequest("GET", "/api/user", "", cookie)
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)
}

func (s *AuthTestSuite) TestChangePassword() {
	body := fmt.Sprintf(`{"email":"%s","currentPassword":"password123","newPassword":"newpassword456"}`,
		s.testUser.Email)
	resp := s.MakeRequest("POST", "/api/change-password", body, "")
	resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode)

	// Old credential must no longer authenticate.
	loginBody := fmt.Sprintf(`{"email":"%s","password":"password123"}`, s.testUser.Email)
	resp = s.MakeRequest("POST", "/login", loginBody, "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)
}

func (s *AuthTestSuite) TestChangePassword_TooShort() {
	body := fmt.Sprintf(`{"email":"%s","currentPassword":"password123","newPassword":"short"}`,
		s.testUser.Email)
	resp := s.MakeRequest("POST", "/api/change-password", body, "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func TestAuthTestSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}
