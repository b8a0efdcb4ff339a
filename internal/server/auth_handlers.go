package server

import (
	"strconv"
	"time"

	"mechmate/internal/middleware"
	"mechmate/internal/models"
	"mechmate/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL is the lifetime of an issued access token.
const tokenTTL = 24 * time.Hour

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a new user account.
func (s *Server) Register(c *fiber.Ctx) error {
	var req credentials
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateUsername(req.Username); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	existing, err := s.userRepo.GetByUsername(c.UserContext(), req.Username)
	if err != nil {
		return s.handleServiceError(c, err)
	}
	if existing != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Username already taken",
		})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return s.handleServiceError(c, models.NewInternalError(err))
	}

	user := &models.User{
		Username: req.Username,
		Password: string(hash),
	}
	if err := s.userRepo.Create(c.UserContext(), user); err != nil {
		return s.handleServiceError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "user registered",
		"user_id", user.ID,
		"username", user.Username,
	)

	token, err := s.generateToken(user)
	if err != nil {
		return s.handleServiceError(c, models.NewInternalError(err))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Login authenticates a user and returns a signed token.
func (s *Server) Login(c *fiber.Ctx) error {
	var req credentials
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userRepo.GetByUsername(c.UserContext(), req.Username)
	if err != nil {
		return s.handleServiceError(c, err)
	}
	// Identical response for unknown user and wrong password so the
	// endpoint doesn't leak which usernames exist.
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid username or password",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		middleware.Logger.WarnContext(c.UserContext(), "failed login attempt",
			"username", req.Username,
		)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid username or password",
		})
	}

	token, err := s.generateToken(user)
	if err != nil {
		return s.handleServiceError(c, models.NewInternalError(err))
	}

	middleware.Logger.InfoContext(c.UserContext(), "user logged in",
		"user_id", user.ID,
	)

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Logout ends the session. Tokens are stateless, so the client discards the
// token; the endpoint exists so the frontend has a single logout call.
func (s *Server) Logout(c *fiber.Ctx) error {
	middleware.Logger.InfoContext(c.UserContext(), "user logged out",
		"user_id", currentUserID(c),
	)
	return c.JSON(fiber.Map{
		"message": "Logged out successfully",
	})
}

// generateToken issues an HS256 JWT for the user with a unique jti claim.
func (s *Server) generateToken(user *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      strconv.FormatUint(uint64(user.ID), 10),
		"username": user.Username,
		"jti":      uuid.NewString(),
		"iat":      now.Unix(),
		"exp":      now.Add(tokenTTL).Unix(),
	})
	return token.SignedString([]byte(s.config.JWTSecret))
}
