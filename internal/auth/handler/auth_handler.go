package handler

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/hanifmaliki/auth-service/config"
	"github.com/hanifmaliki/auth-service/internal/auth/dto"
	"github.com/hanifmaliki/auth-service/internal/auth/service"
	autherror "github.com/hanifmaliki/auth-service/internal/errors"
)

const refreshCookieName = "refreshToken"

type AuthHandler struct {
	userService *service.UserService
	tokens      service.TokenIssuer
	validate    *validator.Validate
	cfg         *config.Config
}

func NewAuthHandler(userService *service.UserService, tokens service.TokenIssuer, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		tokens:      tokens,
		validate:    validator.New(),
		cfg:         cfg,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid input",
		})
	}

	if errs := h.validateInput(input); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid input",
			"errors":  errs,
		})
	}

	user, err := h.userService.Register(c.Context(), input)
	if err != nil {
		if errors.Is(err, autherror.ErrEmailAlreadyInUse) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		log.Printf("register failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal Server Error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully",
		"user":    user,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid input",
		})
	}

	if errs := h.validateInput(input); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid input",
			"errors":  errs,
		})
	}

	pair, err := h.userService.Login(c.Context(), input)
	if err != nil {
		if errors.Is(err, autherror.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		log.Printf("login failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal Server Error",
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     refreshCookieName,
		Value:    pair.RefreshToken,
		Path:     "/",
		MaxAge:   int(h.tokens.GetRefreshTokenExpiry().Seconds()),
		HTTPOnly: true,
		Secure:   h.cfg.Env == "production",
	})

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":     "Login successful",
		"accessToken": pair.AccessToken,
	})
}

// Me returns the claims the auth middleware attached for the verified bearer
// token.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims, ok := c.Locals(userContextKey).(*service.TokenClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Access token is required",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user": claims,
	})
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	rawToken := c.Cookies(refreshCookieName)
	if rawToken == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Refresh token not found",
		})
	}

	accessToken, err := h.userService.Refresh(c.Context(), rawToken)
	if err != nil {
		switch {
		case errors.Is(err, autherror.ErrInvalidRefreshToken):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Invalid refresh token",
			})
		case errors.Is(err, autherror.ErrSessionNotFound):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Session not found. Please log in again",
			})
		case errors.Is(err, autherror.ErrInvalidSession):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Invalid session. Please log in again",
			})
		default:
			log.Printf("refresh failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Internal Server Error",
			})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"accessToken": accessToken,
	})
}

func (h *AuthHandler) validateInput(input any) []string {
	err := h.validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{"invalid request body"}
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fieldMessage(fe))
	}

	return msgs
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
