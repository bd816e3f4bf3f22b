package handlers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/resume-ats/internal/logger"
	"alfredoptarigan/resume-ats/internal/models"
	"alfredoptarigan/resume-ats/internal/repositories"
)

type UserHandler struct {
	userRepo repositories.UserRepository
	timeout  time.Duration
	logger   *zap.Logger
}

func NewUserHandler(userRepo repositories.UserRepository, timeout time.Duration, log *zap.Logger) *UserHandler {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &UserHandler{
		userRepo: userRepo,
		timeout:  timeout,
		logger:   logger.OrNop(log),
	}
}

func (h *UserHandler) HandleAddUser(c *fiber.Ctx) error {
	var req models.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" {
		return badRequest(c, "name and email are required")
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	user := models.User{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		CreatedAt: time.Now(),
	}
	if err := h.userRepo.Create(ctx, &user); err != nil {
		return h.storeError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "User added",
	})
}

func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	users, err := h.userRepo.FindAll(ctx)
	if err != nil {
		return h.storeError(c, err)
	}
	if users == nil {
		users = []models.User{}
	}

	return c.JSON(models.UsersResponse{
		Success: true,
		Users:   users,
	})
}

func (h *UserHandler) storeError(c *fiber.Ctx, err error) error {
	if errors.Is(err, repositories.ErrStoreUnavailable) {
		h.logger.Warn("user store not configured", zap.String("path", c.Path()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "DB not ready",
		})
	}

	h.logger.Error("user store request failed", zap.String("path", c.Path()), zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": message,
	})
}
