package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"fit-coach/internal/models"
	"fit-coach/internal/service"
	"fit-coach/pkg/logger"
)

type Server struct {
	app     *fiber.App
	service *service.Service
	logger  *logger.Logger
	port    string
}

func New(port string, svc *service.Service, l *logger.Logger) *Server {
	app := fiber.New(fiber.Config{
		AppName: "fit-coach api",
	})
	app.Use(recover.New())

	s := &Server{
		app:     app,
		service: svc,
		logger:  l,
		port:    port,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})

	user := s.app.Group("/user")
	user.Post("/create", s.createUser)
	user.Post("/chat", s.chat)
	user.Get("/get/:id", s.getUser)
	user.Get("/all", s.getAllUsers)
	user.Patch("/update/:id", s.updateUser)
	user.Delete("/delete/:id", s.deleteUser)

	level := s.app.Group("/level")
	level.Get("/get/:level", s.getActivityLevel)
	level.Get("/all", s.listActivityLevels)
	level.Post("/create", s.createActivityLevel)
	level.Patch("/update/:level", s.updateActivityLevel)
	level.Delete("/delete/:level", s.deleteActivityLevel)

	plan := s.app.Group("/plan")
	plan.Post("/generate", s.generatePlan)
	plan.Get("/get/user/:id", s.getUserPlan)
	plan.Patch("/update/user/:id", s.updateUserPlan)
	plan.Delete("/delete/user/:id", s.deleteUserPlan)
}

func (s *Server) Start() error {
	s.logger.Infow("starting API server", "port", s.port)
	return s.app.Listen(":" + s.port)
}

func (s *Server) Stop() error {
	s.logger.Info("stopping API server")
	return s.app.Shutdown()
}

// App exposes the fiber application for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// statusFromError maps domain error kinds to HTTP statuses.
func statusFromError(err error) int {
	switch {
	case models.IsValidation(err):
		return fiber.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, models.ErrAlreadyExists):
		return fiber.StatusConflict
	case errors.Is(err, models.ErrGenerationFailed):
		return fiber.StatusBadGateway
	}
	return fiber.StatusInternalServerError
}

func (s *Server) fail(c *fiber.Ctx, err error) error {
	status := statusFromError(err)
	if status == fiber.StatusInternalServerError {
		s.logger.Errorw("request failed", "path", c.Path(), "error", err)
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
