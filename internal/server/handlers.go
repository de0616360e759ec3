package server

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"fit-coach/internal/models"
)

func parseID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil {
		return 0, models.NewValidationError(name, "invalid "+name)
	}
	return id, nil
}

func (s *Server) createUser(c *fiber.Ctx) error {
	var input models.UserInput
	if err := c.BodyParser(&input); err != nil {
		return s.fail(c, models.NewValidationError("body", "invalid request body"))
	}
	if err := s.service.CreateUser(c.Context(), &input); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "user created"})
}

func (s *Server) chat(c *fiber.Ctx) error {
	var req models.AIRequest
	if err := c.BodyParser(&req); err != nil {
		return s.fail(c, models.NewValidationError("body", "invalid request body"))
	}
	answer, err := s.service.Chat(c.Context(), &req)
	if err != nil {
		return s.fail(c, err)
	}
	return c.SendString(answer)
}

func (s *Server) getUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	user, err := s.service.GetUser(c.Context(), id)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(user)
}

func (s *Server) getAllUsers(c *fiber.Ctx) error {
	users, err := s.service.GetAllUsers(c.Context())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(users)
}

func (s *Server) updateUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	var patch models.UserUpdate
	if err := c.BodyParser(&patch); err != nil {
		return s.fail(c, models.NewValidationError("body", "invalid request body"))
	}
	if err := s.service.UpdateUser(c.Context(), id, &patch); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "user updated"})
}

func (s *Server) deleteUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	if err := s.service.DeleteUser(c.Context(), id); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "user deleted"})
}

func (s *Server) getActivityLevel(c *fiber.Ctx) error {
	level, err := strconv.Atoi(c.Params("level"))
	if err != nil {
		return s.fail(c, models.NewValidationError("level", "invalid level"))
	}
	info, err := s.service.GetActivityLevel(c.Context(), level)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(info)
}

func (s *Server) listActivityLevels(c *fiber.Ctx) error {
	levels, err := s.service.ListActivityLevels(c.Context())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(levels)
}

func (s *Server) createActivityLevel(c *fiber.Ctx) error {
	var level models.ActivityLevel
	if err := c.BodyParser(&level); err != nil {
		return s.fail(c, models.NewValidationError("body", "invalid request body"))
	}
	if err := s.service.CreateActivityLevel(c.Context(), &level); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "activity level created"})
}

func (s *Server) updateActivityLevel(c *fiber.Ctx) error {
	num, err := strconv.Atoi(c.Params("level"))
	if err != nil {
		return s.fail(c, models.NewValidationError("level", "invalid level"))
	}
	var level models.ActivityLevel
	if err := c.BodyParser(&level); err != nil {
		return s.fail(c, models.NewValidationError("body", "invalid request body"))
	}
	level.Level = num
	if err := s.service.UpdateActivityLevel(c.Context(), &level); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "activity level updated"})
}

func (s *Server) deleteActivityLevel(c *fiber.Ctx) error {
	level, err := strconv.Atoi(c.Params("level"))
	if err != nil {
		return s.fail(c, models.NewValidationError("level", "invalid level"))
	}
	if err := s.service.DeleteActivityLevel(c.Context(), level); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "activity level deleted"})
}

func (s *Server) generatePlan(c *fiber.Ctx) error {
	var req models.AIRequest
	if err := c.BodyParser(&req); err != nil {
		return s.fail(c, models.NewValidationError("body", "invalid request body"))
	}
	if err := s.service.GeneratePlan(c.Context(), req.UserID, req.Content); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "training plan generated"})
}

func (s *Server) getUserPlan(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	plan, err := s.service.GetUserPlan(c.Context(), id)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(plan)
}

func (s *Server) updateUserPlan(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	var input models.PlanInput
	if err := c.BodyParser(&input); err != nil {
		return s.fail(c, models.NewValidationError("body", "invalid request body"))
	}
	if err := s.service.UpdateUserPlan(c.Context(), id, &input); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "training plan updated"})
}

func (s *Server) deleteUserPlan(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	if err := s.service.DeleteUserPlan(c.Context(), id); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "training plan deleted"})
}
