package studySessionController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"studyplanner/database"
	"studyplanner/middleware"
	"studyplanner/service"
	"studyplanner/validators"
)

const notFoundMessage = "Study plan not found or access denied"

func respondError(c *fiber.Ctx, err error) error {
	var ve *service.ValidationError
	switch {
	case errors.Is(err, service.ErrNotFound):
		return middleware.ErrorResponse(c, fiber.StatusNotFound, notFoundMessage)
	case errors.As(err, &ve):
		return middleware.ValidationErrorResponse(c, ve.Fields)
	default:
		log.Printf("Study session operation error: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}
}

func planIdFromQuery(c *fiber.Ctx) (uint, error) {
	raw := c.Query("studyPlanId")
	if raw == "" {
		return 0, errors.New("Study plan ID is required")
	}
	planId := c.QueryInt("studyPlanId")
	if planId <= 0 {
		return 0, errors.New("Invalid study plan ID format")
	}
	return uint(planId), nil
}

func StudySessionList(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	planId, err := planIdFromQuery(c)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	sessions, err := service.NewStudySessionService(database.Database.Db).List(userId, planId)
	if err != nil {
		return respondError(c, err)
	}

	return middleware.SuccessResponse(c, fiber.StatusOK, "studySessions", sessions)
}

func CreateStudySession(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	planId, err := planIdFromQuery(c)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	var reqData validators.CreateStudySessionInput
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
	}

	session, err := service.NewStudySessionService(database.Database.Db).Create(userId, planId, &reqData)
	if err != nil {
		return respondError(c, err)
	}

	return middleware.SuccessResponse(c, fiber.StatusCreated, "studySession", session)
}

func UpdateStudySession(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	sessionId, err := c.ParamsInt("id")
	if err != nil || sessionId <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid study session ID")
	}

	var reqData validators.UpdateStudySessionInput
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
	}

	session, err := service.NewStudySessionService(database.Database.Db).Update(userId, uint(sessionId), &reqData)
	if err != nil {
		return respondError(c, err)
	}

	return middleware.SuccessResponse(c, fiber.StatusOK, "studySession", session)
}

func DeleteStudySession(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	sessionId, err := c.ParamsInt("id")
	if err != nil || sessionId <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid study session ID")
	}

	if err := service.NewStudySessionService(database.Database.Db).Delete(userId, uint(sessionId)); err != nil {
		return respondError(c, err)
	}

	return middleware.MessageResponse(c, fiber.StatusOK, "Study session deleted successfully")
}
