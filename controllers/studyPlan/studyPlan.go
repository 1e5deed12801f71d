package studyPlanController

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
		log.Printf("Study plan operation error: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}
}

func StudyPlanList(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	plans, err := service.NewStudyPlanService(database.Database.Db).List(userId)
	if err != nil {
		return respondError(c, err)
	}

	return middleware.SuccessResponse(c, fiber.StatusOK, "studyPlans", plans)
}

func CreateStudyPlan(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var reqData validators.CreateStudyPlanInput
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
	}

	plan, err := service.NewStudyPlanService(database.Database.Db).Create(userId, &reqData)
	if err != nil {
		return respondError(c, err)
	}

	return middleware.SuccessResponse(c, fiber.StatusCreated, "studyPlan", plan)
}

func GetStudyPlan(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	planId, err := c.ParamsInt("id")
	if err != nil || planId <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid study plan ID")
	}

	plan, err := service.NewStudyPlanService(database.Database.Db).Get(userId, uint(planId))
	if err != nil {
		return respondError(c, err)
	}

	return middleware.SuccessResponse(c, fiber.StatusOK, "studyPlan", plan)
}

func UpdateStudyPlan(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	planId, err := c.ParamsInt("id")
	if err != nil || planId <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid study plan ID")
	}

	var reqData validators.UpdateStudyPlanInput
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
	}

	plan, err := service.NewStudyPlanService(database.Database.Db).Update(userId, uint(planId), &reqData)
	if err != nil {
		return respondError(c, err)
	}

	return middleware.SuccessResponse(c, fiber.StatusOK, "studyPlan", plan)
}

func DeleteStudyPlan(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	planId, err := c.ParamsInt("id")
	if err != nil || planId <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid study plan ID")
	}

	if err := service.NewStudyPlanService(database.Database.Db).Delete(userId, uint(planId)); err != nil {
		return respondError(c, err)
	}

	return middleware.MessageResponse(c, fiber.StatusOK, "Study plan deleted successfully")
}
