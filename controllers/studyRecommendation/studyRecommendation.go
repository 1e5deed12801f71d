package studyRecommendationController

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
		log.Printf("Study recommendation operation error: %v", err)
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

func StudyRecommendationList(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	planId, err := planIdFromQuery(c)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	recs, err := service.NewStudyRecommendationService(database.Database.Db).List(userId, planId)
	if err != nil {
		return respondError(c, err)
	}

	return middleware.SuccessResponse(c, fiber.StatusOK, "recommendations", recs)
}

func CreateStudyRecommendation(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	planId, err := planIdFromQuery(c)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	var reqData validators.CreateStudyRecommendationInput
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
	}

	rec, err := service.NewStudyRecommendationService(database.Database.Db).Create(userId, planId, &reqData)
	if err != nil {
		return respondError(c, err)
	}

	return middleware.SuccessResponse(c, fiber.StatusCreated, "recommendation", rec)
}

// ApplyStudyRecommendation toggles the applied flag; the body carries
// `{id, isApplied}` like the calendar client sends.
func ApplyStudyRecommendation(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	planId, err := planIdFromQuery(c)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	var reqData validators.ApplyStudyRecommendationInput
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
	}

	rec, err := service.NewStudyRecommendationService(database.Database.Db).SetApplied(userId, planId, &reqData)
	if err != nil {
		return respondError(c, err)
	}

	return middleware.SuccessResponse(c, fiber.StatusOK, "recommendation", rec)
}

func UpdateStudyRecommendation(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	recId, err := c.ParamsInt("id")
	if err != nil || recId <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid recommendation ID")
	}

	var reqData validators.UpdateStudyRecommendationInput
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
	}

	rec, err := service.NewStudyRecommendationService(database.Database.Db).Update(userId, uint(recId), &reqData)
	if err != nil {
		return respondError(c, err)
	}

	return middleware.SuccessResponse(c, fiber.StatusOK, "recommendation", rec)
}

func DeleteStudyRecommendation(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	recId, err := c.ParamsInt("id")
	if err != nil || recId <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid recommendation ID")
	}

	if err := service.NewStudyRecommendationService(database.Database.Db).Delete(userId, uint(recId)); err != nil {
		return respondError(c, err)
	}

	return middleware.MessageResponse(c, fiber.StatusOK, "Study recommendation deleted successfully")
}
