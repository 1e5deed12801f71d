package studyMaterialController

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
		log.Printf("Study material operation error: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}
}

// planIdFromQuery reads the required studyPlanId query parameter.
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

func StudyMaterialList(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	planId, err := planIdFromQuery(c)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	materials, err := service.NewStudyMaterialService(database.Database.Db).List(userId, planId)
	if err != nil {
		return respondError(c, err)
	}

	return middleware.SuccessResponse(c, fiber.StatusOK, "studyMaterials", materials)
}

func CreateStudyMaterial(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	planId, err := planIdFromQuery(c)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	var reqData validators.CreateStudyMaterialInput
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
	}

	material, err := service.NewStudyMaterialService(database.Database.Db).Create(userId, planId, &reqData)
	if err != nil {
		return respondError(c, err)
	}

	return middleware.SuccessResponse(c, fiber.StatusCreated, "studyMaterial", material)
}

func UpdateStudyMaterial(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	materialId, err := c.ParamsInt("id")
	if err != nil || materialId <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid study material ID")
	}

	var reqData validators.UpdateStudyMaterialInput
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
	}

	material, err := service.NewStudyMaterialService(database.Database.Db).Update(userId, uint(materialId), &reqData)
	if err != nil {
		return respondError(c, err)
	}

	return middleware.SuccessResponse(c, fiber.StatusOK, "studyMaterial", material)
}

func DeleteStudyMaterial(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	materialId, err := c.ParamsInt("id")
	if err != nil || materialId <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid study material ID")
	}

	if err := service.NewStudyMaterialService(database.Database.Db).Delete(userId, uint(materialId)); err != nil {
		return respondError(c, err)
	}

	return middleware.MessageResponse(c, fiber.StatusOK, "Study material deleted successfully")
}
