package studyRoutes

import (
	studyMaterialControllers "studyplanner/controllers/studyMaterial"
	studyPlanControllers "studyplanner/controllers/studyPlan"
	studyRecommendationControllers "studyplanner/controllers/studyRecommendation"
	studySessionControllers "studyplanner/controllers/studySession"
	"studyplanner/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupStudyRoutes(app *fiber.App) {
	planGroup := app.Group("/study-plans", middleware.JWTMiddleware)
	planGroup.Get("/", studyPlanControllers.StudyPlanList)
	planGroup.Post("/", studyPlanControllers.CreateStudyPlan)
	planGroup.Get("/:id", studyPlanControllers.GetStudyPlan)
	planGroup.Put("/:id", studyPlanControllers.UpdateStudyPlan)
	planGroup.Delete("/:id", studyPlanControllers.DeleteStudyPlan)

	materialGroup := app.Group("/study-materials", middleware.JWTMiddleware)
	materialGroup.Get("/", studyMaterialControllers.StudyMaterialList)
	materialGroup.Post("/", studyMaterialControllers.CreateStudyMaterial)
	materialGroup.Put("/:id", studyMaterialControllers.UpdateStudyMaterial)
	materialGroup.Delete("/:id", studyMaterialControllers.DeleteStudyMaterial)

	sessionGroup := app.Group("/study-sessions", middleware.JWTMiddleware)
	sessionGroup.Get("/", studySessionControllers.StudySessionList)
	sessionGroup.Post("/", studySessionControllers.CreateStudySession)
	sessionGroup.Put("/:id", studySessionControllers.UpdateStudySession)
	sessionGroup.Delete("/:id", studySessionControllers.DeleteStudySession)

	recGroup := app.Group("/study-recommendations", middleware.JWTMiddleware)
	recGroup.Get("/", studyRecommendationControllers.StudyRecommendationList)
	recGroup.Post("/", studyRecommendationControllers.CreateStudyRecommendation)
	recGroup.Put("/", studyRecommendationControllers.ApplyStudyRecommendation)
	recGroup.Put("/:id", studyRecommendationControllers.UpdateStudyRecommendation)
	recGroup.Delete("/:id", studyRecommendationControllers.DeleteStudyRecommendation)
}
