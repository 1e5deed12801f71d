package authController

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"studyplanner/config"
	"studyplanner/database"
	"studyplanner/middleware"
	"studyplanner/models"
	"studyplanner/repository"
	"studyplanner/validators"
)

func Signup(c *fiber.Ctx) error {
	var reqData validators.SignupInput

	if err := c.BodyParser(&reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
	}

	if fields := validators.Signup(&reqData); fields != nil {
		return middleware.ValidationErrorResponse(c, fields)
	}

	users := repository.NewUserRepository(database.Database.Db)

	if _, err := users.FindByEmail(reqData.Email); err == nil {
		return middleware.ErrorResponse(c, fiber.StatusConflict, "Email is already registered!")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to process your request!")
	}

	newUser := &models.User{
		Name:     reqData.Name,
		Email:    reqData.Email,
		Password: string(hashedPassword),
	}

	if err := users.Create(newUser); err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to register user!")
	}

	// Password carries json:"-", but never trust serialization alone.
	newUser.Password = ""

	return middleware.SuccessResponse(c, fiber.StatusCreated, "user", newUser)
}

func Login(c *fiber.Ctx) error {
	var reqData validators.LoginInput

	if err := c.BodyParser(&reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
	}

	if fields := validators.Login(&reqData); fields != nil {
		return middleware.ValidationErrorResponse(c, fields)
	}

	users := repository.NewUserRepository(database.Database.Db)

	user, err := users.FindByEmail(reqData.Email)
	if err != nil {
		// Same answer for unknown email and wrong password.
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid email or password!")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid email or password!")
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to process your request!")
	}

	now := time.Now()
	user.LastLogin = &now
	if err := users.Save(user); err != nil {
		log.Printf("Error updating last login: %v", err)
	}

	recordLogin(database.Database.Db, user.ID, c.IP(), c.Get("User-Agent"))

	user.Password = ""

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

// LoginHistoryList returns the most recent logins for the account activity view.
func LoginHistoryList(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	history := repository.NewLoginHistoryRepository(database.Database.Db)

	entries, err := history.ListByUser(userId, 20)
	if err != nil {
		log.Printf("Error fetching login history: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return middleware.SuccessResponse(c, fiber.StatusOK, "loginHistory", entries)
}

func recordLogin(db *gorm.DB, userID uint, ip, userAgent string) {
	entry := &models.LoginHistory{
		UserID:    userID,
		IP:        ip,
		UserAgent: userAgent,
	}
	if err := repository.NewLoginHistoryRepository(db).Create(entry); err != nil {
		log.Printf("Error recording login history: %v", err)
	}
}
