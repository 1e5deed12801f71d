package database

import (
	"fmt"
	"sync/atomic"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"studyplanner/models"
)

var testDbSeq uint64

// ConnectTestDb opens a fresh in-memory SQLite database with the full
// schema migrated. Each call returns an isolated database.
func ConnectTestDb() (*gorm.DB, error) {
	n := atomic.AddUint64(&testDbSeq, 1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.LoginHistory{},
		&models.StudyPlan{},
		&models.StudyMaterial{},
		&models.StudySession{},
		&models.StudyRecommendation{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
