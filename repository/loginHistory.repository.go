package repository

import (
	"gorm.io/gorm"

	"studyplanner/models"
)

type LoginHistoryRepository interface {
	Create(entry *models.LoginHistory) error
	ListByUser(userID uint, limit int) ([]models.LoginHistory, error)
}

type LoginHistoryRepositoryImpl struct {
	db *gorm.DB
}

func NewLoginHistoryRepository(db *gorm.DB) LoginHistoryRepository {
	return &LoginHistoryRepositoryImpl{db: db}
}

func (r *LoginHistoryRepositoryImpl) Create(entry *models.LoginHistory) error {
	return r.db.Create(entry).Error
}

func (r *LoginHistoryRepositoryImpl) ListByUser(userID uint, limit int) ([]models.LoginHistory, error) {
	var entries []models.LoginHistory
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
