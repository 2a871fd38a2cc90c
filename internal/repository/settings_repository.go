package repository

import (
	"encoding/json"
	"errors"
	"fmt"

	"invoicedesk/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settingsKey is the single row the workspace settings live under.
const settingsKey = "app"

// SettingsRecord is the storage row for workspace settings.
type SettingsRecord struct {
	ID   string `gorm:"primaryKey"`
	Data []byte
}

type SettingsRepository struct {
	db *Database
}

func NewSettingsRepository(db *Database) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get loads the workspace settings, falling back to the defaults when none
// have been saved yet.
func (r *SettingsRepository) Get() (*models.AppSettings, error) {
	var rec SettingsRecord
	err := r.db.First(&rec, "id = ?", settingsKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings := models.DefaultSettings()
		return &settings, nil
	}
	if err != nil {
		return nil, err
	}
	var settings models.AppSettings
	if err := json.Unmarshal(rec.Data, &settings); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	return &settings, nil
}

func (r *SettingsRepository) Save(settings *models.AppSettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	rec := SettingsRecord{ID: settingsKey, Data: data}
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error
}
