package repository

import (
	"encoding/json"
	"errors"
	"fmt"

	"invoicedesk/internal/models"
	"invoicedesk/internal/templates"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileRecord is the storage row for a business profile.
type ProfileRecord struct {
	ID   string `gorm:"primaryKey"`
	Name string
	Data []byte
}

type ProfileRepository struct {
	db *Database
}

func NewProfileRepository(db *Database) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Save(profile *models.BusinessProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile %s: %w", profile.ID, err)
	}
	rec := ProfileRecord{ID: profile.ID, Name: profile.Name, Data: data}
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error
}

// GetByID loads a profile. The default profile id resolves to the bundled
// starter profile until the user saves over it.
func (r *ProfileRepository) GetByID(id string) (*models.BusinessProfile, error) {
	var rec ProfileRecord
	err := r.db.First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if def := templates.DefaultBusinessProfile(); def.ID == id {
			return &def, nil
		}
		return nil, fmt.Errorf("profile %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	var profile models.BusinessProfile
	if err := json.Unmarshal(rec.Data, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile %s: %w", id, err)
	}
	return &profile, nil
}

// List returns all stored profiles, seeding the starter profile when none of
// the stored rows claims its id.
func (r *ProfileRepository) List() ([]models.BusinessProfile, error) {
	var recs []ProfileRecord
	if err := r.db.Order("name ASC").Find(&recs).Error; err != nil {
		return nil, err
	}

	def := templates.DefaultBusinessProfile()
	out := make([]models.BusinessProfile, 0, len(recs)+1)
	haveDefault := false
	for _, rec := range recs {
		var profile models.BusinessProfile
		if err := json.Unmarshal(rec.Data, &profile); err != nil {
			return nil, fmt.Errorf("failed to decode profile %s: %w", rec.ID, err)
		}
		if profile.ID == def.ID {
			haveDefault = true
		}
		out = append(out, profile)
	}
	if !haveDefault {
		out = append([]models.BusinessProfile{def}, out...)
	}
	return out, nil
}

func (r *ProfileRepository) Delete(id string) error {
	result := r.db.Delete(&ProfileRecord{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("profile %s: %w", id, ErrNotFound)
	}
	return nil
}
