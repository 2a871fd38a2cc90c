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

// ErrBuiltIn reports an attempt to modify or delete a bundled template.
var ErrBuiltIn = errors.New("built-in template is read-only")

// TemplateRecord is the storage row for a user-saved template.
type TemplateRecord struct {
	ID   string `gorm:"primaryKey"`
	Name string
	Data []byte
}

type TemplateRepository struct {
	db *Database
}

func NewTemplateRepository(db *Database) *TemplateRepository {
	return &TemplateRepository{db: db}
}

// Save upserts a user template. Built-in ids are reserved.
func (r *TemplateRepository) Save(tmpl *models.Template) error {
	if templates.ByID(tmpl.ID) != nil {
		return fmt.Errorf("template %s: %w", tmpl.ID, ErrBuiltIn)
	}
	tmpl.BuiltIn = false
	data, err := json.Marshal(tmpl)
	if err != nil {
		return fmt.Errorf("failed to encode template %s: %w", tmpl.ID, err)
	}
	rec := TemplateRecord{ID: tmpl.ID, Name: tmpl.Name, Data: data}
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error
}

// GetByID resolves a template id against the built-ins first, then storage.
func (r *TemplateRepository) GetByID(id string) (*models.Template, error) {
	if t := templates.ByID(id); t != nil {
		return t, nil
	}
	var rec TemplateRecord
	err := r.db.First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("template %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	var tmpl models.Template
	if err := json.Unmarshal(rec.Data, &tmpl); err != nil {
		return nil, fmt.Errorf("failed to decode template %s: %w", id, err)
	}
	return &tmpl, nil
}

// List returns the built-in templates followed by the stored ones.
func (r *TemplateRepository) List() ([]models.Template, error) {
	out := templates.Defaults()

	var recs []TemplateRecord
	if err := r.db.Order("name ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	for _, rec := range recs {
		var tmpl models.Template
		if err := json.Unmarshal(rec.Data, &tmpl); err != nil {
			return nil, fmt.Errorf("failed to decode template %s: %w", rec.ID, err)
		}
		out = append(out, tmpl)
	}
	return out, nil
}

func (r *TemplateRepository) Delete(id string) error {
	if templates.ByID(id) != nil {
		return fmt.Errorf("template %s: %w", id, ErrBuiltIn)
	}
	result := r.db.Delete(&TemplateRecord{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("template %s: %w", id, ErrNotFound)
	}
	return nil
}
