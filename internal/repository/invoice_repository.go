package repository

import (
	"encoding/json"
	"errors"
	"fmt"

	"invoicedesk/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound reports a document id with no stored record.
var ErrNotFound = errors.New("not found")

// InvoiceRecord is the storage row for an invoice. The full document is kept
// verbatim in Data so that a load-save cycle never drops a field; the other
// columns are projections for listing and lookup.
type InvoiceRecord struct {
	ID            string `gorm:"primaryKey"`
	InvoiceNumber string `gorm:"index"`
	ClientName    string
	IssueDate     string
	DueDate       string
	Currency      string
	GrandTotal    float64
	BalanceDue    float64
	UpdatedAt     string `gorm:"index"`
	Data          []byte
}

// InvoiceListParams filter and page the invoice list.
type InvoiceListParams struct {
	SearchTerm string
	Limit      int
	Offset     int
}

type InvoiceRepository struct {
	db *Database
}

func NewInvoiceRepository(db *Database) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Save upserts the invoice document keyed by its id.
func (r *InvoiceRepository) Save(inv *models.Invoice) error {
	data, err := json.Marshal(inv)
	if err != nil {
		return fmt.Errorf("failed to encode invoice %s: %w", inv.ID, err)
	}
	rec := InvoiceRecord{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		ClientName:    inv.Client.Name,
		IssueDate:     inv.IssueDate,
		DueDate:       inv.DueDate,
		Currency:      inv.Currency,
		GrandTotal:    inv.Totals.GrandTotal,
		BalanceDue:    inv.Totals.BalanceDue,
		UpdatedAt:     inv.UpdatedAt,
		Data:          data,
	}
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error
}

// GetByID loads the full invoice document.
func (r *InvoiceRepository) GetByID(id string) (*models.Invoice, error) {
	var rec InvoiceRecord
	err := r.db.First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("invoice %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	var inv models.Invoice
	if err := json.Unmarshal(rec.Data, &inv); err != nil {
		return nil, fmt.Errorf("failed to decode invoice %s: %w", id, err)
	}
	return &inv, nil
}

func (r *InvoiceRepository) Delete(id string) error {
	result := r.db.Delete(&InvoiceRecord{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("invoice %s: %w", id, ErrNotFound)
	}
	return nil
}

// List returns summaries ordered by last update, newest first.
func (r *InvoiceRepository) List(params *InvoiceListParams) ([]models.InvoiceSummary, error) {
	query := r.db.Model(&InvoiceRecord{})

	if params != nil && params.SearchTerm != "" {
		pattern := "%" + params.SearchTerm + "%"
		query = query.Where("invoice_number LIKE ? OR client_name LIKE ?", pattern, pattern)
	}
	if params != nil && params.Limit > 0 {
		query = query.Limit(params.Limit)
	}
	if params != nil && params.Offset > 0 {
		query = query.Offset(params.Offset)
	}
	query = query.Order("updated_at DESC")

	var recs []InvoiceRecord
	if err := query.Find(&recs).Error; err != nil {
		return nil, err
	}

	summaries := make([]models.InvoiceSummary, 0, len(recs))
	for _, rec := range recs {
		summaries = append(summaries, models.InvoiceSummary{
			ID:            rec.ID,
			InvoiceNumber: rec.InvoiceNumber,
			ClientName:    rec.ClientName,
			IssueDate:     rec.IssueDate,
			DueDate:       rec.DueDate,
			Currency:      rec.Currency,
			GrandTotal:    rec.GrandTotal,
			BalanceDue:    rec.BalanceDue,
			UpdatedAt:     rec.UpdatedAt,
		})
	}
	return summaries, nil
}

// Count returns the number of stored invoices.
func (r *InvoiceRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&InvoiceRecord{}).Count(&n).Error
	return n, err
}

// NextSequence returns one more than the number of stored invoices, the seed
// for the sequential part of a generated invoice number.
func (r *InvoiceRepository) NextSequence() (int, error) {
	n, err := r.Count()
	if err != nil {
		return 0, err
	}
	return int(n) + 1, nil
}
