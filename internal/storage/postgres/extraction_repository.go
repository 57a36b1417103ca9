package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/huuhoait/credit-structuring-core/domain"
)

// ExtractionRepository implements domain.ExtractionRepository on top of GORM.
type ExtractionRepository struct {
	db *gorm.DB
}

// NewExtractionRepository wires an ExtractionRepository against an open connection.
func NewExtractionRepository(db *gorm.DB) *ExtractionRepository {
	return &ExtractionRepository{db: db}
}

func (r *ExtractionRepository) GetByDocumentID(ctx context.Context, documentID string) (*domain.Extraction, error) {
	var row extractionModel
	if err := r.db.WithContext(ctx).First(&row, "document_id = ?", documentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("extraction for document %s not found: %w", documentID, err)
		}
		return nil, fmt.Errorf("failed to load extraction for document %s: %w", documentID, err)
	}

	var data map[string]any
	if len(row.Data) > 0 {
		if err := json.Unmarshal(row.Data, &data); err != nil {
			return nil, fmt.Errorf("failed to unmarshal extraction data: %w", err)
		}
	}

	return &domain.Extraction{
		ID:         row.ID,
		DocumentID: row.DocumentID,
		DocType:    domain.DocType(row.DocType),
		Data:       data,
		CreatedAt:  row.CreatedAt,
	}, nil
}

// Replace performs a whole-record swap: it deletes any existing extraction
// for the document and inserts extraction in its place, never a field-level
// merge.
func (r *ExtractionRepository) Replace(ctx context.Context, extraction *domain.Extraction) error {
	dataJSON, err := json.Marshal(extraction.Data)
	if err != nil {
		return fmt.Errorf("failed to marshal extraction data: %w", err)
	}

	row := extractionModel{
		ID:         extraction.ID,
		DocumentID: extraction.DocumentID,
		DocType:    string(extraction.DocType),
		Data:       dataJSON,
		CreatedAt:  extraction.CreatedAt,
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("document_id = ?", extraction.DocumentID).Delete(&extractionModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear prior extraction for document %s: %w", extraction.DocumentID, err)
		}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to store extraction for document %s: %w", extraction.DocumentID, err)
		}
		return nil
	})
}
