package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/huuhoait/credit-structuring-core/domain"
)

// DocumentRepository implements domain.DocumentRepository on top of GORM.
type DocumentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository wires a DocumentRepository against an open connection.
func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) GetByID(ctx context.Context, id string) (*domain.Document, error) {
	var row documentModel
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("document %s not found: %w", id, err)
		}
		return nil, fmt.Errorf("failed to load document %s: %w", id, err)
	}
	return rowToDocument(row)
}

func (r *DocumentRepository) Create(ctx context.Context, doc *domain.Document) error {
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	row, err := documentToRow(doc)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to create document %s: %w", doc.ID, err)
	}
	return nil
}

func (r *DocumentRepository) Update(ctx context.Context, doc *domain.Document) error {
	row, err := documentToRow(doc)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return fmt.Errorf("failed to update document %s: %w", doc.ID, err)
	}
	return nil
}

func (r *DocumentRepository) ListByDeal(ctx context.Context, dealID string) ([]*domain.Document, error) {
	var rows []documentModel
	if err := r.db.WithContext(ctx).Where("deal_id = ?", dealID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list documents for deal %s: %w", dealID, err)
	}

	docs := make([]*domain.Document, 0, len(rows))
	for _, row := range rows {
		doc, err := rowToDocument(row)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func documentToRow(doc *domain.Document) (*documentModel, error) {
	ocrJSON, err := json.Marshal(doc.OCR)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document OCR: %w", err)
	}
	return &documentModel{
		ID:        doc.ID,
		DealID:    doc.DealID,
		DocType:   string(doc.DocType),
		FileName:  doc.FileName,
		FileSize:  doc.FileSize,
		Status:    string(doc.Status),
		Year:      doc.Year,
		OCR:       ocrJSON,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}

func rowToDocument(row documentModel) (*domain.Document, error) {
	var ocr []domain.KVPair
	if len(row.OCR) > 0 {
		if err := json.Unmarshal(row.OCR, &ocr); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document OCR: %w", err)
		}
	}
	return &domain.Document{
		ID:        row.ID,
		DealID:    row.DealID,
		DocType:   domain.DocType(row.DocType),
		FileName:  row.FileName,
		FileSize:  row.FileSize,
		Status:    domain.DocumentStatus(row.Status),
		Year:      row.Year,
		OCR:       ocr,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}
