package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/huuhoait/credit-structuring-core/domain"
)

// StructureDealRepository implements domain.StructureDealRepository on top
// of GORM.
type StructureDealRepository struct {
	db *gorm.DB
}

// NewStructureDealRepository wires a StructureDealRepository against an open connection.
func NewStructureDealRepository(db *gorm.DB) *StructureDealRepository {
	return &StructureDealRepository{db: db}
}

func (r *StructureDealRepository) Save(ctx context.Context, dealID string, output *domain.StructureDealOutput) error {
	payload, err := json.Marshal(output)
	if err != nil {
		return fmt.Errorf("failed to marshal structure deal output for %s: %w", dealID, err)
	}

	row := structureDealModel{
		DealID:    dealID,
		Status:    string(output.Status),
		Payload:   payload,
		UpdatedAt: time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
		return fmt.Errorf("failed to save structure deal output for %s: %w", dealID, err)
	}
	return nil
}

func (r *StructureDealRepository) Get(ctx context.Context, dealID string) (*domain.StructureDealOutput, error) {
	var row structureDealModel
	if err := r.db.WithContext(ctx).First(&row, "deal_id = ?", dealID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("structure deal output for %s not found: %w", dealID, err)
		}
		return nil, fmt.Errorf("failed to load structure deal output for %s: %w", dealID, err)
	}

	var output domain.StructureDealOutput
	if err := json.Unmarshal(row.Payload, &output); err != nil {
		return nil, fmt.Errorf("failed to unmarshal structure deal output for %s: %w", dealID, err)
	}
	return &output, nil
}
