package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/huuhoait/credit-structuring-core/domain"
)

// LoanProgramRepository implements domain.LoanProgramRepository on top of
// GORM. The catalog is seed data: writes happen out-of-band (a migration or
// a seed script), so this repository only exposes the two read methods the
// port declares.
type LoanProgramRepository struct {
	db *gorm.DB
}

// NewLoanProgramRepository wires a LoanProgramRepository against an open connection.
func NewLoanProgramRepository(db *gorm.DB) *LoanProgramRepository {
	return &LoanProgramRepository{db: db}
}

func (r *LoanProgramRepository) GetByID(ctx context.Context, id string) (*domain.LoanProgram, error) {
	var row loanProgramModel
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("loan program %s not found: %w", id, err)
		}
		return nil, fmt.Errorf("failed to load loan program %s: %w", id, err)
	}

	var program domain.LoanProgram
	if err := json.Unmarshal(row.Payload, &program); err != nil {
		return nil, fmt.Errorf("failed to unmarshal loan program %s: %w", id, err)
	}
	return &program, nil
}

func (r *LoanProgramRepository) List(ctx context.Context) ([]domain.LoanProgram, error) {
	var rows []loanProgramModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list loan programs: %w", err)
	}

	programs := make([]domain.LoanProgram, 0, len(rows))
	for _, row := range rows {
		var program domain.LoanProgram
		if err := json.Unmarshal(row.Payload, &program); err != nil {
			return nil, fmt.Errorf("failed to unmarshal loan program %s: %w", row.ID, err)
		}
		programs = append(programs, program)
	}
	return programs, nil
}

// Seed upserts the catalog from a fixed set of programs, populating the
// table without a separate migration tool. Nothing in this module calls it.
func Seed(ctx context.Context, db *gorm.DB, programs []domain.LoanProgram) error {
	for _, program := range programs {
		payload, err := json.Marshal(program)
		if err != nil {
			return fmt.Errorf("failed to marshal loan program %s: %w", program.ID, err)
		}
		row := loanProgramModel{
			ID:       program.ID,
			Name:     program.Name,
			Category: string(program.Category),
			Payload:  payload,
		}
		if err := db.WithContext(ctx).Save(&row).Error; err != nil {
			return fmt.Errorf("failed to seed loan program %s: %w", program.ID, err)
		}
	}
	return nil
}
