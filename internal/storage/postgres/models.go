package postgres

import "time"

// documentModel is the GORM record for domain.Document. The OCR key/value
// list is stored as a JSONB blob: the shape is caller-defined and never
// queried on by column, so there is nothing relational to normalize out.
type documentModel struct {
	ID        string `gorm:"primaryKey"`
	DealID    string `gorm:"index"`
	DocType   string
	FileName  string
	FileSize  int64
	Status    string
	Year      *int
	OCR       []byte `gorm:"type:jsonb"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (documentModel) TableName() string { return "documents" }

// extractionModel is the GORM record for domain.Extraction. Data is the
// untyped extraction tree, stored as JSONB for the same reason OCR is.
type extractionModel struct {
	ID         string `gorm:"primaryKey"`
	DocumentID string `gorm:"uniqueIndex"`
	DocType    string
	Data       []byte `gorm:"type:jsonb"`
	CreatedAt  time.Time
}

func (extractionModel) TableName() string { return "extractions" }

// loanProgramModel is the GORM record for the (immutable) loan program
// catalog. Every structured field below the identity columns is a single
// JSONB blob: the catalog is read-only seed data, never assembled from
// relational joins.
type loanProgramModel struct {
	ID       string `gorm:"primaryKey"`
	Name     string
	Category string
	Payload  []byte `gorm:"type:jsonb"` // full domain.LoanProgram, json-encoded
}

func (loanProgramModel) TableName() string { return "loan_programs" }

// structureDealModel is the GORM record for a persisted domain.StructureDealOutput.
type structureDealModel struct {
	DealID    string `gorm:"primaryKey"`
	Status    string
	Payload   []byte `gorm:"type:jsonb"` // full domain.StructureDealOutput, json-encoded
	UpdatedAt time.Time
}

func (structureDealModel) TableName() string { return "structure_deals" }
