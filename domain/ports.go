package domain

import "context"

// DocumentRepository persists Document records. Any durable store
// satisfying this shape is a valid implementation; the core itself never
// assumes a specific backend.
type DocumentRepository interface {
	GetByID(ctx context.Context, id string) (*Document, error)
	Create(ctx context.Context, doc *Document) error
	Update(ctx context.Context, doc *Document) error
	ListByDeal(ctx context.Context, dealID string) ([]*Document, error)
}

// ExtractionRepository persists the current Extraction for a document.
// Replacing an extraction is a whole-record swap, never a field-level merge.
type ExtractionRepository interface {
	GetByDocumentID(ctx context.Context, documentID string) (*Extraction, error)
	Replace(ctx context.Context, extraction *Extraction) error
}

// LoanProgramRepository exposes read access to the (immutable, process-wide)
// loan program catalog.
type LoanProgramRepository interface {
	GetByID(ctx context.Context, id string) (*LoanProgram, error)
	List(ctx context.Context) ([]LoanProgram, error)
}

// StructureDealRepository persists structuring outputs for later retrieval
// (e.g. by a credit memo renderer or a reviewer UI, both out of scope here).
type StructureDealRepository interface {
	Save(ctx context.Context, dealID string, output *StructureDealOutput) error
	Get(ctx context.Context, dealID string) (*StructureDealOutput, error)
}

// RateSource is the pluggable capability that looks up a base rate for a
// given index. Implementations may cache; every call is treated as possibly
// expensive by the rules engine.
type RateSource interface {
	GetBaseRate(ctx context.Context, kind BaseRateKind) (float64, error)
}

// NarrativeGenerator is the pluggable prose/JSON generation capability used
// by the narrative enhancer and the compliance narrative review. The schema
// contract is validated by the caller, never trusted blindly.
type NarrativeGenerator interface {
	GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) ([]byte, error)
}

// AuditLogger records access/decision events for compliance trails. Out of
// scope here, but the port is declared so an implementation can be
// injected without this core depending on a concrete backend.
type AuditLogger interface {
	LogEvent(ctx context.Context, event AuditEvent) error
}

// AuditEvent is a single audit trail entry.
type AuditEvent struct {
	DealID    string
	Action    string
	Actor     string
	Timestamp int64
	Success   bool
}
