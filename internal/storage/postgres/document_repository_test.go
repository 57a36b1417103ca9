package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huuhoait/credit-structuring-core/domain"
)

// These tests cover the row<->domain mapping only: a live Postgres
// connection is an integration concern outside this module's scope.

func TestDocumentRowRoundTrip(t *testing.T) {
	year := 2025
	doc := &domain.Document{
		ID:       "doc-1",
		DealID:   "deal-1",
		DocType:  domain.DocForm1120,
		FileName: "1120.pdf",
		FileSize: 1024,
		Status:   domain.DocumentStatusExtracted,
		Year:     &year,
		OCR: []domain.KVPair{
			{Key: "net_income", Value: "125000", Confidence: 0.97, Page: 1},
		},
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
	}

	row, err := documentToRow(doc)
	require.NoError(t, err)
	assert.Equal(t, "doc-1", row.ID)
	assert.Equal(t, "FORM_1120", row.DocType)
	assert.NotEmpty(t, row.OCR)

	back, err := rowToDocument(*row)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, back.ID)
	assert.Equal(t, doc.DocType, back.DocType)
	assert.Equal(t, doc.Status, back.Status)
	require.Len(t, back.OCR, 1)
	assert.Equal(t, "net_income", back.OCR[0].Key)
	assert.Equal(t, 0.97, back.OCR[0].Confidence)
	require.NotNil(t, back.Year)
	assert.Equal(t, 2025, *back.Year)
}

func TestDocumentRowRoundTrip_NoOCR(t *testing.T) {
	doc := &domain.Document{ID: "doc-2", DealID: "deal-1", DocType: domain.DocOther, Status: domain.DocumentStatusUploaded}

	row, err := documentToRow(doc)
	require.NoError(t, err)

	back, err := rowToDocument(*row)
	require.NoError(t, err)
	assert.Empty(t, back.OCR)
}
