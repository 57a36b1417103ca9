// corectl is a one-shot demonstration harness for the structuring core. It
// is not a server: it loads a single deal fixture, runs it through
// verification and structuring, and writes the resulting credit memo to
// disk. A real integration wires the same components behind its own
// document intake and deal storage.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/huuhoait/credit-structuring-core/domain"
	"github.com/huuhoait/credit-structuring-core/internal/catalog"
	"github.com/huuhoait/credit-structuring-core/internal/config"
	"github.com/huuhoait/credit-structuring-core/internal/creditmemo"
	"github.com/huuhoait/credit-structuring-core/internal/narrative"
	"github.com/huuhoait/credit-structuring-core/internal/rates"
	"github.com/huuhoait/credit-structuring-core/internal/storage/postgres"
	"github.com/huuhoait/credit-structuring-core/internal/structuring"
	"github.com/huuhoait/credit-structuring-core/internal/telemetry"
	"github.com/huuhoait/credit-structuring-core/internal/verification"
)

// dealFixture is the on-disk shape of the sample deal corectl runs. It is a
// thin JSON envelope around domain.StructureDealInput's constituent fields
// plus one optional document to exercise the verification core.
type dealFixture struct {
	ProgramID           string           `json:"program_id"`
	BorrowerName        string           `json:"borrower_name"`
	LoanPurpose         string           `json:"loan_purpose"`
	RequestedAmount     float64          `json:"requested_amount"`
	RequestedTermMonths int              `json:"requested_term_months"`
	PropertyValue       float64          `json:"property_value"`
	CollateralValue     float64          `json:"collateral_value"`
	StateAbbr           string           `json:"state_abbr"`
	AnalystName         string           `json:"analyst_name"`
	Document            *fixtureDocument `json:"document"`
	Analysis            domain.Analysis  `json:"analysis"`
}

type fixtureDocument struct {
	DocType        string          `json:"doc_type"`
	FileName       string          `json:"file_name"`
	StructuredData map[string]any  `json:"structured_data"`
	OCR            []domain.KVPair `json:"ocr"`
}

func main() {
	fixturePath := flag.String("fixture", "cmd/corectl/testdata/sample_deal.json", "path to the deal fixture JSON")
	configPath := flag.String("config", "", "path to a YAML config file (optional)")
	outPath := flag.String("out", "credit_memo.docx", "path to write the generated credit memo")
	flag.Parse()

	if err := run(*fixturePath, *configPath, *outPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(fixturePath, configPath, outPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := telemetry.NewLogger(cfg.Logging.Level, cfg.Environment)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	fixture, err := loadFixture(fixturePath)
	if err != nil {
		return fmt.Errorf("failed to load deal fixture: %w", err)
	}

	programs := catalog.New()
	program, ok := programs.Get(fixture.ProgramID)
	if !ok {
		return fmt.Errorf("unknown program id %q", fixture.ProgramID)
	}

	var verificationResult domain.VerificationResult
	if fixture.Document != nil {
		verificationResult = verification.Verify(domain.VerificationRequest{
			DocType:        domain.DocType(fixture.Document.DocType),
			StructuredData: fixture.Document.StructuredData,
			OCR:            fixture.Document.OCR,
		})
		logger.Info("document verified",
			zap.String("file_name", fixture.Document.FileName),
			zap.Int("comparisons", len(verificationResult.Comparisons)),
			zap.Int("math_checks", len(verificationResult.MathChecks)),
		)
	}

	rateSource := rates.New(logger, rates.Config{
		FeedURL:       cfg.RateFeed.URL,
		RedisAddr:     cfg.Redis.Addr,
		RedisPassword: cfg.Redis.Password,
		RedisDB:       cfg.Redis.DB,
		Timeout:       cfg.RateFeed.Timeout,
	})
	generator := narrative.New(logger, cfg.Narrative.Endpoint, cfg.Narrative.APIKey, cfg.Narrative.Timeout)
	orchestrator := structuring.New(logger, rateSource, generator)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	input := domain.StructureDealInput{
		Analysis:            fixture.Analysis,
		Program:             program,
		BorrowerName:        fixture.BorrowerName,
		LoanPurpose:         &fixture.LoanPurpose,
		RequestedAmount:     fixture.RequestedAmount,
		RequestedTermMonths: &fixture.RequestedTermMonths,
		PropertyValue:       &fixture.PropertyValue,
		CollateralValue:     &fixture.CollateralValue,
		StateAbbr:           &fixture.StateAbbr,
	}

	output, err := orchestrator.StructureDeal(ctx, input)
	if err != nil {
		return fmt.Errorf("structuring failed: %w", err)
	}

	logger.Info("deal structured",
		zap.String("program_id", program.ID),
		zap.String("status", string(output.Status)),
		zap.Float64("approved_amount", output.RulesOutput.ApprovedAmount),
		zap.Int("decline_reasons", len(output.DeclineReasons)),
	)

	dealID := fmt.Sprintf("%s-%d", program.ID, time.Now().Unix())
	if err := persist(ctx, cfg, logger, dealID, output); err != nil {
		logger.Warn("skipping deal persistence", zap.Error(err))
	}

	docx, err := creditmemo.Build(creditmemo.Input{
		BorrowerName:    fixture.BorrowerName,
		RequestedAmount: fixture.RequestedAmount,
		LoanPurpose:     fixture.LoanPurpose,
		AnalystName:     fixture.AnalystName,
		PreparedDate:    time.Now().Format("2006-01-02"),
		Analysis:        fixture.Analysis,
		Structuring:     *output,
		Verification:    verificationResult,
	})
	if err != nil {
		return fmt.Errorf("failed to build credit memo: %w", err)
	}

	if err := os.WriteFile(outPath, docx, 0o644); err != nil {
		return fmt.Errorf("failed to write credit memo: %w", err)
	}

	logger.Info("credit memo written", zap.String("path", outPath), zap.Int("bytes", len(docx)))
	return nil
}

func loadFixture(path string) (*dealFixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fixture dealFixture
	if err := json.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	return &fixture, nil
}

// persist saves the structuring output through the optional Postgres
// adapter. With no database URL configured it returns an error without
// connecting; run logs that error as a warning and carries on, so corectl
// still runs in a bare environment with no durable store.
func persist(ctx context.Context, cfg *config.Config, logger *zap.Logger, dealID string, output *domain.StructureDealOutput) error {
	if cfg.Database.URL == "" {
		return fmt.Errorf("no database configured")
	}

	db, err := postgres.Connect(postgres.Config{
		DSN:             cfg.Database.URL,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogLevel:        cfg.Logging.Level,
	})
	if err != nil {
		return err
	}

	repo := postgres.NewStructureDealRepository(db)
	if err := repo.Save(ctx, dealID, output); err != nil {
		return err
	}

	logger.Info("deal persisted", zap.String("deal_id", dealID))
	return nil
}
