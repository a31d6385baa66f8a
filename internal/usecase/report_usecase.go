package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vkozyrev/fintrack/internal/domain"
)

// ReportUseCase dispatches report generation through an enumeration-keyed
// registry of generators and archives the output to a text file.
type ReportUseCase struct {
	ledger     *LedgerUseCase
	generators map[domain.ReportKind]domain.ReportGenerator
	outDir     string
}

// NewReportUseCase creates a ReportUseCase with the built-in generators.
func NewReportUseCase(ledger *LedgerUseCase, outDir string) *ReportUseCase {
	generators := make(map[domain.ReportKind]domain.ReportGenerator)
	for _, g := range []domain.ReportGenerator{domain.SpendingReport{}, domain.IncomeReport{}} {
		generators[g.Kind()] = g
	}

	return &ReportUseCase{
		ledger:     ledger,
		generators: generators,
		outDir:     outDir,
	}
}

// GenerateReportInput represents input for generating a report.
type GenerateReportInput struct {
	AccountID string
	Kind      domain.ReportKind
	Period    domain.Period
}

// GeneratedReport is the result of a report request.
type GeneratedReport struct {
	Kind domain.ReportKind
	Text string
	Path string
}

// GenerateReport resolves the generator for the requested kind, runs it over
// the account's transactions for the period, and writes the text to a file.
func (uc *ReportUseCase) GenerateReport(ctx context.Context, input GenerateReportInput) (*GeneratedReport, error) {
	generator, ok := uc.generators[input.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownReportKind, input.Kind)
	}

	txs, err := uc.ledger.History(input.AccountID, input.Period)
	if err != nil {
		return nil, err
	}

	text := generator.Generate(txs, input.Period)

	label := "all_time"
	if !input.Period.IsZero() {
		label = input.Period.Start.Format("2006-01")
	}

	filename := fmt.Sprintf("%s_report_%s.txt", input.Kind, label)
	path := filepath.Join(uc.outDir, filename)

	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write report file: %w", err)
	}

	return &GeneratedReport{Kind: input.Kind, Text: text, Path: path}, nil
}

// Kinds lists the available report kinds.
func (uc *ReportUseCase) Kinds() []domain.ReportKind {
	kinds := make([]domain.ReportKind, 0, len(uc.generators))
	for k := range uc.generators {
		kinds = append(kinds, k)
	}

	return kinds
}
