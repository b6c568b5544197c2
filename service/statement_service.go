package service

import (
	"context"
	"fmt"
	"image"
	"log"
	"strings"

	"github.com/credlens/underwriter/dto"
	"github.com/credlens/underwriter/utils"
)

// OCRClient is the OCR fallback for documents without a text layer.
type OCRClient interface {
	ExtractTextFromImage(img image.Image) (string, error)
}

// FeedRetriever fetches reporting periods and company metadata for a ticker.
type FeedRetriever interface {
	FetchStatements(ctx context.Context, symbol string) ([]dto.FeedPeriod, *dto.CompanyMeta, error)
}

// StatementService orchestrates the source adapters: it turns raw uploads
// and feed lookups into normalized financial statements. Extraction never
// hard-fails; an unreadable source produces a fully defaulted statement with
// the cause attached as an issue.
type StatementService struct {
	pdfProcessor PDFProcessor
	rowExtractor RowExtractor
	ocrClient    OCRClient
	feedClient   FeedRetriever
}

func NewStatementService(
	pdfProcessor PDFProcessor,
	rowExtractor RowExtractor,
	ocrClient OCRClient,
	feedClient FeedRetriever,
) *StatementService {
	return &StatementService{
		pdfProcessor: pdfProcessor,
		rowExtractor: rowExtractor,
		ocrClient:    ocrClient,
		feedClient:   feedClient,
	}
}

// AnalyzeDocument extracts a statement from a free-text document. PDFs go
// through the text layer first; when that yields nothing usable the page
// images are OCRed. Unknown extensions are treated as plain text.
func (s *StatementService) AnalyzeDocument(ctx context.Context, data []byte, filename, password string) dto.FinancialStatement {
	var text string
	var issues []string

	if strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		extracted, err := s.pdfProcessor.ExtractText(data, password)
		if err != nil {
			log.Printf("pdf text extraction failed for %s: %v", filename, err)
			issues = append(issues, fmt.Sprintf("pdf text extraction failed: %v", err))
		} else {
			text = extracted
		}

		if len(strings.TrimSpace(text)) < 20 {
			log.Printf("document %s has little or no text layer, attempting OCR", filename)
			ocrText, ocrIssues := s.ocrScannedDocument(ctx, data, password)
			issues = append(issues, ocrIssues...)
			if strings.TrimSpace(ocrText) != "" {
				text = ocrText
			}
		}
	} else {
		text = string(data)
	}

	stmt := utils.ParseStatementText(text)
	stmt.Issues = append(issues, stmt.Issues...)
	return stmt
}

// ocrScannedDocument extracts page images and OCRs each one, aggregating the
// recognized text in page order.
func (s *StatementService) ocrScannedDocument(ctx context.Context, data []byte, password string) (string, []string) {
	images, err := s.pdfProcessor.ExtractImages(data, password)
	if err != nil || len(images) == 0 {
		return "", []string{"document has no extractable text or page images"}
	}

	var combined strings.Builder
	var pages int
	for _, img := range images {
		if ctx.Err() != nil {
			return combined.String(), []string{fmt.Sprintf("ocr aborted: %v", ctx.Err())}
		}

		pageText, err := s.ocrClient.ExtractTextFromImage(img)
		if err != nil {
			log.Printf("ocr failed for a page: %v", err)
			continue
		}
		combined.WriteString(pageText)
		combined.WriteString("\n")
		pages++
	}

	if pages == 0 {
		return "", []string{"ocr produced no text from scanned document"}
	}
	return combined.String(), nil
}

// AnalyzeTable extracts a statement from an uploaded tabular file (CSV or
// XLSX).
func (s *StatementService) AnalyzeTable(data []byte, filename string) dto.FinancialStatement {
	rows, err := s.rowExtractor.ExtractRows(data, filename)
	if err != nil {
		log.Printf("row extraction failed for %s: %v", filename, err)
		stmt := utils.ParseStatementRows(nil)
		stmt.Issues = []string{fmt.Sprintf("table unreadable: %v", err)}
		return stmt
	}
	return utils.ParseStatementRows(rows)
}

// AnalyzeRows extracts a statement from rows the collaborator has already
// extracted.
func (s *StatementService) AnalyzeRows(rows [][]string) dto.FinancialStatement {
	return utils.ParseStatementRows(rows)
}

// AnalyzeFeed retrieves the reporting periods for a symbol and extracts a
// statement from the most recent one. A failed or empty feed yields a
// defaulted statement and nil metadata.
func (s *StatementService) AnalyzeFeed(ctx context.Context, symbol string) (dto.FinancialStatement, *dto.CompanyMeta) {
	periods, meta, err := s.feedClient.FetchStatements(ctx, symbol)
	if err != nil {
		log.Printf("feed lookup failed for %s: %v", symbol, err)
		stmt := utils.ParseStatementFeed(nil)
		stmt.Issues = []string{fmt.Sprintf("feed unavailable: %v", err)}
		return stmt, nil
	}
	return utils.ParseStatementFeed(periods), meta
}
