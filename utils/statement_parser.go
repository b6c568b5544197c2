package utils

import (
	"strings"

	"github.com/credlens/underwriter/dto"
)

// The three statement parsers share one resolution policy and differ only in
// how a source exposes searchable content. Each returns a total statement:
// exactly one entry per canonical item, unresolved items defaulting to zero
// with no error. An unreadable source yields a fully defaulted statement
// with the cause recorded as an issue; callers decide what to do with it.

// ParseStatementText extracts a financial statement from a free-text
// document body using the default same-line locator.
func ParseStatementText(text string) dto.FinancialStatement {
	return ParseStatementTextWith(text, SameLineLocator)
}

// ParseStatementTextWith is ParseStatementText with an explicit locator
// policy.
func ParseStatementTextWith(text string, locate TextLocator) dto.FinancialStatement {
	if strings.TrimSpace(text) == "" {
		return defaultedStatement(dto.SourceDocument, "no extractable text in document")
	}

	stmt := dto.FinancialStatement{Source: dto.SourceDocument}
	for _, alias := range labelAliases {
		entry := defaultedEntry(alias.Item)
		for _, pattern := range alias.Patterns {
			raw, ok := locate(text, pattern)
			if !ok {
				continue
			}
			entry.Amount = CleanNumeric(raw)
			entry.MatchedPattern = pattern
			entry.RawToken = raw
			entry.Defaulted = false
			break
		}
		stmt.Entries = append(stmt.Entries, entry)
	}
	return stmt
}

// ParseStatementRows extracts a financial statement from row-oriented data
// using the default last-numeric-cell picker.
func ParseStatementRows(rows [][]string) dto.FinancialStatement {
	return ParseStatementRowsWith(rows, LastNumericCellPicker)
}

// ParseStatementRowsWith is ParseStatementRows with an explicit value-picker
// policy. A pattern matches when any cell of a row contains it and the row
// carries a numeric-looking cell; the first such row wins.
func ParseStatementRowsWith(rows [][]string, pick RowValuePicker) dto.FinancialStatement {
	if !hasContent(rows) {
		return defaultedStatement(dto.SourceTable, "table contains no data rows")
	}

	stmt := dto.FinancialStatement{Source: dto.SourceTable}
	for _, alias := range labelAliases {
		entry := defaultedEntry(alias.Item)
	patterns:
		for _, pattern := range alias.Patterns {
			for _, row := range rows {
				if !rowMatchesLabel(row, pattern) {
					continue
				}
				raw, ok := pick(row)
				if !ok {
					continue
				}
				entry.Amount = CleanNumeric(raw)
				entry.MatchedPattern = pattern
				entry.RawToken = raw
				entry.Defaulted = false
				break patterns
			}
		}
		stmt.Entries = append(stmt.Entries, entry)
	}
	return stmt
}

// ParseStatementFeed extracts a financial statement from feed reporting
// periods, chronologically ordered most recent first. Only the most recent
// period is read; keys are tried per the feed synonym overlay.
func ParseStatementFeed(periods []dto.FeedPeriod) dto.FinancialStatement {
	if len(periods) == 0 || len(periods[0].Fields) == 0 {
		return defaultedStatement(dto.SourceFeed, "feed returned no reporting periods")
	}

	latest := periods[0]
	stmt := dto.FinancialStatement{Source: dto.SourceFeed}
	for _, alias := range feedAliases {
		entry := defaultedEntry(alias.Item)
		for _, key := range alias.Patterns {
			raw, ok := latest.Fields[key]
			if !ok || strings.TrimSpace(raw) == "" {
				continue
			}
			entry.Amount = CleanNumeric(raw)
			entry.MatchedPattern = key
			entry.RawToken = raw
			entry.Defaulted = false
			break
		}
		stmt.Entries = append(stmt.Entries, entry)
	}
	return stmt
}

// CompleteStatement fills any canonical items missing from an externally
// supplied statement with defaulted zero entries and drops entries for
// unknown items, restoring the totality invariant before computation.
func CompleteStatement(stmt dto.FinancialStatement) dto.FinancialStatement {
	byItem := make(map[dto.CanonicalItem]dto.LineEntry, len(stmt.Entries))
	for _, e := range stmt.Entries {
		if _, seen := byItem[e.Item]; !seen {
			byItem[e.Item] = e
		}
	}

	out := dto.FinancialStatement{Source: stmt.Source, Issues: stmt.Issues}
	for _, item := range dto.CanonicalItems {
		if e, ok := byItem[item]; ok {
			e.Label = item.DisplayName()
			out.Entries = append(out.Entries, e)
			continue
		}
		out.Entries = append(out.Entries, defaultedEntry(item))
	}
	return out
}

func defaultedEntry(item dto.CanonicalItem) dto.LineEntry {
	return dto.LineEntry{
		Item:      item,
		Label:     item.DisplayName(),
		Defaulted: true,
	}
}

func defaultedStatement(source dto.SourceType, issue string) dto.FinancialStatement {
	stmt := dto.FinancialStatement{Source: source, Issues: []string{issue}}
	for _, item := range dto.CanonicalItems {
		stmt.Entries = append(stmt.Entries, defaultedEntry(item))
	}
	return stmt
}

func hasContent(rows [][]string) bool {
	for _, row := range rows {
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				return true
			}
		}
	}
	return false
}
