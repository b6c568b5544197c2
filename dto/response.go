package dto

import "errors"

// Sentinel errors surfaced to the HTTP layer.
var (
	ErrNoFile            = errors.New("no statement file provided")
	ErrUnsupportedFormat = errors.New("unsupported statement file format")
)

// ErrorResponse represents a structured error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// AnalysisResponse is the full result of one analysis request: the
// normalized statement, the computed limits and their derivation trail, and
// any feed-side company metadata. Currency is presentation metadata echoed
// back to the caller; the engine never reads it.
type AnalysisResponse struct {
	AnalysisID  string             `json:"analysis_id"`
	Statement   FinancialStatement `json:"statement"`
	Limits      CreditLimitResult  `json:"limits"`
	Company     *CompanyMeta       `json:"company,omitempty"`
	Currency    string             `json:"currency"`
	ProcessedAt string             `json:"processed_at"`
}
