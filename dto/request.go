package dto

import (
	"errors"
	"mime/multipart"
)

// StatementUploadRequest carries an uploaded statement file (PDF, image,
// CSV or XLSX) plus optional presentation metadata.
type StatementUploadRequest struct {
	File     *multipart.FileHeader `form:"file" binding:"required"`
	Password string                `form:"password"`
	Currency string                `form:"currency"`
}

// Validate performs basic validation on the request.
func (r *StatementUploadRequest) Validate() error {
	if r.File == nil {
		return ErrNoFile
	}
	if r.File.Size == 0 {
		return errors.New("uploaded file is empty")
	}
	return nil
}

// RowsRequest carries pre-extracted tabular data: an ordered sequence of
// rows, each an ordered sequence of cells. No schema is assumed.
type RowsRequest struct {
	Rows     [][]string `json:"rows" binding:"required"`
	Currency string     `json:"currency"`
}

// LimitsRequest carries an already-normalized statement for a standalone
// limit computation. Missing items are filled with defaulted zero entries
// before the engine runs.
type LimitsRequest struct {
	Statement FinancialStatement `json:"statement" binding:"required"`
	Currency  string             `json:"currency"`
}
