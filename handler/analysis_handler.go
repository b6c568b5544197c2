package handler

import (
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/credlens/underwriter/dto"
	"github.com/credlens/underwriter/service"
	"github.com/credlens/underwriter/underwriting"
	"github.com/credlens/underwriter/utils"
)

type AnalysisHandler struct {
	statementService *service.StatementService
	limitConfig      underwriting.Config
}

func NewAnalysisHandler(statementService *service.StatementService, limitConfig underwriting.Config) *AnalysisHandler {
	return &AnalysisHandler{
		statementService: statementService,
		limitConfig:      limitConfig,
	}
}

// AnalyzeDocument handles POST /statements/document: a free-text statement
// upload (PDF or image), optionally password protected.
func (h *AnalysisHandler) AnalyzeDocument(c *gin.Context) {
	var req dto.StatementUploadRequest
	if err := c.ShouldBind(&req); err != nil {
		h.sendError(c, http.StatusBadRequest, "invalid document upload", err)
		return
	}
	if err := req.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	data, err := readUpload(req.File)
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "failed to read uploaded file", err)
		return
	}

	log.Printf("analyzing document %s (%d bytes)", req.File.Filename, len(data))
	stmt := h.statementService.AnalyzeDocument(c.Request.Context(), data, req.File.Filename, req.Password)
	h.respond(c, stmt, nil, req.Currency)
}

// AnalyzeTable handles POST /statements/table: a tabular statement upload
// (CSV or XLSX).
func (h *AnalysisHandler) AnalyzeTable(c *gin.Context) {
	var req dto.StatementUploadRequest
	if err := c.ShouldBind(&req); err != nil {
		h.sendError(c, http.StatusBadRequest, "invalid table upload", err)
		return
	}
	if err := req.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	data, err := readUpload(req.File)
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "failed to read uploaded file", err)
		return
	}

	log.Printf("analyzing table %s (%d bytes)", req.File.Filename, len(data))
	stmt := h.statementService.AnalyzeTable(data, req.File.Filename)
	h.respond(c, stmt, nil, req.Currency)
}

// AnalyzeRows handles POST /statements/rows: pre-extracted rows in the
// request body.
func (h *AnalysisHandler) AnalyzeRows(c *gin.Context) {
	var req dto.RowsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendError(c, http.StatusBadRequest, "invalid rows payload", err)
		return
	}

	stmt := h.statementService.AnalyzeRows(req.Rows)
	h.respond(c, stmt, nil, req.Currency)
}

// AnalyzeFeed handles GET /statements/feed/:symbol: statement retrieval from
// the market-data feed.
func (h *AnalysisHandler) AnalyzeFeed(c *gin.Context) {
	symbol := c.Param("symbol")
	if symbol == "" {
		h.sendError(c, http.StatusBadRequest, "ticker symbol is required", nil)
		return
	}

	log.Printf("analyzing feed statement for %s", symbol)
	stmt, meta := h.statementService.AnalyzeFeed(c.Request.Context(), symbol)

	currency := c.Query("currency")
	if currency == "" && meta != nil {
		currency = meta.Currency
	}
	h.respond(c, stmt, meta, currency)
}

// ComputeLimits handles POST /limits: a standalone limit computation on a
// caller-supplied statement.
func (h *AnalysisHandler) ComputeLimits(c *gin.Context) {
	var req dto.LimitsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendError(c, http.StatusBadRequest, "invalid statement payload", err)
		return
	}

	stmt := utils.CompleteStatement(req.Statement)
	h.respond(c, stmt, nil, req.Currency)
}

func (h *AnalysisHandler) respond(c *gin.Context, stmt dto.FinancialStatement, meta *dto.CompanyMeta, currency string) {
	if currency == "" {
		currency = "INR"
	}

	c.JSON(http.StatusOK, dto.AnalysisResponse{
		AnalysisID:  uuid.NewString(),
		Statement:   stmt,
		Limits:      underwriting.ComputeLimits(stmt, h.limitConfig),
		Company:     meta,
		Currency:    currency,
		ProcessedAt: time.Now().Format(time.RFC3339),
	})
}

// sendError sends a structured error response
func (h *AnalysisHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "ANALYSIS_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}

func readUpload(fileHeader *multipart.FileHeader) ([]byte, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
