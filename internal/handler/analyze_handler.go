package handler

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"lexora/internal/domain"
	"lexora/internal/export"
	"lexora/internal/service"
)

// AnalyzeHandler handles document analysis endpoints.
type AnalyzeHandler struct {
	analysis *service.AnalysisService
}

// NewAnalyzeHandler creates a new AnalyzeHandler.
func NewAnalyzeHandler(analysis *service.AnalysisService) *AnalyzeHandler {
	return &AnalyzeHandler{analysis: analysis}
}

// AnalyzeRequest is the body for POST /api/v1/analyze.
type AnalyzeRequest struct {
	FilePath string                  `json:"file_path" binding:"required"`
	Options  *domain.AnalysisOptions `json:"options"`
}

// BatchRequest is the body for POST /api/v1/analyze/batch.
type BatchRequest struct {
	FilePaths []string                `json:"file_paths" binding:"required,min=1"`
	Options   *domain.AnalysisOptions `json:"options"`
}

// resolveOptions fills in defaults and validates the summary style.
func resolveOptions(opts *domain.AnalysisOptions) (domain.AnalysisOptions, error) {
	if opts == nil {
		return domain.DefaultAnalysisOptions(), nil
	}
	resolved := *opts
	if resolved.SummaryStyle == "" {
		resolved.SummaryStyle = domain.SummaryComprehensive
	}
	if !domain.IsValidSummaryStyle(resolved.SummaryStyle) {
		return domain.AnalysisOptions{}, domain.ErrInvalidSummaryStyle
	}
	for _, category := range resolved.ClauseCategories {
		if !domain.IsValidClauseCategory(category) {
			return domain.AnalysisOptions{}, domain.ErrInvalidCategory
		}
	}
	return resolved, nil
}

// Analyze handles POST /api/v1/analyze. The optional format query parameter
// (csv, xlsx) returns the clause report as a file attachment instead of the
// JSON envelope.
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	opts, err := resolveOptions(req.Options)
	if err != nil {
		HandleError(c, err)
		return
	}

	result := h.analysis.ProcessDocument(c.Request.Context(), req.FilePath, opts)

	switch c.Query("format") {
	case "csv":
		h.respondCSV(c, result)
	case "xlsx":
		h.respondXLSX(c, result)
	default:
		RespondOK(c, export.NewEnvelope(result))
	}
}

// AnalyzeBatch handles POST /api/v1/analyze/batch.
func (h *AnalyzeHandler) AnalyzeBatch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	opts, err := resolveOptions(req.Options)
	if err != nil {
		HandleError(c, err)
		return
	}

	results := h.analysis.ProcessBatch(c.Request.Context(), req.FilePaths, opts)

	envelopes := make([]*export.ResultEnvelope, len(results))
	for i, result := range results {
		envelopes[i] = export.NewEnvelope(result)
	}
	RespondOK(c, envelopes)
}

// Categories handles GET /api/v1/categories.
func (h *AnalyzeHandler) Categories(c *gin.Context) {
	type categoryInfo struct {
		Category    domain.ClauseCategory `json:"category"`
		Description string                `json:"description"`
		Color       string                `json:"color"`
	}
	categories := make([]categoryInfo, 0, len(domain.ClauseCategories))
	for _, category := range domain.AllClauseCategories() {
		info := domain.ClauseCategories[category]
		categories = append(categories, categoryInfo{
			Category:    category,
			Description: info.Description,
			Color:       info.Color,
		})
	}
	RespondOK(c, categories)
}

func (h *AnalyzeHandler) respondCSV(c *gin.Context, result *domain.PipelineResult) {
	var buf bytes.Buffer
	buf.Write(export.BOM)
	w := export.NewWriter(&buf)
	if err := w.WriteHeader(); err != nil {
		HandleError(c, err)
		return
	}
	if err := w.WriteClauses(result.Clauses); err != nil {
		HandleError(c, err)
		return
	}
	w.Flush()
	if err := w.Error(); err != nil {
		HandleError(c, err)
		return
	}

	filename := export.BuildFilename(result.FileName, "csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *AnalyzeHandler) respondXLSX(c *gin.Context, result *domain.PipelineResult) {
	var buf bytes.Buffer
	if err := export.WriteWorkbook(&buf, result); err != nil {
		HandleError(c, err)
		return
	}

	filename := export.BuildFilename(result.FileName, "xlsx")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
