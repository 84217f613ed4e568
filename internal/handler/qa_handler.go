package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lexora/internal/domain"
	"lexora/internal/port"
	"lexora/internal/service"
)

// QAHandler handles question answering and document search endpoints.
type QAHandler struct {
	qa        *service.QAService
	extractor port.TextExtractor
}

// NewQAHandler creates a new QAHandler.
func NewQAHandler(qa *service.QAService, extractor port.TextExtractor) *QAHandler {
	return &QAHandler{qa: qa, extractor: extractor}
}

// QuestionRequest is the body for POST /api/v1/question. Clauses from a
// previous analyze call can be passed back in to focus the answer.
type QuestionRequest struct {
	FilePath string          `json:"file_path" binding:"required"`
	Question string          `json:"question" binding:"required"`
	Clauses  []domain.Clause `json:"clauses"`
}

// SearchRequest is the body for POST /api/v1/search.
type SearchRequest struct {
	FilePath string `json:"file_path" binding:"required"`
	Query    string `json:"query" binding:"required"`
}

// Question handles POST /api/v1/question.
func (h *QAHandler) Question(c *gin.Context) {
	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	doc, err := h.extractDocument(req.FilePath)
	if err != nil {
		HandleError(c, err)
		return
	}

	record, err := h.qa.AnswerQuestion(c.Request.Context(), doc, req.Clauses, req.Question)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, record)
}

// Search handles POST /api/v1/search.
func (h *QAHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	doc, err := h.extractDocument(req.FilePath)
	if err != nil {
		HandleError(c, err)
		return
	}

	hits, err := h.qa.SearchDocument(c.Request.Context(), doc, req.Query)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, hits)
}

func (h *QAHandler) extractDocument(path string) (*domain.Document, error) {
	extraction, err := h.extractor.Extract(path)
	if err != nil {
		return nil, err
	}
	return &domain.Document{
		Text:       extraction.Text,
		Length:     len(extraction.Text),
		PageCount:  extraction.PageCount,
		Confidence: extraction.Confidence,
	}, nil
}
