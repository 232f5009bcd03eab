package handlers

import (
	"fmt"
	"log"
	"net/http"

	request "meshguard_api/internal/adapter/http/dto/request"
	response "meshguard_api/internal/adapter/http/dto/response"
	"meshguard_api/internal/domain/entities"
	"meshguard_api/internal/usecase"

	"github.com/gin-gonic/gin"
)

// QuoteHandler handles quote submission, the customer's quote list and the
// admin quote board.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// @Summary      Submit a quote
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        payload  body  request.QuoteRequest  true  "payload"
// @Success      201 {object} response.QuoteResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /quotes [post]
func (h *QuoteHandler) SubmitQuote(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	quote, err := h.usecase.SubmitQuote(c.Request.Context(), actor, usecase.SubmitQuoteInput{
		Width:        payload.Width,
		Height:       payload.Height,
		WindowCount:  payload.ResolveWindowCount(),
		MeshType:     payload.MeshType,
		MaterialType: payload.MaterialType,
		Location:     payload.Location,
		Notes:        payload.Notes,
	})
	if err != nil {
		writeError(c, "quote", err)
		return
	}
	log.Printf("[quote][handler] submitted quote_id=%s total=%.2f", quote.ID, quote.TotalPrice)

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

// @Summary      List the caller's quotes
// @Tags         quotes
// @Produce      json
// @Security     Bearer
// @Success      200 {array} response.QuoteResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /quotes [get]
func (h *QuoteHandler) ListMyQuotes(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	quotes, err := h.usecase.ListMyQuotes(c.Request.Context(), actor)
	if err != nil {
		writeError(c, "quote", err)
		return
	}

	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

// @Summary      Get a quote
// @Tags         quotes
// @Produce      json
// @Security     Bearer
// @Param        quote_id  path  string  true  "quote id"
// @Success      200 {object} response.QuoteResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /quotes/{quote_id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	quote, err := h.usecase.GetQuote(c.Request.Context(), actor, c.Param("quote_id"))
	if err != nil {
		writeError(c, "quote", err)
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// QuotePDF streams the printable quote.
//
// @Summary      Download a quote as PDF
// @Tags         quotes
// @Produce      application/pdf
// @Security     Bearer
// @Param        quote_id  path  string  true  "quote id"
// @Success      200 {file} binary
// @Failure      400 {object} pkg.HTTPError
// @Router       /quotes/{quote_id}/pdf [get]
func (h *QuoteHandler) QuotePDF(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	quoteID := c.Param("quote_id")

	doc, err := h.usecase.RenderQuotePDF(c.Request.Context(), actor, quoteID)
	if err != nil {
		writeError(c, "quote", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="quote-%s.pdf"`, quoteID))
	c.Data(http.StatusOK, "application/pdf", doc)
}

// @Summary      List all quotes with owners (admin)
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Success      200 {array} response.QuoteResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /admin/quotes [get]
func (h *QuoteHandler) ListAllQuotes(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	quotes, err := h.usecase.ListAllQuotes(c.Request.Context(), actor)
	if err != nil {
		writeError(c, "quote", err)
		return
	}

	c.JSON(http.StatusOK, response.FromQuotesWithOwner(quotes))
}

// @Summary      Set quote status (admin)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        quote_id  path  string  true  "quote id"
// @Param        payload  body  request.QuoteStatusRequest  true  "payload"
// @Success      200 {object} response.QuoteResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /admin/quotes/{quote_id}/status [patch]
func (h *QuoteHandler) SetQuoteStatus(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	var payload request.QuoteStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	quote, err := h.usecase.SetQuoteStatus(c.Request.Context(), actor, c.Param("quote_id"), entities.QuoteStatus(payload.ResolveStatus()))
	if err != nil {
		writeError(c, "quote", err)
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteWithOwner(quote))
}
