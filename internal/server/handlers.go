package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saulfrancisco-ruizacevedo/go-neograph/internal/logger"
	"github.com/saulfrancisco-ruizacevedo/go-neograph/models"
)

// GraphService is the part of neograph.Analyzer served over HTTP.
type GraphService interface {
	GraphForAccount(ctx context.Context, address string) (*models.Graph, error)
	GraphForAccounts(ctx context.Context, addressListJSON string) (*models.Graph, error)
	FindAccount(ctx context.Context, address string) (*models.Node, error)
	DegreeCentrality(ctx context.Context, category string) ([]models.CentralityScore, error)
	BetweennessCentrality(ctx context.Context) ([]models.CentralityScore, error)
}

type GraphHandler struct {
	svc GraphService
	log *logger.Logger
}

func NewGraphHandler(svc GraphService, log *logger.Logger) *GraphHandler {
	return &GraphHandler{svc: svc, log: log}
}

func (h *GraphHandler) HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// GET /api/graph/account/:address
func (h *GraphHandler) GetAccountGraph(c *gin.Context) {
	graph, err := h.svc.GraphForAccount(c.Request.Context(), c.Param("address"))
	if err != nil {
		h.fail(c, err)
		return
	}
	writeJSON(c, graph)
}

// GET /api/graph/accounts?accounts=["0x..","0x.."]
// POST /api/graph/accounts with the JSON array as body
func (h *GraphHandler) GetAccountsGraph(c *gin.Context) {
	list := c.Query("accounts")
	if c.Request.Method == http.MethodPost {
		body, err := c.GetRawData()
		if err != nil {
			writeError(c, http.StatusBadRequest, "invalid_request", err)
			return
		}
		list = string(body)
	}

	graph, err := h.svc.GraphForAccounts(c.Request.Context(), list)
	if err != nil {
		h.fail(c, err)
		return
	}
	writeJSON(c, graph)
}

// GET /api/accounts/:address
func (h *GraphHandler) GetAccount(c *gin.Context) {
	node, err := h.svc.FindAccount(c.Request.Context(), c.Param("address"))
	if err != nil {
		h.fail(c, err)
		return
	}
	writeJSON(c, node)
}

// GET /api/centrality/degree/:category
func (h *GraphHandler) GetDegreeCentrality(c *gin.Context) {
	scores, err := h.svc.DegreeCentrality(c.Request.Context(), c.Param("category"))
	if err != nil {
		h.fail(c, err)
		return
	}
	writeJSON(c, gin.H{"scores": scores})
}

// GET /api/centrality/betweenness
func (h *GraphHandler) GetBetweennessCentrality(c *gin.Context) {
	scores, err := h.svc.BetweennessCentrality(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	writeJSON(c, gin.H{"scores": scores})
}

func (h *GraphHandler) fail(c *gin.Context, err error) {
	f := classify(err)
	if f.status >= http.StatusInternalServerError {
		h.log.Error("request failed", "path", c.FullPath(), "error", err)
	}
	writeError(c, f.status, f.code, err)
}
