package handler

import (
	"github.com/corebank/backend/internal/application/transfer"
	domaintransfer "github.com/corebank/backend/internal/domain/transfer"
	"github.com/corebank/backend/internal/infrastructure/logger"
	"github.com/corebank/backend/internal/interfaces/http/dto"
	"github.com/corebank/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TransferHandler handles bulk transfer submission and account queries
type TransferHandler struct {
	BaseHandler
	bulkService  *transfer.BulkTransferService
	queryService *transfer.AccountQueryService
}

// NewTransferHandler creates a new TransferHandler
func NewTransferHandler(
	bulkService *transfer.BulkTransferService,
	queryService *transfer.AccountQueryService,
) *TransferHandler {
	return &TransferHandler{
		bulkService:  bulkService,
		queryService: queryService,
	}
}

// RegisterRoutes registers transfer routes on the given router group
func (h *TransferHandler) RegisterRoutes(rg *gin.RouterGroup) {
	transfers := rg.Group("/transfers")
	{
		transfers.POST("/bulk", h.CreateBulkTransfer)
	}

	accounts := rg.Group("/accounts")
	{
		accounts.GET("/:id", h.GetAccount)
		accounts.GET("/:id/transfers", h.ListTransfers)
	}
}

// CreateBulkTransfer submits a batch of credit transfers drawn from one
// source account. The whole batch settles atomically: either the account is
// debited once for the batch total and every transfer record is persisted,
// or nothing changes.
func (h *TransferHandler) CreateBulkTransfer(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		h.Error(c, 400, dto.ErrCodeInvalidJSON, "Request body must be valid JSON")
		return
	}

	cmd := domaintransfer.NewBulkTransferCommand(raw)

	logger.GetGinLogger(c).Info("Bulk transfer requested",
		zap.String("organization_name", cmd.OrganizationName),
		zap.Int("credit_transfer_count", len(cmd.CreditTransfers)),
	)

	if err := h.bulkService.Execute(c.Request.Context(), cmd); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, nil)
}

// GetAccount returns one account with its current balance
func (h *TransferHandler) GetAccount(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	accountID, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "Invalid account ID")
		return
	}

	account, err := h.queryService.GetAccount(c.Request.Context(), accountID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, account)
}

// ListTransfers returns an account's transfer records in creation order
func (h *TransferHandler) ListTransfers(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	accountID, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "Invalid account ID")
		return
	}

	records, err := h.queryService.ListTransfers(c.Request.Context(), accountID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, records)
}
