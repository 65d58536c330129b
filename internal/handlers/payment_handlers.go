package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/hrplatform/freelancer-api/internal/auth"
	"github.com/hrplatform/freelancer-api/internal/helpers"
	"github.com/hrplatform/freelancer-api/internal/types"
)

// PaymentHandler handles payment-related operations
type PaymentHandler struct {
	common     *CommonServices
	authorizer *auth.Authorizer
}

// NewPaymentHandler creates a new PaymentHandler instance
func NewPaymentHandler(common *CommonServices, authorizer *auth.Authorizer) *PaymentHandler {
	return &PaymentHandler{common: common, authorizer: authorizer}
}

// CreatePayment godoc
// @Summary Create a payment
// @Description Open a draft payment under an active contract and compute its amounts
// @Tags payments
// @Accept json
// @Produce json
// @Param request body types.CreatePaymentRequest true "Payment details"
// @Success 201 {object} PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req types.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	detail, err := h.common.payments.Create(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusCreated, toPaymentResponse(detail.Payment, detail.Items, detail.Expenses))
}

// CreateContractPayment godoc
// @Summary Create a payment under a contract
// @Description Open a draft payment for the contract in the path
// @Tags payments
// @Accept json
// @Produce json
// @Param contract_id path string true "Contract ID"
// @Param request body types.CreatePaymentRequest true "Payment details"
// @Success 201 {object} PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /contracts/{contract_id}/payments [post]
func (h *PaymentHandler) CreateContractPayment(c *gin.Context) {
	contractID, ok := parseUUIDParam(c, "contract_id")
	if !ok {
		return
	}

	var body ContractPaymentRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			sendError(c, http.StatusBadRequest, "Invalid request body", err)
			return
		}
	}

	req := types.CreatePaymentRequest{
		ContractID:  contractID.String(),
		PaymentDate: body.PaymentDate,
		PeriodStart: body.PeriodStart,
		PeriodEnd:   body.PeriodEnd,
		BaseAmount:  body.BaseAmount,
		Currency:    body.Currency,
		Notes:       body.Notes,
		Items:       body.Items,
		Expenses:    body.Expenses,
	}

	detail, err := h.common.payments.Create(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusCreated, toPaymentResponse(detail.Payment, detail.Items, detail.Expenses))
}

// ContractPaymentRequest carries the payment fields when the contract is
// named in the path.
type ContractPaymentRequest struct {
	PaymentDate string                      `json:"payment_date,omitempty"`
	PeriodStart string                      `json:"period_start,omitempty"`
	PeriodEnd   string                      `json:"period_end,omitempty"`
	BaseAmount  string                      `json:"base_amount,omitempty"`
	Currency    string                      `json:"currency,omitempty" binding:"omitempty,len=3"`
	Notes       string                      `json:"notes,omitempty"`
	Items       []types.PaymentItemInput    `json:"items,omitempty"`
	Expenses    []types.PaymentExpenseInput `json:"expenses,omitempty"`
}

// GetPayment godoc
// @Summary Get payment by ID
// @Description Get payment details including line items and expenses
// @Tags payments
// @Accept json
// @Produce json
// @Param payment_id path string true "Payment ID"
// @Success 200 {object} PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /payments/{payment_id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, ok := parseUUIDParam(c, "payment_id")
	if !ok {
		return
	}

	detail, err := h.common.payments.Get(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toPaymentResponse(detail.Payment, detail.Items, detail.Expenses))
}

// UpdatePayment godoc
// @Summary Update a draft payment
// @Description Edit dates, base amount, or notes of a draft payment; amounts are recomputed
// @Tags payments
// @Accept json
// @Produce json
// @Param payment_id path string true "Payment ID"
// @Param payment body types.UpdatePaymentRequest true "Fields to change"
// @Success 200 {object} PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /payments/{payment_id} [put]
func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	id, ok := parseUUIDParam(c, "payment_id")
	if !ok {
		return
	}

	var req types.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	detail, err := h.common.payments.Update(c.Request.Context(), id, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toPaymentResponse(detail.Payment, detail.Items, detail.Expenses))
}

// ListPayments godoc
// @Summary List payments
// @Description List payments with pagination, or all payments of one contract
// @Tags payments
// @Accept json
// @Produce json
// @Param contract_id query string false "Filter by contract ID"
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	if raw := c.Query("contract_id"); raw != "" {
		contractID, err := uuid.Parse(raw)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid contract_id", err)
			return
		}
		payments, err := h.common.payments.ListByContract(c.Request.Context(), contractID)
		if err != nil {
			handleServiceError(c, err)
			return
		}
		responses := make([]PaymentResponse, 0, len(payments))
		for _, p := range payments {
			responses = append(responses, toPaymentResponse(p, nil, nil))
		}
		sendList(c, responses, int64(len(responses)))
		return
	}

	params, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	payments, total, err := h.common.payments.List(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	responses := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		responses = append(responses, toPaymentResponse(p, nil, nil))
	}

	sendList(c, responses, total)
}

// AddPaymentItem godoc
// @Summary Add a payment line item
// @Description Add one line to a draft payment and recompute its amounts
// @Tags payments
// @Accept json
// @Produce json
// @Param payment_id path string true "Payment ID"
// @Param request body types.PaymentItemInput true "Line item"
// @Success 200 {object} PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /payments/{payment_id}/items [post]
func (h *PaymentHandler) AddPaymentItem(c *gin.Context) {
	id, ok := parseUUIDParam(c, "payment_id")
	if !ok {
		return
	}

	var input types.PaymentItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	detail, err := h.common.payments.AddItem(c.Request.Context(), id, input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toPaymentResponse(detail.Payment, detail.Items, detail.Expenses))
}

// RemovePaymentItem godoc
// @Summary Remove a payment line item
// @Description Remove one line from a draft payment and recompute its amounts
// @Tags payments
// @Accept json
// @Produce json
// @Param payment_id path string true "Payment ID"
// @Param item_id path string true "Item ID"
// @Success 200 {object} PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /payments/{payment_id}/items/{item_id} [delete]
func (h *PaymentHandler) RemovePaymentItem(c *gin.Context) {
	paymentID, ok := parseUUIDParam(c, "payment_id")
	if !ok {
		return
	}
	itemID, ok := parseUUIDParam(c, "item_id")
	if !ok {
		return
	}

	detail, err := h.common.payments.RemoveItem(c.Request.Context(), paymentID, itemID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toPaymentResponse(detail.Payment, detail.Items, detail.Expenses))
}

// AddPaymentExpense godoc
// @Summary Add a payment expense
// @Description Add one reimbursable expense to a draft payment
// @Tags payments
// @Accept json
// @Produce json
// @Param payment_id path string true "Payment ID"
// @Param request body types.PaymentExpenseInput true "Expense"
// @Success 200 {object} PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /payments/{payment_id}/expenses [post]
func (h *PaymentHandler) AddPaymentExpense(c *gin.Context) {
	id, ok := parseUUIDParam(c, "payment_id")
	if !ok {
		return
	}

	var input types.PaymentExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	detail, err := h.common.payments.AddExpense(c.Request.Context(), id, input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toPaymentResponse(detail.Payment, detail.Items, detail.Expenses))
}

// SetExpenseApproval godoc
// @Summary Approve or reject an expense
// @Description Set the approval flag on one expense and recompute the payment
// @Tags payments
// @Accept json
// @Produce json
// @Param payment_id path string true "Payment ID"
// @Param expense_id path string true "Expense ID"
// @Param request body ExpenseApprovalRequest true "Approval flag"
// @Success 200 {object} PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /payments/{payment_id}/expenses/{expense_id}/approval [put]
func (h *PaymentHandler) SetExpenseApproval(c *gin.Context) {
	paymentID, ok := parseUUIDParam(c, "payment_id")
	if !ok {
		return
	}
	expenseID, ok := parseUUIDParam(c, "expense_id")
	if !ok {
		return
	}

	var req ExpenseApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	detail, err := h.common.payments.SetExpenseApproval(c.Request.Context(), paymentID, expenseID, req.Approved)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toPaymentResponse(detail.Payment, detail.Items, detail.Expenses))
}

// ExpenseApprovalRequest sets the approval flag on one expense.
type ExpenseApprovalRequest struct {
	Approved bool `json:"approved"`
}

// PreviewPayment godoc
// @Summary Preview payment amounts
// @Description Compute the tax breakdown for a payment without persisting anything
// @Tags payments
// @Accept json
// @Produce json
// @Param payment_id path string true "Payment ID"
// @Success 200 {object} types.PaymentPreview
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /payments/{payment_id}/preview [get]
func (h *PaymentHandler) PreviewPayment(c *gin.Context) {
	id, ok := parseUUIDParam(c, "payment_id")
	if !ok {
		return
	}

	preview, err := h.common.payments.Preview(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, preview)
}

// SubmitPayment godoc
// @Summary Submit payment
// @Description Move a draft payment to pending after recomputing its amounts
// @Tags payments
// @Accept json
// @Produce json
// @Param payment_id path string true "Payment ID"
// @Success 200 {object} PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /payments/{payment_id}/submit [post]
func (h *PaymentHandler) SubmitPayment(c *gin.Context) {
	id, ok := parseUUIDParam(c, "payment_id")
	if !ok {
		return
	}

	detail, err := h.common.payments.Submit(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toPaymentResponse(detail.Payment, detail.Items, detail.Expenses))
}

// ApprovePayment godoc
// @Summary Approve payment
// @Description Approve a pending payment after verifying its stored amounts
// @Tags payments
// @Accept json
// @Produce json
// @Param payment_id path string true "Payment ID"
// @Param request body types.ApprovePaymentRequest true "Approval details"
// @Success 200 {object} PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /payments/{payment_id}/approve [post]
func (h *PaymentHandler) ApprovePayment(c *gin.Context) {
	id, ok := parseUUIDParam(c, "payment_id")
	if !ok {
		return
	}

	if key, found := auth.KeyFromContext(c); found && h.authorizer != nil {
		if !h.authorizer.CanApprovePayments(c.Request.Context(), key) {
			sendError(c, http.StatusForbidden, "Insufficient privileges to approve payments", errors.New("approval denied for key "+key.Name))
			return
		}
	}

	var req types.ApprovePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	payment, err := h.common.payments.Approve(c.Request.Context(), id, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toPaymentResponse(*payment, nil, nil))
}

// RejectPayment godoc
// @Summary Reject payment
// @Description Send a pending payment back to draft with a reason
// @Tags payments
// @Accept json
// @Produce json
// @Param payment_id path string true "Payment ID"
// @Param request body types.RejectPaymentRequest true "Rejection reason"
// @Success 200 {object} PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /payments/{payment_id}/reject [post]
func (h *PaymentHandler) RejectPayment(c *gin.Context) {
	id, ok := parseUUIDParam(c, "payment_id")
	if !ok {
		return
	}

	var req types.RejectPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	payment, err := h.common.payments.Reject(c.Request.Context(), id, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toPaymentResponse(*payment, nil, nil))
}

// MarkPaymentPaid godoc
// @Summary Mark payment paid
// @Description Close an approved payment with its bank reference and dispatch accounting entries
// @Tags payments
// @Accept json
// @Produce json
// @Param payment_id path string true "Payment ID"
// @Param request body types.MarkPaidRequest false "Payment reference"
// @Success 200 {object} PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /payments/{payment_id}/pay [post]
func (h *PaymentHandler) MarkPaymentPaid(c *gin.Context) {
	id, ok := parseUUIDParam(c, "payment_id")
	if !ok {
		return
	}

	var req types.MarkPaidRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			sendError(c, http.StatusBadRequest, "Invalid request body", err)
			return
		}
	}

	payment, err := h.common.payments.MarkPaid(c.Request.Context(), id, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toPaymentResponse(*payment, nil, nil))
}
