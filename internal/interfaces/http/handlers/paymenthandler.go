package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	paymentUsecases "hostelhub/internal/application/payment/usecases"
	"hostelhub/internal/shared/constants"
	"hostelhub/internal/shared/logger"
	"hostelhub/internal/shared/utils"
)

// maxWebhookBody bounds how much of a webhook delivery is read.
const maxWebhookBody = 1 << 20

type PaymentHandler struct {
	initializeUC *paymentUsecases.InitializePaymentUseCase
	topUpUC      *paymentUsecases.InitializeTopUpUseCase
	confirmUC    *paymentUsecases.ConfirmPaymentUseCase
	webhookUC    *paymentUsecases.ProcessWebhookUseCase
	balanceUC    *paymentUsecases.GetBalanceUseCase
	listUC       *paymentUsecases.ListPaymentsUseCase
	reconcileUC  *paymentUsecases.ReconcileOrphanedPaymentsUseCase
	backfillUC   *paymentUsecases.BackfillAccessCodesUseCase
	logger       logger.Interface
}

func NewPaymentHandler(
	initializeUC *paymentUsecases.InitializePaymentUseCase,
	topUpUC *paymentUsecases.InitializeTopUpUseCase,
	confirmUC *paymentUsecases.ConfirmPaymentUseCase,
	webhookUC *paymentUsecases.ProcessWebhookUseCase,
	balanceUC *paymentUsecases.GetBalanceUseCase,
	listUC *paymentUsecases.ListPaymentsUseCase,
	reconcileUC *paymentUsecases.ReconcileOrphanedPaymentsUseCase,
	backfillUC *paymentUsecases.BackfillAccessCodesUseCase,
	logger logger.Interface,
) *PaymentHandler {
	return &PaymentHandler{
		initializeUC: initializeUC,
		topUpUC:      topUpUC,
		confirmUC:    confirmUC,
		webhookUC:    webhookUC,
		balanceUC:    balanceUC,
		listUC:       listUC,
		reconcileUC:  reconcileUC,
		backfillUC:   backfillUC,
		logger:       logger,
	}
}

type InitializePaymentRequest struct {
	RoomID uint   `json:"room_id" binding:"required"`
	Amount string `json:"amount" binding:"required"`
}

// @Summary		Initialize booking payment
// @Description	Create a pending payment and return the gateway checkout URL
// @Tags			payments
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			payment	body		InitializePaymentRequest	true	"Payment data"
// @Success		200		{object}	utils.APIResponse			"Payment initialized"
// @Failure		400		{object}	utils.APIResponse			"Bad request"
// @Failure		502		{object}	utils.APIResponse			"Gateway error"
// @Router			/payments/initialize [post]
func (h *PaymentHandler) Initialize(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	var req InitializePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid amount")
		return
	}

	result, err := h.initializeUC.Execute(c.Request.Context(), paymentUsecases.InitializePaymentCommand{
		UserID: userID,
		RoomID: req.RoomID,
		Amount: amount,
	})
	if err != nil {
		h.logger.Warnw("failed to initialize payment", "error", err, "user_id", userID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "payment initialized", result)
}

type TopUpRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// @Summary		Initialize top-up payment
// @Description	Create a pending top-up payment against the outstanding balance
// @Tags			payments
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			topup	body		TopUpRequest		true	"Top-up data"
// @Success		200		{object}	utils.APIResponse	"Top-up initialized"
// @Failure		400		{object}	utils.APIResponse	"Bad request"
// @Failure		409		{object}	utils.APIResponse	"Balance already settled"
// @Router			/payments/topup [post]
func (h *PaymentHandler) TopUp(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	var req TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid amount")
		return
	}

	result, err := h.topUpUC.Execute(c.Request.Context(), paymentUsecases.InitializeTopUpCommand{
		UserID: userID,
		Amount: amount,
	})
	if err != nil {
		h.logger.Warnw("failed to initialize top-up", "error", err, "user_id", userID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "top-up initialized", result)
}

// @Summary		Payment callback
// @Description	Verify and confirm a payment after gateway redirect
// @Tags			payments
// @Produce		json
// @Param			reference	query		string				true	"Payment reference"
// @Success		200			{object}	utils.APIResponse	"Payment confirmed"
// @Failure		400			{object}	utils.APIResponse	"Bad request"
// @Failure		404			{object}	utils.APIResponse	"Unknown reference"
// @Router			/payments/callback [get]
func (h *PaymentHandler) Callback(c *gin.Context) {
	reference := c.Query("reference")
	if reference == "" {
		reference = c.Query("trxref")
	}
	if reference == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "missing payment reference")
		return
	}

	result, err := h.confirmUC.Execute(c.Request.Context(), paymentUsecases.ConfirmPaymentCommand{
		Reference: reference,
	})
	if err != nil {
		h.logger.Warnw("payment confirmation failed", "error", err, "reference", reference)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "payment confirmed", result)
}

// @Summary		Paystack webhook
// @Description	Receive signed gateway events; charge.success confirms the payment
// @Tags			payments
// @Accept			json
// @Produce		json
// @Success		200	{object}	utils.APIResponse	"Event acknowledged"
// @Failure		401	{object}	utils.APIResponse	"Invalid signature"
// @Router			/payments/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read request body")
		return
	}

	result, err := h.webhookUC.Execute(c.Request.Context(), paymentUsecases.ProcessWebhookCommand{
		Payload:   payload,
		Signature: c.GetHeader(constants.HeaderPaystackSignature),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "event acknowledged", result)
}

// @Summary		My balance
// @Description	Room price, total paid and disclosed balance for the caller
// @Tags			payments
// @Produce		json
// @Security		Bearer
// @Success		200	{object}	utils.APIResponse	"Balance"
// @Failure		404	{object}	utils.APIResponse	"No room assignment"
// @Router			/payments/balance [get]
func (h *PaymentHandler) Balance(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	result, err := h.balanceUC.Execute(c.Request.Context(), paymentUsecases.GetBalanceCommand{
		UserID: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// @Summary		My payments
// @Description	List the caller's payments, newest first
// @Tags			payments
// @Produce		json
// @Security		Bearer
// @Param			page		query		int					false	"Page"
// @Param			page_size	query		int					false	"Page size"
// @Success		200			{object}	utils.APIResponse	"Payments"
// @Router			/payments [get]
func (h *PaymentHandler) ListMine(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	p := utils.ParsePagination(c)
	items, total, err := h.listUC.ListForUser(c.Request.Context(), userID, p.Offset(), p.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, items, total, p.Page, p.PageSize)
}

// @Summary		Hostel payments
// @Description	List payments for a hostel (admin)
// @Tags			payments
// @Produce		json
// @Security		Bearer
// @Param			id			path		int					true	"Hostel ID"
// @Param			page		query		int					false	"Page"
// @Param			page_size	query		int					false	"Page size"
// @Success		200			{object}	utils.APIResponse	"Payments"
// @Router			/hostels/{id}/payments [get]
func (h *PaymentHandler) ListForHostel(c *gin.Context) {
	hostelID, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid hostel id")
		return
	}

	p := utils.ParsePagination(c)
	items, total, err := h.listUC.ListForHostel(c.Request.Context(), hostelID, p.Offset(), p.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, items, total, p.Page, p.PageSize)
}

// @Summary		Fix orphaned payments
// @Description	Run the orphaned payment reconciliation sweep (admin)
// @Tags			payments
// @Produce		json
// @Security		Bearer
// @Success		200	{object}	utils.APIResponse	"Reconciliation result"
// @Router			/admin/payments/fix-orphaned [post]
func (h *PaymentHandler) FixOrphaned(c *gin.Context) {
	result, err := h.reconcileUC.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("orphaned payment sweep failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "reconciliation completed", result)
}

// @Summary		Backfill access codes
// @Description	Issue access codes to assigned residents missing one (admin)
// @Tags			payments
// @Produce		json
// @Security		Bearer
// @Success		200	{object}	utils.APIResponse	"Backfill result"
// @Router			/admin/residents/backfill-access-codes [post]
func (h *PaymentHandler) BackfillAccessCodes(c *gin.Context) {
	result, err := h.backfillUC.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("access code backfill failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "backfill completed", result)
}
