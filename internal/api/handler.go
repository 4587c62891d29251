package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"checkout-sdk/internal/journal"
	"checkout-sdk/internal/models"
	"checkout-sdk/internal/sdkerr"
	"checkout-sdk/internal/selector"
	"checkout-sdk/internal/service"
	"checkout-sdk/internal/transport"
	"checkout-sdk/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// ReadinessCheck reports whether a dependency can serve requests
type ReadinessCheck func(ctx context.Context) error

// NotificationLister reads the processed notification journal
type NotificationLister interface {
	RecentNotifications(ctx context.Context, checkoutID string, limit int) ([]journal.ProcessedNotification, error)
}

// Handler contains HTTP handlers
type Handler struct {
	checkout      *service.CheckoutService
	checks        map[string]ReadinessCheck
	notifications NotificationLister
	logger        *zap.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(checkout *service.CheckoutService, checks map[string]ReadinessCheck) *Handler {
	return &Handler{
		checkout: checkout,
		checks:   checks,
		logger:   util.ComponentLogger("api"),
	}
}

// EnableNotifications serves the processed notification journal
func (h *Handler) EnableNotifications(lister NotificationLister) {
	h.notifications = lister
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/checkout", h.getCheckout)
		v1.POST("/checkout/load", h.loadCheckout)

		v1.POST("/shipping/address", h.updateShippingAddress)
		v1.POST("/shipping/options/load", h.loadShippingOptions)
		v1.PUT("/shipping/options/:id", h.selectShippingOption)

		v1.POST("/billing/address", h.updateBillingAddress)
		v1.POST("/billing/guest", h.continueAsGuest)

		v1.GET("/payment-methods", h.loadPaymentMethods)
		v1.GET("/payment-methods/:id", h.loadPaymentMethod)

		v1.POST("/instruments/load", h.loadInstruments)
		v1.DELETE("/instruments/:id", h.deleteInstrument)

		v1.POST("/orders", h.submitOrder)
		v1.POST("/orders/:id/finalize", h.finalizeOrder)

		v1.GET("/notifications", h.listNotifications)
	}
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck runs every registered dependency check
func (h *Handler) readinessCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	failures := gin.H{}
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			failures[name] = err.Error()
		}
	}

	if len(failures) > 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "not ready",
			"failures": failures,
			"time":     time.Now().Unix(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Unix(),
	})
}

func (h *Handler) getCheckout(c *gin.Context) {
	c.JSON(http.StatusOK, snapshot(h.checkout.Selector()))
}

type loadCheckoutRequest struct {
	CheckoutID string   `json:"checkoutId"`
	Include    []string `json:"include"`
}

func (h *Handler) loadCheckout(c *gin.Context) {
	var req loadCheckoutRequest
	if !bind(c, &req) {
		return
	}

	sel, err := h.checkout.LoadCheckout(c.Request.Context(), req.CheckoutID, req.Include...)
	h.respond(c, sel, err)
}

func (h *Handler) updateShippingAddress(c *gin.Context) {
	var address models.Address
	if !bind(c, &address) {
		return
	}

	sel, err := h.checkout.UpdateShippingAddress(c.Request.Context(), address)
	h.respond(c, sel, err)
}

func (h *Handler) loadShippingOptions(c *gin.Context) {
	sel, err := h.checkout.LoadShippingOptions(c.Request.Context())
	h.respond(c, sel, err)
}

func (h *Handler) selectShippingOption(c *gin.Context) {
	sel, err := h.checkout.SelectShippingOption(c.Request.Context(), c.Param("id"))
	h.respond(c, sel, err)
}

func (h *Handler) updateBillingAddress(c *gin.Context) {
	var address models.Address
	if !bind(c, &address) {
		return
	}

	sel, err := h.checkout.UpdateBillingAddress(c.Request.Context(), address)
	h.respond(c, sel, err)
}

func (h *Handler) continueAsGuest(c *gin.Context) {
	var credentials models.GuestCredentials
	if !bind(c, &credentials) {
		return
	}

	sel, err := h.checkout.ContinueAsGuest(c.Request.Context(), credentials)
	h.respond(c, sel, err)
}

func (h *Handler) loadPaymentMethods(c *gin.Context) {
	sel, err := h.checkout.LoadPaymentMethods(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"paymentMethods": sel.GetPaymentMethods()})
}

func (h *Handler) loadPaymentMethod(c *gin.Context) {
	methodID, gatewayID := c.Param("id"), c.Query("gatewayId")

	sel, err := h.checkout.LoadPaymentMethod(c.Request.Context(), methodID, gatewayID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"paymentMethod": sel.GetPaymentMethod(methodID, gatewayID)})
}

func (h *Handler) loadInstruments(c *gin.Context) {
	sel, err := h.checkout.LoadInstruments(c.Request.Context())
	h.respond(c, sel, err)
}

func (h *Handler) deleteInstrument(c *gin.Context) {
	sel, err := h.checkout.DeleteInstrument(c.Request.Context(), c.Param("id"))
	h.respond(c, sel, err)
}

// paymentRequest carries one of the payment data shapes, told apart by
// which identifying field is set
type paymentRequest struct {
	MethodID    string             `json:"methodId" binding:"required"`
	GatewayID   string             `json:"gatewayId"`
	PaymentData *paymentDataFields `json:"paymentData"`
}

type paymentDataFields struct {
	InstrumentID         string            `json:"instrumentId"`
	Nonce                string            `json:"nonce"`
	DeviceSessionID      string            `json:"deviceSessionId"`
	CCExpiry             models.CardExpiry `json:"ccExpiry"`
	CCName               string            `json:"ccName"`
	CCNumber             string            `json:"ccNumber"`
	CCType               string            `json:"ccType"`
	CCCvv                string            `json:"ccCvv"`
	ShouldSaveInstrument bool              `json:"shouldSaveInstrument"`
}

func (p paymentRequest) toPayment() models.Payment {
	payment := models.Payment{MethodID: p.MethodID, GatewayID: p.GatewayID}

	d := p.PaymentData
	switch {
	case d == nil:
	case d.InstrumentID != "":
		payment.PaymentData = models.VaultedInstrument{InstrumentID: d.InstrumentID, CCCvv: d.CCCvv}
	case d.Nonce != "":
		payment.PaymentData = models.NonceInstrument{Nonce: d.Nonce, DeviceSessionID: d.DeviceSessionID, ShouldSaveInstrument: d.ShouldSaveInstrument}
	case d.CCNumber != "":
		payment.PaymentData = models.CreditCardInstrument{
			CCExpiry:             d.CCExpiry,
			CCName:               d.CCName,
			CCNumber:             d.CCNumber,
			CCType:               d.CCType,
			CCCvv:                d.CCCvv,
			ShouldSaveInstrument: d.ShouldSaveInstrument,
		}
	}

	return payment
}

type submitOrderRequest struct {
	CustomerMessage string          `json:"customerMessage"`
	UseStoreCredit  bool            `json:"useStoreCredit"`
	ExternalSource  string          `json:"externalSource"`
	Payment         *paymentRequest `json:"payment"`
}

func (h *Handler) submitOrder(c *gin.Context) {
	var req submitOrderRequest
	if !bind(c, &req) {
		return
	}

	payload := models.OrderRequestBody{
		CustomerMessage: req.CustomerMessage,
		UseStoreCredit:  req.UseStoreCredit,
		ExternalSource:  req.ExternalSource,
	}
	if req.Payment != nil {
		payment := req.Payment.toPayment()
		payload.Payment = &payment
	}

	sel, err := h.checkout.SubmitOrder(c.Request.Context(), payload)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, snapshot(sel))
}

func (h *Handler) finalizeOrder(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID",
		})
		return
	}

	if order := h.checkout.Selector().GetOrder(); order != nil && order.OrderID != orderID {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
		return
	}

	sel, err := h.checkout.FinalizeOrder(c.Request.Context())
	h.respond(c, sel, err)
}

func (h *Handler) listNotifications(c *gin.Context) {
	if h.notifications == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Notification journal disabled",
		})
		return
	}

	checkout := h.checkout.Selector().GetCheckout()
	if checkout == nil {
		h.writeError(c, sdkerr.NewMissingDataError("list notifications", "checkout.id"))
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 || limit > 100 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid limit",
		})
		return
	}

	rows, err := h.notifications.RecentNotifications(c.Request.Context(), checkout.ID, limit)
	if err != nil {
		h.logger.Error("Failed to list notifications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list notifications",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": rows})
}

func bind(c *gin.Context, dest any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(dest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return false
	}
	return true
}

func (h *Handler) respond(c *gin.Context, sel *selector.CheckoutStoreSelector, err error) {
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot(sel))
}

// writeError maps workflow errors to HTTP statuses
func (h *Handler) writeError(c *gin.Context, err error) {
	status := http.StatusBadGateway
	body := gin.H{"error": err.Error()}

	var invalid *sdkerr.InvalidArgumentError
	switch {
	case errors.As(err, &invalid):
		status = http.StatusBadRequest
		body["fields"] = invalid.Fields()
	case sdkerr.IsPrecondition(err):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrFinalizationNotRequired):
		status = http.StatusConflict
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
	default:
		if reqErr, ok := transport.AsRequestError(err); ok {
			if reqErr.Status >= 400 {
				status = reqErr.Status
			}
			body["details"] = reqErr
		}
	}

	if status >= http.StatusInternalServerError {
		h.logger.Warn("Workflow failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.JSON(status, body)
}

func snapshot(sel *selector.CheckoutStoreSelector) gin.H {
	return gin.H{
		"checkout":               sel.GetCheckout(),
		"cart":                   sel.GetCart(),
		"customer":               sel.GetCustomer(),
		"order":                  sel.GetOrder(),
		"billingAddress":         sel.GetBillingAddress(),
		"shippingAddress":        sel.GetShippingAddress(),
		"shippingOptions":        sel.GetShippingOptions(),
		"selectedShippingOption": sel.GetSelectedShippingOption(),
		"paymentMethods":         sel.GetPaymentMethods(),
		"selectedPaymentMethod":  sel.GetSelectedPaymentMethod(),
		"instruments":            sel.GetInstruments(),
		"config":                 sel.GetConfig(),
	}
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
