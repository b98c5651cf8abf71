package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hellolocal/shopads-service/internal/delivery/http/dto/request"
	"github.com/hellolocal/shopads-service/internal/delivery/http/dto/response"
	"github.com/hellolocal/shopads-service/internal/domain"
	paymentdto "github.com/hellolocal/shopads-service/internal/usecase/dto/payment"
	payment "github.com/hellolocal/shopads-service/internal/usecase/payment"
)

type PaymentHandler struct {
	payments payment.PaymentUsecase
}

func NewPaymentHandler(payments payment.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var req request.CreateGatewayOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	out, err := h.payments.CreateGatewayOrder(c.Request.Context(), &paymentdto.CreateGatewayOrderInput{
		OwnerID:   req.OwnerID,
		OwnerKind: domain.OwnerKind(req.OwnerKind),
		CallerID:  c.GetHeader("X-Seller-ID"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, "Gateway order created", response.ToGatewayOrderView(out))
}

func (h *PaymentHandler) Verify(c *gin.Context) {
	var req request.VerifyPaymentCaptureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	out, err := h.payments.Capture(c.Request.Context(), &paymentdto.CaptureInput{
		OwnerID:          req.OwnerID,
		OwnerKind:        domain.OwnerKind(req.OwnerKind),
		CallerID:         c.GetHeader("X-Seller-ID"),
		GatewayOrderID:   req.RazorpayOrderID,
		GatewayPaymentID: req.RazorpayPaymentID,
		Signature:        req.RazorpaySignature,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Payment verified", response.ToCaptureView(out))
}

func (h *PaymentHandler) Refund(c *gin.Context) {
	var req request.RefundRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "invalid request body: "+err.Error())
			return
		}
	}

	out, err := h.payments.Refund(c.Request.Context(), &paymentdto.RefundInput{
		PaymentID: c.Param("id"),
		Amount:    req.Amount,
		Reason:    req.Reason,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Refund initiated", response.ToRefundView(out))
}

// Webhook always answers 200 so the gateway does not retry forever; the
// outcome is carried in the body.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusOK, Envelope{Success: false, Message: "failed to read webhook body"})
		return
	}

	signature := c.GetHeader("X-Razorpay-Signature")
	if err := h.payments.HandleWebhook(c.Request.Context(), body, signature); err != nil {
		c.JSON(http.StatusOK, Envelope{Success: false, Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, Envelope{Success: true, Message: "Webhook processed"})
}
