package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hellolocal/shopads-service/internal/delivery/http/dto/request"
	"github.com/hellolocal/shopads-service/internal/delivery/http/dto/response"
	"github.com/hellolocal/shopads-service/internal/delivery/http/middleware"
	adrequest "github.com/hellolocal/shopads-service/internal/usecase/adrequest"
	adrequestdto "github.com/hellolocal/shopads-service/internal/usecase/dto/adrequest"
)

type SellerHandler struct {
	adRequests adrequest.AdRequestUsecase
	maxAds     int
}

func NewSellerHandler(adRequests adrequest.AdRequestUsecase, maxAds int) *SellerHandler {
	return &SellerHandler{adRequests: adRequests, maxAds: maxAds}
}

func (h *SellerHandler) Submit(c *gin.Context) {
	var req request.SubmitAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		respondBadRequest(c, "startDate must be YYYY-MM-DD")
		return
	}

	created, err := h.adRequests.Submit(c.Request.Context(), &adrequestdto.SubmitAdRequestInput{
		SellerID:             c.GetString(middleware.SellerIDKey),
		ShopName:             req.ShopName,
		Tagline:              req.Tagline,
		Description:          req.Description,
		ImageURL:             req.ImageURL,
		Badge:                req.Badge,
		BadgeColor:           req.BadgeColor,
		CTAText:              req.CTAText,
		CTALink:              req.CTALink,
		StartDate:            startDate,
		DurationDays:         req.DurationDays,
		RequestedPrice:       req.RequestedPrice,
		PaymentMethod:        req.PaymentMethod,
		PaymentReference:     req.PaymentReference,
		PaymentScreenshotURL: req.PaymentScreenshot,
		PaymentNote:          req.PaymentNote,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, "Ad request submitted", response.ToAdRequestView(created))
}

func (h *SellerHandler) ListMine(c *gin.Context) {
	requests, err := h.adRequests.ListBySeller(c.Request.Context(), c.GetString(middleware.SellerIDKey))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "", response.ToAdRequestViews(requests))
}

func (h *SellerHandler) GetMine(c *gin.Context) {
	req, err := h.adRequests.GetForSeller(c.Request.Context(), c.GetString(middleware.SellerIDKey), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "", response.ToAdRequestView(req))
}

func (h *SellerHandler) SubmitPaymentProof(c *gin.Context) {
	var req request.PaymentProofRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	updated, err := h.adRequests.SubmitPaymentProof(c.Request.Context(), &adrequestdto.SubmitPaymentProofInput{
		RequestID:            c.Param("id"),
		SellerID:             c.GetString(middleware.SellerIDKey),
		PaymentMethod:        req.PaymentMethod,
		PaymentReference:     req.PaymentReference,
		PaymentScreenshotURL: req.PaymentScreenshot,
		PaymentNote:          req.PaymentNote,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Payment proof submitted", response.ToAdRequestView(updated))
}

func (h *SellerHandler) Cancel(c *gin.Context) {
	err := h.adRequests.Cancel(c.Request.Context(), c.GetString(middleware.SellerIDKey), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Ad request cancelled", nil)
}

func (h *SellerHandler) Availability(c *gin.Context) {
	startDate := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			respondBadRequest(c, "date must be YYYY-MM-DD")
			return
		}
		startDate = parsed
	}

	days := 30
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respondBadRequest(c, "days must be a positive integer")
			return
		}
		days = parsed
	}

	rng, err := h.adRequests.Availability(c.Request.Context(), startDate, days)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "", response.ToAvailabilityView(rng, h.maxAds))
}

func parseDate(raw string) (time.Time, error) {
	if parsed, err := time.Parse("2006-01-02", raw); err == nil {
		return parsed, nil
	}
	return time.Parse(time.RFC3339, raw)
}
