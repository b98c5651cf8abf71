package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hellolocal/shopads-service/internal/delivery/http/dto/request"
	"github.com/hellolocal/shopads-service/internal/delivery/http/dto/response"
	adrequest "github.com/hellolocal/shopads-service/internal/usecase/adrequest"
	adrequestdto "github.com/hellolocal/shopads-service/internal/usecase/dto/adrequest"
)

type AdminHandler struct {
	adRequests adrequest.AdRequestUsecase
}

func NewAdminHandler(adRequests adrequest.AdRequestUsecase) *AdminHandler {
	return &AdminHandler{adRequests: adRequests}
}

func (h *AdminHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	input := &adrequestdto.ListAdRequestsInput{
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
	}

	requests, total, err := h.adRequests.List(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "", response.ListView{
		Items: response.ToAdRequestViews(requests),
		Total: total,
		Page:  input.Page,
		Limit: input.Limit,
	})
}

func (h *AdminHandler) Get(c *gin.Context) {
	req, err := h.adRequests.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "", response.ToAdRequestView(req))
}

func (h *AdminHandler) Approve(c *gin.Context) {
	var req request.ApproveAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	approved, err := h.adRequests.Approve(c.Request.Context(), &adrequestdto.ApproveAdRequestInput{
		RequestID: c.Param("id"),
		AdPrice:   req.AdPrice,
		AdminNote: req.AdminNote,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Ad request approved", response.ToAdRequestView(approved))
}

func (h *AdminHandler) Reject(c *gin.Context) {
	var req request.RejectAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	rejected, err := h.adRequests.Reject(c.Request.Context(), &adrequestdto.RejectAdRequestInput{
		RequestID: c.Param("id"),
		AdminNote: req.AdminNote,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Ad request rejected", response.ToAdRequestView(rejected))
}

func (h *AdminHandler) VerifyPayment(c *gin.Context) {
	var req request.VerifyPaymentRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "invalid request body: "+err.Error())
			return
		}
	}

	verified, ad, err := h.adRequests.VerifyPaymentAndActivate(c.Request.Context(), &adrequestdto.VerifyPaymentInput{
		RequestID: c.Param("id"),
		AdminNote: req.AdminNote,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Payment verified, ad is live", gin.H{
		"request": response.ToAdRequestView(verified),
		"shopAd":  response.ToShopAdView(ad),
	})
}

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adRequests.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "", response.ToStatsView(stats))
}

func (h *AdminHandler) SweepExpired(c *gin.Context) {
	expired, err := h.adRequests.SweepExpired(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Expiry sweep complete", gin.H{"expired": expired})
}

func (h *AdminHandler) SetShopAdActive(c *gin.Context) {
	var req request.SetShopAdActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	ad, err := h.adRequests.SetShopAdActive(c.Request.Context(), c.Param("id"), *req.IsActive)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Shop ad updated", response.ToShopAdView(ad))
}
