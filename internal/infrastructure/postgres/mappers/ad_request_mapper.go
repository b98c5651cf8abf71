package mappers

import (
	"github.com/hellolocal/shopads-service/internal/domain"
	"github.com/hellolocal/shopads-service/internal/infrastructure/postgres/models"
)

func ToDomainAdRequest(model *models.AdRequestModel) *domain.AdRequest {
	return &domain.AdRequest{
		ID:          model.ID,
		SellerID:    model.SellerID,
		SellerName:  model.SellerName,
		SellerEmail: model.SellerEmail,
		SellerPhone: model.SellerPhone,
		Content: domain.AdContent{
			ShopName:    model.ShopName,
			Tagline:     model.Tagline,
			Description: model.Description,
			ImageURL:    model.ImageURL,
			Badge:       model.Badge,
			BadgeColor:  model.BadgeColor,
			CTAText:     model.CTAText,
			CTALink:     model.CTALink,
		},
		StartDate:            model.StartDate,
		EndDate:              model.EndDate,
		DurationDays:         model.DurationDays,
		RequestedPrice:       model.RequestedPrice,
		AdPrice:              model.AdPrice,
		PaymentStatus:        model.PaymentStatus,
		PaymentMethod:        model.PaymentMethod,
		PaymentReference:     model.PaymentReference,
		PaymentScreenshotURL: model.PaymentScreenshotURL,
		PaymentNote:          model.PaymentNote,
		PaidAt:               model.PaidAt,
		Status:               model.Status,
		AdminNote:            model.AdminNote,
		ApprovedAt:           model.ApprovedAt,
		RejectedAt:           model.RejectedAt,
		ShopAdID:             model.ShopAdID,
		CreatedAt:            model.CreatedAt,
		UpdatedAt:            model.UpdatedAt,
	}
}

func ToGORMAdRequest(req *domain.AdRequest) *models.AdRequestModel {
	return &models.AdRequestModel{
		ID:                   req.ID,
		SellerID:             req.SellerID,
		SellerName:           req.SellerName,
		SellerEmail:          req.SellerEmail,
		SellerPhone:          req.SellerPhone,
		ShopName:             req.Content.ShopName,
		Tagline:              req.Content.Tagline,
		Description:          req.Content.Description,
		ImageURL:             req.Content.ImageURL,
		Badge:                req.Content.Badge,
		BadgeColor:           req.Content.BadgeColor,
		CTAText:              req.Content.CTAText,
		CTALink:              req.Content.CTALink,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		DurationDays:         req.DurationDays,
		RequestedPrice:       req.RequestedPrice,
		AdPrice:              req.AdPrice,
		PaymentStatus:        req.PaymentStatus,
		PaymentMethod:        req.PaymentMethod,
		PaymentReference:     req.PaymentReference,
		PaymentScreenshotURL: req.PaymentScreenshotURL,
		PaymentNote:          req.PaymentNote,
		PaidAt:               req.PaidAt,
		Status:               req.Status,
		AdminNote:            req.AdminNote,
		ApprovedAt:           req.ApprovedAt,
		RejectedAt:           req.RejectedAt,
		ShopAdID:             req.ShopAdID,
		CreatedAt:            req.CreatedAt,
		UpdatedAt:            req.UpdatedAt,
	}
}
