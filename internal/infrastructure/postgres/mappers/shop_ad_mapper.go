package mappers

import (
	"github.com/hellolocal/shopads-service/internal/domain"
	"github.com/hellolocal/shopads-service/internal/infrastructure/postgres/models"
)

func ToDomainShopAd(model *models.ShopAdModel) *domain.ShopAd {
	return &domain.ShopAd{
		ID:           model.ID,
		DisplayOrder: model.DisplayOrder,
		IsActive:     model.IsActive,
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
		ContactName:  model.ContactName,
		ContactPhone: model.ContactPhone,
		ContactEmail: model.ContactEmail,
		RequestedBy:  model.RequestedBy,
		ApprovedAt:   model.ApprovedAt,
		StartDate:    model.StartDate,
		EndDate:      model.EndDate,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func ToGORMShopAd(ad *domain.ShopAd) *models.ShopAdModel {
	return &models.ShopAdModel{
		ID:           ad.ID,
		DisplayOrder: ad.DisplayOrder,
		IsActive:     ad.IsActive,
		ShopName:     ad.Content.ShopName,
		Tagline:      ad.Content.Tagline,
		Description:  ad.Content.Description,
		ImageURL:     ad.Content.ImageURL,
		Badge:        ad.Content.Badge,
		BadgeColor:   ad.Content.BadgeColor,
		CTAText:      ad.Content.CTAText,
		CTALink:      ad.Content.CTALink,
		ContactName:  ad.ContactName,
		ContactPhone: ad.ContactPhone,
		ContactEmail: ad.ContactEmail,
		RequestedBy:  ad.RequestedBy,
		ApprovedAt:   ad.ApprovedAt,
		StartDate:    ad.StartDate,
		EndDate:      ad.EndDate,
		CreatedAt:    ad.CreatedAt,
		UpdatedAt:    ad.UpdatedAt,
	}
}
