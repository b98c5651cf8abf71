package mappers

import (
	"github.com/hellolocal/shopads-service/internal/domain"
	"github.com/hellolocal/shopads-service/internal/infrastructure/postgres/models"
)

func ToDomainCommerceOrder(model *models.CommerceOrderModel) *domain.CommerceOrder {
	return &domain.CommerceOrder{
		ID:            model.ID,
		CustomerID:    model.CustomerID,
		Total:         model.Total,
		Status:        model.Status,
		PaymentStatus: model.PaymentStatus,
		PaymentID:     model.PaymentID,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}
