package postgres

import (
	"log"

	"github.com/hellolocal/shopads-service/internal/config"
	"github.com/hellolocal/shopads-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.ShopAdsConfig) *gorm.DB {
	dsn := cfg.ShopAdsDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.AdRequestModel{},
		&models.ShopAdModel{},
		&models.PaymentRecordModel{},
		&models.CommerceOrderModel{},
	)

	return db
}
