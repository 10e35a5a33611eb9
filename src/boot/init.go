package boot

import (
	"log"

	"gigbook/src/db"
	"gigbook/src/models"

	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.Venue{},
		&models.Artist{},
		&models.Show{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}
