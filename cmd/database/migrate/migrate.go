package migration

import (
	"Ralph-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ScheduleEntry{}); err != nil {
		log.Fatalf("Error migrating schedule entry database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodEntry{}); err != nil {
		log.Fatalf("Error migrating food entry database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.AiAnalysis{}); err != nil {
		log.Fatalf("Error migrating ai analysis database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
