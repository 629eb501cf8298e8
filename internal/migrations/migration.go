package migrations

import (
	"log"

	"distribution_manager/internal/models"
	"distribution_manager/internal/repository"
	"distribution_manager/internal/services"

	"gorm.io/gorm"
)

// RunMigrations creates the schema and seeds default data.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Retailer{},
		&models.Customer{},
		&models.Wholesaler{},
		&models.Designer{},
		&models.Product{},
		&models.InventoryRecord{},
		&models.InventoryMovement{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.ReportQuery{},
	)
	if err != nil {
		return err
	}

	if err := createDefaultData(db); err != nil {
		log.Printf("Warning: Failed to create default data: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

// createDefaultData creates the initial super admin account.
func createDefaultData(db *gorm.DB) error {
	log.Println("Creating default data...")

	userRepo := repository.NewUserRepository(db)
	userService := services.NewUserService(userRepo)

	existingUser, err := userService.GetUserByUsername("admin")
	if err == nil && existingUser != nil {
		log.Println("Super admin user already exists")
		return nil
	}

	log.Println("Creating super admin user...")
	superAdmin := &models.User{
		Username: "admin",
		Email:    "admin@distribution.local",
		Role:     string(models.SuperAdmin),
		IsActive: true,
	}

	if err := userService.CreateUser(superAdmin, "admin123"); err != nil {
		log.Printf("Warning: Failed to create super admin user: %v", err)
		return err
	}

	log.Println("Super admin user created successfully")
	log.Println("Username: admin")
	log.Println("Password: admin123")
	return nil
}
