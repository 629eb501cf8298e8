package main

import (
	"fmt"
	"os"

	"distribution_manager/internal/config"
	"distribution_manager/internal/database"
	"distribution_manager/internal/engine"
	"distribution_manager/internal/migrations"
	"distribution_manager/internal/models"
	"distribution_manager/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func connect() (*gorm.DB, error) {
	cfg := config.Load()
	return database.Initialize(cfg.DatabaseURL)
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "distroadmin",
		Short: "Admin tooling for the distribution manager backend",
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations and create default accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := connect()
			if err != nil {
				return err
			}
			return migrations.RunMigrations(db)
		},
	}

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert a small sample catalog for local development",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := connect()
			if err != nil {
				return err
			}
			return seedSampleData(db)
		},
	}

	lowStockCmd := &cobra.Command{
		Use:   "lowstock",
		Short: "Print inventory records at or below their reorder level",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := connect()
			if err != nil {
				return err
			}

			inventoryRepo := repository.NewInventoryRepository(db)
			records, err := inventoryRepo.GetLowStock()
			if err != nil {
				return err
			}

			if len(records) == 0 {
				fmt.Println("No low-stock records.")
				return nil
			}
			for _, record := range records {
				level := engine.ClassifyStock(record.QuantityInStock, record.ReorderLevel)
				fmt.Printf("product %d: %d in stock (reorder level %d, suggested restock %d) [%s]\n",
					record.ProductID, record.QuantityInStock, record.ReorderLevel, record.ReorderQuantity, level)
			}
			return nil
		},
	}

	rootCmd.AddCommand(migrateCmd, seedCmd, lowStockCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func seedSampleData(db *gorm.DB) error {
	productRepo := repository.NewProductRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	retailerRepo := repository.NewRetailerRepository(db)
	customerRepo := repository.NewCustomerRepository(db)

	products := []*models.Product{
		{SKU: "VASE-001", Name: "Ceramic Vase", UnitPrice: decimal.RequireFromString("100.00"), Category: "Homeware", IsActive: true, CreatedBy: 1},
		{SKU: "BASK-002", Name: "Woven Basket", UnitPrice: decimal.RequireFromString("50.00"), Category: "Homeware", IsActive: true, CreatedBy: 1},
		{SKU: "LAMP-003", Name: "Brass Lamp", UnitPrice: decimal.RequireFromString("240.00"), Category: "Lighting", IsActive: true, CreatedBy: 1},
	}
	for _, product := range products {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		if err := inventoryRepo.Create(&models.InventoryRecord{
			ProductID:       product.ID,
			QuantityInStock: 25,
			ReorderLevel:    5,
			ReorderQuantity: 20,
		}); err != nil {
			return err
		}
	}

	if err := retailerRepo.Create(&models.Retailer{
		BusinessName: "Harbor Home Goods",
		ContactName:  "J. Okafor",
		Email:        "orders@harborhome.example",
		IsActive:     true,
	}); err != nil {
		return err
	}

	return customerRepo.Create(&models.Customer{
		FullName: "Dana Reyes",
		Email:    "dana@example.com",
		IsActive: true,
	})
}
