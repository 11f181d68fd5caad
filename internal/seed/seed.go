// Package seed loads the default admin account and demo catalogue data.
package seed

import (
	"errors"
	"fmt"
	"log"
	"math/rand"

	"go-inventory-pro/internal/model"
	"go-inventory-pro/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Admin creates the administrator account when no user owns email yet. It
// reports whether an account was created.
func Admin(users repository.UserRepository, email, password string) (bool, error) {
	_, err := users.FindByEmail(email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	admin := &model.User{
		Name:  "Administrator",
		Email: email,
		Role:  model.RoleAdmin,
	}
	admin.CreatedBy = "system"
	admin.UpdatedBy = "system"
	if err := admin.SetPassword(password); err != nil {
		return false, fmt.Errorf("hash admin password: %w", err)
	}
	if err := users.Create(admin); err != nil {
		return false, err
	}

	log.Printf("✅ Admin user created: %s", admin.Email)
	return true, nil
}

var sampleSuppliers = []model.Supplier{
	{Name: "Acme Co", ContactEmail: "sales@acme.example", Phone: "+1 555 0100", Address: "1 Main St"},
	{Name: "Globex", ContactEmail: "orders@globex.example", Phone: "+1 555 0101", Address: "42 Market Ave"},
	{Name: "Stark Ltd", ContactEmail: "supply@stark.example", Phone: "+1 555 0102", Address: "10 Industrial Way"},
}

// Samples loads three suppliers and a dozen products when both tables are
// empty. rng drives prices and stock levels.
func Samples(db *gorm.DB, rng *rand.Rand) error {
	var suppliers, products int64
	if err := db.Model(&model.Supplier{}).Count(&suppliers).Error; err != nil {
		return err
	}
	if err := db.Model(&model.Product{}).Count(&products).Error; err != nil {
		return err
	}
	if suppliers > 0 || products > 0 {
		log.Println("Sample data already present, skipping")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		supplierRepo := repository.NewSupplierRepo(tx)
		productRepo := repository.NewProductRepo(tx)

		created := make([]model.Supplier, len(sampleSuppliers))
		for i, s := range sampleSuppliers {
			s.CreatedBy = "system"
			s.UpdatedBy = "system"
			if err := supplierRepo.Create(&s); err != nil {
				return fmt.Errorf("seed supplier %s: %w", s.Name, err)
			}
			created[i] = s
		}

		for i := 1; i <= 12; i++ {
			supplierID := created[(i-1)%len(created)].ID
			product := &model.Product{
				Name:        fmt.Sprintf("Sample Product %d", i),
				SKU:         fmt.Sprintf("SKU%d", 1000+i),
				Description: "Demo item",
				Price:       decimal.New(int64(100+rng.Intn(9900)), -2),
				Stock:       rng.Intn(100),
				SupplierID:  &supplierID,
			}
			product.CreatedBy = "system"
			product.UpdatedBy = "system"
			if err := productRepo.Create(product); err != nil {
				return fmt.Errorf("seed product %s: %w", product.SKU, err)
			}
		}

		log.Printf("✅ Seeded %d suppliers and 12 products", len(created))
		return nil
	})
}
