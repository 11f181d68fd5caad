package repository

import (
	"testing"
	"time"

	"go-inventory-pro/internal/model"
	"go-inventory-pro/internal/testutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepoNormalizesEmail(t *testing.T) {
	repo := NewUserRepo(testutil.NewDB(t))

	u := &model.User{Name: "Ann", Email: "  Ann@Example.COM "}
	require.NoError(t, u.SetPassword("secret1"))
	require.NoError(t, repo.Create(u))
	assert.Equal(t, "ann@example.com", u.Email)
	assert.Equal(t, model.RoleUser, u.Role)

	found, err := repo.FindByEmail("ANN@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	_, err = repo.FindByEmail("nobody@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepoUniqueEmail(t *testing.T) {
	repo := NewUserRepo(testutil.NewDB(t))

	require.NoError(t, repo.Create(&model.User{Email: "a@x.com", Password: "h"}))
	err := repo.Create(&model.User{Email: "A@X.com", Password: "h"})
	assert.Error(t, err)
}

func TestUserRepoUpdatePasswordClearsResetToken(t *testing.T) {
	repo := NewUserRepo(testutil.NewDB(t))

	digest := "abc"
	expires := time.Now().Add(time.Hour)
	u := &model.User{Email: "r@x.com", Password: "old", ResetPasswordToken: &digest, ResetPasswordExpires: &expires}
	require.NoError(t, repo.Create(u))

	require.NoError(t, repo.UpdatePassword(u.ID, "new-hash"))
	got, err := repo.FindByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", got.Password)
	assert.Nil(t, got.ResetPasswordToken)
	assert.Nil(t, got.ResetPasswordExpires)

	assert.ErrorIs(t, repo.UpdatePassword(uuid.New(), "x"), gorm.ErrRecordNotFound)
}

func TestProductRepoCRUD(t *testing.T) {
	db := testutil.NewDB(t)
	products := NewProductRepo(db)
	suppliers := NewSupplierRepo(db)

	acme := &model.Supplier{Name: "Acme Co"}
	require.NoError(t, suppliers.Create(acme))

	p := &model.Product{Name: "Blue Widget", SKU: "W-1", Price: decimal.RequireFromString("9.99"), Stock: 4, SupplierID: &acme.ID}
	require.NoError(t, products.Create(p))
	require.NoError(t, products.Create(&model.Product{Name: "Gadget", Stock: 1}))

	got, err := products.FindByID(p.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Supplier)
	assert.Equal(t, "Acme Co", got.Supplier.Name)
	assert.True(t, decimal.RequireFromString("9.99").Equal(got.Price))

	list, err := products.FindAll("WIDG")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, p.ID, list[0].ID)

	all, err := products.FindAll("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	none, err := products.FindAll("100%")
	require.NoError(t, err)
	assert.Empty(t, none)

	got.Name = "Red Widget"
	require.NoError(t, products.Update(got))
	got, err = products.FindByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Red Widget", got.Name)

	require.NoError(t, products.Delete(p.ID, "tester"))
	_, err = products.FindByID(p.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, products.Delete(p.ID, "tester"), gorm.ErrRecordNotFound)
}

func TestSupplierRepoDeleteDetachesProducts(t *testing.T) {
	db := testutil.NewDB(t)
	products := NewProductRepo(db)
	suppliers := NewSupplierRepo(db)

	s := &model.Supplier{Name: "Globex"}
	require.NoError(t, suppliers.Create(s))
	p := &model.Product{Name: "Thing", SupplierID: &s.ID}
	require.NoError(t, products.Create(p))

	require.NoError(t, suppliers.Delete(s.ID, "tester"))
	_, err := suppliers.FindByID(s.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	got, err := products.FindByID(p.ID)
	require.NoError(t, err)
	assert.Nil(t, got.SupplierID)
	assert.Nil(t, got.Supplier)

	assert.ErrorIs(t, suppliers.Delete(uuid.New(), "tester"), gorm.ErrRecordNotFound)
}

func TestStockLogsNewestFirst(t *testing.T) {
	db := testutil.NewDB(t)
	products := NewProductRepo(db)
	logs := NewStockLogRepo(db)
	users := NewUserRepo(db)

	u := &model.User{Name: "Ann", Email: "a@x.com", Password: "h"}
	require.NoError(t, users.Create(u))
	p := &model.Product{Name: "Widget", Stock: 10}
	require.NoError(t, products.Create(p))

	require.NoError(t, logs.Create(db, &model.StockLog{ProductID: p.ID, Change: -3, Before: 10, After: 7, Reason: "sale", UserID: &u.ID}))
	time.Sleep(5 * time.Millisecond)
	require.NoError(t, logs.Create(db, &model.StockLog{ProductID: p.ID, Change: 5, Before: 7, After: 12, Reason: "restock", UserID: &u.ID}))

	got, err := logs.FindByProductID(p.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "restock", got[0].Reason)
	assert.Equal(t, "sale", got[1].Reason)
	require.NotNil(t, got[0].User)
	assert.Equal(t, "a@x.com", got[0].User.Email)
	assert.Empty(t, got[0].User.Password)
}

func TestStockLogsAreImmutable(t *testing.T) {
	db := testutil.NewDB(t)
	logs := NewStockLogRepo(db)

	entry := &model.StockLog{ProductID: uuid.New(), Change: 1, Before: 0, After: 1}
	require.NoError(t, logs.Create(db, entry))

	entry.After = 99
	assert.ErrorIs(t, db.Save(entry).Error, model.ErrStockLogImmutable)
	assert.ErrorIs(t, db.Delete(entry).Error, model.ErrStockLogImmutable)
}

func TestDashboardStats(t *testing.T) {
	db := testutil.NewDB(t)
	products := NewProductRepo(db)
	suppliers := NewSupplierRepo(db)
	logs := NewStockLogRepo(db)

	require.NoError(t, suppliers.Create(&model.Supplier{Name: "Acme"}))
	require.NoError(t, products.Create(&model.Product{Name: "A", Stock: 2, Price: decimal.RequireFromString("10.50")}))
	require.NoError(t, products.Create(&model.Product{Name: "B", Stock: 20, Price: decimal.RequireFromString("1.25")}))

	stats, err := logs.GetDashboardStats(10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalProducts)
	assert.EqualValues(t, 1, stats.TotalSuppliers)
	assert.EqualValues(t, 1, stats.LowStockCount)
	assert.True(t, decimal.RequireFromString("46").Equal(stats.TotalValuation), stats.TotalValuation.String())
}

func TestFormatDay(t *testing.T) {
	day := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-10-17", formatDay(day))
	assert.Equal(t, "2026-10-17", formatDay("2026-10-17"))
	assert.Equal(t, "2026-10-17", formatDay([]byte("2026-10-17T00:00:00Z")))
}
