package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductLifecycle(t *testing.T) {
	f := newFixture(t)
	svc := f.productService()
	actor := uuid.New()

	supplier, err := NewSupplierService(f.suppliers).CreateSupplier(&CreateSupplierRequest{Name: "Acme"}, actor)
	require.NoError(t, err)

	p, err := svc.CreateProduct(&CreateProductRequest{
		Name:       "  Widget ",
		SKU:        "W-1",
		SupplierID: strPtr(supplier.ID.String()),
		Price:      decimal.RequireFromString("4.50"),
		Stock:      10,
	}, actor)
	require.NoError(t, err)
	assert.Equal(t, "Widget", p.Name)
	require.NotNil(t, p.Supplier)
	assert.Equal(t, "Acme", p.Supplier.Name)
	assert.Equal(t, actor.String(), p.CreatedBy)

	updated, err := svc.UpdateProduct(p.ID, &UpdateProductRequest{Stock: intPtr(3), SupplierID: strPtr("")}, actor)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Stock)
	assert.Equal(t, "Widget", updated.Name)
	assert.Equal(t, "W-1", updated.SKU)
	assert.Nil(t, updated.SupplierID)

	require.NoError(t, svc.DeleteProduct(p.ID, actor))
	_, err = svc.GetProduct(p.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.ErrorIs(t, svc.DeleteProduct(p.ID, actor), ErrProductNotFound)

	assert.Equal(t, []string{"product_created", "product_updated", "product_deleted"}, f.notifier.actions)
}

func TestCreateProductValidation(t *testing.T) {
	f := newFixture(t)
	svc := f.productService()

	var vErr *ValidationError
	_, err := svc.CreateProduct(&CreateProductRequest{Name: "   "}, uuid.New())
	assert.ErrorAs(t, err, &vErr)

	_, err = svc.CreateProduct(&CreateProductRequest{Name: "A", Stock: -1}, uuid.New())
	assert.ErrorAs(t, err, &vErr)

	_, err = svc.CreateProduct(&CreateProductRequest{Name: "A", Price: decimal.NewFromInt(-2)}, uuid.New())
	assert.ErrorAs(t, err, &vErr)

	_, err = svc.CreateProduct(&CreateProductRequest{Name: "A", SupplierID: strPtr("nope")}, uuid.New())
	assert.ErrorAs(t, err, &vErr)

	_, err = svc.CreateProduct(&CreateProductRequest{Name: "A", SupplierID: strPtr(uuid.NewString())}, uuid.New())
	assert.ErrorAs(t, err, &vErr)
}

func TestUpdateMissingProduct(t *testing.T) {
	svc := newFixture(t).productService()
	_, err := svc.UpdateProduct(uuid.New(), &UpdateProductRequest{Name: strPtr("x")}, uuid.New())
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestListProductsFilter(t *testing.T) {
	svc := newFixture(t).productService()
	actor := uuid.New()
	for _, name := range []string{"Blue Widget", "Red widget", "Gadget"} {
		_, err := svc.CreateProduct(&CreateProductRequest{Name: name}, actor)
		require.NoError(t, err)
	}

	got, err := svc.ListProducts("widget")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = svc.ListProducts("")
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestSupplierLifecycle(t *testing.T) {
	f := newFixture(t)
	svc := NewSupplierService(f.suppliers)
	actor := uuid.New()

	var vErr *ValidationError
	_, err := svc.CreateSupplier(&CreateSupplierRequest{Name: " "}, actor)
	assert.ErrorAs(t, err, &vErr)
	_, err = svc.CreateSupplier(&CreateSupplierRequest{Name: "Bad", ContactEmail: "not-mail"}, actor)
	assert.ErrorAs(t, err, &vErr)

	s, err := svc.CreateSupplier(&CreateSupplierRequest{Name: "Globex", ContactEmail: "g@example.com", Phone: "+1 555"}, actor)
	require.NoError(t, err)

	s, err = svc.UpdateSupplier(s.ID, &UpdateSupplierRequest{Notes: strPtr("net 30")}, actor)
	require.NoError(t, err)
	assert.Equal(t, "Globex", s.Name)
	assert.Equal(t, "net 30", s.Notes)

	list, err := svc.ListSuppliers("GLOB")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.DeleteSupplier(s.ID, actor))
	_, err = svc.GetSupplier(s.ID)
	assert.ErrorIs(t, err, ErrSupplierNotFound)
	_, err = svc.UpdateSupplier(s.ID, &UpdateSupplierRequest{Name: strPtr("x")}, actor)
	assert.ErrorIs(t, err, ErrSupplierNotFound)
}
