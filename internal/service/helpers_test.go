package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go-inventory-pro/internal/mailer"
	"go-inventory-pro/internal/repository"
	"go-inventory-pro/internal/testutil"
	"go-inventory-pro/pkg/jwt"

	"gorm.io/gorm"
)

type recordingMailer struct {
	mu   sync.Mutex
	sent []mailer.Message
	fail bool
}

func (m *recordingMailer) Send(_ context.Context, msg mailer.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("relay down")
	}
	m.sent = append(m.sent, msg)
	return nil
}

type recordingNotifier struct {
	mu      sync.Mutex
	actions []string
}

func (n *recordingNotifier) Notify(_ string, action string, _ interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.actions = append(n.actions, action)
}

type fixture struct {
	db        *gorm.DB
	users     repository.UserRepository
	products  repository.ProductRepository
	suppliers repository.SupplierRepository
	logs      repository.StockLogRepository
	tokens    *jwt.Manager
	mail      *recordingMailer
	notifier  *recordingNotifier
}

func newFixture(t *testing.T) *fixture {
	db := testutil.NewDB(t)
	return &fixture{
		db:        db,
		users:     repository.NewUserRepo(db),
		products:  repository.NewProductRepo(db),
		suppliers: repository.NewSupplierRepo(db),
		logs:      repository.NewStockLogRepo(db),
		tokens:    jwt.NewManager("test-secret", 0),
		mail:      &recordingMailer{},
		notifier:  &recordingNotifier{},
	}
}

func (f *fixture) auth() AuthService {
	return NewAuthService(f.users, f.tokens, f.mail, "http://app.local/")
}

func (f *fixture) productService() ProductService {
	return NewProductService(f.products, f.suppliers, f.notifier)
}

func (f *fixture) stockService() StockService {
	return NewStockService(f.products, f.logs, f.db, f.notifier)
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }
