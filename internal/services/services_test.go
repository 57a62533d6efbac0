package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	cartrepo "github.com/zeon9405/unikraft/internal/data/repos/cart"
	memberrepo "github.com/zeon9405/unikraft/internal/data/repos/member"
	orderrepo "github.com/zeon9405/unikraft/internal/data/repos/order"
	productrepo "github.com/zeon9405/unikraft/internal/data/repos/product"
	types "github.com/zeon9405/unikraft/internal/domain"
	"github.com/zeon9405/unikraft/internal/pkg/ctxutil"
	"github.com/zeon9405/unikraft/internal/pkg/logger"
)

// testEnv wires the whole service stack over a fresh in-memory database so
// each test commits freely without leaking into the next.
type testEnv struct {
	db       *gorm.DB
	auth     AuthService
	member   MemberService
	product  ProductService
	cart     CartService
	checkout CheckoutService
	seed     SeedService

	memberRepo  memberrepo.MemberRepo
	cartRepo    cartrepo.CartRepo
	productRepo productrepo.ProductRepo
	orderRepo   orderrepo.OrderRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("raw db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&types.Member{},
		&types.ProductCategory{},
		&types.Product{},
		&types.Cart{},
		&types.CartItem{},
		&types.Order{},
		&types.OrderItem{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}

	mRepo := memberrepo.NewMemberRepo(db, log)
	cRepo := cartrepo.NewCartRepo(db, log)
	pRepo := productrepo.NewProductRepo(db, log)
	catRepo := productrepo.NewCategoryRepo(db, log)
	oRepo := orderrepo.NewOrderRepo(db, log)

	return &testEnv{
		db:          db,
		auth:        NewAuthService(db, log, mRepo, cRepo, "test-secret", time.Hour),
		member:      NewMemberService(db, log, mRepo, cRepo),
		product:     NewProductService(db, log, pRepo, catRepo),
		cart:        NewCartService(db, log, cRepo, pRepo),
		checkout:    NewCheckoutService(db, log, pRepo, oRepo),
		seed:        NewSeedService(db, log, mRepo, cRepo, catRepo, pRepo),
		memberRepo:  mRepo,
		cartRepo:    cRepo,
		productRepo: pRepo,
		orderRepo:   oRepo,
	}
}

// signUpMember registers a member and returns a context carrying their
// verified identity, the way the auth middleware would.
func (env *testEnv) signUpMember(t *testing.T, loginID string) context.Context {
	t.Helper()
	ctx := context.Background()
	memberID, err := env.auth.SignUp(ctx, loginID, loginID+"@example.com", "pw1234", "Tester")
	if err != nil {
		t.Fatalf("SignUp(%s): %v", loginID, err)
	}
	return ctxutil.WithRequestData(ctx, &ctxutil.RequestData{MemberID: memberID, LoginID: loginID})
}

func (env *testEnv) seedProduct(t *testing.T, name string, price, stock int) *types.Product {
	t.Helper()
	p, err := env.product.Create(context.Background(), CreateProductInput{
		Name:         name,
		Price:        price,
		Description:  "desc",
		ImageURL:     "img.jpg",
		CategoryName: "TEA",
		StockQty:     stock,
	})
	if err != nil {
		t.Fatalf("seed product %s: %v", name, err)
	}
	return p
}

func (env *testEnv) stockOf(t *testing.T, productID uuid.UUID) int {
	t.Helper()
	p, err := env.productRepo.GetByID(context.Background(), nil, productID)
	if err != nil {
		t.Fatalf("stockOf: %v", err)
	}
	return p.StockQuantity
}
