package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	cartrepo "github.com/zeon9405/unikraft/internal/data/repos/cart"
	memberrepo "github.com/zeon9405/unikraft/internal/data/repos/member"
	types "github.com/zeon9405/unikraft/internal/domain"
	"github.com/zeon9405/unikraft/internal/pkg/ctxutil"
	"github.com/zeon9405/unikraft/internal/pkg/logger"
	"github.com/zeon9405/unikraft/internal/services"
)

func newAuthService(t *testing.T) services.AuthService {
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

	if err := db.AutoMigrate(&types.Member{}, &types.Cart{}, &types.CartItem{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	mRepo := memberrepo.NewMemberRepo(db, log)
	cRepo := cartrepo.NewCartRepo(db, log)
	return services.NewAuthService(db, log, mRepo, cRepo, "test-secret", time.Hour)
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	auth := newAuthService(t)
	ctx := context.Background()
	if _, err := auth.SignUp(ctx, "tester", "tester@example.com", "pw1234", "Tester"); err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	token, err := auth.Login(ctx, "tester", "pw1234")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}

	r := gin.New()
	r.Use(NewAuthMiddleware(log, auth).RequireAuth())
	r.GET("/api/me", func(c *gin.Context) {
		rd := ctxutil.GetRequestData(c.Request.Context())
		if rd == nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"login_id": rd.LoginID})
	})

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusUnauthorized)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusUnauthorized)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("unexpected status: got=%d want=%d body=%s", rec.Code, http.StatusOK, rec.Body.String())
		}
	})
}
