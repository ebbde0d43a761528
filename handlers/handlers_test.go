package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"testing"

	"Ecommerce/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret")
	os.Exit(m.Run())
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("unable to open test database: %v", err)
	}

	// one connection, or every pooled conn gets its own empty :memory: db
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unable to get database handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		t.Fatalf("unable to migrate test database: %v", err)
	}

	return db
}

func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func createTestUser(t *testing.T, db *gorm.DB, email string, role int) *models.User {
	t.Helper()

	hashed, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("unable to hash password: %v", err)
	}

	user := models.User{
		Name:     "Test User",
		Email:    email,
		Password: hashed,
		Phone:    "1234567890",
		Address:  "Test Address",
		Answer:   "Test Answer",
		Role:     role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("unable to create test user: %v", err)
	}
	return &user
}

func createTestCategory(t *testing.T, db *gorm.DB, name, categorySlug string) *models.Category {
	t.Helper()

	category := models.Category{Name: name, Slug: categorySlug}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("unable to create test category: %v", err)
	}
	return &category
}

func createTestProduct(t *testing.T, db *gorm.DB, name string, price float64, categoryID uint) *models.Product {
	t.Helper()

	product := models.Product{
		Name:        name,
		Slug:        name,
		Description: "Description of " + name,
		Price:       price,
		CategoryID:  categoryID,
		Quantity:    10,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("unable to create test product: %v", err)
	}
	return &product
}

func performJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeInto(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("unable to decode response %q: %v", recorder.Body.String(), err)
	}
	return body
}

// signedInRouter wires a handler behind a stub that injects the user id the
// way RequireSignIn does.
func signedInRouter(userID uint) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("UserID", userID)
		c.Next()
	})
	return router
}
