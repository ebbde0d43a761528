package handlers

import (
	"net/http"
	"testing"

	"Ecommerce/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func categoryRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.POST("/category", func(c *gin.Context) {
		CreateCategoryHandler(c, db)
	})
	router.PUT("/category/:id", func(c *gin.Context) {
		UpdateCategoryHandler(c, db)
	})
	router.GET("/category", func(c *gin.Context) {
		ListCategoriesHandler(c, db)
	})
	router.GET("/category/:slug", func(c *gin.Context) {
		GetCategoryHandler(c, db)
	})
	router.DELETE("/category/:id", func(c *gin.Context) {
		DeleteCategoryHandler(c, db)
	})
	return router
}

func TestCreateCategoryMissingName(t *testing.T) {
	db := setupTestDB(t)
	router := categoryRouter(db)

	recorder := performJSON(router, http.MethodPost, "/category", map[string]string{"name": ""})
	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", recorder.Code, http.StatusUnauthorized)
	}
	body := decodeBody(t, recorder)
	if body["message"] != "Name is required" {
		t.Errorf("message = %v", body["message"])
	}
}

func TestCreateCategoryDuplicate(t *testing.T) {
	db := setupTestDB(t)
	createTestCategory(t, db, "Electronics", "electronics")
	router := categoryRouter(db)

	recorder := performJSON(router, http.MethodPost, "/category", map[string]string{"name": "Electronics"})
	if recorder.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", recorder.Code, http.StatusOK)
	}
	body := decodeBody(t, recorder)
	if body["success"] != false || body["message"] != "Category Already Exists" {
		t.Errorf("body = %v", body)
	}

	var count int64
	db.Model(&models.Category{}).Where("name = ?", "Electronics").Count(&count)
	if count != 1 {
		t.Errorf("duplicate category persisted, count = %d", count)
	}
}

func TestCreateCategoryDerivesSlug(t *testing.T) {
	db := setupTestDB(t)
	router := categoryRouter(db)

	recorder := performJSON(router, http.MethodPost, "/category", map[string]string{"name": "Home Garden"})
	if recorder.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", recorder.Code, recorder.Body.String())
	}

	var category models.Category
	if err := db.First(&category, "name = ?", "Home Garden").Error; err != nil {
		t.Fatalf("category not persisted: %v", err)
	}
	if category.Slug != "home-garden" {
		t.Errorf("slug = %q, want %q", category.Slug, "home-garden")
	}
}

func TestUpdateCategoryRegeneratesSlug(t *testing.T) {
	db := setupTestDB(t)
	category := createTestCategory(t, db, "Electronics", "electronics")
	router := categoryRouter(db)

	recorder := performJSON(router, http.MethodPut, "/category/1", map[string]string{"name": "Updated Name"})
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", recorder.Code, recorder.Body.String())
	}
	body := decodeBody(t, recorder)
	if body["message"] != "Category Updated Successfully" {
		t.Errorf("message = %v", body["message"])
	}

	var reloaded models.Category
	db.First(&reloaded, category.ID)
	if reloaded.Name != "Updated Name" || reloaded.Slug != "updated-name" {
		t.Errorf("category = %+v", reloaded)
	}
}

func TestListAndGetCategory(t *testing.T) {
	db := setupTestDB(t)
	createTestCategory(t, db, "Category 1", "category-1")
	createTestCategory(t, db, "Category 2", "category-2")
	router := categoryRouter(db)

	recorder := performJSON(router, http.MethodGet, "/category", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("list: status = %d", recorder.Code)
	}
	body := decodeBody(t, recorder)
	if body["message"] != "All Categories List" {
		t.Errorf("message = %v", body["message"])
	}
	if categories, ok := body["category"].([]interface{}); !ok || len(categories) != 2 {
		t.Errorf("category = %v", body["category"])
	}

	recorder = performJSON(router, http.MethodGet, "/category/category-2", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("get: status = %d", recorder.Code)
	}
	body = decodeBody(t, recorder)
	if body["message"] != "Get Single Category Successfully" {
		t.Errorf("message = %v", body["message"])
	}
}

func TestDeleteCategory(t *testing.T) {
	db := setupTestDB(t)
	category := createTestCategory(t, db, "Electronics", "electronics")
	router := categoryRouter(db)

	recorder := performJSON(router, http.MethodDelete, "/category/1", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", recorder.Code, recorder.Body.String())
	}
	body := decodeBody(t, recorder)
	if body["message"] != "Category Deleted Successfully" {
		t.Errorf("message = %v", body["message"])
	}

	var count int64
	db.Model(&models.Category{}).Where("id = ?", category.ID).Count(&count)
	if count != 0 {
		t.Error("category still present after delete")
	}
}
