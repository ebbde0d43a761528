package handlers

import (
	"net/http"

	"Ecommerce/models"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

func CreateCategoryHandler(c *gin.Context, db *gorm.DB) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Name is required"})
		return
	}

	// Best-effort duplicate check by exact name.
	var existing models.Category
	err := db.First(&existing, "name = ?", req.Name).Error
	if err == nil {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": "Category Already Exists",
		})
		return
	}
	if err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error in Category",
			"error":   err.Error(),
		})
		return
	}

	category := models.Category{
		Name: req.Name,
		Slug: slug.Make(req.Name),
	}
	if err := db.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error in Category",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "new category created",
		"category": category,
	})
}

// UpdateCategoryHandler renames a category and regenerates its slug.
func UpdateCategoryHandler(c *gin.Context, db *gorm.DB) {
	categoryID := c.Param("id")

	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error while updating category",
			"error":   err.Error(),
		})
		return
	}

	var category models.Category
	if err := db.First(&category, "id = ?", categoryID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error while updating category",
			"error":   err.Error(),
		})
		return
	}

	category.Name = req.Name
	category.Slug = slug.Make(req.Name)
	if err := db.Save(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error while updating category",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Category Updated Successfully",
		"category": category,
	})
}

func ListCategoriesHandler(c *gin.Context, db *gorm.DB) {
	var categories []models.Category
	if err := db.Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error while getting all categories",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "All Categories List",
		"category": categories,
	})
}

func GetCategoryHandler(c *gin.Context, db *gorm.DB) {
	var category models.Category
	err := db.First(&category, "slug = ?", c.Param("slug")).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error while getting single category",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Get Single Category Successfully",
		"category": category,
	})
}

func DeleteCategoryHandler(c *gin.Context, db *gorm.DB) {
	categoryID := c.Param("id")

	err := db.Delete(&models.Category{}, "id = ?", categoryID).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error while deleting category",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Category Deleted Successfully",
	})
}
