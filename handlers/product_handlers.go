package handlers

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"Ecommerce/models"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Photo uploads above this size are rejected before anything is persisted.
const maxPhotoBytes = 1000000

const productsPerPage = 6

type productForm struct {
	Name        string
	Description string
	Price       float64
	CategoryID  uint
	Quantity    uint
	Shipping    bool
	Photo       []byte
	PhotoType   string
}

// bindProductForm reads the multipart fields and enforces the original's
// per-field validation messages. A non-nil gin.H is the error response body.
func bindProductForm(c *gin.Context) (*productForm, gin.H) {
	form := &productForm{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
	}

	if form.Name == "" {
		return nil, gin.H{"error": "Name is Required"}
	}
	if form.Description == "" {
		return nil, gin.H{"error": "Description is Required"}
	}

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil || price <= 0 {
		return nil, gin.H{"error": "Price is Required"}
	}
	form.Price = price

	categoryID, err := strconv.ParseUint(c.PostForm("category"), 10, 32)
	if err != nil || categoryID == 0 {
		return nil, gin.H{"error": "Category is Required"}
	}
	form.CategoryID = uint(categoryID)

	quantity, err := strconv.ParseUint(c.PostForm("quantity"), 10, 32)
	if err != nil || quantity == 0 {
		return nil, gin.H{"error": "Quantity is Required"}
	}
	form.Quantity = uint(quantity)

	form.Shipping = c.PostForm("shipping") == "1" || c.PostForm("shipping") == "true"

	file, err := c.FormFile("photo")
	if err == nil && file != nil {
		if file.Size > maxPhotoBytes {
			return nil, gin.H{"error": "photo is Required and should be less then 1mb"}
		}
		src, err := file.Open()
		if err != nil {
			return nil, gin.H{"error": "photo is Required and should be less then 1mb"}
		}
		defer src.Close()
		data, err := io.ReadAll(src)
		if err != nil {
			return nil, gin.H{"error": "photo is Required and should be less then 1mb"}
		}
		form.Photo = data
		form.PhotoType = file.Header.Get("Content-Type")
	}

	return form, nil
}

func CreateProductHandler(c *gin.Context, db *gorm.DB, rdb *redis.Client) {
	form, errBody := bindProductForm(c)
	if errBody != nil {
		c.JSON(http.StatusInternalServerError, errBody)
		return
	}

	product := models.Product{
		Name:        form.Name,
		Slug:        slug.Make(form.Name),
		Description: form.Description,
		Price:       form.Price,
		CategoryID:  form.CategoryID,
		Quantity:    form.Quantity,
		Shipping:    form.Shipping,
		Photo:       form.Photo,
		PhotoType:   form.PhotoType,
	}
	if err := db.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error in creating product",
			"error":   err.Error(),
		})
		return
	}

	if err := cacheProduct(c, rdb, &product); err != nil {
		// a stale cache gets reseeded on the next listing read
		_ = refreshProductCache(c, rdb, db)
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Product Created Successfully",
		"products": product,
	})
}

func UpdateProductHandler(c *gin.Context, db *gorm.DB, rdb *redis.Client) {
	productID := c.Param("pid")

	form, errBody := bindProductForm(c)
	if errBody != nil {
		c.JSON(http.StatusInternalServerError, errBody)
		return
	}

	var product models.Product
	if err := db.First(&product, "id = ?", productID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error in updating product",
			"error":   err.Error(),
		})
		return
	}

	product.Name = form.Name
	product.Slug = slug.Make(form.Name)
	product.Description = form.Description
	product.Price = form.Price
	product.CategoryID = form.CategoryID
	product.Quantity = form.Quantity
	product.Shipping = form.Shipping
	if form.Photo != nil {
		product.Photo = form.Photo
		product.PhotoType = form.PhotoType
	}

	if err := db.Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error in updating product",
			"error":   err.Error(),
		})
		return
	}

	if err := uncacheProduct(c, rdb, product.ID); err == nil {
		_ = cacheProduct(c, rdb, &product)
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Product Updated Successfully",
		"products": product,
	})
}

func DeleteProductHandler(c *gin.Context, db *gorm.DB, rdb *redis.Client) {
	productID := c.Param("pid")

	var product models.Product
	if err := db.Omit("photo").First(&product, "id = ?", productID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error while deleting product",
			"error":   err.Error(),
		})
		return
	}

	if err := db.Delete(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error while deleting product",
			"error":   err.Error(),
		})
		return
	}

	_ = uncacheProduct(c, rdb, product.ID)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product Deleted successfully",
	})
}

// GetProductsHandler is the capped catalog listing, newest first, no photos.
func GetProductsHandler(c *gin.Context, db *gorm.DB) {
	var products []models.Product
	err := db.
		Omit("photo").
		Preload("Category").
		Order("created_at DESC").
		Limit(12).
		Find(&products).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error in getting products",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"countTotal": len(products),
		"message":    "All Products",
		"products":   products,
	})
}

func GetProductHandler(c *gin.Context, db *gorm.DB) {
	var product models.Product
	err := db.
		Omit("photo").
		Preload("Category").
		First(&product, "slug = ?", c.Param("slug")).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error while getting single product",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Single Product Fetched",
		"product": product,
	})
}

// ProductPhotoHandler streams the stored binary with its content type.
func ProductPhotoHandler(c *gin.Context, db *gorm.DB) {
	var product models.Product
	err := db.
		Select("id", "photo", "photo_type").
		First(&product, "id = ?", c.Param("pid")).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Photo not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error while getting photo",
			"error":   err.Error(),
		})
		return
	}

	if len(product.Photo) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Photo not found",
		})
		return
	}

	c.Data(http.StatusOK, product.PhotoType, product.Photo)
}

// ProductFiltersHandler narrows the catalog by category set and/or an
// inclusive price range. Empty inputs mean an unfiltered find.
func ProductFiltersHandler(c *gin.Context, db *gorm.DB) {
	var req struct {
		Checked []uint    `json:"checked"`
		Radio   []float64 `json:"radio"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Error While Filtering Products",
			"error":   err.Error(),
		})
		return
	}

	query := db.Omit("photo")
	if len(req.Checked) > 0 {
		query = query.Where("category_id IN ?", req.Checked)
	}
	if len(req.Radio) == 2 {
		query = query.Where("price >= ? AND price <= ?", req.Radio[0], req.Radio[1])
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Error While Filtering Products",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"products": products,
	})
}

func ProductCountHandler(c *gin.Context, db *gorm.DB, rdb *redis.Client) {
	total := rdb.ZCard(c, productsCacheKey).Val()
	if total == 0 {
		if err := db.Model(&models.Product{}).Count(&total).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Error in product count",
				"error":   err.Error(),
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"total":   total,
	})
}

// ProductListHandler is the 1-indexed paginated listing backed by the cache.
func ProductListHandler(c *gin.Context, db *gorm.DB, rdb *redis.Client) {
	page, err := strconv.Atoi(c.Param("page"))
	if err != nil || page < 1 {
		page = 1
	}

	products, err := cachedProductPage(c, rdb, db, (page-1)*productsPerPage, productsPerPage)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Error in per page ctrl",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"products": products,
	})
}

// SearchProductHandler matches the keyword against name or description,
// case-insensitively, photos excluded.
func SearchProductHandler(c *gin.Context, db *gorm.DB) {
	keyword := "%" + strings.ToLower(c.Param("keyword")) + "%"

	var products []models.Product
	err := db.
		Omit("photo").
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", keyword, keyword).
		Find(&products).Error
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Error In Search Product API",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, products)
}

// RelatedProductHandler lists up to three products sharing the category,
// excluding the product itself.
func RelatedProductHandler(c *gin.Context, db *gorm.DB) {
	var products []models.Product
	err := db.
		Omit("photo").
		Preload("Category").
		Where("category_id = ? AND id <> ?", c.Param("cid"), c.Param("pid")).
		Limit(3).
		Find(&products).Error
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Error while getting related products",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"products": products,
	})
}

// ProductCategoryHandler lists the products of the category named by slug.
func ProductCategoryHandler(c *gin.Context, db *gorm.DB) {
	var category models.Category
	err := db.First(&category, "slug = ?", c.Param("slug")).Error
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Error While Getting products",
			"error":   err.Error(),
		})
		return
	}

	var products []models.Product
	err = db.
		Omit("photo").
		Preload("Category").
		Where("category_id = ?", category.ID).
		Find(&products).Error
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Error While Getting products",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"category": category,
		"products": products,
	})
}
