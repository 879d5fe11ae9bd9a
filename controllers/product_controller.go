package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dangqh/seafresh/config"
	"github.com/dangqh/seafresh/models"
	"github.com/dangqh/seafresh/utils"
)

// GetProducts handles the public catalog listing with category, tag and
// search filters. GET /api/products
func GetProducts(c *gin.Context) {
	utils.LogInfo("GetProducts called with query params: %v", c.Request.URL.Query())

	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Product{}).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Variants").
		Preload("WeightOptions").
		Preload("Category")

	if categorySlug := c.Query("category"); categorySlug != "" {
		var category models.Category
		if err := config.DB.Where("slug = ?", categorySlug).First(&category).Error; err != nil {
			utils.LogInfo("Category slug %s not found, returning empty list", categorySlug)
			utils.SuccessWithPagination(c, "Products retrieved successfully", gin.H{"products": []models.Product{}}, pagination)
			return
		}
		query = query.Where("category_id = ?", category.ID)
	}

	if tag := c.Query("tag"); tag != "" {
		query = query.Where("tags ILIKE ?", "%"+tag+"%")
	}

	if search := c.Query("search"); search != "" {
		term := "%" + search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", term, term)
	}

	if c.Query("inStock") == "true" {
		query = query.Where("in_stock = ?", true)
	}

	switch c.DefaultQuery("sort", "newest") {
	case "price_asc":
		query = query.Order("price ASC")
	case "price_desc":
		query = query.Order("price DESC")
	case "best_selling":
		query = query.Order("sold_count DESC")
	default:
		query = query.Order("created_at DESC")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count products: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", nil)
		return
	}
	pagination.SetTotal(total)

	var products []models.Product
	if err := query.Offset(pagination.Offset).Limit(pagination.Limit).Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch products: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", nil)
		return
	}

	attachFlashSalePrices(products)

	utils.LogInfo("Successfully fetched %d products", len(products))
	utils.SuccessWithPagination(c, "Products retrieved successfully", gin.H{"products": products}, pagination)
}

// GetProductBySlug handles the public product detail page. GET /api/products/:slug
func GetProductBySlug(c *gin.Context) {
	slug := c.Param("slug")
	utils.LogInfo("GetProductBySlug called for slug: %s", slug)

	var product models.Product
	if err := config.DB.
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Variants").
		Preload("WeightOptions").
		Preload("Category").
		Where("slug = ?", slug).
		First(&product).Error; err != nil {
		utils.NotFound(c, "Không tìm thấy sản phẩm")
		return
	}

	products := []models.Product{product}
	attachFlashSalePrices(products)

	var related []models.Product
	if err := config.DB.
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("category_id = ? AND id != ?", product.CategoryID, product.ID).
		Order("sold_count DESC").
		Limit(4).
		Find(&related).Error; err != nil {
		utils.LogError("Failed to fetch related products: %v", err)
		related = nil
	}

	utils.Success(c, "Product retrieved successfully", gin.H{
		"product": products[0],
		"related": related,
	})
}

// attachFlashSalePrices decorates the in-memory product list with the
// current running flash-sale price where one applies. The stored price
// fields are left untouched.
func attachFlashSalePrices(products []models.Product) {
	if len(products) == 0 {
		return
	}

	now := time.Now()
	var saleProducts []models.FlashSaleProduct
	if err := config.DB.
		Joins("JOIN flash_sales ON flash_sales.id = flash_sale_products.flash_sale_id").
		Where("flash_sales.deleted_at IS NULL AND flash_sales.is_active = ? AND flash_sales.start_time <= ? AND flash_sales.end_time >= ?", true, now, now).
		Find(&saleProducts).Error; err != nil {
		utils.LogError("Failed to fetch flash sale prices: %v", err)
		return
	}
	if len(saleProducts) == 0 {
		return
	}

	byProduct := make(map[uint]models.FlashSaleProduct, len(saleProducts))
	for _, sp := range saleProducts {
		if sp.Remaining() > 0 {
			byProduct[sp.ProductID] = sp
		}
	}

	for i := range products {
		if sp, ok := byProduct[products[i].ID]; ok {
			products[i].FlashSalePrice = sp.SalePrice
		}
	}
}
