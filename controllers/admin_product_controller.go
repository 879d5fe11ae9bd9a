package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dangqh/seafresh/config"
	"github.com/dangqh/seafresh/models"
	"github.com/dangqh/seafresh/utils"
)

// ProductImageRequest is one image entry in a product payload
type ProductImageRequest struct {
	URL      string `json:"url" binding:"required"`
	Position int    `json:"position"`
}

// ProductVariantRequest is one variant entry in a product payload
type ProductVariantRequest struct {
	Name    string  `json:"name" binding:"required"`
	Price   float64 `json:"price"`
	InStock *bool   `json:"inStock"`
}

// ProductWeightOptionRequest is one weight option in a product payload
type ProductWeightOptionRequest struct {
	Name            string  `json:"name" binding:"required"`
	PriceMultiplier float64 `json:"priceMultiplier"`
}

// ProductRequest is the admin create/update payload
type ProductRequest struct {
	Name          string                       `json:"name" binding:"required"`
	Description   string                       `json:"description"`
	Price         float64                      `json:"price" binding:"required"`
	OriginalPrice float64                      `json:"originalPrice"`
	CategoryID    uint                         `json:"categoryId" binding:"required"`
	Images        []ProductImageRequest        `json:"images"`
	Variants      []ProductVariantRequest      `json:"variants"`
	WeightOptions []ProductWeightOptionRequest `json:"weightOptions"`
	InStock       *bool                        `json:"inStock"`
	Tags          string                       `json:"tags"`
	Unit          string                       `json:"unit"`
}

// CreateProduct handles POST /api/admin/products
func CreateProduct(c *gin.Context) {
	utils.LogInfo("CreateProduct called")

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Dữ liệu sản phẩm không hợp lệ", err.Error())
		return
	}

	if req.Price <= 0 {
		utils.BadRequest(c, "Giá sản phẩm phải lớn hơn 0", nil)
		return
	}

	var category models.Category
	if err := config.DB.First(&category, req.CategoryID).Error; err != nil {
		utils.BadRequest(c, "Danh mục không tồn tại", nil)
		return
	}

	product := models.Product{
		Name:          req.Name,
		Slug:          uniqueSlug(&models.Product{}, req.Name, 0),
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		CategoryID:    req.CategoryID,
		InStock:       true,
		Tags:          req.Tags,
		Unit:          req.Unit,
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}
	applyProductChildren(&product, &req)

	if err := config.DB.Create(&product).Error; err != nil {
		utils.LogError("Failed to create product: %v", err)
		utils.InternalServerError(c, "Failed to create product", nil)
		return
	}

	utils.LogInfo("Product created: id=%d slug=%s", product.ID, product.Slug)
	utils.Created(c, "Product created successfully", gin.H{"product": product})
}

// UpdateProduct handles PUT /api/admin/products/:id. Child collections
// are replaced wholesale with the payload's lists.
func UpdateProduct(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}
	utils.LogInfo("UpdateProduct called for id: %d", productID)

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Dữ liệu sản phẩm không hợp lệ", err.Error())
		return
	}

	var product models.Product
	if err := config.DB.First(&product, uint(productID)).Error; err != nil {
		utils.NotFound(c, "Không tìm thấy sản phẩm")
		return
	}

	if req.CategoryID != product.CategoryID {
		var category models.Category
		if err := config.DB.First(&category, req.CategoryID).Error; err != nil {
			utils.BadRequest(c, "Danh mục không tồn tại", nil)
			return
		}
	}

	if req.Name != product.Name {
		product.Slug = uniqueSlug(&models.Product{}, req.Name, product.ID)
	}
	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.OriginalPrice = req.OriginalPrice
	product.CategoryID = req.CategoryID
	product.Tags = req.Tags
	product.Unit = req.Unit
	if req.InStock != nil {
		product.InStock = *req.InStock
	}

	tx := config.DB.Begin()
	for _, child := range []interface{}{&models.ProductImage{}, &models.Variant{}, &models.WeightOption{}} {
		if err := tx.Where("product_id = ?", product.ID).Delete(child).Error; err != nil {
			tx.Rollback()
			utils.LogError("Failed to replace product children: %v", err)
			utils.InternalServerError(c, "Failed to update product", nil)
			return
		}
	}
	applyProductChildren(&product, &req)
	if err := tx.Save(&product).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to update product: %v", err)
		utils.InternalServerError(c, "Failed to update product", nil)
		return
	}
	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit product update: %v", err)
		utils.InternalServerError(c, "Failed to update product", nil)
		return
	}

	utils.Success(c, "Product updated successfully", gin.H{"product": product})
}

// DeleteProduct handles DELETE /api/admin/products/:id (soft delete,
// existing order snapshots keep their copied data)
func DeleteProduct(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}
	utils.LogInfo("DeleteProduct called for id: %d", productID)

	var product models.Product
	if err := config.DB.First(&product, uint(productID)).Error; err != nil {
		utils.NotFound(c, "Không tìm thấy sản phẩm")
		return
	}

	if err := config.DB.Delete(&product).Error; err != nil {
		utils.LogError("Failed to delete product: %v", err)
		utils.InternalServerError(c, "Failed to delete product", nil)
		return
	}

	utils.Success(c, "Product deleted successfully", nil)
}

// AdminGetProduct handles GET /api/admin/products/:id
func AdminGetProduct(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	var product models.Product
	if err := config.DB.
		Preload("Images").
		Preload("Variants").
		Preload("WeightOptions").
		Preload("Category").
		First(&product, uint(productID)).Error; err != nil {
		utils.NotFound(c, "Không tìm thấy sản phẩm")
		return
	}

	utils.Success(c, "Product retrieved successfully", gin.H{"product": product})
}

func applyProductChildren(product *models.Product, req *ProductRequest) {
	product.Images = make([]models.ProductImage, 0, len(req.Images))
	for i, img := range req.Images {
		position := img.Position
		if position == 0 {
			position = i
		}
		product.Images = append(product.Images, models.ProductImage{URL: img.URL, Position: position})
	}

	product.Variants = make([]models.Variant, 0, len(req.Variants))
	for _, v := range req.Variants {
		variant := models.Variant{Name: v.Name, Price: v.Price, InStock: true}
		if v.InStock != nil {
			variant.InStock = *v.InStock
		}
		product.Variants = append(product.Variants, variant)
	}

	product.WeightOptions = make([]models.WeightOption, 0, len(req.WeightOptions))
	for _, w := range req.WeightOptions {
		multiplier := w.PriceMultiplier
		if multiplier <= 0 {
			multiplier = 1
		}
		product.WeightOptions = append(product.WeightOptions, models.WeightOption{Name: w.Name, PriceMultiplier: multiplier})
	}
}
