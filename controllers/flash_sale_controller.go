package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dangqh/seafresh/config"
	"github.com/dangqh/seafresh/models"
	"github.com/dangqh/seafresh/utils"
)

// GetRunningFlashSale returns the currently running sale with its
// products, or an empty payload outside any sale window.
// GET /api/flash-sales/current
func GetRunningFlashSale(c *gin.Context) {
	utils.LogInfo("GetRunningFlashSale called")

	now := time.Now()
	var sale models.FlashSale
	err := config.DB.
		Preload("Products.Product", func(db *gorm.DB) *gorm.DB {
			return db.Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") })
		}).
		Where("is_active = ? AND start_time <= ? AND end_time >= ?", true, now, now).
		Order("start_time DESC").
		First(&sale).Error
	if err != nil {
		utils.Success(c, "No flash sale running", gin.H{"flash_sale": nil})
		return
	}

	utils.Success(c, "Flash sale retrieved successfully", gin.H{"flash_sale": sale})
}

// FlashSaleProductRequest is one sale line in the admin payload
type FlashSaleProductRequest struct {
	ProductID uint    `json:"productId" binding:"required"`
	SalePrice float64 `json:"salePrice" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required"`
}

// FlashSaleRequest is the admin create/update payload
type FlashSaleRequest struct {
	Name      string                    `json:"name" binding:"required"`
	StartTime time.Time                 `json:"startTime" binding:"required"`
	EndTime   time.Time                 `json:"endTime" binding:"required"`
	IsActive  *bool                     `json:"isActive"`
	Products  []FlashSaleProductRequest `json:"products" binding:"required"`
}

func (r *FlashSaleRequest) validate() string {
	if !r.EndTime.After(r.StartTime) {
		return "Thời gian kết thúc phải sau thời gian bắt đầu"
	}
	if len(r.Products) == 0 {
		return "Flash sale phải có ít nhất một sản phẩm"
	}
	for _, p := range r.Products {
		if p.SalePrice <= 0 || p.Quantity <= 0 {
			return "Giá khuyến mãi và số lượng phải lớn hơn 0"
		}
	}
	return ""
}

// buildFlashSaleProducts resolves product references and captures the
// original price at setup time
func buildFlashSaleProducts(reqs []FlashSaleProductRequest) ([]models.FlashSaleProduct, string) {
	products := make([]models.FlashSaleProduct, 0, len(reqs))
	for _, p := range reqs {
		var product models.Product
		if err := config.DB.First(&product, p.ProductID).Error; err != nil {
			return nil, "Sản phẩm không tồn tại: " + strconv.FormatUint(uint64(p.ProductID), 10)
		}
		products = append(products, models.FlashSaleProduct{
			ProductID:     p.ProductID,
			SalePrice:     p.SalePrice,
			OriginalPrice: product.Price,
			Quantity:      p.Quantity,
		})
	}
	return products, ""
}

// AdminListFlashSales handles GET /api/admin/flash-sales
func AdminListFlashSales(c *gin.Context) {
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.FlashSale{})
	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count flash sales: %v", err)
		utils.InternalServerError(c, "Failed to fetch flash sales", nil)
		return
	}
	pagination.SetTotal(total)

	var sales []models.FlashSale
	if err := query.Preload("Products").
		Order("start_time DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&sales).Error; err != nil {
		utils.LogError("Failed to fetch flash sales: %v", err)
		utils.InternalServerError(c, "Failed to fetch flash sales", nil)
		return
	}

	utils.SuccessWithPagination(c, "Flash sales retrieved successfully", gin.H{"flash_sales": sales}, pagination)
}

// CreateFlashSale handles POST /api/admin/flash-sales
func CreateFlashSale(c *gin.Context) {
	utils.LogInfo("CreateFlashSale called")

	var req FlashSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Dữ liệu flash sale không hợp lệ", err.Error())
		return
	}
	if msg := req.validate(); msg != "" {
		utils.BadRequest(c, msg, nil)
		return
	}

	products, msg := buildFlashSaleProducts(req.Products)
	if msg != "" {
		utils.BadRequest(c, msg, nil)
		return
	}

	sale := models.FlashSale{
		Name:      req.Name,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		IsActive:  true,
		Products:  products,
	}
	if req.IsActive != nil {
		sale.IsActive = *req.IsActive
	}

	if err := config.DB.Create(&sale).Error; err != nil {
		utils.LogError("Failed to create flash sale: %v", err)
		utils.InternalServerError(c, "Failed to create flash sale", nil)
		return
	}

	utils.LogInfo("Flash sale created: id=%d name=%s", sale.ID, sale.Name)
	utils.Created(c, "Flash sale created successfully", gin.H{"flash_sale": sale})
}

// UpdateFlashSale handles PUT /api/admin/flash-sales/:id. The product
// list is replaced wholesale; accumulated sold counts on replaced lines
// are discarded.
func UpdateFlashSale(c *gin.Context) {
	saleID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid flash sale ID", nil)
		return
	}

	var req FlashSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Dữ liệu flash sale không hợp lệ", err.Error())
		return
	}
	if msg := req.validate(); msg != "" {
		utils.BadRequest(c, msg, nil)
		return
	}

	var sale models.FlashSale
	if err := config.DB.First(&sale, uint(saleID)).Error; err != nil {
		utils.NotFound(c, "Không tìm thấy flash sale")
		return
	}

	products, msg := buildFlashSaleProducts(req.Products)
	if msg != "" {
		utils.BadRequest(c, msg, nil)
		return
	}

	sale.Name = req.Name
	sale.StartTime = req.StartTime
	sale.EndTime = req.EndTime
	if req.IsActive != nil {
		sale.IsActive = *req.IsActive
	}

	tx := config.DB.Begin()
	if err := tx.Where("flash_sale_id = ?", sale.ID).Delete(&models.FlashSaleProduct{}).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to replace flash sale products: %v", err)
		utils.InternalServerError(c, "Failed to update flash sale", nil)
		return
	}
	sale.Products = products
	if err := tx.Save(&sale).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to update flash sale: %v", err)
		utils.InternalServerError(c, "Failed to update flash sale", nil)
		return
	}
	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit flash sale update: %v", err)
		utils.InternalServerError(c, "Failed to update flash sale", nil)
		return
	}

	utils.Success(c, "Flash sale updated successfully", gin.H{"flash_sale": sale})
}

// DeleteFlashSale handles DELETE /api/admin/flash-sales/:id
func DeleteFlashSale(c *gin.Context) {
	saleID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid flash sale ID", nil)
		return
	}

	var sale models.FlashSale
	if err := config.DB.First(&sale, uint(saleID)).Error; err != nil {
		utils.NotFound(c, "Không tìm thấy flash sale")
		return
	}

	if err := config.DB.Delete(&sale).Error; err != nil {
		utils.LogError("Failed to delete flash sale: %v", err)
		utils.InternalServerError(c, "Failed to delete flash sale", nil)
		return
	}

	utils.Success(c, "Flash sale deleted successfully", nil)
}
