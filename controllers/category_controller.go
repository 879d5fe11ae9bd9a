package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dangqh/seafresh/config"
	"github.com/dangqh/seafresh/models"
	"github.com/dangqh/seafresh/utils"
)

// GetCategories handles the public category listing, ordered by display
// rank. GET /api/categories
func GetCategories(c *gin.Context) {
	utils.LogInfo("GetCategories called")

	var categories []models.Category
	if err := config.DB.
		Where("is_active = ?", true).
		Order("display_order ASC, name ASC").
		Find(&categories).Error; err != nil {
		utils.LogError("Failed to fetch categories: %v", err)
		utils.InternalServerError(c, "Failed to fetch categories", nil)
		return
	}

	utils.Success(c, "Categories retrieved successfully", gin.H{"categories": categories})
}

// GetCategoryBySlug returns one category plus its products, paginated.
// GET /api/categories/:slug
func GetCategoryBySlug(c *gin.Context) {
	slug := c.Param("slug")
	utils.LogInfo("GetCategoryBySlug called for slug: %s", slug)

	var category models.Category
	if err := config.DB.Where("slug = ? AND is_active = ?", slug, true).First(&category).Error; err != nil {
		utils.NotFound(c, "Không tìm thấy danh mục")
		return
	}

	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Product{}).
		Preload("Images").
		Where("category_id = ?", category.ID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count category products: %v", err)
		utils.InternalServerError(c, "Failed to fetch category", nil)
		return
	}
	pagination.SetTotal(total)

	var products []models.Product
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch category products: %v", err)
		utils.InternalServerError(c, "Failed to fetch category", nil)
		return
	}
	attachFlashSalePrices(products)

	utils.SuccessWithPagination(c, "Category retrieved successfully", gin.H{
		"category": category,
		"products": products,
	}, pagination)
}

// CategoryRequest is the admin create/update payload
type CategoryRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	DisplayOrder int    `json:"displayOrder"`
	IsActive     *bool  `json:"isActive"`
	ParentID     *uint  `json:"parentId"`
}

// AdminListCategories handles GET /api/admin/categories (includes
// inactive ones)
func AdminListCategories(c *gin.Context) {
	var categories []models.Category
	if err := config.DB.Order("display_order ASC, name ASC").Find(&categories).Error; err != nil {
		utils.LogError("Failed to fetch categories: %v", err)
		utils.InternalServerError(c, "Failed to fetch categories", nil)
		return
	}
	utils.Success(c, "Categories retrieved successfully", gin.H{"categories": categories})
}

// CreateCategory handles POST /api/admin/categories
func CreateCategory(c *gin.Context) {
	utils.LogInfo("CreateCategory called")

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Dữ liệu danh mục không hợp lệ", err.Error())
		return
	}

	if req.ParentID != nil {
		var parent models.Category
		if err := config.DB.First(&parent, *req.ParentID).Error; err != nil {
			utils.BadRequest(c, "Danh mục cha không tồn tại", nil)
			return
		}
	}

	category := models.Category{
		Name:         req.Name,
		Slug:         uniqueSlug(&models.Category{}, req.Name, 0),
		Description:  req.Description,
		Image:        req.Image,
		DisplayOrder: req.DisplayOrder,
		IsActive:     true,
		ParentID:     req.ParentID,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := config.DB.Create(&category).Error; err != nil {
		utils.LogError("Failed to create category: %v", err)
		utils.InternalServerError(c, "Failed to create category", nil)
		return
	}

	utils.Created(c, "Category created successfully", gin.H{"category": category})
}

// UpdateCategory handles PUT /api/admin/categories/:id
func UpdateCategory(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid category ID", nil)
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Dữ liệu danh mục không hợp lệ", err.Error())
		return
	}

	var category models.Category
	if err := config.DB.First(&category, uint(categoryID)).Error; err != nil {
		utils.NotFound(c, "Không tìm thấy danh mục")
		return
	}

	if req.ParentID != nil {
		if *req.ParentID == category.ID {
			utils.BadRequest(c, "Danh mục không thể là cha của chính nó", nil)
			return
		}
		var parent models.Category
		if err := config.DB.First(&parent, *req.ParentID).Error; err != nil {
			utils.BadRequest(c, "Danh mục cha không tồn tại", nil)
			return
		}
	}

	if req.Name != category.Name {
		category.Slug = uniqueSlug(&models.Category{}, req.Name, category.ID)
	}
	category.Name = req.Name
	category.Description = req.Description
	category.Image = req.Image
	category.DisplayOrder = req.DisplayOrder
	category.ParentID = req.ParentID
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := config.DB.Save(&category).Error; err != nil {
		utils.LogError("Failed to update category: %v", err)
		utils.InternalServerError(c, "Failed to update category", nil)
		return
	}

	utils.Success(c, "Category updated successfully", gin.H{"category": category})
}

// DeleteCategory handles DELETE /api/admin/categories/:id. Refused
// while products still reference the category.
func DeleteCategory(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid category ID", nil)
		return
	}

	var category models.Category
	if err := config.DB.First(&category, uint(categoryID)).Error; err != nil {
		utils.NotFound(c, "Không tìm thấy danh mục")
		return
	}

	var productCount int64
	if err := config.DB.Model(&models.Product{}).Where("category_id = ?", category.ID).Count(&productCount).Error; err != nil {
		utils.LogError("Failed to count category products: %v", err)
		utils.InternalServerError(c, "Failed to delete category", nil)
		return
	}
	if productCount > 0 {
		utils.BadRequest(c, "Không thể xóa danh mục đang chứa sản phẩm", gin.H{"product_count": productCount})
		return
	}

	if err := config.DB.Delete(&category).Error; err != nil {
		utils.LogError("Failed to delete category: %v", err)
		utils.InternalServerError(c, "Failed to delete category", nil)
		return
	}

	utils.Success(c, "Category deleted successfully", nil)
}
