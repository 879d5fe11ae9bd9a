package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dangqh/seafresh/config"
	"github.com/dangqh/seafresh/models"
	"github.com/dangqh/seafresh/utils"
)

// GetArticles lists published articles, newest first. GET /api/articles
func GetArticles(c *gin.Context) {
	utils.LogInfo("GetArticles called")

	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Article{}).Where("is_published = ?", true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count articles: %v", err)
		utils.InternalServerError(c, "Failed to fetch articles", nil)
		return
	}
	pagination.SetTotal(total)

	var articles []models.Article
	if err := query.
		Select("id", "title", "slug", "summary", "image", "views", "created_at", "updated_at").
		Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&articles).Error; err != nil {
		utils.LogError("Failed to fetch articles: %v", err)
		utils.InternalServerError(c, "Failed to fetch articles", nil)
		return
	}

	utils.SuccessWithPagination(c, "Articles retrieved successfully", gin.H{"articles": articles}, pagination)
}

// GetArticleBySlug returns one published article and bumps its view
// counter. GET /api/articles/:slug
func GetArticleBySlug(c *gin.Context) {
	slug := c.Param("slug")
	utils.LogInfo("GetArticleBySlug called for slug: %s", slug)

	var article models.Article
	if err := config.DB.Where("slug = ? AND is_published = ?", slug, true).First(&article).Error; err != nil {
		utils.NotFound(c, "Không tìm thấy bài viết")
		return
	}

	if err := config.DB.Model(&article).UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		utils.LogError("Failed to increment article views: %v", err)
	} else {
		article.Views++
	}

	utils.Success(c, "Article retrieved successfully", gin.H{"article": article})
}

// ArticleRequest is the admin create/update payload
type ArticleRequest struct {
	Title       string `json:"title" binding:"required"`
	Summary     string `json:"summary"`
	Content     string `json:"content" binding:"required"`
	Image       string `json:"image"`
	IsPublished *bool  `json:"isPublished"`
}

// AdminListArticles handles GET /api/admin/articles (drafts included)
func AdminListArticles(c *gin.Context) {
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Article{})
	if search := c.Query("search"); search != "" {
		query = query.Where("title ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count articles: %v", err)
		utils.InternalServerError(c, "Failed to fetch articles", nil)
		return
	}
	pagination.SetTotal(total)

	var articles []models.Article
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&articles).Error; err != nil {
		utils.LogError("Failed to fetch articles: %v", err)
		utils.InternalServerError(c, "Failed to fetch articles", nil)
		return
	}

	utils.SuccessWithPagination(c, "Articles retrieved successfully", gin.H{"articles": articles}, pagination)
}

// CreateArticle handles POST /api/admin/articles
func CreateArticle(c *gin.Context) {
	utils.LogInfo("CreateArticle called")

	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Dữ liệu bài viết không hợp lệ", err.Error())
		return
	}

	article := models.Article{
		Title:   req.Title,
		Slug:    uniqueSlug(&models.Article{}, req.Title, 0),
		Summary: req.Summary,
		Content: req.Content,
		Image:   req.Image,
	}
	if req.IsPublished != nil {
		article.IsPublished = *req.IsPublished
	}

	if err := config.DB.Create(&article).Error; err != nil {
		utils.LogError("Failed to create article: %v", err)
		utils.InternalServerError(c, "Failed to create article", nil)
		return
	}

	utils.Created(c, "Article created successfully", gin.H{"article": article})
}

// UpdateArticle handles PUT /api/admin/articles/:id
func UpdateArticle(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid article ID", nil)
		return
	}

	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Dữ liệu bài viết không hợp lệ", err.Error())
		return
	}

	var article models.Article
	if err := config.DB.First(&article, uint(articleID)).Error; err != nil {
		utils.NotFound(c, "Không tìm thấy bài viết")
		return
	}

	if req.Title != article.Title {
		article.Slug = uniqueSlug(&models.Article{}, req.Title, article.ID)
	}
	article.Title = req.Title
	article.Summary = req.Summary
	article.Content = req.Content
	article.Image = req.Image
	if req.IsPublished != nil {
		article.IsPublished = *req.IsPublished
	}

	if err := config.DB.Save(&article).Error; err != nil {
		utils.LogError("Failed to update article: %v", err)
		utils.InternalServerError(c, "Failed to update article", nil)
		return
	}

	utils.Success(c, "Article updated successfully", gin.H{"article": article})
}

// DeleteArticle handles DELETE /api/admin/articles/:id
func DeleteArticle(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid article ID", nil)
		return
	}

	var article models.Article
	if err := config.DB.First(&article, uint(articleID)).Error; err != nil {
		utils.NotFound(c, "Không tìm thấy bài viết")
		return
	}

	if err := config.DB.Delete(&article).Error; err != nil {
		utils.LogError("Failed to delete article: %v", err)
		utils.InternalServerError(c, "Failed to delete article", nil)
		return
	}

	utils.Success(c, "Article deleted successfully", nil)
}
