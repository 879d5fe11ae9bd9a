package controllers

import (
	"fmt"
	"time"

	"github.com/dangqh/seafresh/config"
	"github.com/dangqh/seafresh/models"
	"github.com/dangqh/seafresh/utils"
	"github.com/gin-gonic/gin"
)

const statisticsCacheTTL = 2 * time.Minute

// StatisticsResponse is the admin statistics payload
type StatisticsResponse struct {
	Period struct {
		Kind  string `json:"kind"`
		Start string `json:"start"`
		End   string `json:"end"`
	} `json:"period"`
	Revenue struct {
		Current  float64 `json:"current"`
		Previous float64 `json:"previous"`
		Growth   float64 `json:"growth"`
	} `json:"revenue"`
	Orders struct {
		Current  int     `json:"current"`
		Previous int     `json:"previous"`
		Growth   float64 `json:"growth"`
	} `json:"orders"`
	NewUsers struct {
		Current  int64   `json:"current"`
		Previous int64   `json:"previous"`
		Growth   float64 `json:"growth"`
	} `json:"new_users"`
	TopProducts     []ProductStat  `json:"top_products"`
	StatusBreakdown map[string]int `json:"status_breakdown"`
	Chart           []ChartBucket  `json:"chart"`
}

// GetStatistics aggregates orders and users for a calendar period and
// its predecessor. GET /api/admin/statistics?period=&date=
func GetStatistics(c *gin.Context) {
	utils.LogInfo("GetStatistics called")

	kind := c.DefaultQuery("period", "day")
	anchor := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			utils.BadRequest(c, "date must be in YYYY-MM-DD format", nil)
			return
		}
		anchor = parsed
	}

	current, previous, err := PeriodRange(kind, anchor)
	if err != nil {
		utils.BadRequest(c, "period must be one of: day, month, quarter, year", nil)
		return
	}

	cacheKey := fmt.Sprintf("stats:%s:%s", kind, anchor.Format("2006-01-02"))
	var cached StatisticsResponse
	if utils.CacheGet(c.Request.Context(), cacheKey, &cached) {
		utils.LogDebug("Statistics served from cache: %s", cacheKey)
		utils.Success(c, "OK", cached)
		return
	}

	resp, err := buildStatistics(kind, current, previous)
	if err != nil {
		utils.LogError("Failed to build statistics: %v", err)
		utils.InternalServerError(c, "Failed to build statistics", nil)
		return
	}

	utils.CacheSet(c.Request.Context(), cacheKey, resp, statisticsCacheTTL)
	utils.Success(c, "OK", resp)
}

func buildStatistics(kind string, current, previous Period) (*StatisticsResponse, error) {
	fetch := func(p Period) ([]models.Order, error) {
		var orders []models.Order
		err := config.DB.Preload("Items").
			Where("created_at >= ? AND created_at < ?", p.Start, p.End).
			Find(&orders).Error
		return orders, err
	}

	currentOrders, err := fetch(current)
	if err != nil {
		return nil, err
	}
	previousOrders, err := fetch(previous)
	if err != nil {
		return nil, err
	}

	countUsers := func(p Period) (int64, error) {
		var count int64
		err := config.DB.Model(&models.User{}).
			Where("role != ?", models.RoleAdmin).
			Where("created_at >= ? AND created_at < ?", p.Start, p.End).
			Count(&count).Error
		return count, err
	}

	currentUsers, err := countUsers(current)
	if err != nil {
		return nil, err
	}
	previousUsers, err := countUsers(previous)
	if err != nil {
		return nil, err
	}

	resp := &StatisticsResponse{}
	resp.Period.Kind = kind
	resp.Period.Start = current.Start.Format("2006-01-02")
	resp.Period.End = current.End.Format("2006-01-02")

	resp.Revenue.Current = deliveredRevenue(currentOrders)
	resp.Revenue.Previous = deliveredRevenue(previousOrders)
	resp.Revenue.Growth = GrowthPercent(resp.Revenue.Current, resp.Revenue.Previous)

	resp.Orders.Current = len(currentOrders)
	resp.Orders.Previous = len(previousOrders)
	resp.Orders.Growth = GrowthPercent(float64(resp.Orders.Current), float64(resp.Orders.Previous))

	resp.NewUsers.Current = currentUsers
	resp.NewUsers.Previous = previousUsers
	resp.NewUsers.Growth = GrowthPercent(float64(currentUsers), float64(previousUsers))

	resp.TopProducts = TopProducts(currentOrders, utils.TopProductLimit)
	resp.StatusBreakdown = StatusBreakdown(currentOrders)
	resp.Chart = RevenueBuckets(kind, current, currentOrders)

	return resp, nil
}
