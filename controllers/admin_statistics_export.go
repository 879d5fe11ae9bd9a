package controllers

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/dangqh/seafresh/config"
	"github.com/dangqh/seafresh/models"
	"github.com/dangqh/seafresh/utils"
)

// DownloadStatisticsExcel exports the period's orders and summary as
// an Excel workbook. GET /api/admin/statistics/export?period=&date=
func DownloadStatisticsExcel(c *gin.Context) {
	utils.LogInfo("DownloadStatisticsExcel called")

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

	stats, err := buildStatistics(kind, current, previous)
	if err != nil {
		utils.LogError("Failed to build statistics: %v", err)
		utils.InternalServerError(c, "Failed to build statistics", nil)
		return
	}

	var orders []models.Order
	if err := config.DB.Preload("Items").
		Where("created_at >= ? AND created_at < ?", current.Start, current.End).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders for export: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", nil)
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Báo cáo doanh thu")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create report", nil)
		return
	}

	titleRow := sheet.AddRow()
	titleRow.AddCell().SetString("SEAFRESH - Báo cáo doanh thu")
	periodRow := sheet.AddRow()
	periodRow.AddCell().SetString(fmt.Sprintf("Kỳ: %s | %s đến %s", kind,
		current.Start.Format("2006-01-02"), current.End.AddDate(0, 0, -1).Format("2006-01-02")))
	sheet.AddRow()

	bold := xlsx.NewStyle()
	font := xlsx.DefaultFont()
	font.Bold = true
	bold.Font = *font

	headers := []string{"Mã đơn", "Khách hàng", "SĐT", "Ngày đặt", "Số món", "Tạm tính", "Giảm giá", "Phí ship", "Tổng", "Thanh toán", "Trạng thái"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		cell := headerRow.AddCell()
		cell.SetString(h)
		cell.SetStyle(bold)
	}

	for _, order := range orders {
		itemCount := 0
		for _, item := range order.Items {
			itemCount += item.Quantity
		}
		row := sheet.AddRow()
		row.AddCell().SetString(order.OrderNumber)
		row.AddCell().SetString(order.CustomerName)
		row.AddCell().SetString(order.CustomerPhone)
		row.AddCell().SetString(order.CreatedAt.Format("2006-01-02 15:04"))
		row.AddCell().SetInt(itemCount)
		row.AddCell().SetFloat(order.Subtotal)
		row.AddCell().SetFloat(order.CouponDiscount)
		row.AddCell().SetFloat(order.ShippingFee)
		row.AddCell().SetFloat(order.TotalAmount)
		row.AddCell().SetString(order.PaymentMethod)
		row.AddCell().SetString(order.Status)
	}

	sheet.AddRow()
	summaryHeader := sheet.AddRow()
	summaryHeader.AddCell().SetString("Tổng kết")
	summaryHeader.Cells[0].SetStyle(bold)

	summaryData := [][]string{
		{"Doanh thu (đã giao, trừ ship)", fmt.Sprintf("%.0f", stats.Revenue.Current)},
		{"Tăng trưởng doanh thu", fmt.Sprintf("%.1f%%", stats.Revenue.Growth)},
		{"Số đơn hàng", fmt.Sprintf("%d", stats.Orders.Current)},
		{"Khách hàng mới", fmt.Sprintf("%d", stats.NewUsers.Current)},
	}
	for _, pair := range summaryData {
		row := sheet.AddRow()
		row.AddCell().SetString(pair[0])
		row.AddCell().SetString(pair[1])
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		utils.LogError("Failed to render Excel report: %v", err)
		utils.InternalServerError(c, "Failed to create report", nil)
		return
	}

	filename := fmt.Sprintf("statistics-%s-%s.xlsx", kind, anchor.Format("20060102"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
