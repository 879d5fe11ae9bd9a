package controllers

import (
	"bytes"
	"fmt"

	"github.com/dangqh/seafresh/config"
	"github.com/dangqh/seafresh/models"
	"github.com/dangqh/seafresh/utils"
	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
)

// DownloadInvoice generates a PDF invoice for one of the caller's
// orders. GET /api/orders/:orderNumber/invoice
func DownloadInvoice(c *gin.Context) {
	utils.LogInfo("DownloadInvoice called")

	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "Vui lòng đăng nhập để tiếp tục")
		return
	}
	user := userVal.(models.User)

	var order models.Order
	if err := config.DB.Preload("Items").
		Where("order_number = ? AND user_id = ?", c.Param("orderNumber"), user.ID).
		First(&order).Error; err != nil {
		utils.NotFound(c, "Không tìm thấy đơn hàng")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	// cp1258 carries the Vietnamese diacritics the core fonts can map
	tr := pdf.UnicodeTranslatorFromDescriptor("cp1258")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, "SeaFresh")
	pdf.SetFont("Arial", "", 11)
	pdf.Ln(8)
	pdf.Cell(100, 8, tr("125 Trần Phú, Nha Trang, Khánh Hòa"))
	pdf.Ln(8)
	pdf.Cell(100, 8, "Email: hotro@seafresh.vn | Hotline: 0258 123 456")
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(100, 10, tr("HÓA ĐƠN"))
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(70, 8, tr("Mã đơn: ")+order.OrderNumber)
	pdf.Cell(70, 8, tr("Ngày đặt: ")+order.CreatedAt.Format("02/01/2006 15:04"))
	pdf.Ln(8)
	pdf.Cell(70, 8, tr("Thanh toán: ")+order.PaymentMethod)
	pdf.Cell(70, 8, tr("Trạng thái: ")+order.Status)
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(100, 8, tr("Khách hàng"))
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(100, 8, tr(order.CustomerName))
	pdf.Ln(6)
	pdf.Cell(100, 8, order.CustomerPhone)
	pdf.Ln(6)
	pdf.Cell(100, 8, tr(order.CustomerAddress))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(80, 8, tr("Sản phẩm"), "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 8, "SL", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 8, tr("Đơn giá"), "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 8, tr("Thành tiền"), "1", 0, "C", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 11)
	for _, item := range order.Items {
		name := item.Name
		if item.VariantName != "" {
			name += " - " + item.VariantName
		}
		if item.WeightOptionName != "" {
			name += " (" + item.WeightOptionName + ")"
		}
		pdf.CellFormat(80, 8, tr(name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, fmt.Sprintf("%d", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 8, fmt.Sprintf("%.0f", item.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, fmt.Sprintf("%.0f", item.Price*float64(item.Quantity)), "1", 0, "R", false, 0, "")
		pdf.Ln(8)
	}

	pdf.Ln(4)
	summary := func(label string, amount float64) {
		pdf.CellFormat(145, 7, tr(label), "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, fmt.Sprintf("%.0f", amount), "", 0, "R", false, 0, "")
		pdf.Ln(7)
	}
	summary("Tạm tính:", order.Subtotal)
	if order.CouponDiscount > 0 {
		summary("Giảm giá ("+order.CouponCode+"):", -order.CouponDiscount)
	}
	summary("Phí vận chuyển:", order.ShippingFee)
	pdf.SetFont("Arial", "B", 12)
	summary("Tổng cộng:", order.TotalAmount)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.LogError("Failed to render invoice for order %s: %v", order.OrderNumber, err)
		utils.InternalServerError(c, "Đã xảy ra lỗi, vui lòng thử lại sau", nil)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%s.pdf", order.OrderNumber))
	c.Data(200, "application/pdf", buf.Bytes())
}
