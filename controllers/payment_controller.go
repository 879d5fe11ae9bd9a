package controllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/dangqh/seafresh/config"
	"github.com/dangqh/seafresh/models"
	"github.com/dangqh/seafresh/utils"
	"github.com/gin-gonic/gin"
	razorpay "github.com/razorpay/razorpay-go"
)

// InitiatePayment creates a gateway order for an online-payment order.
// POST /api/payments/initiate
func InitiatePayment(c *gin.Context) {
	utils.LogInfo("InitiatePayment called")

	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "Vui lòng đăng nhập để tiếp tục")
		return
	}
	user := userVal.(models.User)

	var req struct {
		OrderID uint `json:"order_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "order_id is required", err.Error())
		return
	}

	db := config.DB
	var order models.Order
	if err := db.Where("id = ? AND user_id = ?", req.OrderID, user.ID).First(&order).Error; err != nil {
		utils.NotFound(c, "Không tìm thấy đơn hàng")
		return
	}

	if order.PaymentMethod != models.PaymentMethodOnline {
		utils.BadRequest(c, "Đơn hàng này không thanh toán trực tuyến", nil)
		return
	}
	if order.PaymentStatus == models.PaymentStatusPaid {
		utils.BadRequest(c, "Đơn hàng đã được thanh toán", nil)
		return
	}

	client := razorpay.NewClient(os.Getenv("RAZORPAY_KEY"), os.Getenv("RAZORPAY_SECRET"))
	orderData := map[string]interface{}{
		"amount":          int(order.TotalAmount),
		"currency":        "VND",
		"receipt":         order.OrderNumber,
		"payment_capture": 1,
	}
	gwOrder, err := client.Order.Create(orderData, nil)
	if err != nil {
		utils.LogError("Failed to create gateway order for %s: %v", order.OrderNumber, err)
		utils.InternalServerError(c, "Không thể khởi tạo thanh toán, vui lòng thử lại", nil)
		return
	}

	gatewayOrderID := fmt.Sprintf("%v", gwOrder["id"])
	if err := db.Model(&order).UpdateColumn("payment_ref", gatewayOrderID).Error; err != nil {
		utils.LogError("Failed to store gateway order id for %s: %v", order.OrderNumber, err)
		utils.InternalServerError(c, "Không thể khởi tạo thanh toán, vui lòng thử lại", nil)
		return
	}

	utils.LogInfo("Initiated payment for order %s, gateway order %s", order.OrderNumber, gatewayOrderID)
	utils.Success(c, "Khởi tạo thanh toán thành công", gin.H{
		"order_number":     order.OrderNumber,
		"gateway_order_id": gatewayOrderID,
		"amount":           order.TotalAmount,
		"key":              os.Getenv("RAZORPAY_KEY"),
	})
}

// VerifyPayment checks the gateway signature and settles the payment
// status. POST /api/payments/verify
func VerifyPayment(c *gin.Context) {
	utils.LogInfo("VerifyPayment called")

	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "Vui lòng đăng nhập để tiếp tục")
		return
	}
	user := userVal.(models.User)

	var req struct {
		OrderID           uint   `json:"order_id" binding:"required"`
		GatewayOrderID    string `json:"gateway_order_id" binding:"required"`
		GatewayPaymentID  string `json:"gateway_payment_id" binding:"required"`
		GatewaySignature  string `json:"gateway_signature" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Thiếu thông tin xác minh thanh toán", err.Error())
		return
	}

	db := config.DB
	var order models.Order
	if err := db.Where("id = ? AND user_id = ?", req.OrderID, user.ID).First(&order).Error; err != nil {
		utils.NotFound(c, "Không tìm thấy đơn hàng")
		return
	}
	if order.PaymentRef != req.GatewayOrderID {
		utils.BadRequest(c, "Mã thanh toán không khớp", nil)
		return
	}

	payload := req.GatewayOrderID + "|" + req.GatewayPaymentID
	h := hmac.New(sha256.New, []byte(os.Getenv("RAZORPAY_SECRET")))
	h.Write([]byte(payload))
	expected := hex.EncodeToString(h.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(req.GatewaySignature)) {
		utils.LogError("Payment signature mismatch for order %s", order.OrderNumber)
		db.Model(&order).Update("payment_status", models.PaymentStatusFailed)
		utils.BadRequest(c, "Xác minh thanh toán thất bại", gin.H{"retry": true})
		return
	}

	if err := db.Model(&order).Updates(map[string]interface{}{
		"payment_status": models.PaymentStatusPaid,
		"status":         models.OrderStatusConfirmed,
	}).Error; err != nil {
		utils.LogError("Failed to mark order %s paid: %v", order.OrderNumber, err)
		utils.InternalServerError(c, "Đã xảy ra lỗi, vui lòng thử lại sau", nil)
		return
	}

	utils.LogInfo("Order %s paid via gateway payment %s", order.OrderNumber, req.GatewayPaymentID)
	utils.Success(c, "Thanh toán thành công", gin.H{
		"order_number":   order.OrderNumber,
		"payment_status": models.PaymentStatusPaid,
	})
}
