package utils

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dangqh/seafresh/models"
	"gopkg.in/gomail.v2"
)

// SendOrderConfirmation emails the customer an order summary. Callers
// run it in a goroutine after the order committed; a failure is logged
// and never affects the order.
func SendOrderConfirmation(order *models.Order) error {
	if order.CustomerEmail == "" {
		return nil
	}

	host := os.Getenv("SMTP_HOST")
	if host == "" {
		LogDebug("SMTP not configured, skipping confirmation mail for order %s", order.OrderNumber)
		return nil
	}
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", order.CustomerEmail)
	m.SetHeader("Subject", fmt.Sprintf("Xác nhận đơn hàng %s", order.OrderNumber))

	items := ""
	for _, item := range order.Items {
		name := item.Name
		if item.VariantName != "" {
			name += " - " + item.VariantName
		}
		if item.WeightOptionName != "" {
			name += " (" + item.WeightOptionName + ")"
		}
		items += fmt.Sprintf("<tr><td>%s</td><td>%d</td><td>%.0f₫</td></tr>", name, item.Quantity, item.Price)
	}

	body := fmt.Sprintf(`
		<h2>Cảm ơn bạn đã đặt hàng tại SeaFresh!</h2>
		<p>Mã đơn hàng: <b>%s</b></p>
		<table border="1" cellpadding="6" cellspacing="0">
			<tr><th>Sản phẩm</th><th>Số lượng</th><th>Đơn giá</th></tr>
			%s
		</table>
		<p>Tạm tính: %.0f₫</p>
		<p>Giảm giá: %.0f₫</p>
		<p>Phí vận chuyển: %.0f₫</p>
		<p><b>Tổng cộng: %.0f₫</b></p>
		<p>Chúng tôi sẽ liên hệ với bạn qua số điện thoại %s để xác nhận giao hàng.</p>
	`, order.OrderNumber, items, order.Subtotal, order.CouponDiscount, order.ShippingFee, order.TotalAmount, order.CustomerPhone)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(host, port, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"))
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send order confirmation: %v", err)
	}
	return nil
}
