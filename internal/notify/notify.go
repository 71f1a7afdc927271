package notify

import (
	"fmt"

	"github.com/asaskevich/EventBus"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/sagar1314-oops/ArecaMart/config"
	"github.com/sagar1314-oops/ArecaMart/internal/domain"
)

// Event topics.
const (
	TopicSubscriptionExpired  = "subscription.expired"
	TopicSubscriptionExpiring = "subscription.expiring"
	TopicOrderPlaced          = "order.placed"
)

const dispatchPoolSize = 8

// OrderEvent is published when a buyer completes checkout.
type OrderEvent struct {
	Order domain.Order
	Phone string
	Items []domain.OrderItem
}

// Notifier fans lifecycle and order events out to the mock SMS/WhatsApp
// channels and, when SMTP is configured, to email. The SMS and WhatsApp
// senders only log the message; no gateway is wired yet.
type Notifier struct {
	bus  EventBus.Bus
	pool *ants.Pool
	smtp config.SmtpConfig
}

func New(smtp config.SmtpConfig) (*Notifier, error) {
	pool, err := ants.NewPool(dispatchPoolSize)
	if err != nil {
		return nil, err
	}
	n := &Notifier{
		bus:  EventBus.New(),
		pool: pool,
		smtp: smtp,
	}
	if err := n.subscribe(); err != nil {
		pool.Release()
		return nil, err
	}
	return n, nil
}

func (n *Notifier) subscribe() error {
	if err := n.bus.Subscribe(TopicSubscriptionExpired, n.onSubscriptionExpired); err != nil {
		return err
	}
	if err := n.bus.Subscribe(TopicSubscriptionExpiring, n.onSubscriptionExpiring); err != nil {
		return err
	}
	return n.bus.Subscribe(TopicOrderPlaced, n.onOrderPlaced)
}

func (n *Notifier) Close() {
	n.pool.Release()
}

func (n *Notifier) publish(topic string, args ...interface{}) {
	err := n.pool.Submit(func() {
		n.bus.Publish(topic, args...)
	})
	if err != nil {
		// pool saturated or released; deliver inline rather than drop
		n.bus.Publish(topic, args...)
	}
}

// SubscriptionExpired implements subscription.Notifier.
func (n *Notifier) SubscriptionExpired(seller domain.Seller) {
	n.publish(TopicSubscriptionExpired, seller)
}

// SubscriptionExpiring implements subscription.Notifier.
func (n *Notifier) SubscriptionExpiring(seller domain.Seller) {
	n.publish(TopicSubscriptionExpiring, seller)
}

// OrderPlaced publishes a checkout confirmation event.
func (n *Notifier) OrderPlaced(ev OrderEvent) {
	n.publish(TopicOrderPlaced, ev)
}

func (n *Notifier) onSubscriptionExpired(seller domain.Seller) {
	body := "Your subscription has expired. Please renew to restore product visibility."
	n.sendSms(seller.Phone, body)
	n.sendMail(seller.Email, "Subscription Expired", body)
}

func (n *Notifier) onSubscriptionExpiring(seller domain.Seller) {
	body := "Your subscription expires in less than 24 hours."
	n.sendSms(seller.Phone, body)
	n.sendMail(seller.Email, "Subscription Expiring Soon", body)
}

func (n *Notifier) onOrderPlaced(ev OrderEvent) {
	body := fmt.Sprintf("Order #%d confirmed, %d item(s), total %.2f",
		ev.Order.UserOrderNumber, len(ev.Items), ev.Order.TotalAmount)
	n.sendSms(ev.Phone, body)
	n.sendWhatsapp(ev.Phone, body)
}

// sendSms is a mock sender.
func (n *Notifier) sendSms(phone, body string) {
	if phone == "" {
		return
	}
	zap.L().Info("[SMS]", zap.String("to", phone), zap.String("body", body))
}

// sendWhatsapp is a mock sender.
func (n *Notifier) sendWhatsapp(phone, body string) {
	if phone == "" {
		return
	}
	zap.L().Info("[WHATSAPP]", zap.String("to", phone), zap.String("body", body))
}

func (n *Notifier) sendMail(to, subject, body string) {
	if to == "" {
		return
	}
	if !n.smtp.Enabled || n.smtp.Host == "" {
		zap.L().Info("[EMAIL]", zap.String("to", to),
			zap.String("subject", subject), zap.String("body", body))
		return
	}
	m := gomail.NewMessage()
	m.SetHeader("From", n.smtp.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	d := gomail.NewDialer(n.smtp.Host, n.smtp.Port, n.smtp.Username, n.smtp.Password)
	if err := d.DialAndSend(m); err != nil {
		zap.L().Error("send mail failed", zap.String("to", to), zap.Error(err))
	}
}
