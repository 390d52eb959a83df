package service

import (
	"time"

	"bloodbank-data/internal/config"
	"bloodbank-data/internal/domain"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// OrderEvent webhook payload for order status changes.
type OrderEvent struct {
	Event      string `json:"event"` // placed | fulfilled | cancelled
	OrderID    string `json:"order_id"`
	HospitalID string `json:"hosp_id"`
	BloodGroup string `json:"blood_grp"`
	Quantity   int    `json:"quantity"`
	Status     string `json:"status"`
}

// HospitalNotifier posts order status changes to the configured webhook so
// hospital systems can track their orders without polling. Best-effort:
// delivery failures are logged and never fail the order operation.
type HospitalNotifier struct {
	httpClient *resty.Client
	url        string
	logger     *zap.Logger
}

// NewHospitalNotifier returns nil when no webhook URL is configured; callers
// treat a nil notifier as disabled.
func NewHospitalNotifier(cfg config.NotifyConfig, logger *zap.Logger) *HospitalNotifier {
	if cfg.WebhookURL == "" {
		return nil
	}
	client := resty.New().
		SetTimeout(time.Duration(cfg.TimeoutSec) * time.Second).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		SetHeader("Content-Type", "application/json")

	return &HospitalNotifier{
		httpClient: client,
		url:        cfg.WebhookURL,
		logger:     logger,
	}
}

func (n *HospitalNotifier) NotifyOrderEvent(order *domain.Order, event string) {
	payload := OrderEvent{
		Event:      event,
		OrderID:    order.OrderID,
		HospitalID: order.HospitalID,
		BloodGroup: order.BloodGroup,
		Quantity:   order.Quantity,
		Status:     order.Status,
	}

	resp, err := n.httpClient.R().
		SetBody(payload).
		Post(n.url)
	if err != nil {
		n.logger.Warn("Order webhook delivery failed",
			zap.String("order_id", order.OrderID),
			zap.String("event", event),
			zap.Error(err),
		)
		return
	}
	if resp.IsError() {
		n.logger.Warn("Order webhook rejected",
			zap.String("order_id", order.OrderID),
			zap.String("event", event),
			zap.Int("status_code", resp.StatusCode()),
		)
		return
	}
	n.logger.Debug("Order webhook delivered",
		zap.String("order_id", order.OrderID),
		zap.String("event", event),
	)
}
