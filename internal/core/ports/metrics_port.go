package ports

import (
	"time"

	"github.com/gin-gonic/gin"
)

type MetricsPort interface {
	RecordMetrics(c *gin.Context, start time.Time)
	OrderCreated(paymentMethod string)
	NotificationResult(result string)
	CatalogFallback(reason string)
	PaymentEvent(eventType string)
}
