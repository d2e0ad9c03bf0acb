package service

import (
	"time"

	"lifecare/config"
	"lifecare/infras/mail"
	"lifecare/infras/metrics"
	"lifecare/infras/otel"
)

func NewWithClock(provider mail.Provider, cfg *config.Config, ot otel.Otel, m *metrics.Metrics, now func() time.Time) Booking {
	svc := New(provider, cfg, ot, m).(*serviceImpl)
	svc.now = now

	return svc
}
