package handlers

import (
	"gymnexa/metrics"
	"gymnexa/services/auth"
	"gymnexa/services/booking"
	"gymnexa/services/profile"
	"gymnexa/services/session"
	"gymnexa/services/wizard"
	"gymnexa/utils"
)

// HandlerBundle groups the services behind the HTTP endpoints.
type HandlerBundle struct {
	Sessions  *session.Manager
	Auth      *auth.Service
	Submitter *wizard.Submitter
	Profiles  *profile.Service
	Bookings  *booking.Service
	Health    *utils.HealthMonitor
	Metrics   *metrics.HTTPMetrics
}
