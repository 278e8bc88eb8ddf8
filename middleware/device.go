package middleware

import (
	"strconv"

	"gymnexa/services/gate"

	"github.com/gin-gonic/gin"
)

const (
	deviceKey = "device"

	// DisplayModeHeader carries the CSS display-mode the client detected.
	DisplayModeHeader = "X-Display-Mode"
	// StandaloneHeader carries navigator.standalone on iOS.
	StandaloneHeader = "X-Standalone"
)

// DeviceDetailsMiddleware classifies the client from its user agent and the
// installed-mode headers and stores the result for the handlers.
func DeviceDetailsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		standalone, _ := strconv.ParseBool(c.GetHeader(StandaloneHeader))
		c.Set(deviceKey, gate.DetectDevice(c.Request.UserAgent(), c.GetHeader(DisplayModeHeader), standalone))
		c.Next()
	}
}

// Device returns the device detected for this request.
func Device(c *gin.Context) gate.Device {
	if v, ok := c.Get(deviceKey); ok {
		if d, ok := v.(gate.Device); ok {
			return d
		}
	}
	return gate.Device{}
}
