package gate

import (
	"regexp"
	"strings"
)

var (
	iosPattern     = regexp.MustCompile(`iPad|iPhone|iPod`)
	androidPattern = regexp.MustCompile(`(?i)android`)
)

// Device is what the gate needs to know about the client.
type Device struct {
	IOS        bool `json:"ios"`
	Android    bool `json:"android"`
	Standalone bool `json:"standalone"`
}

func (d Device) Mobile() bool { return d.IOS || d.Android }

// DetectDevice sniffs the user agent. displayMode is the CSS display-mode the
// client reports ("standalone" when installed); iosStandalone is navigator.standalone.
func DetectDevice(userAgent, displayMode string, iosStandalone bool) Device {
	return Device{
		IOS:        iosPattern.MatchString(userAgent),
		Android:    androidPattern.MatchString(userAgent),
		Standalone: strings.EqualFold(strings.TrimSpace(displayMode), "standalone") || iosStandalone,
	}
}
