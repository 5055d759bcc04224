package tui

import "time"

// Package-level constants to avoid magic numbers and improve readability.
const (
	// statusLineDuration is how long transient error/status text stays up.
	statusLineDuration = 3 * time.Second

	// chromeLines is the vertical space reserved around the digits for the
	// header, sub-line and footer. Keep in sync with the View layout.
	chromeLines = 6

	// progressWidth is the countdown gauge width under the digits.
	progressWidth = 40

	dateFormat = "2006-01-02"
)
