package schedule

import "errors"

// ErrCalendarNotConfigured is returned by exports when no calendar
// client was wired at startup.
var ErrCalendarNotConfigured = errors.New("calendar export not configured")
