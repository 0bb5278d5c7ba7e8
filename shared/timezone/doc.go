// Package timezone keeps the application location (APP_TIMEZONE, IANA name, UTC by default)
// used for "now", due date parsing of form input and display formatting.
//
//	now := timezone.Now()
//	due, err := timezone.Parse(constant.DateTimeLocalFormat, "2025-01-31T18:00")
//	label := timezone.Format(due, constant.DisplayDateFormat)
package timezone
