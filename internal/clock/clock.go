// Package clock resolves every timestamp in the system in a single fixed
// UTC+3 offset so that account-creation stamps and tenure checks never drift.
package clock

import "time"

// Layout is the wire format of accountCreationDate.
const Layout = "2006-01-02 15:04:05"

// Zone is the fixed offset used for both stamping and parsing.
var Zone = time.FixedZone("GMT+3", 3*60*60)

// Clock yields the current time; injected so tests can freeze it.
type Clock interface {
	Now() time.Time
}

// System is the production Clock.
type System struct{}

func (System) Now() time.Time { return time.Now().In(Zone) }

// Format renders t in Zone using Layout.
func Format(t time.Time) string {
	return t.In(Zone).Format(Layout)
}

// Parse reads a Layout timestamp, interpreting it in Zone.
func Parse(s string) (time.Time, error) {
	return time.ParseInLocation(Layout, s, Zone)
}
