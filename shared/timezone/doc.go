// Package timezone pins wall-clock decisions to the park's local time.
//
// Visit dates and slot dates are calendar days with no zone attached, so
// "today" and check-in deadlines must be computed in one configured location
// (APP_TIMEZONE, an IANA name such as "Asia/Kolkata"). Timestamps written to
// the database are still absolute instants; only their rendering and the
// day boundaries depend on the location.
package timezone
