package timezone

import (
	"time"
	"visitorpass/config"
	"visitorpass/shared/constant"

	"github.com/rs/zerolog/log"
)

var appLocation = time.UTC

func init() {
	name := config.Get().App.Timezone
	if name == "" {
		log.Warn().Msg("no timezone configured, using UTC")

		return
	}

	if err := SetLocation(name); err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("failed to load timezone, falling back to UTC")

		return
	}

	log.Info().Str("timezone", name).Msg("application timezone initialized")
}

// SetLocation switches the application location. Tests use it to pin day boundaries.
func SetLocation(name string) error {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return err //nolint:wrapcheck
	}

	appLocation = loc

	return nil
}

func Location() *time.Location {
	return appLocation
}

// Now returns the current instant in the application location.
func Now() time.Time {
	return time.Now().In(appLocation)
}

// Today is the current local calendar day in constant.DayFormat.
func Today() string {
	return Now().Format(constant.DayFormat)
}

// Day renders a calendar day stored without a zone (DATE columns). No conversion happens.
func Day(t time.Time) string {
	return t.Format(constant.DayFormat)
}

// At returns hour:00 local time on the calendar day of t.
func At(t time.Time, hour int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, appLocation)
}

// Format renders an instant in the application location.
func Format(t time.Time, layout string) string {
	return t.In(appLocation).Format(layout)
}

// ParseDay parses a constant.DayFormat calendar day at midnight UTC, the shape DATE columns scan into.
func ParseDay(value string) (time.Time, error) {
	return time.Parse(constant.DayFormat, value) //nolint:wrapcheck
}
