// Package timezone keeps journal timestamps and the footer year in the
// configured APP_TIMEZONE. Names must come from the IANA database, for
// example "UTC" or "Asia/Jakarta".
package timezone

import (
	"starlight/config"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location
	loadOnce    sync.Once
)

// Load resolves name to a location, falling back to UTC.
func Load(name string) *time.Location {
	if name == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Failed to load timezone, falling back to UTC")

		return time.UTC
	}

	return loc
}

// Location is the application timezone, resolved from configuration on
// first use.
func Location() *time.Location {
	loadOnce.Do(func() {
		appLocation = Load(config.Get().App.Timezone)

		log.Debug().Str("location", appLocation.String()).Msg("Application timezone initialized")
	})

	return appLocation
}

func Now() time.Time {
	return time.Now().In(Location())
}

// Format formats t in the application timezone.
func Format(t time.Time, layout string) string {
	return t.In(Location()).Format(layout)
}

// Stamp is the current time in the journal timestamp layout.
func Stamp() string {
	return Format(time.Now(), time.RFC3339)
}

// Year is the current calendar year in the application timezone.
func Year() int {
	return Now().Year()
}
