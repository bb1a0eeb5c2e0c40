// Package weather serves mock weather readouts from a fixed table of cities.
package weather

import (
	"strings"

	"github.com/iiroan/devmood/internal/rotate"
)

// Condition is the headline weather tag used to pick an icon and tint.
type Condition string

const (
	Clear        Condition = "Clear"
	Clouds       Condition = "Clouds"
	Rain         Condition = "Rain"
	Drizzle      Condition = "Drizzle"
	Thunderstorm Condition = "Thunderstorm"
	Snow         Condition = "Snow"
	Mist         Condition = "Mist"
	Fog          Condition = "Fog"
)

// Conditions returns every known condition tag.
func Conditions() []Condition {
	return []Condition{Clear, Clouds, Rain, Drizzle, Thunderstorm, Snow, Mist, Fog}
}

// Known reports whether c is one of the fixed condition tags.
func (c Condition) Known() bool {
	for _, known := range Conditions() {
		if c == known {
			return true
		}
	}
	return false
}

// Icon returns a glyph for the condition. Unknown tags get a plain cloud.
func (c Condition) Icon() string {
	switch c {
	case Clear:
		return "☀"
	case Clouds, Mist:
		return "☁"
	case Rain, Drizzle:
		return "🌧"
	case Thunderstorm:
		return "⛈"
	case Snow:
		return "❄"
	case Fog:
		return "🌫"
	default:
		return "☁"
	}
}

// Record is one mock weather reading.
type Record struct {
	Location    string
	Temperature int // °C
	Humidity    int // %
	WindSpeed   int // km/h
	Condition   Condition
	Description string
}

type entry struct {
	key    string
	record Record
}

// table order matters: substring matches resolve to the first hit.
var table = []entry{
	{"new york", Record{"New York", 15, 65, 8, Clouds, "scattered clouds"}},
	{"london", Record{"London", 12, 80, 12, Rain, "light rain"}},
	{"tokyo", Record{"Tokyo", 22, 60, 5, Clear, "clear sky"}},
	{"sydney", Record{"Sydney", 25, 55, 10, Clear, "clear sky"}},
	{"paris", Record{"Paris", 18, 70, 7, Clouds, "broken clouds"}},
	{"berlin", Record{"Berlin", 14, 75, 9, Drizzle, "light drizzle"}},
	{"toronto", Record{"Toronto", 5, 60, 15, Snow, "light snow"}},
	{"san francisco", Record{"San Francisco", 17, 72, 11, Mist, "mist"}},
	{"singapore", Record{"Singapore", 30, 85, 8, Thunderstorm, "thunderstorm with rain"}},
}

var locations = []string{
	"New York",
	"London",
	"Tokyo",
	"Sydney",
	"Paris",
	"Berlin",
	"Toronto",
	"San Francisco",
	"Singapore",
}

// Locations returns the cities the random driver draws from.
func Locations() []string {
	out := make([]string, len(locations))
	copy(out, locations)
	return out
}

// Records returns every record in table order.
func Records() []Record {
	out := make([]Record, len(table))
	for i, e := range table {
		out[i] = e.record
	}
	return out
}

// Normalize folds a city name into its table key form.
func Normalize(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

// Service resolves cities to mock records.
type Service struct {
	intn rotate.IntN
}

// NewService creates a lookup service. A nil intn uses math/rand/v2.
func NewService(intn rotate.IntN) *Service {
	if intn == nil {
		intn = rotate.DefaultIntN
	}
	return &Service{intn: intn}
}

// Match reports which rule resolved a lookup.
type Match int

const (
	MatchExact Match = iota
	MatchPartial
	MatchRandom
)

func (m Match) String() string {
	switch m {
	case MatchExact:
		return "exact"
	case MatchPartial:
		return "partial"
	default:
		return "random"
	}
}

// Lookup never fails: an exact key match wins, then the first key that
// contains the query or is contained by it, then a random record.
func (s *Service) Lookup(city string) Record {
	rec, _ := s.Resolve(city)
	return rec
}

// Resolve is Lookup that also reports which rule matched.
func (s *Service) Resolve(city string) (Record, Match) {
	query := Normalize(city)

	for _, e := range table {
		if e.key == query {
			return e.record, MatchExact
		}
	}
	for _, e := range table {
		if strings.Contains(e.key, query) || strings.Contains(query, e.key) {
			return e.record, MatchPartial
		}
	}
	return table[s.intn(len(table))].record, MatchRandom
}

// RandomLocation draws a city uniformly from Locations and looks it up.
func (s *Service) RandomLocation() Record {
	return s.Lookup(locations[s.intn(len(locations))])
}
