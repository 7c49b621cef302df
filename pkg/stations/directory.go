package stations

import (
	"errors"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var ErrUnknownStation = errors.New("unknown station")

// StopPair holds the two platform stop identifiers of a station. A is always
// reported before B.
type StopPair struct {
	A string `yaml:"a" json:"a"`
	B string `yaml:"b" json:"b"`
}

type Directory struct {
	stations map[string]StopPair
}

// NewDirectory copies entries so later changes to the map are not observed.
func NewDirectory(entries map[string]StopPair) (Directory, error) {
	for name, pair := range entries {
		if name == "" {
			return Directory{}, errors.New("station name must not be empty")
		}
		if pair.A == "" || pair.B == "" {
			return Directory{}, fmt.Errorf("station %q must have two stop identifiers", name)
		}
	}

	return Directory{stations: maps.Clone(entries)}, nil
}

func DefaultDirectory() Directory {
	return Directory{
		stations: map[string]StopPair{
			"KENDALL/MIT":    {A: "70072", B: "70071"},
			"CENTRAL SQUARE": {A: "70070", B: "70069"},
		},
	}
}

// Resolve is an exact, case-sensitive lookup.
func (d Directory) Resolve(name string) (string, string, error) {
	pair, ok := d.stations[name]
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrUnknownStation, name)
	}

	return pair.A, pair.B, nil
}

func (d Directory) Names() []string {
	names := make([]string, 0, len(d.stations))
	for name := range d.stations {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

func (d Directory) Len() int {
	return len(d.stations)
}
