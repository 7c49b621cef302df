package stationquery

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	SlotsPerDirection = 3
	RecordSlots       = 2 * SlotsPerDirection

	// Sentinel fills a slot that has no prediction.
	Sentinel = "N/A"
)

var ErrMalformedRecord = errors.New("malformed record")

// Slot is one countdown, or the sentinel when Valid is false.
type Slot struct {
	Minutes int
	Valid   bool
}

func (s Slot) String() string {
	if !s.Valid {
		return Sentinel
	}
	return strconv.Itoa(s.Minutes)
}

// Record is the fixed-shape reply for a station: direction A slots 0-2 then
// direction B slots 0-2.
type Record [RecordSlots]Slot

func (r Record) DirectionA() [SlotsPerDirection]Slot {
	return [SlotsPerDirection]Slot(r[:SlotsPerDirection])
}

func (r Record) DirectionB() [SlotsPerDirection]Slot {
	return [SlotsPerDirection]Slot(r[SlotsPerDirection:])
}

// String serialises the record as six comma separated fields.
func (r Record) String() string {
	fields := make([]string, len(r))
	for i, slot := range r {
		fields[i] = slot.String()
	}
	return strings.Join(fields, ",")
}

func ParseRecord(line string) (Record, error) {
	var record Record

	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) != RecordSlots {
		return record, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedRecord, RecordSlots, len(fields))
	}

	for i, field := range fields {
		if field == Sentinel {
			continue
		}

		minutes, err := strconv.Atoi(field)
		if err != nil {
			return Record{}, fmt.Errorf("%w: field %d: %q", ErrMalformedRecord, i, field)
		}
		record[i] = Slot{Minutes: minutes, Valid: true}
	}

	return record, nil
}

// pad turns up to SlotsPerDirection countdowns into exactly SlotsPerDirection
// slots, filling the tail with the sentinel.
func pad(minutes []int) [SlotsPerDirection]Slot {
	var slots [SlotsPerDirection]Slot
	for i := 0; i < SlotsPerDirection && i < len(minutes); i++ {
		slots[i] = Slot{Minutes: minutes[i], Valid: true}
	}
	return slots
}
