// Package timeconv converts timestamps between Mountain Time and UTC.
//
// Input either follows an explicit strftime pattern or is auto-detected.
// Auto-detection recognises the zone tokens "MT" and "UTC" anywhere in the
// text and rejects other zone abbreviations. A timestamp that carries no
// zone is taken to be in the zone being converted from.
package timeconv

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/araddon/dateparse"
	"github.com/itchyny/timefmt-go"
)

const (
	outputLayout     = "2006-01-02 15:04:05"
	mountainLocation = "America/Denver"
)

// Zone pairs a display label with the zone rules it stands for.
type Zone struct {
	Label string
	Loc   *time.Location
}

// ParseError reports a timestamp that could not be interpreted.
type ParseError struct {
	Input  string
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Format != "" {
		return fmt.Sprintf("parse timestamp %q with format %q: %v", e.Input, e.Format, e.Err)
	}
	return fmt.Sprintf("parse timestamp %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Converter converts between its Mountain and UTC zones. The zones map
// holds every token auto-detection accepts, keyed in upper case.
type Converter struct {
	Mountain Zone
	UTC      Zone
	zones    map[string]*time.Location
}

// NewConverter loads the Mountain Time rules from the embedded zone database.
func NewConverter() (*Converter, error) {
	denver, err := time.LoadLocation(mountainLocation)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", mountainLocation, err)
	}
	c := &Converter{
		Mountain: Zone{Label: "MT", Loc: denver},
		UTC:      Zone{Label: "UTC", Loc: time.UTC},
	}
	c.zones = map[string]*time.Location{
		c.Mountain.Label: c.Mountain.Loc,
		c.UTC.Label:      c.UTC.Loc,
		"Z":              time.UTC,
	}
	return c, nil
}

// ToUTC reads ts as Mountain Time unless it names another zone and renders
// it as "YYYY-MM-DD HH:MM:SS UTC".
func (c *Converter) ToUTC(ts, format string) (string, error) {
	return c.convert(ts, format, c.Mountain, c.UTC)
}

// ToMountain reads ts as UTC unless it names another zone and renders it
// as "YYYY-MM-DD HH:MM:SS MT".
func (c *Converter) ToMountain(ts, format string) (string, error) {
	return c.convert(ts, format, c.UTC, c.Mountain)
}

func (c *Converter) convert(ts, format string, from, to Zone) (string, error) {
	ts = strings.TrimSuffix(ts, " "+from.Label)

	t, err := c.Parse(ts, format, from.Loc)
	if err != nil {
		return "", err
	}
	return t.In(to.Loc).Format(outputLayout) + " " + to.Label, nil
}

// Parse interprets ts, attaching def when ts carries no zone of its own.
// A non-empty format is a strftime pattern and is matched strictly.
// Zoneless times that are ambiguous or skipped in the zone are read as
// standard time.
func (c *Converter) Parse(ts, format string, def *time.Location) (time.Time, error) {
	if format != "" {
		t, naive, err := parseTwice(func(loc *time.Location) (time.Time, error) {
			return timefmt.ParseInLocation(ts, format, loc)
		})
		if err != nil {
			return time.Time{}, &ParseError{Input: ts, Format: format, Err: err}
		}
		if naive {
			return localize(t, def), nil
		}
		return t, nil
	}

	rest, loc, err := c.extractZone(ts)
	if err != nil {
		return time.Time{}, &ParseError{Input: ts, Err: err}
	}
	if loc == nil {
		loc = def
	}
	t, naive, err := parseTwice(func(sentinel *time.Location) (time.Time, error) {
		return dateparse.ParseIn(rest, sentinel)
	})
	if err != nil {
		return time.Time{}, &ParseError{Input: ts, Err: err}
	}
	if naive {
		return localize(t, loc), nil
	}
	return t, nil
}

// Two fixed zones with different offsets. A string without zone
// information parses to different instants under them.
var (
	sentinelA = time.FixedZone("sentinel-a", 3600)
	sentinelB = time.FixedZone("sentinel-b", 7200)
)

// parseTwice runs parse under two sentinel zones and reports whether the
// input was zoneless. For zoneless input the returned time's wall clock
// is the one written in the input.
func parseTwice(parse func(*time.Location) (time.Time, error)) (time.Time, bool, error) {
	a, err := parse(sentinelA)
	if err != nil {
		return time.Time{}, false, err
	}
	b, err := parse(sentinelB)
	if err != nil {
		return time.Time{}, false, err
	}
	return a, !a.Equal(b), nil
}
