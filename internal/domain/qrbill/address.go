package qrbill

import (
	"regexp"
	"strings"
)

// DefaultCountry is assumed for every structured address; the system
// only issues bills for Swiss postal addresses.
const DefaultCountry = "CH"

// Address is a structured postal address derived from a freeform
// multi-line string. It is never persisted on its own; the country is
// assigned by the assembler once an address type is set.
type Address struct {
	Street         string
	BuildingNumber string
	PostalCode     string
	Town           string
	Country        string
}

var (
	streetNumberPattern = regexp.MustCompile(`^(.+?)\s+(\d+[A-Za-z]*)$`)
	postalTownPattern   = regexp.MustCompile(`^(\d{4})\s+(.+)$`)
)

// ParseAddress decomposes a freeform address into street, building
// number, postal code and town. The first non-empty line is split into
// street and building number when it ends in a house number; the last
// line is split into a four-digit postal code and town. Empty or
// unparseable input yields all-empty fields rather than an error: a
// degraded address still produces a valid, if incomplete, payload.
func ParseAddress(raw string) Address {
	var lines []string
	for _, l := range strings.Split(raw, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}

	var addr Address
	if len(lines) == 0 {
		return addr
	}

	if m := streetNumberPattern.FindStringSubmatch(lines[0]); m != nil {
		addr.Street = m[1]
		addr.BuildingNumber = m[2]
	} else {
		addr.Street = lines[0]
	}

	if len(lines) > 1 {
		last := lines[len(lines)-1]
		if m := postalTownPattern.FindStringSubmatch(last); m != nil {
			addr.PostalCode = m[1]
			addr.Town = m[2]
		} else {
			addr.Town = last
		}
	}

	return addr
}
