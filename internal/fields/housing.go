package fields

import (
	"regexp"
	"strings"
)

// KindHousing is the Kind name for HousingType.
const KindHousing = "housing"

// HousingConstraints is the message returned for an invalid housing type.
const HousingConstraints = "Housing type should be either 'HDB', 'CONDOMINIUM', " +
	"'LANDED_PROPERTY' or 'GOOD_CLASS_BUNGALOW'"

// House is a kind of housing a client prefers.
type House int

const (
	// HouseUnknown is the zero value and is never held by a HousingType made with NewHousingType().
	HouseUnknown House = iota
	// HDB is public housing.
	HDB
	// Condominium is a private apartment.
	Condominium
	// LandedProperty is a house on its own land.
	LandedProperty
	// GoodClassBungalow is a large detached house in a gazetted area.
	GoodClassBungalow
)

var houseNames = map[House]string{
	HDB:               "HDB",
	Condominium:       "CONDOMINIUM",
	LandedProperty:    "LANDED_PROPERTY",
	GoodClassBungalow: "GOOD_CLASS_BUNGALOW",
}

var housesByName = func() map[string]House {
	m := make(map[string]House, len(houseNames))
	for h, n := range houseNames {
		m[n] = h
	}
	return m
}()

// String returns the canonical name, like "LANDED_PROPERTY".
func (h House) String() string {
	if n, ok := houseNames[h]; ok {
		return n
	}
	return "UNKNOWN"
}

var housingRE = regexp.MustCompile(`^[A-Za-z0-9 ]+$`)

// HousingType is the validated housing preference of a client.
// Two HousingType(s) are equal with == if they hold the same House.
type HousingType struct {
	house House
}

// NewHousingType validates "s" and returns its HousingType. Case is ignored and spaces stand in
// for underscores, so "landed property" is LANDED_PROPERTY. Only letters, digits and spaces
// are allowed.
func NewHousingType(s string) (HousingType, error) {
	h, ok := parseHouse(s)
	if !ok {
		return HousingType{}, invalid(KindHousing, HousingConstraints)
	}
	return HousingType{house: h}, nil
}

// IsValidHousingType reports if NewHousingType(s) would succeed.
func IsValidHousingType(s string) bool {
	_, ok := parseHouse(s)
	return ok
}

func parseHouse(s string) (House, bool) {
	if !housingRE.MatchString(s) {
		return HouseUnknown, false
	}
	h, ok := housesByName[strings.ReplaceAll(strings.ToUpper(s), " ", "_")]
	return h, ok
}

// House returns the canonical House.
func (h HousingType) House() House {
	return h.house
}

// String returns the bracketed short form, like "[HDB]".
func (h HousingType) String() string {
	return "[" + h.house.String() + "]"
}

// Describe returns the long form, like "Preferred housing type is HDB".
func (h HousingType) Describe() string {
	return "Preferred housing type is " + h.house.String()
}
