package reference

import "math"

// City is a named coordinate
type City struct {
	Name string
	Lat  float64
	Lon  float64
}

// CityTolerance is the matching tolerance in degrees on each axis (strict).
const CityTolerance = 0.5

// DefaultCityName is returned when no city matches
const DefaultCityName = "Urban Area"

// Cities in lookup order; the first match wins.
var Cities = []City{
	{"Delhi", 28.6139, 77.2090},
	{"Mumbai", 19.0760, 72.8777},
	{"Bengaluru", 12.9716, 77.5946},
	{"Chennai", 13.0827, 80.2707},
	{"Kolkata", 22.5726, 88.3639},
	{"Hyderabad", 17.3850, 78.4867},
	{"Jaipur", 26.9124, 75.7873},
	{"Ahmedabad", 23.0225, 72.5714},
	{"Pune", 18.5204, 73.8567},
	{"Chandigarh", 30.7333, 76.7794},
}

// CityName resolves a coordinate to a city name
func CityName(lat, lon float64) string {
	for _, c := range Cities {
		if math.Abs(lat-c.Lat) < CityTolerance && math.Abs(lon-c.Lon) < CityTolerance {
			return c.Name
		}
	}
	return DefaultCityName
}

// Zone types
const (
	ZoneCommercialCenter = "COMMERCIAL_CENTER"
	ZoneResidential      = "RESIDENTIAL"
	ZoneMixedUse         = "MIXED_USE"
)

// commercialCenter is the Delhi city centre used for zone detection
var commercialCenter = City{"Delhi", 28.6139, 77.2090}

// IsCommercialCenter reports whether a coordinate is within 0.1° of the Delhi centre.
func IsCommercialCenter(lat, lon float64) bool {
	return math.Abs(lat-commercialCenter.Lat) < 0.1 && math.Abs(lon-commercialCenter.Lon) < 0.1
}
