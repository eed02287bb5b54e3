package booking

import (
	"math"
	"strings"

	"logistics/internal/entities"
)

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidLocation(loc entities.Location) bool {
	if math.IsNaN(loc.Latitude) || math.IsNaN(loc.Longitude) {
		return false
	}
	return loc.Latitude >= -90 && loc.Latitude <= 90 &&
		loc.Longitude >= -180 && loc.Longitude <= 180
}
