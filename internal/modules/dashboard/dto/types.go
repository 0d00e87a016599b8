package dto

import "studyhall/internal/modules/dashboard/domain"

// Overview bundles the stats row and the analytics charts, fetched together
// the way the dashboard page loads.
type Overview struct {
	Stats     domain.Stats
	Analytics domain.Analytics
}
