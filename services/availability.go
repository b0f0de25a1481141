package services

import (
	"fmt"
	"time"

	"github.com/albertkemp/home-cooking/entity"
)

// Availability status of a food item at a point in time. Never
// persisted; recomputed on every read.
const (
	StatusUnavailable   = "Unavailable"
	StatusAvailableSoon = "AvailableSoon"
	StatusAvailable     = "Available"
)

type Availability struct {
	Status    string `json:"status"`
	TimeRange string `json:"timeRange,omitempty"` // display window for AvailableSoon/windowed items
}

// ResolveAvailability is a pure function of item state and the clock.
//
// available=false always wins. With a [startDate, endDate] window the
// item is AvailableSoon before the window, Available inside it and
// Unavailable after it. Without a window, available=true means Available.
func ResolveAvailability(item *entity.FoodItem, now time.Time) Availability {
	if !item.Available {
		return Availability{Status: StatusUnavailable}
	}

	if item.StartDate != nil && item.EndDate != nil {
		window := fmt.Sprintf("Available from %s to %s",
			item.StartDate.Format(time.RFC1123), item.EndDate.Format(time.RFC1123))
		switch {
		case now.Before(*item.StartDate):
			return Availability{Status: StatusAvailableSoon, TimeRange: window}
		case now.After(*item.EndDate):
			return Availability{Status: StatusUnavailable}
		default:
			return Availability{Status: StatusAvailable, TimeRange: window}
		}
	}

	return Availability{Status: StatusAvailable}
}
