package domain

import (
	"sort"
	"time"
)

// ItineraryItem is a day-scoped planned activity. Owned exclusively by its
// Trip. SortOrder positions the item among other items of the same DayNumber;
// values need not be contiguous or unique across days — only relative order
// within a day matters.
type ItineraryItem struct {
	ID         string    `json:"id"`
	DayNumber  int       `json:"dayNumber"`
	Title      string    `json:"title"`
	Details    string    `json:"details"`
	IsComplete bool      `json:"isComplete"`
	SortOrder  int       `json:"sortOrder"`
	CreatedAt  time.Time `json:"createdAt"`
}

// MoveDirection selects which neighbour an itinerary item swaps with.
type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

// Valid reports whether d is a known move direction.
func (d MoveDirection) Valid() bool {
	return d == MoveUp || d == MoveDown
}

// SortItinerary returns a new slice ordered by DayNumber ascending, then
// SortOrder ascending. This is the display order and also defines adjacency
// for MoveItineraryItem.
func SortItinerary(items []ItineraryItem) []ItineraryItem {
	sorted := make([]ItineraryItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].DayNumber != sorted[j].DayNumber {
			return sorted[i].DayNumber < sorted[j].DayNumber
		}
		return sorted[i].SortOrder < sorted[j].SortOrder
	})
	return sorted
}

// MoveItineraryItem returns a new slice in which the item with id has swapped
// SortOrder values with its neighbour in the requested direction, where
// neighbours are determined within the item's day group ordered by SortOrder.
// Items keep their positions in the backing slice; only SortOrder changes.
// Moving past the start or end of the day group, or naming an unknown id, is
// a no-op that returns the input unchanged.
func MoveItineraryItem(items []ItineraryItem, id string, direction MoveDirection) []ItineraryItem {
	target := -1
	for i, item := range items {
		if item.ID == id {
			target = i
			break
		}
	}
	if target < 0 {
		return items
	}

	day := items[target].DayNumber
	sameDay := make([]int, 0, len(items)) // indexes into items, ordered by SortOrder
	for i, item := range items {
		if item.DayNumber == day {
			sameDay = append(sameDay, i)
		}
	}
	sort.SliceStable(sameDay, func(i, j int) bool {
		return items[sameDay[i]].SortOrder < items[sameDay[j]].SortOrder
	})

	pos := 0
	for i, idx := range sameDay {
		if idx == target {
			pos = i
			break
		}
	}

	swapWith := pos - 1
	if direction == MoveDown {
		swapWith = pos + 1
	}
	if swapWith < 0 || swapWith >= len(sameDay) {
		return items
	}

	out := make([]ItineraryItem, len(items))
	copy(out, items)
	a, b := sameDay[pos], sameDay[swapWith]
	out[a].SortOrder, out[b].SortOrder = out[b].SortOrder, out[a].SortOrder
	return out
}

// NextSortOrder returns the SortOrder for a new item appended to the given
// day: one past the current maximum within that day, starting at 1.
func NextSortOrder(items []ItineraryItem, dayNumber int) int {
	max := 0
	for _, item := range items {
		if item.DayNumber == dayNumber && item.SortOrder > max {
			max = item.SortOrder
		}
	}
	return max + 1
}
