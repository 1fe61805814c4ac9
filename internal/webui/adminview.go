package webui

import (
	"fmt"
	"strings"
	"time"

	"github.com/johanna-sandberg/restaurant-booking/internal/models"
)

// PageSize is the fixed number of rows per admin page.
const PageSize = 5

// EmptyMessage replaces the table when the filtered set is empty.
const EmptyMessage = "There are no bookings for that date."

// AdminView presents a fetched booking list with a date filter and
// pagination. The filtered set is recomputed on every read; only the raw
// list, the filter string and the page index are stored.
type AdminView struct {
	bookings   []models.Booking
	filterDate string
	page       int
	pageSize   int
}

// NewAdminView wraps a fetched booking list, starting unfiltered on page 1.
func NewAdminView(bookings []models.Booking) *AdminView {
	return &AdminView{bookings: bookings, page: 1, pageSize: PageSize}
}

// SetFilter sets the YYYY-MM-DD date prefix; empty means no filtering.
// The current page is deliberately left alone, matching the reference
// behavior — shrinking the filtered set while past page 1 can therefore
// leave an empty visible page.
func (v *AdminView) SetFilter(date string) { v.filterDate = date }

func (v *AdminView) Filter() string { return v.filterDate }

// SetPage clamps to >= 1; pages past the end are allowed for the same
// reason SetFilter does not reset them.
func (v *AdminView) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	v.page = page
}

func (v *AdminView) Page() int { return v.page }

// Filtered projects the bookings whose date/time text form starts with the
// filter prefix.
func (v *AdminView) Filtered() []models.Booking {
	if v.filterDate == "" {
		return v.bookings
	}
	var filtered []models.Booking
	for _, b := range v.bookings {
		if strings.HasPrefix(DateTimeText(b), v.filterDate) {
			filtered = append(filtered, b)
		}
	}
	return filtered
}

// TotalPages is ceiling(filtered / page size); an empty set has 0 pages.
func (v *AdminView) TotalPages() int {
	return (len(v.Filtered()) + v.pageSize - 1) / v.pageSize
}

// Rows returns the slice of the filtered set visible on the current page.
func (v *AdminView) Rows() []models.Booking {
	filtered := v.Filtered()
	start := (v.page - 1) * v.pageSize
	if start >= len(filtered) {
		return nil
	}
	end := start + v.pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// Empty reports whether the filtered set has nothing to show.
func (v *AdminView) Empty() bool { return len(v.Filtered()) == 0 }

func (v *AdminView) CanPrev() bool { return v.page > 1 }

func (v *AdminView) CanNext() bool { return v.page < v.TotalPages() }

func (v *AdminView) Prev() {
	if v.CanPrev() {
		v.page--
	}
}

func (v *AdminView) Next() {
	if v.CanNext() {
		v.page++
	}
}

// PageLabel renders the pagination caption, e.g. "Page 2 of 2".
func (v *AdminView) PageLabel() string {
	return fmt.Sprintf("Page %d of %d", v.page, v.TotalPages())
}

// DateTimeText is the textual date/time representation the filter matches
// against, and what the table displays.
func DateTimeText(b models.Booking) string {
	return b.DateTime.UTC().Format(time.RFC3339)
}
