package engine

import (
	"testing"
	"time"
)

func TestParseQueryDateFilters(t *testing.T) {
	tests := []struct {
		input    string
		kind     DateFilterKind
		year     int
		month    time.Month
		residual string
	}{
		{"photos today", DateToday, 0, 0, ""},
		{"yesterday beach", DateYesterday, 0, 0, "beach"},
		{"this week", DateThisWeek, 0, 0, ""},
		{"last week videos", DateLastWeek, 0, 0, ""},
		{"this month", DateThisMonth, 0, 0, ""},
		{"last month", DateLastMonth, 0, 0, ""},
		{"holiday 2023", DateYear, 2023, 0, "holiday"},
		{"2019", DateYear, 2019, 0, ""},
		{"january trip", DateMonth, 0, time.January, "trip"},
		{"trip in dec", DateMonth, 0, time.December, "trip"},
		{"september", DateMonth, 0, time.September, ""},
		{"sept hike", DateMonth, 0, time.September, "hike"},
		{"beach sunset", DateNone, 0, 0, "beach sunset"},
		// A year beats a month when both are present.
		{"may 2022", DateYear, 2022, 0, "may"},
		// An explicit phrase beats a year; the losing year is still
		// stripped from the residual.
		{"today 2023", DateToday, 0, 0, ""},
		{"yesterday 2022 beach", DateYesterday, 0, 0, "beach"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			q := ParseQuery(tt.input)
			if q.Date.Kind != tt.kind {
				t.Errorf("expected date kind %v, got %v", tt.kind, q.Date.Kind)
			}
			if q.Date.Year != tt.year {
				t.Errorf("expected year %d, got %d", tt.year, q.Date.Year)
			}
			if q.Date.Month != tt.month {
				t.Errorf("expected month %v, got %v", tt.month, q.Date.Month)
			}
			if q.ResidualText != tt.residual {
				t.Errorf("expected residual %q, got %q", tt.residual, q.ResidualText)
			}
		})
	}
}

func TestParseQueryTypeAndSizeFilters(t *testing.T) {
	tests := []struct {
		input     string
		mediaType MediaTypeFilter
		size      SizeFilter
		residual  string
	}{
		{"videos", TypeVideos, SizeNone, ""},
		{"beach photos", TypePhotos, SizeNone, "beach"},
		{"images of cats", TypePhotos, SizeNone, "of cats"},
		{"funny gifs", TypeGifs, SizeNone, "funny"},
		{"screenshots", TypeScreenshots, SizeNone, ""},
		{"camera roll", TypeCamera, SizeNone, "roll"},
		{"dcim", TypeCamera, SizeNone, ""},
		{"small videos", TypeVideos, SizeSmall, ""},
		{"medium files", TypeNone, SizeMedium, "files"},
		{"large", TypeNone, SizeLarge, ""},
		// Video wins over photo when both keywords appear.
		{"video photos", TypeVideos, SizeNone, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			q := ParseQuery(tt.input)
			if q.MediaType != tt.mediaType {
				t.Errorf("expected type %v, got %v", tt.mediaType, q.MediaType)
			}
			if q.Size != tt.size {
				t.Errorf("expected size %v, got %v", tt.size, q.Size)
			}
			if q.ResidualText != tt.residual {
				t.Errorf("expected residual %q, got %q", tt.residual, q.ResidualText)
			}
		})
	}
}

func TestParseQueryResidualText(t *testing.T) {
	tests := []struct {
		input    string
		residual string
	}{
		{"photos from the beach", "beach"},
		{"a dog in an armchair", "dog armchair"},
		{"  spaced   out  query ", "spaced out query"},
		{"Café", "cafe"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			q := ParseQuery(tt.input)
			if q.ResidualText != tt.residual {
				t.Errorf("expected residual %q, got %q", tt.residual, q.ResidualText)
			}
		})
	}
}

func TestParseQueryEmptyInput(t *testing.T) {
	q := ParseQuery("")
	if !q.IsEmpty() {
		t.Errorf("expected empty query, got %+v", q)
	}
	if q.Date.Kind != DateNone || q.MediaType != TypeNone || q.Size != SizeNone {
		t.Errorf("expected all filters unset, got %+v", q)
	}
}

// Combined filters with empty residual: "photos last month" sets both
// filters and leaves nothing for the substring step.
func TestParseQueryPhotosLastMonth(t *testing.T) {
	q := ParseQuery("photos last month")
	if q.MediaType != TypePhotos {
		t.Errorf("expected Photos type filter, got %v", q.MediaType)
	}
	if q.Date.Kind != DateLastMonth {
		t.Errorf("expected LastMonth date filter, got %v", q.Date.Kind)
	}
	if q.ResidualText != "" {
		t.Errorf("expected empty residual, got %q", q.ResidualText)
	}
}

func TestDateFilterMatches(t *testing.T) {
	// Wednesday, May 15 2024, noon UTC.
	now := time.Date(2024, time.May, 15, 12, 0, 0, 0, time.UTC)
	ts := func(t time.Time) int64 { return t.Unix() }

	tests := []struct {
		name    string
		filter  DateFilter
		moment  time.Time
		matches bool
	}{
		{"none matches everything", DateFilter{}, time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"today same day", DateFilter{Kind: DateToday}, time.Date(2024, time.May, 15, 8, 0, 0, 0, time.UTC), true},
		{"today rejects yesterday", DateFilter{Kind: DateToday}, time.Date(2024, time.May, 14, 8, 0, 0, 0, time.UTC), false},
		{"yesterday", DateFilter{Kind: DateYesterday}, time.Date(2024, time.May, 14, 23, 0, 0, 0, time.UTC), true},
		{"this week monday start", DateFilter{Kind: DateThisWeek}, time.Date(2024, time.May, 13, 0, 0, 0, 0, time.UTC), true},
		{"this week rejects sunday before", DateFilter{Kind: DateThisWeek}, time.Date(2024, time.May, 12, 23, 0, 0, 0, time.UTC), false},
		{"last week", DateFilter{Kind: DateLastWeek}, time.Date(2024, time.May, 8, 12, 0, 0, 0, time.UTC), true},
		{"last week rejects this week", DateFilter{Kind: DateLastWeek}, time.Date(2024, time.May, 13, 12, 0, 0, 0, time.UTC), false},
		{"this month", DateFilter{Kind: DateThisMonth}, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), true},
		{"last month", DateFilter{Kind: DateLastMonth}, time.Date(2024, time.April, 30, 12, 0, 0, 0, time.UTC), true},
		{"last month rejects this month", DateFilter{Kind: DateLastMonth}, time.Date(2024, time.May, 2, 12, 0, 0, 0, time.UTC), false},
		{"year match", DateFilter{Kind: DateYear, Year: 2023}, time.Date(2023, time.July, 4, 0, 0, 0, 0, time.UTC), true},
		{"year mismatch", DateFilter{Kind: DateYear, Year: 2023}, time.Date(2024, time.July, 4, 0, 0, 0, 0, time.UTC), false},
		{"month matches any year", DateFilter{Kind: DateMonth, Month: time.July}, time.Date(2021, time.July, 4, 0, 0, 0, 0, time.UTC), true},
		{"month mismatch", DateFilter{Kind: DateMonth, Month: time.July}, time.Date(2024, time.May, 4, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(ts(tt.moment), now); got != tt.matches {
				t.Errorf("Matches(%v) = %v, want %v", tt.moment, got, tt.matches)
			}
		})
	}
}
