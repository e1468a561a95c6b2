package engine

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateFilterKind enumerates the supported date filter variants.
type DateFilterKind int

const (
	DateNone DateFilterKind = iota
	DateToday
	DateYesterday
	DateThisWeek
	DateLastWeek
	DateThisMonth
	DateLastMonth
	DateYear
	DateMonth
)

// DateFilter restricts matches to a time window. Year and Month carry the
// payload for the DateYear and DateMonth kinds.
type DateFilter struct {
	Kind  DateFilterKind
	Year  int
	Month time.Month
}

// MediaTypeFilter restricts matches to one media category.
type MediaTypeFilter int

const (
	TypeNone MediaTypeFilter = iota
	TypeVideos
	TypePhotos
	TypeGifs
	TypeScreenshots
	TypeCamera
)

// SizeFilter restricts matches by file size.
type SizeFilter int

const (
	SizeNone SizeFilter = iota
	SizeSmall
	SizeMedium
	SizeLarge
)

// Query is the structured form of a free-text search input.
type Query struct {
	Raw          string
	Date         DateFilter
	MediaType    MediaTypeFilter
	Size         SizeFilter
	ResidualText string
}

// IsEmpty reports whether the query carries no filters and no residual text.
func (q Query) IsEmpty() bool {
	return q.Date.Kind == DateNone && q.MediaType == TypeNone &&
		q.Size == SizeNone && q.ResidualText == ""
}

var (
	yearPattern  = regexp.MustCompile(`\b(201[0-9]|202[0-9])\b`)
	typePattern  = regexp.MustCompile(`\b(videos|video|photos|photo|images|image|gifs|gif|screenshots|screenshot|camera|dcim)\b`)
	sizePattern  = regexp.MustCompile(`\b(small|medium|large)\b`)
	stopwordPat  = regexp.MustCompile(`\b(from|in|on|the|a|an)\b`)
	monthPattern = map[string]time.Month{
		"january": time.January, "february": time.February, "march": time.March,
		"april": time.April, "may": time.May, "june": time.June,
		"july": time.July, "august": time.August, "september": time.September,
		"october": time.October, "november": time.November, "december": time.December,
		"jan": time.January, "feb": time.February, "mar": time.March,
		"apr": time.April, "jun": time.June, "jul": time.July,
		"aug": time.August, "sept": time.September, "sep": time.September,
		"oct": time.October, "nov": time.November, "dec": time.December,
	}
)

// monthTokens is the order month keywords are checked in; full names first
// so "sept" never loses to "sep" mid-word.
var monthTokens = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
	"jan", "feb", "mar", "apr", "jun", "jul",
	"aug", "sept", "sep", "oct", "nov", "dec",
}

var datePhrases = []struct {
	phrase string
	kind   DateFilterKind
}{
	{"today", DateToday},
	{"yesterday", DateYesterday},
	{"this week", DateThisWeek},
	{"last week", DateLastWeek},
	{"this month", DateThisMonth},
	{"last month", DateLastMonth},
}

// ParseQuery turns free text into a structured Query. At most one filter of
// each class is detected; everything recognized is stripped from the
// residual text along with a small stopword list.
func ParseQuery(raw string) Query {
	q := Query{Raw: raw}
	text := normalizeText(raw)
	if text == "" {
		return q
	}

	var dateMatch string
	for _, dp := range datePhrases {
		if containsWord(text, dp.phrase) {
			q.Date = DateFilter{Kind: dp.kind}
			dateMatch = dp.phrase
			break
		}
	}
	if q.Date.Kind == DateNone {
		if m := yearPattern.FindString(text); m != "" {
			year, _ := strconv.Atoi(m)
			q.Date = DateFilter{Kind: DateYear, Year: year}
			dateMatch = m
		}
	}
	if q.Date.Kind == DateNone {
		for _, token := range monthTokens {
			if containsWord(text, token) {
				q.Date = DateFilter{Kind: DateMonth, Month: monthPattern[token]}
				dateMatch = token
				break
			}
		}
	}

	switch {
	case strings.Contains(text, "video"):
		q.MediaType = TypeVideos
	case strings.Contains(text, "photo"), strings.Contains(text, "image"):
		q.MediaType = TypePhotos
	case strings.Contains(text, "gif"):
		q.MediaType = TypeGifs
	case strings.Contains(text, "screenshot"):
		q.MediaType = TypeScreenshots
	case strings.Contains(text, "camera"), strings.Contains(text, "dcim"):
		q.MediaType = TypeCamera
	}

	switch {
	case strings.Contains(text, "small"):
		q.Size = SizeSmall
	case strings.Contains(text, "medium"):
		q.Size = SizeMedium
	case strings.Contains(text, "large"):
		q.Size = SizeLarge
	}

	residual := text
	if dateMatch != "" {
		residual = removeWord(residual, dateMatch)
	}
	residual = yearPattern.ReplaceAllString(residual, " ")
	residual = typePattern.ReplaceAllString(residual, " ")
	residual = sizePattern.ReplaceAllString(residual, " ")
	residual = stopwordPat.ReplaceAllString(residual, " ")
	q.ResidualText = strings.Join(strings.Fields(residual), " ")

	return q
}

func containsWord(text, word string) bool {
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(word) + `\b`)
	return re.MatchString(text)
}

func removeWord(text, word string) string {
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(word) + `\b`)
	return re.ReplaceAllString(text, " ")
}

// Matches reports whether an epoch-seconds timestamp falls inside the
// filter's window, anchored at now. Weeks start on Monday.
func (f DateFilter) Matches(epochSeconds int64, now time.Time) bool {
	if f.Kind == DateNone {
		return true
	}
	t := time.Unix(epochSeconds, 0).In(now.Location())

	switch f.Kind {
	case DateToday:
		return sameDay(t, now)
	case DateYesterday:
		return sameDay(t, now.AddDate(0, 0, -1))
	case DateThisWeek:
		start := startOfWeek(now)
		return !t.Before(start) && t.Before(start.AddDate(0, 0, 7))
	case DateLastWeek:
		end := startOfWeek(now)
		return !t.Before(end.AddDate(0, 0, -7)) && t.Before(end)
	case DateThisMonth:
		return t.Year() == now.Year() && t.Month() == now.Month()
	case DateLastMonth:
		prev := now.AddDate(0, 0, -now.Day())
		return t.Year() == prev.Year() && t.Month() == prev.Month()
	case DateYear:
		return t.Year() == f.Year
	case DateMonth:
		return t.Month() == f.Month
	}
	return true
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func startOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -(weekday - 1))
}
