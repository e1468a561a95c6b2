package engine

import (
	"sort"
	"strings"
	"time"

	"gallerysearch/internal/constants"
)

// matchesType reports whether an item satisfies a media type filter.
// Screenshots match by name or folder, camera shots by folder only.
func matchesType(item MediaItem, filter MediaTypeFilter) bool {
	switch filter {
	case TypeNone:
		return true
	case TypeVideos:
		return item.IsVideo
	case TypePhotos:
		return !item.IsVideo
	case TypeGifs:
		return strings.EqualFold(item.MimeType, "image/gif")
	case TypeScreenshots:
		name := strings.ToLower(item.DisplayName)
		bucket := strings.ToLower(item.BucketName)
		return strings.Contains(name, "screenshot") || strings.Contains(bucket, "screenshot")
	case TypeCamera:
		bucket := strings.ToLower(item.BucketName)
		return strings.Contains(bucket, "camera") || strings.Contains(bucket, "dcim")
	}
	return true
}

// matchesSize reports whether an item's byte size falls inside a size filter.
func matchesSize(item MediaItem, filter SizeFilter) bool {
	switch filter {
	case SizeNone:
		return true
	case SizeSmall:
		return item.Size < constants.SmallFileMaxBytes
	case SizeMedium:
		return item.Size >= constants.SmallFileMaxBytes && item.Size <= constants.MediumFileMaxBytes
	case SizeLarge:
		return item.Size > constants.MediumFileMaxBytes
	}
	return true
}

// applyFilters runs the date, type and size filters over a media list.
// Unset filters are no-ops.
func applyFilters(items []MediaItem, q Query, now time.Time) []MediaItem {
	filtered := make([]MediaItem, 0, len(items))
	for _, item := range items {
		if !q.Date.Matches(item.DateAdded, now) {
			continue
		}
		if !matchesType(item, q.MediaType) {
			continue
		}
		if !matchesSize(item, q.Size) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

// matchMedia applies the structured filters and, when residual text is
// present, a case-insensitive substring match on display name or folder.
func matchMedia(q Query, allMedia []MediaItem, now time.Time) []MediaItem {
	filtered := applyFilters(allMedia, q, now)
	if q.ResidualText == "" {
		return filtered
	}

	matched := make([]MediaItem, 0, len(filtered))
	for _, item := range filtered {
		name := normalizeText(item.DisplayName)
		bucket := normalizeText(item.BucketName)
		if strings.Contains(name, q.ResidualText) || strings.Contains(bucket, q.ResidualText) {
			matched = append(matched, item)
		}
	}
	return matched
}

// matchAlbums groups media by folder and keeps groups whose name contains
// the residual text. Active filters apply to the group's items before
// counting; a group with no surviving items is dropped. Album matching is
// skipped entirely when residual text is empty.
func matchAlbums(q Query, allMedia []MediaItem, now time.Time) []AlbumMatch {
	if q.ResidualText == "" {
		return nil
	}

	groups := make(map[string][]MediaItem)
	bucketIDs := make(map[string]string)
	for _, item := range allMedia {
		if item.BucketName == "" {
			continue
		}
		groups[item.BucketName] = append(groups[item.BucketName], item)
		bucketIDs[item.BucketName] = item.BucketID
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	var matches []AlbumMatch
	for _, name := range names {
		if !strings.Contains(normalizeText(name), q.ResidualText) {
			continue
		}
		items := applyFilters(groups[name], q, now)
		if len(items) == 0 {
			continue
		}
		matches = append(matches, AlbumMatch{
			BucketID:      bucketIDs[name],
			BucketName:    name,
			ItemCount:     len(items),
			MatchPriority: 1,
			Items:         items,
		})
	}
	return matches
}

// Search runs the lexical matcher for a raw query: album matches plus
// filtered media matches. An empty query yields empty results.
func Search(raw string, allMedia []MediaItem, now time.Time) SearchResult {
	q := ParseQuery(raw)
	if q.IsEmpty() {
		return SearchResult{}
	}
	return SearchResult{
		MatchedAlbums: matchAlbums(q, allMedia, now),
		MatchedMedia:  matchMedia(q, allMedia, now),
	}
}
