package engine

import "time"

// MergeMatches unions lexical media matches with classification results,
// deduplicating by media id. Lexical matches come first and win on
// collision; the merged list is not re-sorted.
func MergeMatches(lexical []MediaItem, ranked []RankedResult) []MediaItem {
	merged := make([]MediaItem, 0, len(lexical)+len(ranked))
	seen := make(map[string]bool, len(lexical))

	for _, item := range lexical {
		if seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		merged = append(merged, item)
	}
	for _, r := range ranked {
		if seen[r.MediaID] {
			continue
		}
		seen[r.MediaID] = true
		merged = append(merged, r.Media)
	}
	return merged
}

// LibraryResult is the full output of a combined library search.
type LibraryResult struct {
	Query         Query
	MatchedAlbums []AlbumMatch
	MatchedMedia  []MediaItem
	Ranked        []RankedResult
}

// SearchLibrary runs the lexical and classification matchers for one raw
// query and merges their media matches. Classification only runs when the
// query leaves residual text; an empty query returns empty results without
// touching the corpus.
func SearchLibrary(raw string, allMedia []MediaItem, labelCorpus []LabelRecord, now time.Time) LibraryResult {
	q := ParseQuery(raw)
	if q.IsEmpty() {
		return LibraryResult{Query: q}
	}

	result := LibraryResult{
		Query:         q,
		MatchedAlbums: matchAlbums(q, allMedia, now),
	}

	lexical := matchMedia(q, allMedia, now)
	if q.ResidualText != "" {
		result.Ranked = FilterAndRank(q.ResidualText, labelCorpus, allMedia, false)
	}
	result.MatchedMedia = MergeMatches(lexical, result.Ranked)
	return result
}
