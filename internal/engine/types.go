package engine

// MediaItem represents one indexed image or video. The engine only reads
// these; they are owned by the media store.
type MediaItem struct {
	ID          string
	DisplayName string
	BucketID    string
	BucketName  string
	DateAdded   int64 // epoch seconds
	Size        int64 // bytes
	MimeType    string
	IsVideo     bool
	Duration    int64 // milliseconds, zero for images
	Path        string
}

// LabelPair is one decoded label with its inference confidence in [0,1].
type LabelPair struct {
	Label      string
	Confidence float64
}

// LabelRecord holds the classification labels attached to one media item.
type LabelRecord struct {
	MediaID string
	Labels  []LabelPair
}

// RankedResult is one classification match with its composed rank score.
// SuppressReason is diagnostic only; the penalty is already folded into Score.
type RankedResult struct {
	MediaID        string
	Media          MediaItem
	MatchedLabel   string
	Confidence     float64
	Score          float64
	SuppressReason string
}

// AlbumMatch is a folder whose name matched the query text.
type AlbumMatch struct {
	BucketID   string
	BucketName string
	ItemCount  int
	// MatchPriority is a single tier today; kept for API stability.
	MatchPriority int
	Items         []MediaItem
}

// SearchResult bundles the lexical matches for one query.
type SearchResult struct {
	MatchedAlbums []AlbumMatch
	MatchedMedia  []MediaItem
}

// SmartAlbumSummary describes a visible smart album without its members.
type SmartAlbumSummary struct {
	ID          string
	DisplayName string
	Icon        string
	ItemCount   int
}
