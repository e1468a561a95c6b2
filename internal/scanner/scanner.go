// Package scanner walks a media directory and maintains the index.
package scanner

import (
	"bufio"
	"context"
	"fmt"
	"hash/crc32"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"gallerysearch/internal/engine"
	"gallerysearch/internal/store"
)

// mimeByExtension maps recognized media file extensions to MIME types.
// Files with other extensions are skipped.
var mimeByExtension = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".heic": "image/heic",
	".bmp":  "image/bmp",
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".webm": "video/webm",
	".mkv":  "video/x-matroska",
	".avi":  "video/x-msvideo",
	".3gp":  "video/3gpp",
}

// ProgressInfo contains progress information for callbacks
type ProgressInfo struct {
	Current int
	Total   int
	Path    string
}

type ScanOptions struct {
	OnProgress func(ProgressInfo) // Optional progress callback
}

type ScanResult struct {
	IndexedCount int
	SkippedCount int
	Errors       []error
}

type Scanner struct {
	store store.Store
}

func New(st store.Store) *Scanner {
	return &Scanner{store: st}
}

// bucketID derives a stable id from the bucket directory path, the way
// Android's media store hashes the lowercased folder path.
func bucketID(dir string) string {
	return fmt.Sprintf("%08x", crc32.ChecksumIEEE([]byte(strings.ToLower(dir))))
}

// Scan walks root and upserts every recognized media file. Previously
// indexed paths keep their ids; unknown extensions are counted as skipped.
func (s *Scanner) Scan(ctx context.Context, root string, opts ScanOptions) (*ScanResult, error) {
	result := &ScanResult{}

	// collect first so progress can report a total
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if _, ok := mimeByExtension[strings.ToLower(filepath.Ext(path))]; !ok {
			result.SkippedCount++
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		item, err := s.itemFromFile(path)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("index %s: %w", path, err))
			continue
		}
		if err := s.store.UpsertMedia(ctx, item); err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("index %s: %w", path, err))
			continue
		}
		result.IndexedCount++

		if opts.OnProgress != nil {
			opts.OnProgress(ProgressInfo{
				Current: i + 1,
				Total:   len(paths),
				Path:    path,
			})
		}
	}

	return result, nil
}

func (s *Scanner) itemFromFile(path string) (engine.MediaItem, error) {
	info, err := os.Stat(path)
	if err != nil {
		return engine.MediaItem{}, err
	}

	mimeType := mimeByExtension[strings.ToLower(filepath.Ext(path))]
	dir := filepath.Dir(path)

	return engine.MediaItem{
		ID:          uuid.NewString(),
		DisplayName: filepath.Base(path),
		BucketID:    bucketID(dir),
		BucketName:  filepath.Base(dir),
		DateAdded:   info.ModTime().Unix(),
		Size:        info.Size(),
		MimeType:    mimeType,
		IsVideo:     strings.HasPrefix(mimeType, "video/"),
		Path:        path,
	}, nil
}

// ImportLabels reads classifier output from r, one line per media file in
// the form "path<TAB>label:conf,label:conf,...". Lines whose path is not
// indexed are skipped; blank lines and #-comments are ignored.
func (s *Scanner) ImportLabels(ctx context.Context, r io.Reader) (int, error) {
	imported := 0
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		path, serialized, ok := strings.Cut(line, "\t")
		if !ok {
			return imported, fmt.Errorf("line %d: expected path<TAB>labels", lineNo)
		}

		id, err := s.store.MediaIDByPath(ctx, strings.TrimSpace(path))
		if err != nil {
			return imported, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if id == "" {
			continue
		}

		// re-encode so malformed pairs are dropped before storage
		pairs := engine.ParseLabelsWithConfidence(serialized)
		if len(pairs) == 0 {
			continue
		}
		if err := s.store.SaveLabels(ctx, id, engine.EncodeLabels(pairs)); err != nil {
			return imported, fmt.Errorf("line %d: %w", lineNo, err)
		}
		imported++
	}
	if err := sc.Err(); err != nil {
		return imported, fmt.Errorf("read labels: %w", err)
	}
	return imported, nil
}
