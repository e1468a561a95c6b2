package engine

import (
	_ "embed"
	"strings"

	"gopkg.in/yaml.v3"

	"gallerysearch/internal/constants"
)

//go:embed albums.yaml
var albumsYAML []byte

// SmartAlbumDefinition is one fixed virtual album computed from label data.
type SmartAlbumDefinition struct {
	ID            string   `yaml:"id"`
	DisplayName   string   `yaml:"name"`
	Icon          string   `yaml:"icon"`
	MinConfidence float64  `yaml:"min_confidence"`
	Labels        []string `yaml:"labels"`
}

type albumsFile struct {
	Albums []SmartAlbumDefinition `yaml:"albums"`
}

var smartAlbums []SmartAlbumDefinition

func init() {
	var f albumsFile
	if err := yaml.Unmarshal(albumsYAML, &f); err != nil {
		// This is an embedded file so this error should never happen in practice
		panic("failed to unmarshal embedded albums.yaml: " + err.Error())
	}
	smartAlbums = f.Albums
}

// SmartAlbumDefinitions returns the built-in album definitions in
// declaration order.
func SmartAlbumDefinitions() []SmartAlbumDefinition {
	return smartAlbums
}

// albumCategory maps an album to the suppression category its matches are
// checked against. Only Animals and Food carry counter-signal suppression.
func albumCategory(id string) Category {
	switch id {
	case "animals":
		return CategoryAnimal
	case "food":
		return CategoryFood
	default:
		return CategoryGeneral
	}
}

// albumOptions builds the classification pass for one album definition.
// Album membership is always hard-filtered and never rank-scored.
func albumOptions(def SmartAlbumDefinition) matchOptions {
	tokens := make([]string, 0, len(def.Labels))
	for _, l := range def.Labels {
		tokens = append(tokens, strings.ToLower(l))
	}
	return matchOptions{
		tokens:        tokens,
		minConfidence: def.MinConfidence,
		hardFilter:    true,
		category:      albumCategory(def.ID),
		forAlbums:     true,
	}
}

// matchAlbumMembers returns the media ids whose label records survive the
// album's classification pass, in corpus order, deduplicated.
func matchAlbumMembers(def SmartAlbumDefinition, corpus []LabelRecord) []string {
	opts := albumOptions(def)
	seen := make(map[string]bool)
	var ids []string
	for _, record := range corpus {
		if _, ok := classifyRecord(record, opts); !ok {
			continue
		}
		if seen[record.MediaID] {
			continue
		}
		seen[record.MediaID] = true
		ids = append(ids, record.MediaID)
	}
	return ids
}

// EnumerateSmartAlbums scans the label corpus against every album
// definition and returns summaries for albums with enough matching items.
// Albums below the visibility threshold are omitted entirely.
func EnumerateSmartAlbums(labelCorpus []LabelRecord) []SmartAlbumSummary {
	var summaries []SmartAlbumSummary
	for _, def := range smartAlbums {
		count := len(matchAlbumMembers(def, labelCorpus))
		if count < constants.MinAlbumItems {
			continue
		}
		summaries = append(summaries, SmartAlbumSummary{
			ID:          def.ID,
			DisplayName: def.Icon + " " + def.DisplayName,
			Icon:        def.Icon,
			ItemCount:   count,
		})
	}
	return summaries
}

// MaterializeSmartAlbum re-runs the album's match and resolves members
// against the current media snapshot. Ids no longer present (deleted or
// moved items) are silently skipped. Unknown album ids yield nil.
func MaterializeSmartAlbum(albumID string, labelCorpus []LabelRecord, allMedia []MediaItem) []MediaItem {
	var def *SmartAlbumDefinition
	for i := range smartAlbums {
		if smartAlbums[i].ID == albumID {
			def = &smartAlbums[i]
			break
		}
	}
	if def == nil {
		return nil
	}

	byID := make(map[string]MediaItem, len(allMedia))
	for _, item := range allMedia {
		byID[item.ID] = item
	}

	var items []MediaItem
	for _, id := range matchAlbumMembers(*def, labelCorpus) {
		if item, ok := byID[id]; ok {
			items = append(items, item)
		}
	}
	return items
}
