package engine

import (
	"strings"

	"gallerysearch/internal/constants"
)

// Category is the threshold class a query term falls into.
type Category int

const (
	CategoryGeneral Category = iota
	CategoryAnimal
	CategoryFood
)

// animalLabels and foodLabels are the fixed label vocabularies used to pick
// category thresholds and to count supporting sibling labels.
var animalLabels = map[string]bool{
	"animal": true, "pet": true, "dog": true, "puppy": true, "cat": true,
	"kitten": true, "bird": true, "fish": true, "horse": true, "cow": true,
	"sheep": true, "goat": true, "rabbit": true, "hamster": true,
	"elephant": true, "lion": true, "tiger": true, "bear": true,
	"monkey": true, "deer": true, "fox": true, "wolf": true,
	"squirrel": true, "turtle": true, "snake": true, "butterfly": true,
	"insect": true, "wildlife": true,
}

var foodLabels = map[string]bool{
	"food": true, "meal": true, "dish": true, "cuisine": true, "snack": true,
	"breakfast": true, "lunch": true, "dinner": true, "dessert": true,
	"cake": true, "bread": true, "pizza": true, "pasta": true, "burger": true,
	"sandwich": true, "salad": true, "soup": true, "fruit": true,
	"vegetable": true, "drink": true, "coffee": true, "tea": true,
	"juice": true, "restaurant": true,
}

// personIndicators are strong counter-signals for animal matches. The
// free-text list includes "face"; smart album materialization uses the
// shorter albumPersonIndicators.
var personIndicators = map[string]bool{
	"person": true, "people": true, "human": true, "face": true, "portrait": true,
}

var albumPersonIndicators = map[string]bool{
	"person": true, "people": true, "human": true, "portrait": true,
}

// buildingIndicators are strong counter-signals for food matches.
var buildingIndicators = map[string]bool{
	"building": true, "architecture": true, "house": true, "structure": true,
}

// categoryOf classifies a lowercase query term by vocabulary membership.
func categoryOf(term string) Category {
	switch {
	case animalLabels[term]:
		return CategoryAnimal
	case foodLabels[term]:
		return CategoryFood
	default:
		return CategoryGeneral
	}
}

// thresholdFor returns the minimum matched confidence for a category.
func thresholdFor(c Category) float64 {
	switch c {
	case CategoryAnimal:
		return constants.AnimalConfidence
	case CategoryFood:
		return constants.FoodConfidence
	default:
		return constants.GeneralConfidence
	}
}

// matchOptions parameterize one classification pass.
type matchOptions struct {
	tokens        []string // lowercase tokens to match against label text
	minConfidence float64
	hardFilter    bool
	category      Category // drives suppression counter-signal selection
	forAlbums     bool     // use the smart-album person indicator set
	score         bool     // compose a rank score (free-text search only)
}

// labelMatches applies the bidirectional substring rule: the decoded label
// contains the token or the token contains the label.
func labelMatches(label, token string) bool {
	return strings.Contains(label, token) || strings.Contains(token, label)
}

// firstMatch finds the first decoded label matching any token.
func firstMatch(pairs []LabelPair, tokens []string) (LabelPair, bool) {
	for _, p := range pairs {
		label := strings.ToLower(p.Label)
		for _, token := range tokens {
			if labelMatches(label, token) {
				return p, true
			}
		}
	}
	return LabelPair{}, false
}

// suppressionFor checks whether a below-strong-signal match is contradicted
// by a strong counter-signal in the same record. Returns the diagnostic
// reason, or "" when the match stands.
func suppressionFor(pairs []LabelPair, matched LabelPair, opts matchOptions) string {
	if matched.Confidence >= constants.StrongSignal {
		return ""
	}
	if matched.Confidence >= constants.WeakMatch {
		return ""
	}

	var indicators map[string]bool
	var reason string
	switch opts.category {
	case CategoryAnimal:
		indicators = personIndicators
		if opts.forAlbums {
			indicators = albumPersonIndicators
		}
		reason = "strong_person_signal"
	case CategoryFood:
		indicators = buildingIndicators
		reason = "strong_building_signal"
	default:
		return ""
	}

	for _, p := range pairs {
		if indicators[strings.ToLower(p.Label)] && p.Confidence >= constants.StrongSignal {
			return reason
		}
	}
	return ""
}

// rankScore composes the final score: matched confidence, halved when
// suppressed, boosted when enough same-vocabulary siblings support an
// animal match, clamped to [0,1].
func rankScore(pairs []LabelPair, matched LabelPair, suppressed bool, category Category) float64 {
	score := clamp01(matched.Confidence)
	if suppressed {
		score *= constants.SuppressionPenalty
	}
	if category == CategoryAnimal {
		siblings := 0
		for _, p := range pairs {
			label := strings.ToLower(p.Label)
			if label == strings.ToLower(matched.Label) {
				continue
			}
			if animalLabels[label] && p.Confidence > constants.SiblingConfidenceFloor {
				siblings++
			}
		}
		if siblings >= constants.MinSiblingCount {
			score *= constants.SiblingBonus
		}
	}
	return clamp01(score)
}

// classifyRecord evaluates one label record against the match options.
// Returns the result and whether the record survives.
func classifyRecord(record LabelRecord, opts matchOptions) (RankedResult, bool) {
	matched, ok := firstMatch(record.Labels, opts.tokens)
	if !ok {
		return RankedResult{}, false
	}

	belowThreshold := matched.Confidence < opts.minConfidence
	if belowThreshold && opts.hardFilter {
		return RankedResult{}, false
	}

	reason := suppressionFor(record.Labels, matched, opts)
	if reason != "" && opts.hardFilter && matched.Confidence < constants.WeakMatch {
		return RankedResult{}, false
	}

	result := RankedResult{
		MediaID:        record.MediaID,
		MatchedLabel:   matched.Label,
		Confidence:     matched.Confidence,
		SuppressReason: reason,
	}
	if opts.score {
		result.Score = rankScore(record.Labels, matched, reason != "", opts.category)
	} else {
		result.Score = clamp01(matched.Confidence)
	}
	return result, true
}

// FilterAndRank runs the classification matcher for a free-text query term
// over label records, resolving survivors against the media snapshot.
// Records whose media id is not present are silently skipped. Under
// hardFilter, below-threshold and suppressed weak matches are dropped;
// otherwise they are kept with the penalty folded into the score.
func FilterAndRank(query string, matchedLabels []LabelRecord, mediaItems []MediaItem, hardFilter bool) []RankedResult {
	term := normalizeText(query)
	if term == "" {
		return nil
	}

	category := categoryOf(term)
	opts := matchOptions{
		tokens:        []string{term},
		minConfidence: thresholdFor(category),
		hardFilter:    hardFilter,
		category:      category,
		score:         true,
	}

	byID := make(map[string]MediaItem, len(mediaItems))
	for _, item := range mediaItems {
		byID[item.ID] = item
	}

	var results []RankedResult
	for _, record := range matchedLabels {
		result, ok := classifyRecord(record, opts)
		if !ok {
			continue
		}
		item, found := byID[record.MediaID]
		if !found {
			continue
		}
		result.Media = item
		results = append(results, result)
	}
	return results
}
