// Package constants provides shared constants used across the codebase.
// Centralizing these values ensures consistency and makes them easier to modify.
package constants

// Classification confidence thresholds
const (
	// AnimalConfidence is the minimum label confidence for animal-category queries
	AnimalConfidence = 0.75

	// FoodConfidence is the minimum label confidence for food-category queries
	FoodConfidence = 0.70

	// GeneralConfidence is the minimum label confidence for all other queries
	GeneralConfidence = 0.65

	// StrongSignal is the confidence above which a match is never suppressed
	StrongSignal = 0.85

	// WeakMatch is the confidence below which a conflicting strong signal
	// suppresses the match
	WeakMatch = 0.75
)

// Rank score composition
const (
	// SuppressionPenalty is multiplied into the rank score of a suppressed match
	SuppressionPenalty = 0.5

	// SiblingBonus is multiplied into the rank score when a record carries
	// enough supporting same-category labels
	SiblingBonus = 1.1

	// SiblingConfidenceFloor is the minimum confidence for a sibling label
	// to count toward the bonus
	SiblingConfidenceFloor = 0.7

	// MinSiblingCount is the number of supporting labels required for the bonus
	MinSiblingCount = 2
)

// Smart album constants
const (
	// MinAlbumItems is the minimum matching item count for a smart album
	// to be visible
	MinAlbumItems = 5
)

// Size filter boundaries
const (
	// SmallFileMaxBytes is the upper bound for the "small" size filter (5 MiB)
	SmallFileMaxBytes = 5 * 1024 * 1024

	// MediumFileMaxBytes is the upper bound for the "medium" size filter (100 MiB)
	MediumFileMaxBytes = 100 * 1024 * 1024
)

// Pagination constants
const (
	// DefaultMediaCount is the default number of media items returned per API page
	DefaultMediaCount = 200
)
