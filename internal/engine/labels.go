package engine

import (
	"strconv"
	"strings"
)

// ParseLabelsWithConfidence decodes the serialized form produced by the
// labeling step: "label:conf,label:conf,...". Malformed pairs (wrong arity,
// unparsable confidence) are dropped; the rest of the record is still used.
// Confidence values are clamped to [0,1].
func ParseLabelsWithConfidence(serialized string) []LabelPair {
	if strings.TrimSpace(serialized) == "" {
		return nil
	}

	var pairs []LabelPair
	for _, part := range strings.Split(serialized, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		// Split on the last colon so label text may itself contain colons.
		idx := strings.LastIndex(part, ":")
		if idx <= 0 || idx == len(part)-1 {
			continue
		}
		label := strings.TrimSpace(part[:idx])
		conf, err := strconv.ParseFloat(strings.TrimSpace(part[idx+1:]), 64)
		if err != nil || label == "" {
			continue
		}
		pairs = append(pairs, LabelPair{Label: label, Confidence: clamp01(conf)})
	}
	return pairs
}

// EncodeLabels serializes label pairs into the "label:conf,..." wire form
// with confidences rounded to two decimals. Labels containing the pair
// separator "," cannot be represented and are dropped, so the output always
// decodes back to the pairs it was built from.
func EncodeLabels(pairs []LabelPair) string {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		if strings.Contains(p.Label, ",") {
			continue
		}
		parts = append(parts, p.Label+":"+strconv.FormatFloat(round2(clamp01(p.Confidence)), 'f', -1, 64))
	}
	return strings.Join(parts, ",")
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
