package caption

import "strings"

// ParseCaptions splits raw model output into individual captions.
//
// Each non-empty trimmed line becomes one caption, in input order. Lines
// that start with a digit have their enumeration marker stripped: the cut
// point is the first "." if the line has one, else the first ")". A digit
// line with neither delimiter passes through unchanged, as do dashed or
// unlabeled lines. The "." before ")" check order is load-bearing.
func ParseCaptions(raw string) []string {
	var captions []string
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		cleaned := line
		if line[0] >= '0' && line[0] <= '9' {
			if i := strings.Index(line, "."); i >= 0 {
				cleaned = strings.TrimSpace(line[i+1:])
			} else if i := strings.Index(line, ")"); i >= 0 {
				cleaned = strings.TrimSpace(line[i+1:])
			}
		}
		captions = append(captions, cleaned)
	}
	return captions
}
