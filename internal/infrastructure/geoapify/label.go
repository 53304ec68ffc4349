package geoapify

import (
	"regexp"
	"strings"
)

// Шаблоны для разбора текстовых инструкций Geoapify.
// The instruction text follows one upstream provider's phrasing:
// "[Transfer to] take the <route> toward <direction>[. (<N> stops)]".
var (
	takePattern      = regexp.MustCompile(`[Tt]ake\s+the\s+(.+?)\s+toward\s+(.+?)(?:\.\s*\(\d+\s+stops?\))?\s*\)?\s*$`)
	towardsPattern   = regexp.MustCompile(`(?i)\s+TOWARDS\s+.*`)
	dirCodePattern   = regexp.MustCompile(`(?i)\s*-\s*(?:NB|SB|EB|WB|MO|N|S|E|W)\.?\s*$`)
	linePattern      = regexp.MustCompile(`(?i)LINE\s+(\S+)\s*\(([^)]+)\)`)
	numericPattern   = regexp.MustCompile(`^\d+$`)
	separatorPattern = regexp.MustCompile(`^[\s-]+$`)
	tokenPattern     = regexp.MustCompile(`\s+|-`)
)

// smallWords stay lowercase in title case unless they open the phrase.
var smallWords = map[string]bool{
	"and": true, "or": true, "to": true, "of": true, "the": true,
	"in": true, "at": true, "for": true, "via": true,
}

// titleCase converts ALL-CAPS or mixed text to Title Case, preserving
// whitespace and hyphen run boundaries.
func titleCase(s string) string {
	lower := strings.ToLower(s)

	// Split into alternating word / separator tokens, keeping separators.
	var tokens []string
	last := 0
	for _, loc := range tokenPattern.FindAllStringIndex(lower, -1) {
		if loc[0] > last {
			tokens = append(tokens, lower[last:loc[0]])
		}
		tokens = append(tokens, lower[loc[0]:loc[1]])
		last = loc[1]
	}
	if last < len(lower) {
		tokens = append(tokens, lower[last:])
	}

	var b strings.Builder
	for i, tok := range tokens {
		if separatorPattern.MatchString(tok) {
			b.WriteString(tok)
			continue
		}
		if i > 0 && smallWords[tok] {
			b.WriteString(tok)
			continue
		}
		b.WriteString(strings.ToUpper(tok[:1]))
		b.WriteString(tok[1:])
	}
	return b.String()
}

// parseTransitLabel turns a verbose transit instruction into a short label.
//
//	"Take the 1 toward LINE 1 (YONGE-UNIVERSITY) TOWARDS VAUGHAN MC (26 stops)"
//	  -> "Line 1 (Yonge-University)"
//	"Take the 124 toward EAST - 124 SUNNYBROOK TOWARDS SUNNYBROOK HOSPITAL. (9 stops)"
//	  -> "Bus 124 Sunnybrook"
//	"Transfer to take the green toward McCowan Road - NB. (1 stop)"
//	  -> "Green Line"
//
// Anything not matching the documented shape is unparseable and reported as
// ok=false; callers skip those steps instead of failing the pipeline.
func parseTransitLabel(text string) (string, bool) {
	m := takePattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}

	routeID := strings.TrimSpace(m[1])
	direction := strings.TrimSpace(m[2])

	// Strip the "TOWARDS <terminal station>" suffix.
	direction = towardsPattern.ReplaceAllString(direction, "")
	// Strip trailing direction codes like "- NB", "- MO", "- EB".
	direction = dirCodePattern.ReplaceAllString(direction, "")
	direction = strings.TrimSpace(strings.TrimSuffix(direction, "."))

	// Named subway / metro line -> "Line 1 (Yonge-University)".
	if lm := linePattern.FindStringSubmatch(direction); lm != nil {
		return "Line " + lm[1] + " (" + titleCase(lm[2]) + ")", true
	}

	// Numeric bus route -> "Bus 124 Sunnybrook".
	if numericPattern.MatchString(routeID) {
		// Remove a repeated route number / cardinal prefix from the direction.
		quoted := regexp.QuoteMeta(routeID)
		direction = regexp.MustCompile(`(?i)^(?:EAST|WEST|NORTH|SOUTH)\s*-\s*`+quoted+`\s*`).ReplaceAllString(direction, "")
		direction = regexp.MustCompile(`^`+quoted+`\s*`).ReplaceAllString(direction, "")
		direction = strings.TrimSpace(strings.TrimPrefix(direction, "- "))
		direction = strings.TrimSpace(strings.TrimPrefix(direction, "-"))

		if short := titleCase(direction); short != "" {
			return "Bus " + routeID + " " + short, true
		}
		return "Bus " + routeID, true
	}

	// Named route (e.g. "green" for a streetcar / LRT).
	return titleCase(routeID) + " Line", true
}

// transitStepTypes are the instruction types that describe riding a vehicle.
var transitStepTypes = map[string]bool{
	"Transit":                   true,
	"TransitRemainOn":           true,
	"TransitTransfer":           true,
	"TransitConnectionStart":    true,
	"TransitConnectionTransfer": true,
}

// extractTransitLabels collects parseable labels from all transit steps of a
// route, deduplicated in first-seen order.
func extractTransitLabels(legs []routeLeg) []string {
	labels := make([]string, 0, 2)
	seen := make(map[string]bool)
	for _, leg := range legs {
		for _, step := range leg.Steps {
			if !transitStepTypes[step.Instruction.Type] {
				continue
			}
			label, ok := parseTransitLabel(step.Instruction.Text)
			if !ok || seen[label] {
				continue
			}
			seen[label] = true
			labels = append(labels, label)
		}
	}
	return labels
}
