package converter

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ParsePageRange parses a comma-separated list of 1-based page numbers and
// inclusive ranges, e.g. "1-5,7,9-12". The result is ascending and free of
// duplicates. An empty string yields nil, meaning all pages.
func ParsePageRange(value string) ([]int, error) {
	value = strings.TrimSpace(value)

	if value == "" {
		return nil, nil
	}

	seen := map[int]bool{}

	var pages []int

	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)

		lo, hi := part, part

		if s, e, ok := strings.Cut(part, "-"); ok {
			lo, hi = strings.TrimSpace(s), strings.TrimSpace(e)
		}

		start, err := strconv.Atoi(lo)

		if err != nil {
			return nil, fmt.Errorf("invalid page range %q", value)
		}

		end, err := strconv.Atoi(hi)

		if err != nil {
			return nil, fmt.Errorf("invalid page range %q", value)
		}

		if start < 1 || end < start {
			return nil, fmt.Errorf("invalid page range %q", value)
		}

		for page := start; page <= end; page++ {
			if seen[page] {
				continue
			}

			seen[page] = true
			pages = append(pages, page)
		}
	}

	slices.Sort(pages)

	return pages, nil
}
