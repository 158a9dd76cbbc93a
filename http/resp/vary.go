package resp

import (
	"net/http"
	"strings"
)

// PatchVary adds each of fields to the Vary header of h,
// skipping those already present in any case.
// The header is rewritten as a single comma-separated value.
func PatchVary(h http.Header, fields ...string) {
	var (
		present = make(map[string]bool)
		all     = make([]string, 0, len(fields))
	)

	for _, f := range append(splitVary(h.Values("Vary")), fields...) {
		if key := strings.ToLower(f); !present[key] {
			present[key] = true
			all = append(all, f)
		}
	}

	if len(all) > 0 {
		h.Set("Vary", strings.Join(all, ", "))
	}
}

func splitVary(values []string) []string {
	fields := make([]string, 0, len(values))
	for _, v := range values {
		for _, f := range strings.Split(v, ",") {
			if f = strings.TrimSpace(f); f != "" {
				fields = append(fields, f)
			}
		}
	}

	return fields
}
