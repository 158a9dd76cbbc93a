package mediatype

// A Provider produces content in one or more media types.
type Provider interface {
	MediaTypes() []MediaType
}

// Resolve ranks the providers in available by the accepted media ranges.
//
// Accept ranges are sorted by Compare and grouped when they share
// Quality and Specificity. Group by group, every provider not yet ranked
// that offers a media type matching a range in the group is appended,
// in the order available lists them.
// Callers sort available by their own priority beforehand,
// making client quality the primary key and server priority the secondary one.
//
// Providers matching nothing, or matching only media types the client refused, are left out.
func Resolve[P Provider](accept []MediaType, available []P) []P {
	var (
		resolved = make([]P, 0, len(available))
		seen     = make([]bool, len(available))
	)

	for _, group := range groups(accept) {
		// NOTE: groups are sorted, every group after this one refuses as well
		if group[0].Quality == 0 {
			break
		}

		for i, p := range available {
			if seen[i] || !satisfies(p, group, accept) {
				continue
			}

			seen[i] = true
			resolved = append(resolved, p)
		}
	}

	return resolved
}

// Governing returns the range in accept that decides the quality of offered:
// the most specific matching range, the first one given when several tie.
// If no range matches offered, false returns.
func Governing(offered MediaType, accept []MediaType) (MediaType, bool) {
	var (
		best  MediaType
		found bool
	)

	for _, mt := range accept {
		if !mt.Match(offered) {
			continue
		}

		if !found || mt.Specificity() > best.Specificity() {
			best, found = mt, true
		}
	}

	return best, found
}

// Refused reports whether the range governing offered has q=0.
func Refused(offered MediaType, accept []MediaType) bool {
	mt, ok := Governing(offered, accept)
	return ok && mt.Quality == 0
}

// groups sorts accept and splits it into runs of equal Quality and Specificity.
func groups(accept []MediaType) [][]MediaType {
	gs := make([][]MediaType, 0)
	for _, mt := range Sort(accept) {
		last := len(gs) - 1
		if last >= 0 && equivalent(gs[last][0], mt) {
			gs[last] = append(gs[last], mt)
			continue
		}

		gs = append(gs, []MediaType{mt})
	}

	return gs
}

func equivalent(a, b MediaType) bool {
	return a.Quality == b.Quality && a.Specificity() == b.Specificity()
}

// satisfies reports whether p offers a media type, not refused by accept,
// that a range in group matches.
func satisfies(p Provider, group, accept []MediaType) bool {
	for _, offered := range p.MediaTypes() {
		if Refused(offered, accept) {
			continue
		}

		for _, mt := range group {
			if mt.Match(offered) {
				return true
			}
		}
	}

	return false
}
