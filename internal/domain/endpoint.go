package domain

import (
	"net/url"
	"sort"
	"strings"
	"unicode"

	m "graphsniper.dev/pkg/graphsniper/internal/model"
)

// minEndpointLength is the length of the shortest endpoint path, `/gql`.
const minEndpointLength = 4

// EndpointDetector guesses the GraphQL endpoint of a corpus from the string
// literals that look like GraphQL URLs or paths. It never contacts the target.
type EndpointDetector struct{}

// NewEndpointDetector creates an EndpointDetector.
func NewEndpointDetector() *EndpointDetector {
	return &EndpointDetector{}
}

// Detect returns the most referenced endpoint of corpus, if any.
func (d *EndpointDetector) Detect(corpus m.Corpus) (string, bool) {
	return d.table(corpus).best()
}

// Candidates returns every endpoint candidate of corpus in ranking order.
func (d *EndpointDetector) Candidates(corpus m.Corpus) []m.EndpointCandidate {
	return d.table(corpus).ranked()
}

func (d *EndpointDetector) table(corpus m.Corpus) *endpointTable {
	table := newEndpointTable()

	for _, file := range corpus {
		table.add(file.Identifier, endpointHits(file.Content)...)
	}

	return table
}

// endpointHits returns the normalized endpoint of every matching literal of
// src in discovery order, repeats included.
func endpointHits(src string) []string {
	var hits []string

	for lit := range jsLiterals(src) {
		if ep, ok := normalizeEndpoint(lit.Value); ok {
			hits = append(hits, ep)
		}
	}

	return hits
}

// normalizeEndpoint validates a literal as an endpoint reference and reduces it
// to scheme, host and path. Protocol relative references become https.
func normalizeEndpoint(literal string) (string, bool) {
	s := strings.TrimSpace(literal)

	// The query string and fragment are dropped below, only the rest must look
	// like a plain URL.
	head := s
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		head = s[:i]
	}

	if len(head) < minEndpointLength || strings.ContainsAny(head, "{}();=<>") ||
		strings.IndexFunc(head, unicode.IsSpace) >= 0 {
		return "", false
	}

	switch {
	case strings.HasPrefix(s, "http://"), strings.HasPrefix(s, "https://"):
	case strings.HasPrefix(s, "//"):
		s = "https:" + s
	case strings.HasPrefix(s, "/"):
	default:
		return "", false
	}

	u, err := url.Parse(s)
	if err != nil {
		return "", false
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.RawQuery = ""
	u.ForceQuery = false
	u.Fragment = ""
	u.RawFragment = ""
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = strings.TrimRight(u.RawPath, "/")

	normalized := u.String()
	if normalized == "" || !isGraphQLSuggestive(u) {
		return "", false
	}

	return normalized, true
}

// isGraphQLSuggestive reports whether the URL mentions graphql or has a gql segment.
func isGraphQLSuggestive(u *url.URL) bool {
	if strings.Contains(strings.ToLower(u.Host+u.Path), "graphql") {
		return true
	}

	for _, segment := range strings.Split(u.Path, "/") {
		if strings.EqualFold(segment, "gql") {
			return true
		}
	}

	return false
}

// endpointTable counts endpoint occurrences across files.
type endpointTable struct {
	counts map[string]int
	files  map[string]map[string]struct{}
}

func newEndpointTable() *endpointTable {
	return &endpointTable{
		counts: map[string]int{},
		files:  map[string]map[string]struct{}{},
	}
}

func (t *endpointTable) add(identifier string, endpoints ...string) {
	for _, ep := range endpoints {
		t.counts[ep]++

		if t.files[ep] == nil {
			t.files[ep] = map[string]struct{}{}
		}

		t.files[ep][identifier] = struct{}{}
	}
}

// ranked orders candidates by occurrences, then absolute URLs before
// relative paths, then URL.
func (t *endpointTable) ranked() []m.EndpointCandidate {
	out := make([]m.EndpointCandidate, 0, len(t.counts))

	for ep, n := range t.counts {
		files := make([]string, 0, len(t.files[ep]))
		for id := range t.files[ep] {
			files = append(files, id)
		}

		sort.Strings(files)

		out = append(out, m.EndpointCandidate{URL: ep, Occurrences: n, SourceFiles: files})
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Occurrences != b.Occurrences {
			return a.Occurrences > b.Occurrences
		}

		if a.Absolute() != b.Absolute() {
			return a.Absolute()
		}

		return a.URL < b.URL
	})

	return out
}

func (t *endpointTable) best() (string, bool) {
	ranked := t.ranked()
	if len(ranked) == 0 {
		return "", false
	}

	return ranked[0].URL, true
}
