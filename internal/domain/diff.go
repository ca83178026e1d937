package domain

import (
	"github.com/pmezard/go-difflib/difflib"
	m "graphsniper.dev/pkg/graphsniper/internal/model"
)

// DiffResults compares two results. Removed and changed operations follow the
// order of before, added operations the order of after.
func DiffResults(before, after m.ExtractionResult) m.ResultDiff {
	diff := m.ResultDiff{
		EndpointBefore: before.EndpointOrEmpty(),
		EndpointAfter:  after.EndpointOrEmpty(),
	}

	for _, old := range before.Operations.Records() {
		cur, ok := after.Operations.Get(old.Name)

		switch {
		case !ok:
			diff.Changes = append(diff.Changes, m.OperationChange{Name: old.Name, Kind: old.Kind, Status: m.Removed})
		case cur.Body != old.Body || cur.Kind != old.Kind:
			diff.Changes = append(diff.Changes, m.OperationChange{
				Name:   old.Name,
				Kind:   cur.Kind,
				Status: m.Changed,
				Diff:   unifiedDiff(old, cur),
			})
		}
	}

	for _, cur := range after.Operations.Records() {
		if _, ok := before.Operations.Get(cur.Name); !ok {
			diff.Changes = append(diff.Changes, m.OperationChange{Name: cur.Name, Kind: cur.Kind, Status: m.Added})
		}
	}

	return diff
}

func unifiedDiff(old, cur m.OperationRecord) string {
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(PrettyOperation(old.Body) + "\n"),
		B:        difflib.SplitLines(PrettyOperation(cur.Body) + "\n"),
		FromFile: "old/" + old.Name,
		ToFile:   "new/" + cur.Name,
		Context:  3,
	})
	if err != nil {
		return ""
	}

	return text
}
