package stepindex

import (
	"sort"
	"time"

	"github.com/veighnsche/cukerust/internal/corelog"
	"go.uber.org/zap"
)

// BuildIndex sorts entries by (file, line), tallies by_kind, and computes
// the ambiguous count — the number of distinct (kind, regex) keys that
// occur more than once, not the number of offending entries. It never
// reads the clock; use BuildIndexWithTimestamp for that.
func BuildIndex(entries []StepEntry) StepIndex {
	sorted := make([]StepEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].File != sorted[j].File {
			return sorted[i].File < sorted[j].File
		}
		return sorted[i].Line < sorted[j].Line
	})

	stats := Stats{Total: len(sorted)}

	type key struct {
		kind  StepKind
		regex string
	}
	counts := make(map[key]int, len(sorted))

	for _, e := range sorted {
		switch e.Kind {
		case Given:
			stats.ByKind.Given++
		case When:
			stats.ByKind.When++
		case Then:
			stats.ByKind.Then++
		}
		counts[key{e.Kind, e.Regex}]++
	}

	for _, c := range counts {
		if c > 1 {
			stats.Ambiguous++
		}
	}

	corelog.L().Debug("built step index",
		zap.Int("total", stats.Total), zap.Int("ambiguous", stats.Ambiguous))

	return StepIndex{Steps: sorted, Stats: stats}
}

// BuildIndexWithTimestamp behaves like BuildIndex but additionally stamps
// Stats.GeneratedAt with the current instant in RFC 3339 UTC. Reserved for
// native builds with real wall-clock access; freestanding/sandboxed
// embeddings should call BuildIndex instead so the field is omitted.
func BuildIndexWithTimestamp(entries []StepEntry) StepIndex {
	idx := BuildIndex(entries)
	ts := time.Now().UTC().Format(time.RFC3339)
	idx.Stats.GeneratedAt = &ts
	return idx
}
