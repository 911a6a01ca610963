package gemini

import (
	"context"
	"log/slog"
	"strings"
)

// DefaultModel is returned when the catalog has no acceptable entry or cannot
// be listed at all.
const DefaultModel = "models/gemini-1.5-flash"

// expensiveMarker tags the tier that burns through free-tier quota.
const expensiveMarker = "2.5-pro"

// ModelLister is the catalog surface SelectModel needs. *Client implements it.
type ModelLister interface {
	ListModels(ctx context.Context) ([]ModelInfo, error)
}

// SelectModel picks a generation-capable model from the live catalog. The
// catalog changes over time and some tiers are rate-limited or costly, so
// preference runs cheap/fast first:
//
//  1. a flash model at 1.5
//  2. any flash model
//  3. gemini-pro
//  4. anything that is not the expensive tier
//  5. DefaultModel
//
// The caller always gets a usable identifier; a listing failure is logged and
// falls through to DefaultModel.
func SelectModel(ctx context.Context, lister ModelLister) string {
	models, err := lister.ListModels(ctx)
	if err != nil {
		slog.Warn("could not list models, using fallback", "error", err, "fallback", DefaultModel)
		return DefaultModel
	}

	available := make([]string, 0, len(models))
	for _, m := range models {
		if m.SupportsGeneration() {
			available = append(available, m.Name)
		}
	}

	for _, name := range available {
		if strings.Contains(strings.ToLower(name), "flash") && strings.Contains(name, "1.5") {
			return name
		}
	}

	for _, name := range available {
		if strings.Contains(strings.ToLower(name), "flash") {
			return name
		}
	}

	for _, name := range available {
		if strings.Contains(name, "gemini-pro") {
			return name
		}
	}

	for _, name := range available {
		if !strings.Contains(name, expensiveMarker) {
			return name
		}
	}

	return DefaultModel
}
