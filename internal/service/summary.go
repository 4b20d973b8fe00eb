package service

import (
	"context"
	"io"
	"sort"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"exusiai.dev/equipsorter/internal/model"
	"exusiai.dev/equipsorter/internal/pkg/statprofile"
	"exusiai.dev/equipsorter/internal/repo"
)

type Summary struct {
	EquipmentRepo *repo.Equipment
}

func NewSummary(equipmentRepo *repo.Equipment) *Summary {
	return &Summary{
		EquipmentRepo: equipmentRepo,
	}
}

func (s *Summary) Summarize(ctx context.Context, path string, statsColumn int) (*model.ProfileSummary, error) {
	table, _, err := s.EquipmentRepo.Load(ctx, path, repo.LoadOptions{StatsColumn: statsColumn})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load equipment file")
	}

	Augment(table.Rows)

	summary := Tally(table.Rows)
	summary.Source = path
	return summary, nil
}

// Tally counts labels, most frequent first and alphabetically among equals.
func Tally(rows []*model.Equipment) *model.ProfileSummary {
	counts := lo.CountValuesBy(rows, func(row *model.Equipment) string {
		return row.ProcessedStats
	})

	profiles := lo.MapToSlice(counts, func(label string, count int) *model.ProfileCount {
		return &model.ProfileCount{Label: label, Count: count}
	})
	sort.Slice(profiles, func(i, j int) bool {
		if profiles[i].Count != profiles[j].Count {
			return profiles[i].Count > profiles[j].Count
		}
		return profiles[i].Label < profiles[j].Label
	})

	return &model.ProfileSummary{
		Total:    len(rows),
		Absent:   counts[statprofile.LabelAbsent],
		Profiles: profiles,
	}
}

func (s *Summary) Render(w io.Writer, summary *model.ProfileSummary) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(summary), "failed to encode summary")
}
