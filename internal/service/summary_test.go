package service

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"exusiai.dev/equipsorter/internal/model"
	"exusiai.dev/equipsorter/internal/repo"
)

func TestTally(t *testing.T) {
	rows := []*model.Equipment{
		{Stats: null.StringFrom("attack:1, attack:1")},
		{Stats: null.StringFrom("defense:1")},
		{},
		{Stats: null.StringFrom("attack:1, attack:1, attack:1")},
		{},
	}
	Augment(rows)

	summary := Tally(rows)
	assert.Equal(t, 5, summary.Total)
	assert.Equal(t, 2, summary.Absent)
	assert.Equal(t, []*model.ProfileCount{
		{Label: "N/A", Count: 2},
		{Label: "pure attack", Count: 2},
		{Label: "pure defense", Count: 1},
	}, summary.Profiles)
}

func TestSummarize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "equipment.csv")
	require.NoError(t, os.WriteFile(path, []byte(equipmentFixture), 0o644))

	s := NewSummary(repo.NewEquipment())
	summary, err := s.Summarize(context.Background(), path, -1)
	require.NoError(t, err)
	assert.Equal(t, path, summary.Source)
	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 1, summary.Absent)
	require.Len(t, summary.Profiles, 4)
	assert.Equal(t, "1/1/1 mixed", summary.Profiles[0].Label)

	var buf bytes.Buffer
	require.NoError(t, s.Render(&buf, summary))
	assert.Contains(t, buf.String(), `"label": "2/1 strength"`)
	assert.Contains(t, buf.String(), `"total": 4`)
}
