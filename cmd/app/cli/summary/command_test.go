package summary

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"exusiai.dev/equipsorter/internal/app/appconfig"
	"exusiai.dev/equipsorter/internal/pkg/apperr"
	"exusiai.dev/equipsorter/internal/repo"
	"exusiai.dev/equipsorter/internal/service"
)

func testApp(buf *bytes.Buffer, conf *appconfig.Config) *cli.App {
	deps := CommandDeps{
		Config:         conf,
		SummaryService: service.NewSummary(repo.NewEquipment()),
	}
	return &cli.App{
		Writer: buf,
		Commands: []*cli.Command{command(func() (CommandDeps, error) {
			return deps, nil
		})},
	}
}

func TestSummaryCommand(t *testing.T) {
	input := filepath.Join(t.TempDir(), "equipment.csv")
	require.NoError(t, os.WriteFile(input, []byte("name,stats\nBow,attack:5\nSword,attack:5\nRing,\n"), 0o644))

	var buf bytes.Buffer
	app := testApp(&buf, &appconfig.Config{ConfigSpec: appconfig.ConfigSpec{StatsColumn: -1}})

	require.NoError(t, app.Run([]string{"equipsorter", "summary", "--input", input}))

	expected := `{
  "source": ` + `"` + input + `"` + `,
  "total": 3,
  "absent": 1,
  "profiles": [
    {
      "label": "pure attack",
      "count": 2
    },
    {
      "label": "N/A",
      "count": 1
    }
  ]
}
`
	assert.Equal(t, expected, buf.String())
}

func TestSummaryCommandRequiresInput(t *testing.T) {
	var buf bytes.Buffer
	app := testApp(&buf, &appconfig.Config{ConfigSpec: appconfig.ConfigSpec{StatsColumn: -1}})

	err := app.Run([]string{"equipsorter", "summary"})
	assert.ErrorIs(t, err, apperr.ErrInvalidConfig)
	assert.Empty(t, buf.String())
}
