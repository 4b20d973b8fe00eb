package classify

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestClassifyCommand(t *testing.T) {
	var buf bytes.Buffer
	app := &cli.App{
		Writer:   &buf,
		Commands: []*cli.Command{Command()},
	}

	err := app.Run([]string{"equipsorter", "classify",
		"attack:5, attack:5, attack:5",
		"attack:5, defense:3, speed:2",
		"attack:5, attack:5, defense:3, defense:3",
	})
	require.NoError(t, err)
	assert.Equal(t, "pure attack\n1/1/1 mixed\n2/2 strength, defense\n", buf.String())
}
