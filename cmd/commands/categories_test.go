package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoriesCommand(t *testing.T) {
	cmd := NewCategoriesCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "random\ngaming (default)\ntech\nfantasy\nspace\nnature\nmystical\n", buf.String())
}

func TestCategoriesCommand_JSON(t *testing.T) {
	cmd := NewCategoriesCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--format", "json"})

	require.NoError(t, cmd.Execute())
	assert.JSONEq(t, `{
		"default": "Gaming",
		"categories": ["Random", "Gaming", "Tech", "Fantasy", "Space", "Nature", "Mystical"]
	}`, buf.String())
}

func TestCategoriesCommand_InvalidFormat(t *testing.T) {
	cmd := NewCategoriesCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--format", "csv"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}
