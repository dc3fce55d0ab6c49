package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Radin-System/go-sarvcrm-api/cmd/sarv/commands"
)

func TestNewRelatedCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewRelatedCommand()
	assert.Equal(t, "related", cmd.Use)
	assert.Equal(t, "Work with record relationships", cmd.Short)

	subcommands := cmd.Commands()
	assert.Len(t, subcommands, 2)

	commandNames := make([]string, 0, len(subcommands))
	for _, subcmd := range subcommands {
		commandNames = append(commandNames, subcmd.Name())
	}

	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "save")
}

func TestRelatedSaveCommandArgs(t *testing.T) {
	t.Parallel()

	cmd := commands.NewRelatedCommand()
	save := findSubcommand(cmd, "save")
	require.NotNil(t, save)

	err := save.Args(save, []string{"Contacts", "id-1", "opportunities"})
	assert.Error(t, err)

	err = save.Args(save, []string{"Contacts", "id-1", "opportunities", "rel-1"})
	assert.NoError(t, err)

	err = save.Args(save, []string{"Contacts", "id-1", "opportunities", "rel-1", "rel-2"})
	assert.NoError(t, err)
}
