package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Radin-System/go-sarvcrm-api/cmd/sarv/commands"
)

func TestNewBatchCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewBatchCommand()
	assert.Equal(t, "batch", cmd.Name())
	assert.Equal(t, "Run a batch of record operations", cmd.Short)
	assert.NotNil(t, cmd.Flags().Lookup("concurrency"))

	err := cmd.Args(cmd, []string{})
	assert.Error(t, err)

	err = cmd.Args(cmd, []string{"operations.yml"})
	assert.NoError(t, err)
}
