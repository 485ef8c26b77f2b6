package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainerEnv(t *testing.T) {
	env := containerEnv("10.0.0.5", "32769")

	assert.Equal(t, "10.0.0.5", env["CLICKHOUSE_HOST"])
	assert.Equal(t, "32769", env["CLICKHOUSE_PORT"])

	// The dev harness always runs the real database in polling mode
	assert.Equal(t, "false", env["USE_MOCK_DB"])
	assert.Equal(t, "false", env["WEBHOOK_MODE"])
}
