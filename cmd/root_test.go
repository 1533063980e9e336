package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunCmd_FlagDefaults(t *testing.T) {
	for flag, want := range map[string]string{
		"vehicles":      "60",
		"lanes":         "4",
		"delta":         "1",
		"steps":         "0",
		"seed":          "0",
		"mode":          "finite",
		"max-workers":   "4",
		"worker-policy": "fixed",
		"print-every":   "0",
		"log":           "info",
	} {
		f := runCmd.Flags().Lookup(flag)
		if assert.NotNil(t, f, "flag %q missing", flag) {
			assert.Equal(t, want, f.DefValue, "flag %q default", flag)
		}
	}
}

func TestValidWorkerPolicies(t *testing.T) {
	assert.True(t, ValidWorkerPolicies["fixed"])
	assert.True(t, ValidWorkerPolicies["green-proportional"])
	assert.False(t, ValidWorkerPolicies["adaptive"])
}
