package commands

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Flags(t *testing.T) {
	cmd := Generate()

	assert.Equal(t, "generate", cmd.Use)
	tests := []struct {
		name      string
		shorthand string
		defValue  string
	}{
		{"file", "f", "ltm_config.yaml"},
		{"output", "o", "."},
		{"publish-bucket", "", ""},
		{"metrics-file", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := cmd.Flags().Lookup(tt.name)
			require.NotNil(t, flag)
			assert.Equal(t, tt.shorthand, flag.Shorthand)
			assert.Equal(t, tt.defValue, flag.DefValue)
		})
	}
}

func TestGenerate_RejectsArgs(t *testing.T) {
	cmd := Generate()
	cmd.SetArgs([]string{"extra"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	assert.Error(t, cmd.Execute())
}

func TestPlan_Flags(t *testing.T) {
	cmd := Plan()

	flag := cmd.Flags().Lookup("format")
	require.NotNil(t, flag)
	assert.Equal(t, "text", flag.DefValue)
	assert.Equal(t, "ltm_config.yaml", cmd.Flags().Lookup("file").DefValue)
}

func TestPlan_RejectsUnknownFormat(t *testing.T) {
	cmd := Plan()
	cmd.SetArgs([]string{"--format", "toml"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported format "toml"`)
}

func TestValidate_Flags(t *testing.T) {
	cmd := Validate()

	watchFlag := cmd.Flags().Lookup("watch")
	require.NotNil(t, watchFlag)
	assert.Equal(t, "w", watchFlag.Shorthand)
	assert.Equal(t, "false", watchFlag.DefValue)

	debounce, err := cmd.Flags().GetDuration("debounce")
	require.NoError(t, err)
	assert.Equal(t, 300*time.Millisecond, debounce)
}

func TestInit_Flags(t *testing.T) {
	cmd := Init()

	flag := cmd.Flags().Lookup("output")
	require.NotNil(t, flag)
	assert.Equal(t, "o", flag.Shorthand)
	assert.Equal(t, "ltm_config.yaml", flag.DefValue)
}
