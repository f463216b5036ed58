package testing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/ltmgen/internal/config"
)

func TestConfigBuilder_Immutable(t *testing.T) {
	t.Parallel()

	base := NewConfigBuilder().WithNode("n1", "10.0.0.1").WithPool("p1", "", "n1")
	a := base.WithNode("n2", "10.0.0.2").Build()
	b := base.Build()

	assert.Len(t, a.Nodes, 2)
	assert.Len(t, b.Nodes, 1)

	a.Pools[0].Members[0] = "changed"
	assert.Equal(t, "n1", base.Build().Pools[0].Members[0])
}

func TestConfigBuilder_Defaults(t *testing.T) {
	t.Parallel()

	cfg := NewConfigBuilder().WithMonitor("m", config.MonitorHTTP).WithPool("p", "gateway_icmp").Build()

	assert.Equal(t, config.DefaultPartition, cfg.Metadata.Partition)
	assert.Equal(t, config.DefaultMonitorInterval, cfg.Monitors[0].Interval)
	assert.Equal(t, []string{}, cfg.Pools[0].Members)
}

func TestFixturesMatchDocuments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want *config.Config
	}{
		{"end to end", EndToEndDocument, EndToEndConfig()},
		{"warnings", WarningDocument, WarningConfig()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := config.LoadFromBytes([]byte(tt.doc))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}
