package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestExpand_MetadataDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := (&Document{}).Expand()
	require.NoError(t, err)

	assert.Equal(t, Metadata{Partition: "Common", Name: "default-config"}, cfg.Metadata)
	assert.True(t, cfg.Metadata.IsCommonPartition())
}

func TestExpand_MonitorDefaults(t *testing.T) {
	t.Parallel()

	doc := &Document{Spec: SectionsSpec{Monitors: []MonitorSpec{
		{Name: "plain"},
		{Name: "secure", Type: "HTTPS", Send: strPtr("GET /health"), Receive: strPtr("OK")},
		{Name: "tcp", Type: "Tcp", Interval: intPtr(5), Timeout: intPtr(16), Send: strPtr("ignored")},
		{Name: "odd", Type: "UDP"},
	}}}

	cfg, err := doc.Expand()
	require.NoError(t, err)
	require.Len(t, cfg.Monitors, 4)

	assert.Equal(t, Monitor{
		Name:     "plain",
		Type:     MonitorHTTP,
		Interval: 30,
		Timeout:  90,
		Send:     `GET / HTTP/1.1\r\nHost: example.com\r\n\r\n`,
		Receive:  "HTTP/1.1 200 OK",
	}, cfg.Monitors[0])

	assert.Equal(t, MonitorHTTPS, cfg.Monitors[1].Type)
	assert.Equal(t, "GET /health", cfg.Monitors[1].Send)
	assert.Equal(t, "OK", cfg.Monitors[1].Receive)

	assert.Equal(t, Monitor{Name: "tcp", Type: MonitorTCP, Interval: 5, Timeout: 16}, cfg.Monitors[2])

	assert.Equal(t, MonitorType("udp"), cfg.Monitors[3].Type)
	assert.False(t, cfg.Monitors[3].Type.IsSupported())
}

func TestExpand_ProfileAndPoolDefaults(t *testing.T) {
	t.Parallel()

	doc := &Document{Spec: SectionsSpec{
		Profiles: []ProfileSpec{{Name: "a"}, {Name: "b", Type: "TCP", Description: "fast"}},
		Pools:    []PoolSpec{{Name: "empty"}, {Name: "web", Monitor: "http_mon", Members: []string{"n2", "n1"}}},
	}}

	cfg, err := doc.Expand()
	require.NoError(t, err)

	assert.Equal(t, Profile{Name: "a", Type: ProfileHTTP}, cfg.Profiles[0])
	assert.Equal(t, Profile{Name: "b", Type: ProfileTCP, Description: "fast"}, cfg.Profiles[1])

	assert.Equal(t, Pool{Name: "empty", Monitor: "gateway_icmp", Members: []string{}}, cfg.Pools[0])
	assert.Equal(t, Pool{Name: "web", Monitor: "http_mon", Members: []string{"n2", "n1"}}, cfg.Pools[1])
}

func TestExpand_DoesNotAliasDocument(t *testing.T) {
	t.Parallel()

	doc := &Document{Spec: SectionsSpec{Pools: []PoolSpec{{Name: "p", Members: []string{"n1"}}}}}
	cfg, err := doc.Expand()
	require.NoError(t, err)

	doc.Spec.Pools[0].Members[0] = "changed"
	assert.Equal(t, "n1", cfg.Pools[0].Members[0])
}

func TestExpand_InvalidDocument(t *testing.T) {
	t.Parallel()

	doc := &Document{Spec: SectionsSpec{Nodes: []NodeSpec{{Name: "n"}}}}
	cfg, err := doc.Expand()
	require.Error(t, err)
	assert.Nil(t, cfg)
}
