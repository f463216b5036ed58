package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestDocumentValidate_Valid(t *testing.T) {
	t.Parallel()

	doc := &Document{
		Spec: SectionsSpec{
			Monitors:       []MonitorSpec{{Name: "m"}},
			Profiles:       []ProfileSpec{{Name: "p"}},
			Nodes:          []NodeSpec{{Name: "n", Address: "10.0.0.1"}, {Name: "n6", Address: "2001:db8::1"}},
			Pools:          []PoolSpec{{Name: "pool"}},
			VirtualServers: []VirtualServerSpec{{Name: "vs", Destination: "10.0.0.100", Port: intPtr(80)}},
		},
	}

	assert.NoError(t, doc.Validate())
}

func TestDocumentValidate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		spec    SectionsSpec
		section string
		field   string
	}{
		{"monitor without name", SectionsSpec{Monitors: []MonitorSpec{{Type: "http"}}}, "spec.monitors", "name"},
		{"monitor zero interval", SectionsSpec{Monitors: []MonitorSpec{{Name: "m", Interval: intPtr(0)}}}, "spec.monitors", "interval"},
		{"monitor negative timeout", SectionsSpec{Monitors: []MonitorSpec{{Name: "m", Timeout: intPtr(-1)}}}, "spec.monitors", "timeout"},
		{"profile without name", SectionsSpec{Profiles: []ProfileSpec{{Type: "tcp"}}}, "spec.profiles", "name"},
		{"node without name", SectionsSpec{Nodes: []NodeSpec{{Address: "10.0.0.1"}}}, "spec.nodes", "name"},
		{"node without address", SectionsSpec{Nodes: []NodeSpec{{Name: "n"}}}, "spec.nodes", "address"},
		{"node with hostname", SectionsSpec{Nodes: []NodeSpec{{Name: "n", Address: "web.example.com"}}}, "spec.nodes", "address"},
		{"node with zone", SectionsSpec{Nodes: []NodeSpec{{Name: "n", Address: "fe80::1%eth0"}}}, "spec.nodes", "address"},
		{"pool without name", SectionsSpec{Pools: []PoolSpec{{Monitor: "m"}}}, "spec.pools", "name"},
		{"pool with blank member", SectionsSpec{Pools: []PoolSpec{{Name: "p", Members: []string{" "}}}}, "spec.pools", "members[0]"},
		{"vs without name", SectionsSpec{VirtualServers: []VirtualServerSpec{{Destination: "1.1.1.1", Port: intPtr(80)}}}, "spec.virtual_servers", "name"},
		{"vs without destination", SectionsSpec{VirtualServers: []VirtualServerSpec{{Name: "v", Port: intPtr(80)}}}, "spec.virtual_servers", "destination"},
		{"vs without port", SectionsSpec{VirtualServers: []VirtualServerSpec{{Name: "v", Destination: "1.1.1.1"}}}, "spec.virtual_servers", "port"},
		{"vs port out of range", SectionsSpec{VirtualServers: []VirtualServerSpec{{Name: "v", Destination: "1.1.1.1", Port: intPtr(70000)}}}, "spec.virtual_servers", "port"},
		{"monitor name with space", SectionsSpec{Monitors: []MonitorSpec{{Name: "web 1"}}}, "spec.monitors", "name"},
		{"profile name with semicolon", SectionsSpec{Profiles: []ProfileSpec{{Name: "a;b"}}}, "spec.profiles", "name"},
		{"node name with slash", SectionsSpec{Nodes: []NodeSpec{{Name: "a/b", Address: "10.0.0.1"}}}, "spec.nodes", "name"},
		{"pool name with substitution", SectionsSpec{Pools: []PoolSpec{{Name: "$(id)"}}}, "spec.pools", "name"},
		{"pool monitor with space", SectionsSpec{Pools: []PoolSpec{{Name: "p", Monitor: "gateway icmp"}}}, "spec.pools", "monitor"},
		{"pool member with pipe", SectionsSpec{Pools: []PoolSpec{{Name: "p", Members: []string{"n1|id"}}}}, "spec.pools", "members[0]"},
		{"vs name with newline", SectionsSpec{VirtualServers: []VirtualServerSpec{{Name: "v\nid", Destination: "1.1.1.1", Port: intPtr(80)}}}, "spec.virtual_servers", "name"},
		{"vs pool with backtick", SectionsSpec{VirtualServers: []VirtualServerSpec{{Name: "v", Destination: "1.1.1.1", Port: intPtr(80), Pool: "`id`"}}}, "spec.virtual_servers", "pool"},
		{"vs destination with semicolon", SectionsSpec{VirtualServers: []VirtualServerSpec{{Name: "v", Destination: "1.1.1.1;id", Port: intPtr(80)}}}, "spec.virtual_servers", "destination"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			doc := &Document{Spec: tt.spec}

			err := doc.Validate()
			require.Error(t, err)

			var verrs ValidationErrors
			require.True(t, errors.As(err, &verrs))
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.section, verrs[0].Section)
			assert.Equal(t, tt.field, verrs[0].Field)
		})
	}
}

func TestDocumentValidate_MetadataNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		meta  MetadataSpec
		field string
	}{
		{"partition with slash", MetadataSpec{Partition: "Tenant/A"}, "partition"},
		{"partition dot dot", MetadataSpec{Partition: ".."}, "partition"},
		{"name with space", MetadataSpec{Name: "web tier"}, "name"},
		{"lac with substitution", MetadataSpec{LAC: "CHG-$(id)"}, "lac"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			doc := &Document{Metadata: tt.meta}

			var verrs ValidationErrors
			require.True(t, errors.As(doc.Validate(), &verrs))
			require.Len(t, verrs, 1)
			assert.Equal(t, "metadata", verrs[0].Section)
			assert.Equal(t, tt.field, verrs[0].Field)
			assert.True(t, strings.HasPrefix(verrs[0].Error(), "metadata: "+tt.field+" must match"))
		})
	}
}

func TestDocumentValidate_AcceptedNames(t *testing.T) {
	t.Parallel()

	doc := &Document{
		Metadata: MetadataSpec{Partition: "Tenant_A", Name: "web.v2", LAC: "CHG-1234", Description: "free text; $(anything) goes"},
		Spec: SectionsSpec{
			Pools: []PoolSpec{{Name: "p-1", Monitor: "gateway_icmp", Members: []string{"n.1"}}},
			VirtualServers: []VirtualServerSpec{
				{Name: "vs6", Destination: "2001:db8::10", Port: intPtr(443)},
				{Name: "vs_rd", Destination: "10.0.0.1%2", Port: intPtr(80)},
			},
		},
	}

	assert.NoError(t, doc.Validate())
}

func TestIsValidName(t *testing.T) {
	t.Parallel()

	for _, ok := range []string{"Common", "web_1", "a.b-c"} {
		assert.True(t, IsValidName(ok), ok)
	}
	for _, bad := range []string{"", ".", "..", "a b", "a/b", `a\b`, "a;b", "a\nb", "$x"} {
		assert.False(t, IsValidName(bad), bad)
	}
}

func TestDocumentValidate_CollectsAllErrors(t *testing.T) {
	t.Parallel()

	doc := &Document{
		Spec: SectionsSpec{
			Nodes:          []NodeSpec{{}, {Name: "ok", Address: "10.0.0.1"}},
			VirtualServers: []VirtualServerSpec{{Name: "vs"}},
		},
	}

	err := doc.Validate()
	require.Error(t, err)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Len(t, verrs, 4)
	assert.Contains(t, err.Error(), "4 invalid field(s)")
	assert.Contains(t, err.Error(), "spec.virtual_servers[0] (vs): port is required")
}

func TestDocumentValidate_NoCrossReferenceChecks(t *testing.T) {
	t.Parallel()

	doc := &Document{
		Spec: SectionsSpec{
			Pools:          []PoolSpec{{Name: "p", Monitor: "undeclared", Members: []string{"ghost"}}},
			VirtualServers: []VirtualServerSpec{{Name: "vs", Destination: "1.1.1.1", Port: intPtr(80), Pool: "missing"}},
		},
	}

	assert.NoError(t, doc.Validate())
}

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	withName := ValidationError{Section: "spec.nodes", Index: 2, Entity: "n1", Field: "address", Message: "is required"}
	assert.Equal(t, "spec.nodes[2] (n1): address is required", withName.Error())

	withoutName := ValidationError{Section: "spec.pools", Index: 0, Field: "name", Message: "is required"}
	assert.Equal(t, "spec.pools[0]: name is required", withoutName.Error())
}
