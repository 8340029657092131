package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentahq/talenta/core"
)

func descriptor(name string, kind core.OperationKind) Descriptor {
	return Descriptor{
		Name:        name,
		Description: "desc " + name,
		Kind:        kind,
		Parameters: map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		},
	}
}

func TestCatalog_RegisterAndGet(t *testing.T) {
	c := New()
	require.NoError(t, c.Register(descriptor("create_job_ad", core.OpJobAd)))

	d, ok := c.Get("create_job_ad")
	require.True(t, ok)
	assert.Equal(t, core.OpJobAd, d.Kind)

	_, ok = c.Get("nope")
	assert.False(t, ok)
}

func TestCatalog_DuplicateNameFails(t *testing.T) {
	c := New()
	require.NoError(t, c.Register(descriptor("op", core.OpJobAd)))
	assert.Error(t, c.Register(descriptor("op", core.OpDIReview)))
	assert.Equal(t, 1, c.Len())
}

func TestCatalog_EmptyNameOrKindFails(t *testing.T) {
	c := New()
	assert.Error(t, c.Register(descriptor("", core.OpJobAd)))
	assert.Error(t, c.Register(Descriptor{Name: "x"}))
}

func TestCatalog_AllKeepsRegistrationOrder(t *testing.T) {
	c := New()
	names := []string{"c_op", "a_op", "b_op"}
	for _, n := range names {
		require.NoError(t, c.Register(descriptor(n, core.OpJobAd)))
	}

	all := c.All()
	require.Len(t, all, 3)
	for i, n := range names {
		assert.Equal(t, n, all[i].Name)
	}
}

func TestCatalog_ToolDefinitionsPassThrough(t *testing.T) {
	c := New()
	d := descriptor("review_job_ad", core.OpJobAdReview)
	d.Parameters = map[string]any{
		"type": "object",
		"properties": map[string]any{
			"job_ad_text": map[string]any{"type": "string"},
		},
		"required": []string{"job_ad_text"},
	}
	require.NoError(t, c.Register(d))

	defs := c.ToolDefinitions()
	require.Len(t, defs, 1)
	assert.Equal(t, "review_job_ad", defs[0].Name)
	assert.Equal(t, d.Description, defs[0].Description)
	assert.Equal(t, d.Parameters, defs[0].Parameters)
}
