package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentahq/talenta/artifact"
	"github.com/talentahq/talenta/catalog"
	"github.com/talentahq/talenta/core"
	"github.com/talentahq/talenta/dependency"
)

type profileArtifact struct {
	Title string `json:"title"`
}

func (profileArtifact) Kind() core.ArtifactKind { return core.ArtifactRequirementProfile }

type jobAdArtifact struct {
	Headline string `json:"headline"`
}

func (jobAdArtifact) Kind() core.ArtifactKind { return core.ArtifactJobAd }

// fixture wires a two-operation world: a standalone profile operation and a
// job ad operation requiring the profile artifact.
func fixture(t *testing.T) (*Dispatcher, *artifact.InMemoryStore) {
	t.Helper()

	cat := catalog.New()
	require.NoError(t, cat.Register(catalog.Descriptor{
		Name: "create_requirement_profile",
		Kind: core.OpRequirementProfile,
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"position_title": map[string]any{"type": "string"},
			},
			"required": []string{"position_title"},
		},
	}))
	require.NoError(t, cat.Register(catalog.Descriptor{
		Name:     "create_job_ad",
		Kind:     core.OpJobAd,
		Requires: []core.ArtifactKind{core.ArtifactRequirementProfile},
		Parameters: map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		},
	}))

	graph := dependency.NewGraph()
	graph.Declare(core.OpRequirementProfile)
	graph.Declare(core.OpJobAd, core.ArtifactRequirementProfile)

	store := artifact.NewInMemoryStore()
	d := New(cat, graph, store)

	require.NoError(t, d.RegisterProcessor(core.OpRequirementProfile, ProcessorFunc(
		func(ctx context.Context, args map[string]any, prereqs map[core.ArtifactKind]core.Artifact) (core.Artifact, error) {
			title, _ := args["position_title"].(string)
			return &profileArtifact{Title: title}, nil
		})))
	require.NoError(t, d.RegisterProcessor(core.OpJobAd, ProcessorFunc(
		func(ctx context.Context, args map[string]any, prereqs map[core.ArtifactKind]core.Artifact) (core.Artifact, error) {
			prof, ok := prereqs[core.ArtifactRequirementProfile].(*profileArtifact)
			if !ok {
				return nil, fmt.Errorf("profile prerequisite missing")
			}
			return &jobAdArtifact{Headline: prof.Title}, nil
		})))

	return d, store
}

func call(name string, args string) core.ToolCall {
	return core.ToolCall{ID: "call-1", Name: name, Arguments: json.RawMessage(args)}
}

func TestExecute_StandaloneSucceeds(t *testing.T) {
	d, store := fixture(t)

	res := d.Execute(context.Background(), "s1", call("create_requirement_profile", `{"position_title":"Go Developer"}`))
	require.True(t, res.OK, res.Err)
	assert.Equal(t, "call-1", res.CallID)
	assert.JSONEq(t, `{"title":"Go Developer"}`, res.Content)
	assert.True(t, store.Has("s1", core.ArtifactRequirementProfile))
}

func TestExecute_MissingDependencyFailsAndStoreUnchanged(t *testing.T) {
	d, store := fixture(t)

	res := d.Execute(context.Background(), "s1", call("create_job_ad", `{}`))
	assert.False(t, res.OK)
	assert.Contains(t, res.Err, "requirement profile")
	assert.Contains(t, res.Err, "created first")
	assert.False(t, store.Has("s1", core.ArtifactJobAd))

	all, err := store.All("s1")
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestExecute_DependencySatisfiedReceivesPrerequisite(t *testing.T) {
	d, store := fixture(t)

	res := d.Execute(context.Background(), "s1", call("create_requirement_profile", `{"position_title":"Data Engineer"}`))
	require.True(t, res.OK, res.Err)

	res = d.Execute(context.Background(), "s1", call("create_job_ad", `{}`))
	require.True(t, res.OK, res.Err)
	assert.JSONEq(t, `{"headline":"Data Engineer"}`, res.Content)
	assert.True(t, store.Has("s1", core.ArtifactJobAd))
}

func TestExecute_UnknownOperationNamesTheOperation(t *testing.T) {
	d, _ := fixture(t)

	res := d.Execute(context.Background(), "s1", call("create_xyz", `{}`))
	assert.False(t, res.OK)
	assert.Contains(t, res.Err, "create_xyz")
}

func TestExecute_DependenciesArePerSession(t *testing.T) {
	d, _ := fixture(t)

	res := d.Execute(context.Background(), "s1", call("create_requirement_profile", `{"position_title":"X"}`))
	require.True(t, res.OK, res.Err)

	res = d.Execute(context.Background(), "s2", call("create_job_ad", `{}`))
	assert.False(t, res.OK)
	assert.Contains(t, res.Err, "requirement profile")
}

func TestExecute_MalformedArgumentsRejected(t *testing.T) {
	d, store := fixture(t)

	res := d.Execute(context.Background(), "s1", call("create_requirement_profile", `{"position_title":42}`))
	assert.False(t, res.OK)
	assert.Contains(t, res.Err, "invalid arguments")
	assert.False(t, store.Has("s1", core.ArtifactRequirementProfile))

	res = d.Execute(context.Background(), "s1", call("create_requirement_profile", `{}`))
	assert.False(t, res.OK)
	assert.Contains(t, res.Err, "invalid arguments")
}

func TestExecute_ProcessorErrorVerbatim(t *testing.T) {
	d, store := fixture(t)
	require.NoError(t, d.RegisterProcessor(core.OpDIReview, ProcessorFunc(
		func(ctx context.Context, args map[string]any, prereqs map[core.ArtifactKind]core.Artifact) (core.Artifact, error) {
			return nil, fmt.Errorf("job_ad_text is required")
		})))
	require.NoError(t, d.catalog.Register(catalog.Descriptor{
		Name:       "review_di_compliance",
		Kind:       core.OpDIReview,
		Parameters: map[string]any{"type": "object", "properties": map[string]any{}},
	}))

	res := d.Execute(context.Background(), "s1", call("review_di_compliance", `{}`))
	assert.False(t, res.OK)
	assert.Equal(t, "job_ad_text is required", res.Err)
	assert.Equal(t, "Error: job_ad_text is required", res.Payload())

	all, err := store.All("s1")
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestExecute_PanicRecoveredIntoResult(t *testing.T) {
	d, _ := fixture(t)
	require.NoError(t, d.RegisterProcessor(core.OpFunnelReport, ProcessorFunc(
		func(ctx context.Context, args map[string]any, prereqs map[core.ArtifactKind]core.Artifact) (core.Artifact, error) {
			panic("boom")
		})))
	require.NoError(t, d.catalog.Register(catalog.Descriptor{
		Name:       "create_funnel_report",
		Kind:       core.OpFunnelReport,
		Parameters: map[string]any{"type": "object", "properties": map[string]any{}},
	}))

	res := d.Execute(context.Background(), "s1", call("create_funnel_report", `{}`))
	assert.False(t, res.OK)
	assert.Contains(t, res.Err, "boom")
}

func TestRegisterProcessor_DuplicateFails(t *testing.T) {
	d, _ := fixture(t)
	err := d.RegisterProcessor(core.OpRequirementProfile, ProcessorFunc(
		func(ctx context.Context, args map[string]any, prereqs map[core.ArtifactKind]core.Artifact) (core.Artifact, error) {
			return nil, nil
		}))
	assert.Error(t, err)

	assert.Error(t, d.RegisterProcessor(core.OpCalendarInvite, nil))
}

func TestResult_Payload(t *testing.T) {
	assert.Equal(t, `{"a":1}`, Result{OK: true, Content: `{"a":1}`}.Payload())
	assert.Equal(t, "{}", Result{OK: true}.Payload())
	assert.Equal(t, "Error: nope", Result{Err: "nope"}.Payload())
}
