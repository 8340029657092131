// Package dispatch validates and executes one requested operation at a time:
// catalog lookup, dependency check, argument validation, processor invocation
// and artifact storage. Every failure category is recovered locally into a
// structured Result that flows back into the conversation, giving the model a
// chance to self-correct; nothing here aborts the orchestrator loop.
package dispatch

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/talentahq/talenta/catalog"
	"github.com/talentahq/talenta/core"
	"github.com/talentahq/talenta/dependency"
	"github.com/talentahq/talenta/internal/util"
	"github.com/talentahq/talenta/logging"
)

// Processor is the contract required of every business module. Process
// receives the decoded argument map (already schema-validated) and the
// session's stored prerequisite artifacts, and returns the produced artifact
// or a domain error. The error text of a domain error is surfaced verbatim:
// it is the only actionable detail available to the end user.
type Processor interface {
	Process(ctx context.Context, args map[string]any, prereqs map[core.ArtifactKind]core.Artifact) (core.Artifact, error)
}

// ProcessorFunc adapts a function to the Processor interface.
type ProcessorFunc func(ctx context.Context, args map[string]any, prereqs map[core.ArtifactKind]core.Artifact) (core.Artifact, error)

// Process implements Processor.
func (f ProcessorFunc) Process(ctx context.Context, args map[string]any, prereqs map[core.ArtifactKind]core.Artifact) (core.Artifact, error) {
	return f(ctx, args, prereqs)
}

// Result is the outcome of executing one operation request. Exactly one of
// Content (serialized artifact, on success) or Err (failure text) is set.
type Result struct {
	CallID  string
	Name    string
	OK      bool
	Content string
	Err     string
}

// Payload renders the result as the text fed back into the conversation.
func (r Result) Payload() string {
	if r.OK {
		if r.Content == "" {
			return "{}"
		}
		return r.Content
	}
	return "Error: " + r.Err
}

// Options configure a Dispatcher.
type Options struct {
	Logger logging.Logger
}

// Dispatcher routes operation requests to processors through the catalog and
// the dependency graph. The processor table is a closed lookup map populated
// at startup; selection is by explicit operation kind, never runtime type
// inspection.
type Dispatcher struct {
	catalog    *catalog.Catalog
	graph      *dependency.Graph
	artifacts  core.ArtifactStore
	processors map[core.OperationKind]Processor
	logger     logging.Logger
}

// New constructs a Dispatcher over the given catalog, graph and store.
func New(cat *catalog.Catalog, graph *dependency.Graph, artifacts core.ArtifactStore, optFns ...func(o *Options)) *Dispatcher {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Dispatcher{
		catalog:    cat,
		graph:      graph,
		artifacts:  artifacts,
		processors: make(map[core.OperationKind]Processor),
		logger:     opts.Logger,
	}
}

// RegisterProcessor binds an operation kind to its processor. Duplicate
// bindings are a fatal configuration error.
func (d *Dispatcher) RegisterProcessor(kind core.OperationKind, p Processor) error {
	if p == nil {
		return fmt.Errorf("dispatch: nil processor for kind %q", kind)
	}
	if _, exists := d.processors[kind]; exists {
		return fmt.Errorf("dispatch: processor for kind %q already registered", kind)
	}
	d.processors[kind] = p
	return nil
}

// Execute runs one operation request against a session. The artifact store
// is only mutated on processor success; every failure path is read-only.
func (d *Dispatcher) Execute(ctx context.Context, sessionID string, call core.ToolCall) Result {
	res := Result{CallID: call.ID, Name: call.Name}

	// 1. Unknown operation: fail before any dependency or argument work.
	desc, ok := d.catalog.Get(call.Name)
	if !ok {
		res.Err = fmt.Sprintf("unknown operation: %s", call.Name)
		d.logger.Warn("dispatch.unknown_operation", "operation", call.Name, "session_id", sessionID)
		return res
	}

	// 2. Dependency check, reporting every missing kind, not just the first.
	check := d.graph.MayExecute(d.artifacts, sessionID, desc.Kind)
	if !check.CanProceed {
		res.Err = fmt.Sprintf(
			"cannot execute %s: requires %s to be created first",
			desc.Name, dependency.MissingNames(check.Missing),
		)
		d.logger.Info("dispatch.dependency_unsatisfied",
			"operation", desc.Name, "session_id", sessionID, "missing", check.Missing)
		return res
	}

	// 3. Argument validation against the declared parameter shape.
	if err := util.ValidateArguments(desc.Parameters, call.Arguments); err != nil {
		res.Err = fmt.Sprintf("invalid arguments for %s: %v", desc.Name, err)
		d.logger.Info("dispatch.invalid_arguments", "operation", desc.Name, "error", err.Error())
		return res
	}
	args := map[string]any{}
	if len(call.Arguments) > 0 {
		if err := json.Unmarshal(call.Arguments, &args); err != nil {
			res.Err = fmt.Sprintf("invalid arguments for %s: %v", desc.Name, err)
			return res
		}
	}

	// 4. Invoke the processor with the prerequisite artifacts.
	proc, ok := d.processors[desc.Kind]
	if !ok {
		res.Err = fmt.Sprintf("no processor configured for operation: %s", desc.Name)
		d.logger.Error("dispatch.processor_missing", "operation", desc.Name, "kind", desc.Kind)
		return res
	}
	prereqs, err := d.collectPrereqs(sessionID, desc)
	if err != nil {
		res.Err = fmt.Sprintf("cannot execute %s: %v", desc.Name, err)
		return res
	}
	artifact, procErr := d.invoke(ctx, proc, args, prereqs)
	if procErr != nil {
		// 6. Preserve the processor's own error text verbatim.
		res.Err = procErr.Error()
		d.logger.Info("dispatch.processor_failed", "operation", desc.Name, "error", procErr.Error())
		return res
	}
	if artifact == nil {
		res.Err = fmt.Sprintf("operation %s produced no artifact", desc.Name)
		return res
	}

	// 5. Store the artifact, then return its serialized form.
	if err := d.artifacts.Store(sessionID, artifact); err != nil {
		res.Err = fmt.Sprintf("failed to store %s result: %v", desc.Name, err)
		d.logger.Error("dispatch.store_failed", "operation", desc.Name, "error", err.Error())
		return res
	}
	data, err := json.Marshal(artifact)
	if err != nil {
		res.Err = fmt.Sprintf("failed to serialize %s result: %v", desc.Name, err)
		return res
	}

	res.OK = true
	res.Content = string(data)
	d.logger.Info("dispatch.executed",
		"operation", desc.Name, "session_id", sessionID, "artifact_kind", artifact.Kind())
	return res
}

// collectPrereqs gathers required artifacts (all present after the dependency
// check) plus any declared optional kinds that happen to exist.
func (d *Dispatcher) collectPrereqs(sessionID string, desc catalog.Descriptor) (map[core.ArtifactKind]core.Artifact, error) {
	prereqs := make(map[core.ArtifactKind]core.Artifact, len(desc.Requires)+len(desc.Optional))
	for _, kind := range desc.Requires {
		a, err := d.artifacts.Retrieve(sessionID, kind)
		if err != nil {
			return nil, fmt.Errorf("prerequisite %s unavailable: %w", kind, err)
		}
		prereqs[kind] = a
	}
	for _, kind := range desc.Optional {
		if a, err := d.artifacts.Retrieve(sessionID, kind); err == nil {
			prereqs[kind] = a
		}
	}
	return prereqs, nil
}

// invoke runs the processor with panic recovery so a faulty module degrades
// into a failure result instead of tearing down the session loop.
func (d *Dispatcher) invoke(
	ctx context.Context,
	proc Processor,
	args map[string]any,
	prereqs map[core.ArtifactKind]core.Artifact,
) (artifact core.Artifact, err error) {
	defer func() {
		if r := recover(); r != nil {
			artifact = nil
			err = fmt.Errorf("operation panicked: %v", r)
		}
	}()
	return proc.Process(ctx, args, prereqs)
}
