// Package optimizer computes, per shared dependency and per runtime, which exports of the
// dependency's fallback module are referenced by the rest of the build, and turns the
// result into tree-shaking markers and runtime metadata.
package optimizer

import (
	"context"
	"runtime"
	"slices"

	"go.trai.ch/sharetree/internal/core/domain"
	"go.trai.ch/sharetree/internal/core/ports"
)

// Optimizer holds the construction-time configuration of the export optimizer.
// It keeps no per-build state; every stage receives the session it operates on.
type Optimizer struct {
	shared      map[string]domain.SharedSpec
	shareKeys   []string
	ignored     map[string]struct{}
	overrides   domain.OverrideMap
	parallelism int

	logger ports.Logger
	tracer ports.Tracer
}

// New creates an Optimizer. Only share keys with tree shaking enabled are retained.
func New(opts domain.Options, logger ports.Logger, tracer ports.Tracer) *Optimizer {
	shared := make(map[string]domain.SharedSpec, len(opts.Shared))
	for _, spec := range opts.Shared {
		if !spec.TreeShake {
			continue
		}
		shared[spec.ShareKey] = spec
	}

	shareKeys := make([]string, 0, len(shared))
	for key := range shared {
		shareKeys = append(shareKeys, key)
	}
	slices.Sort(shareKeys)

	ignored := make(map[string]struct{}, len(opts.IgnoredRuntimes))
	for _, name := range opts.IgnoredRuntimes {
		ignored[name] = struct{}{}
	}

	parallelism := opts.Parallelism
	if parallelism < 1 {
		parallelism = runtime.NumCPU()
	}

	return &Optimizer{
		shared:      shared,
		shareKeys:   shareKeys,
		ignored:     ignored,
		overrides:   opts.Overrides,
		parallelism: parallelism,
		logger:      logger,
		tracer:      tracer,
	}
}

// Enabled reports whether at least one share key is retained. A disabled optimizer
// turns every stage into a no-op.
func (o *Optimizer) Enabled() bool {
	return len(o.shared) > 0
}

// ShareKeys returns the retained share keys in order.
func (o *Optimizer) ShareKeys() []string {
	return slices.Clone(o.shareKeys)
}

// NewSession creates a session seeded for the retained share keys.
func (o *Optimizer) NewSession(registry *Registry) *domain.Session {
	return registry.Create(o.shareKeys)
}

// OptimizeDependencies runs one optimization pass over the graph: it resets the
// session, discovers provide/fallback pairs, collects referenced exports, applies
// forced and override exports, and finally marks the fallback modules' exports.
func (o *Optimizer) OptimizeDependencies(
	ctx context.Context,
	session *domain.Session,
	modules ports.ModuleGraph,
	chunks ports.ChunkGraph,
) error {
	if !o.Enabled() || session == nil {
		return nil
	}

	ctx, span := o.tracer.Start(ctx, "Optimizing Shared Dependencies",
		ports.WithAttribute("session", int64(session.ID)))
	defer span.End()

	o.tracer.EmitPlan(ctx, o.shareKeys)

	session.Reset(o.shareKeys)
	o.populateProvidePairs(modules, session)

	if err := o.collect(ctx, modules, chunks, session); err != nil {
		span.RecordError(err)
		return err
	}

	if err := ctx.Err(); err != nil {
		span.RecordError(err)
		return err
	}
	o.applyOverrides(session)

	if err := ctx.Err(); err != nil {
		span.RecordError(err)
		return err
	}
	_, markSpan := o.tracer.Start(ctx, "Marking Fallback Exports")
	o.markExports(modules, session)
	markSpan.SetAttribute("pairs", len(session.Pairs))
	markSpan.End()

	span.SetAttribute("runtimes", len(session.Runtimes))
	return nil
}

func (o *Optimizer) isIgnored(rt domain.RuntimeSpec) bool {
	_, ok := o.ignored[rt.String()]
	return ok
}

// populateProvidePairs records, for every retained share key, the provide module and
// the fallback module its first provide-fallback edge points at.
func (o *Optimizer) populateProvidePairs(modules ports.ModuleGraph, session *domain.Session) {
	for id := range modules.Modules() {
		module := mustModule(modules, id)
		shareKey, ok := module.ProvidedShareKey()
		if !ok {
			continue
		}
		if _, tracked := o.shared[shareKey]; !tracked {
			continue
		}
		fallback, ok := findFallback(modules, id)
		if !ok {
			continue
		}
		session.Pairs[shareKey] = domain.ProvidePair{
			Provide:  id,
			Fallback: fallback,
		}
	}
}

func findFallback(modules ports.ModuleGraph, provide domain.ModuleID) (domain.ModuleID, bool) {
	for _, conn := range modules.Connections(provide) {
		if conn == nil {
			continue
		}
		if conn.Kind() == domain.DependencyProvideSharedFallback {
			return conn.Target(), true
		}
	}
	return domain.ModuleID{}, false
}
