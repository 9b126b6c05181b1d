package optimizer

import (
	"context"
	"slices"

	"go.trai.ch/sharetree/internal/core/domain"
	"go.trai.ch/sharetree/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// contribution is the usage one import edge records for one runtime.
type contribution struct {
	shareKey string
	runtime  domain.RuntimeSpec
	exports  []string
}

// collect walks every module and records the exports its live import edges reference
// in each shared dependency. Modules are analyzed concurrently; their contributions
// are merged into the session in module order.
func (o *Optimizer) collect(
	ctx context.Context,
	modules ports.ModuleGraph,
	chunks ports.ChunkGraph,
	session *domain.Session,
) error {
	ctx, span := o.tracer.Start(ctx, "Collecting Referenced Exports")
	defer span.End()

	ids := slices.Collect(modules.Modules())
	results := make([][]contribution, len(ids))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(o.parallelism)

	for i, id := range ids {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = o.collectModule(modules, chunks, id)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return err
	}

	recorded := 0
	for _, contributions := range results {
		for _, c := range contributions {
			rt := session.RegisterRuntime(c.runtime)
			bucket := session.Table.Bucket(c.shareKey, rt)
			for _, name := range c.exports {
				bucket[name] = struct{}{}
			}
			recorded++
		}
	}

	span.SetAttribute("modules", len(ids))
	span.SetAttribute("contributions", recorded)
	return nil
}

// collectModule computes the contributions of one module without touching the session.
func (o *Optimizer) collectModule(
	modules ports.ModuleGraph,
	chunks ports.ChunkGraph,
	id domain.ModuleID,
) []contribution {
	runtimes := chunks.ModuleRuntimes(id)
	if len(runtimes) == 0 {
		return nil
	}

	var out []contribution
	for _, conn := range modules.Connections(id) {
		if conn == nil || conn.Kind() != domain.DependencyImportSpecifier {
			continue
		}

		request := conn.Request()
		spec, ok := o.shared[request]
		if !ok {
			continue
		}

		for _, rt := range runtimes {
			if o.isIgnored(rt) {
				continue
			}
			if !conn.ActiveState(rt).IsActive() {
				continue
			}

			referenced := conn.ReferencedExports(rt)
			if len(referenced) == 0 && len(spec.UsedExports) == 0 && len(o.overrides.Lookup(request)) == 0 {
				continue
			}

			out = append(out, contribution{
				shareKey: request,
				runtime:  rt,
				exports:  slices.Clone(referenced),
			})
		}
	}
	return out
}
