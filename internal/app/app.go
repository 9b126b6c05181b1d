// Package app implements the application layer for sharetree.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.trai.ch/sharetree/internal/adapters/telemetry" //nolint:depguard // Tracer backends are selected per run
	"go.trai.ch/sharetree/internal/adapters/watcher"   //nolint:depguard // Debouncer is shared with the adapter
	"go.trai.ch/sharetree/internal/core/domain"
	"go.trai.ch/sharetree/internal/core/ports"
	"go.trai.ch/sharetree/internal/engine/optimizer"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	graphLoader  ports.GraphLoader
	outputs      ports.OutputOpener
	store        ports.UsageReportStore
	hasher       ports.Hasher
	watcher      ports.Watcher
	logger       ports.Logger
	tracer       ports.Tracer
	registry     *optimizer.Registry

	now            func() time.Time
	debounceWindow time.Duration
}

// New creates a new App instance.
func New(
	configLoader ports.ConfigLoader,
	graphLoader ports.GraphLoader,
	outputs ports.OutputOpener,
	store ports.UsageReportStore,
	hasher ports.Hasher,
	fileWatcher ports.Watcher,
	log ports.Logger,
	tracer ports.Tracer,
	registry *optimizer.Registry,
) *App {
	return &App{
		configLoader:   configLoader,
		graphLoader:    graphLoader,
		outputs:        outputs,
		store:          store,
		hasher:         hasher,
		watcher:        fileWatcher,
		logger:         log,
		tracer:         tracer,
		registry:       registry,
		now:            time.Now,
		debounceWindow: watcher.DefaultDebounceWindow,
	}
}

// WithClock replaces the clock used to timestamp usage reports.
// This is primarily used for testing.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// WithDebounceWindow sets the window used to coalesce file events in watch mode.
func (a *App) WithDebounceWindow(window time.Duration) *App {
	a.debounceWindow = window
	return a
}

// RunOptions configuration for the Run and Watch methods.
type RunOptions struct {
	// ConfigPath is the optimizer configuration file.
	ConfigPath string
	// GraphPath is the module/chunk graph snapshot to optimize.
	GraphPath string
	// OutDir is the build output directory. Emitters are skipped when it is empty.
	OutDir string
	// Tracer names the tracer backend. Empty keeps the injected tracer.
	Tracer string
}

// Result summarizes one optimization pass.
type Result struct {
	SessionID domain.SessionID `json:"session_id"`
	// Runtimes lists the runtimes the collector observed.
	Runtimes []string `json:"runtimes,omitzero"`
	// Pairs lists the share keys whose provide module has a fallback.
	Pairs []string `json:"pairs,omitzero"`
	// Reports holds the finalized usage per retained share key.
	Reports []domain.UsageReport `json:"reports,omitzero"`
	// Changed lists the share keys whose usage differs from the stored report.
	Changed []string `json:"changed,omitzero"`
	// Markers holds the tree-shaking state left on each fallback module.
	Markers []domain.FallbackMarkers `json:"markers,omitzero"`
}

// Run executes one build session: it creates a session, runs one optimization pass,
// emits the runtime metadata and tears the session down.
func (a *App) Run(ctx context.Context, opts RunOptions) (*Result, error) {
	if opts.GraphPath == "" {
		return nil, domain.ErrNoGraphSpecified
	}

	tracer, closeTracer, err := a.selectTracer(opts.Tracer)
	if err != nil {
		return nil, err
	}
	defer closeTracer()

	opt, err := a.newOptimizer(opts.ConfigPath, tracer)
	if err != nil {
		return nil, err
	}

	session := opt.NewSession(a.registry)
	defer a.registry.Remove(session.ID)

	return a.pass(ctx, opt, session, opts)
}

// Watch runs an initial pass and then re-runs it, reusing one session, whenever the
// configuration or the graph snapshot changes. It returns when ctx is canceled.
//
//nolint:cyclop // orchestration function
func (a *App) Watch(ctx context.Context, opts RunOptions, onResult func(*Result)) error {
	if opts.GraphPath == "" {
		return domain.ErrNoGraphSpecified
	}

	tracer, closeTracer, err := a.selectTracer(opts.Tracer)
	if err != nil {
		return err
	}
	defer closeTracer()

	opt, err := a.newOptimizer(opts.ConfigPath, tracer)
	if err != nil {
		return err
	}

	session := opt.NewSession(a.registry)
	defer a.registry.Remove(session.ID)

	inputs := watchedInputs(opts)
	lastHash, err := a.hasher.ComputeInputHash(inputs...)
	if err != nil {
		return zerr.Wrap(err, "failed to hash watched inputs")
	}

	result, err := a.pass(ctx, opt, session, opts)
	if err != nil {
		return err
	}
	if onResult != nil {
		onResult(result)
	}

	ctx, cancel := context.WithCancel(ctx)

	root := filepath.Dir(opts.GraphPath)
	if err := a.watcher.Start(ctx, root); err != nil {
		cancel()
		return zerr.With(zerr.Wrap(err, "failed to start watcher"), "path", root)
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	trigger := make(chan struct{}, 1)
	debouncer := watcher.NewDebouncer(a.debounceWindow, func(_ []string) {
		select {
		case trigger <- struct{}{}:
		default:
		}
	})

	var wg sync.WaitGroup
	wg.Go(func() {
		for event := range a.watcher.Events() {
			debouncer.Add(event.Path)
		}
	})
	defer wg.Wait()
	defer cancel()

	a.logger.Info(fmt.Sprintf("watching %s for changes", root))

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-trigger:
		}

		hash, err := a.hasher.ComputeInputHash(inputs...)
		if err != nil {
			a.logger.Error(zerr.Wrap(err, "failed to hash watched inputs"))
			continue
		}
		if hash == lastHash {
			continue
		}
		lastHash = hash

		next, err := a.newOptimizer(opts.ConfigPath, tracer)
		if err != nil {
			a.logger.Error(err)
			continue
		}
		opt = next

		result, err := a.pass(ctx, opt, session, opts)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			a.logger.Error(err)
			continue
		}
		if onResult != nil {
			onResult(result)
		}
	}
}

// Clean removes the usage report store.
func (a *App) Clean(_ context.Context) error {
	path := filepath.Dir(domain.DefaultStorePath())
	a.logger.Info("removing usage report store...")
	if err := os.RemoveAll(path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove usage report store"), "path", path)
	}
	a.logger.Info("removed usage report store")
	return nil
}

func (a *App) selectTracer(name string) (ports.Tracer, func(), error) {
	if name == "" {
		return a.tracer, func() {}, nil
	}

	tracer, err := telemetry.Select(name, a.logger)
	if err != nil {
		return nil, nil, err
	}

	closer, ok := tracer.(io.Closer)
	if !ok {
		return tracer, func() {}, nil
	}
	return tracer, func() {
		_ = closer.Close()
	}, nil
}

func (a *App) newOptimizer(configPath string, tracer ports.Tracer) (*optimizer.Optimizer, error) {
	options, err := a.configLoader.Load(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	opt := optimizer.New(options, a.logger, tracer)
	if !opt.Enabled() {
		a.logger.Warn("no shared dependency has tree shaking enabled")
	}
	return opt, nil
}

// pass runs one optimization pass over the graph snapshot on session.
func (a *App) pass(
	ctx context.Context,
	opt *optimizer.Optimizer,
	session *domain.Session,
	opts RunOptions,
) (*Result, error) {
	modules, chunks, err := a.graphLoader.Load(opts.GraphPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load graph snapshot")
	}

	if err := opt.OptimizeDependencies(ctx, session, modules, chunks); err != nil {
		return nil, errors.Join(domain.ErrOptimizationFailed, err)
	}

	if opts.OutDir != "" {
		if err := a.emit(ctx, opt, session, chunks, opts.OutDir); err != nil {
			return nil, err
		}
	}

	result := &Result{
		SessionID: session.ID,
		Runtimes:  session.RuntimeKeys(),
		Pairs:     session.PairKeys(),
		Reports:   session.Table.Reports(a.now()),
		Markers:   opt.Markers(modules, session),
	}

	for _, report := range result.Reports {
		prev, err := a.store.Get(report.ShareKey)
		if err != nil {
			return nil, err
		}
		if prev == nil || prev.Fingerprint != report.Fingerprint {
			result.Changed = append(result.Changed, report.ShareKey)
		}
	}

	if err := a.store.Put(result.Reports...); err != nil {
		return nil, err
	}

	if len(result.Changed) == 0 {
		a.logger.Info(fmt.Sprintf("usage unchanged for %d shared dependencies", len(result.Reports)))
	} else {
		a.logger.Info(fmt.Sprintf("usage changed for %d of %d shared dependencies",
			len(result.Changed), len(result.Reports)))
	}

	return result, nil
}

// emit patches the stats manifest and attaches the used-exports runtime module to
// every runtime chunk of the build output.
func (a *App) emit(
	ctx context.Context,
	opt *optimizer.Optimizer,
	session *domain.Session,
	chunks ports.ChunkGraph,
	outDir string,
) error {
	out, err := a.outputs.Open(outDir)
	if err != nil {
		return err
	}

	if err := opt.ProcessAssets(ctx, session, out); err != nil {
		return err
	}

	for _, chunk := range chunks.RuntimeChunks() {
		var requirements domain.RuntimeGlobals
		if err := opt.AdditionalTreeRuntimeRequirements(ctx, session, chunk, &requirements, out); err != nil {
			return err
		}
	}
	return nil
}

func watchedInputs(opts RunOptions) []string {
	inputs := []string{opts.GraphPath}
	if opts.ConfigPath != "" {
		inputs = append(inputs, opts.ConfigPath)
	}
	return inputs
}
