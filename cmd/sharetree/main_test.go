package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/sharetree/internal/adapters/telemetry"
	"go.trai.ch/sharetree/internal/app"
	"go.trai.ch/sharetree/internal/core/domain"
	"go.trai.ch/sharetree/internal/core/ports/mocks"
	"go.trai.ch/sharetree/internal/engine/optimizer"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"sharetree": main,
	})
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   filepath.Join("testdata", "script"),
		Setup: setupScript,
	})
}

func setupScript(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")

	homeDir := filepath.Join(env.WorkDir, ".home")
	if err := os.MkdirAll(homeDir, 0o750); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)

	return nil
}

func TestRun_ProviderError(t *testing.T) {
	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, func(context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("store init failed")
	})

	assert.Equal(t, 1, exitCode)
	assert.Equal(t, "Error: store init failed\n", stderr.String())
}

func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	application := app.New(
		mockLoader,
		mocks.NewMockGraphLoader(ctrl),
		mocks.NewMockOutputOpener(ctrl),
		mocks.NewMockUsageReportStore(ctrl),
		mocks.NewMockHasher(ctrl),
		mocks.NewMockWatcher(ctrl),
		mockLogger,
		telemetry.NewNoOpTracer(),
		optimizer.NewRegistry(),
	)

	mockLoader.EXPECT().Load("sharetree.yaml").Return(domain.Options{}, errors.New("load failed"))
	mockLogger.EXPECT().Error(gomock.Any())

	cleanedUp := false
	exitCode := run(context.Background(), []string{"optimize", "--graph", "graph.json"}, new(bytes.Buffer),
		func(context.Context) (*app.Components, func(), error) {
			return &app.Components{App: application, Logger: mockLogger}, func() { cleanedUp = true }, nil
		})

	assert.Equal(t, 1, exitCode)
	assert.True(t, cleanedUp)
}

func TestRun_AppliesOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	application := app.New(nil, nil, nil, nil, nil, nil, mockLogger, telemetry.NewNoOpTracer(), optimizer.NewRegistry())

	var applied *app.App
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer),
		func(context.Context) (*app.Components, func(), error) {
			return &app.Components{App: application, Logger: mockLogger}, func() {}, nil
		},
		func(a *app.App) { applied = a },
	)

	assert.Equal(t, 0, exitCode)
	assert.Same(t, application, applied)
}
