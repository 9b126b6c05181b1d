package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/sharetree/internal/core/domain"
)

func TestExportsInfo_Markers(t *testing.T) {
	mainRuntime := domain.NewRuntimeSpec("main")
	adminRuntime := domain.NewRuntimeSpec("admin")

	info := domain.NewExportsInfo()
	info.EnsureExport("useState").SetUsed(domain.UsageUsed, mainRuntime)
	info.EnsureExport("useMemo").SetUsed(domain.UsageUnused, mainRuntime)
	info.EnsureExport("useMemo").SetUsed(domain.UsageUsed, adminRuntime)
	info.EnsureExport("useEffect").SetUsed(domain.UsageUnused, mainRuntime)
	info.Other().SetUsed(domain.UsageUnused, mainRuntime)

	markers := info.Markers([]domain.RuntimeSpec{adminRuntime, mainRuntime, domain.NewRuntimeSpec("worker")})

	assert.Equal(t, map[string][]string{
		"admin": {"useMemo"},
		"main":  {"useState"},
	}, markers.Used)
	assert.Equal(t, map[string][]string{"main": {"useEffect", "useMemo"}}, markers.Unused)
	assert.Equal(t, []string{"main"}, markers.OtherUnused)
}

func TestExportsInfo_MarkersEmpty(t *testing.T) {
	info := domain.NewExportsInfo()
	info.EnsureExport("useState")

	markers := info.Markers([]domain.RuntimeSpec{domain.NewRuntimeSpec("main")})
	assert.Nil(t, markers.Used)
	assert.Nil(t, markers.Unused)
	assert.Nil(t, markers.OtherUnused)
}
