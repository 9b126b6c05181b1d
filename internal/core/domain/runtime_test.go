package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/sharetree/internal/core/domain"
)

func TestNewRuntimeSpec(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected string
		names    []string
	}{
		{"Single", []string{"main"}, "main", []string{"main"}},
		{"Sorted", []string{"worker", "main"}, "main_worker", []string{"main", "worker"}},
		{"Deduplicated", []string{"main", "main", "admin"}, "admin_main", []string{"admin", "main"}},
		{"EmptyNamesDropped", []string{"", "main", ""}, "main", []string{"main"}},
		{"Empty", nil, "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := domain.NewRuntimeSpec(tt.input...)
			assert.Equal(t, tt.expected, rt.String())
			assert.Equal(t, tt.names, rt.Names())
			assert.Equal(t, len(tt.names) == 0, rt.IsEmpty())
		})
	}
}

func TestRuntimeSpec_Equal(t *testing.T) {
	a := domain.NewRuntimeSpec("main", "worker")
	b := domain.NewRuntimeSpec("worker", "main")
	c := domain.NewRuntimeSpec("main")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestRuntimeSpec_NamesIsCopy(t *testing.T) {
	rt := domain.NewRuntimeSpec("main", "worker")
	names := rt.Names()
	names[0] = "changed"

	assert.Equal(t, []string{"main", "worker"}, rt.Names())
}
