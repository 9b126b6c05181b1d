package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/sharetree/internal/core/domain"
)

func TestSession_RegisterRuntime(t *testing.T) {
	session := domain.NewSession(1, []string{"react"})

	first := session.RegisterRuntime(domain.NewRuntimeSpec("main"))
	again := session.RegisterRuntime(domain.NewRuntimeSpec("main"))
	session.RegisterRuntime(domain.NewRuntimeSpec("worker", "admin"))

	assert.True(t, first.Equal(again))
	assert.Equal(t, []string{"admin_worker", "main"}, session.RuntimeKeys())
}

func TestSession_Reset(t *testing.T) {
	session := domain.NewSession(7, []string{"react"})
	main := session.RegisterRuntime(domain.NewRuntimeSpec("main"))
	session.Table.Bucket("react", main)["useState"] = struct{}{}
	session.Pairs["react"] = domain.ProvidePair{
		Provide:  domain.NewModuleID("provide:react"),
		Fallback: domain.NewModuleID("react/index.js"),
	}

	session.Reset([]string{"react", "vue"})

	assert.Equal(t, domain.SessionID(7), session.ID)
	assert.Empty(t, session.Runtimes)
	assert.Empty(t, session.Pairs)
	assert.Empty(t, session.PairKeys())
	assert.Equal(t, []string{"react", "vue"}, session.Table.Keys())
	assert.Empty(t, session.Table.Entries("react"))
}

func TestSession_PairKeys(t *testing.T) {
	session := domain.NewSession(1, []string{"react", "lodash"})
	session.Pairs["react"] = domain.ProvidePair{}
	session.Pairs["lodash"] = domain.ProvidePair{}

	assert.Equal(t, []string{"lodash", "react"}, session.PairKeys())
}
