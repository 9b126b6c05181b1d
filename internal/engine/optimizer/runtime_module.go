package optimizer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/sharetree/internal/core/domain"
	"go.trai.ch/sharetree/internal/core/ports"
	"go.trai.ch/zerr"
)

// AdditionalTreeRuntimeRequirements attaches the used-exports runtime module to chunk
// and requires the runtime id global, provided the session recorded any usage.
func (o *Optimizer) AdditionalTreeRuntimeRequirements(
	ctx context.Context,
	session *domain.Session,
	chunk domain.ChunkID,
	requirements *domain.RuntimeGlobals,
	sink ports.RuntimeModuleSink,
) error {
	if !o.Enabled() || session == nil {
		return nil
	}

	usage := session.Table.ProjectByRuntime()
	if len(usage) == 0 {
		return nil
	}

	_, span := o.tracer.Start(ctx, "Attaching Used Exports",
		ports.WithAttribute("chunk", string(chunk)))
	defer span.End()

	module, err := NewUsedExportsRuntimeModule(usage)
	if err != nil {
		span.RecordError(err)
		return err
	}

	requirements.Insert(domain.RuntimeGlobalRuntimeID)
	if err := sink.AddRuntimeModule(chunk, module); err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrAssetWriteFailed.Error()), "chunk", string(chunk))
		span.RecordError(err)
		return err
	}
	return nil
}

// NewUsedExportsRuntimeModule renders the runtime module that publishes the used
// exports per share key and runtime, and a lookup for the executing runtime.
func NewUsedExportsRuntimeModule(usage map[string]map[string][]string) (*domain.RuntimeModule, error) {
	data, err := json.Marshal(usage)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrOptimizationFailed.Error())
	}

	var b strings.Builder
	b.WriteString("__webpack_require__.federation = __webpack_require__.federation || {};\n")
	fmt.Fprintf(&b, "__webpack_require__.federation.usedExports = %s;\n", data)
	b.WriteString("__webpack_require__.federation.getUsedExports = function(shareKey) {\n")
	b.WriteString("\tvar byRuntime = __webpack_require__.federation.usedExports[shareKey];\n")
	b.WriteString("\tif (!byRuntime) return undefined;\n")
	b.WriteString("\treturn byRuntime[__webpack_require__.j];\n")
	b.WriteString("};\n")

	source := b.String()
	return &domain.RuntimeModule{
		Name:   domain.UsedExportsRuntimeModuleName,
		Stage:  domain.StageAttach,
		Source: source,
		Hash:   fmt.Sprintf("%016x", xxhash.Sum64String(source)),
	}, nil
}
