package optimizer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"

	"go.trai.ch/sharetree/internal/core/domain"
	"go.trai.ch/sharetree/internal/core/ports"
	"go.trai.ch/zerr"
)

// ProcessAssets records the flattened used exports of every share key on the matching
// shared entries of the stats manifest. Nothing happens when no exports were collected
// or the manifest was not emitted.
func (o *Optimizer) ProcessAssets(ctx context.Context, session *domain.Session, assets ports.AssetStore) error {
	if !o.Enabled() || session == nil {
		return nil
	}

	flat := session.Table.Flatten()
	if len(flat) == 0 {
		return nil
	}
	if !assets.Has(domain.StatsManifestName) {
		return nil
	}

	_, span := o.tracer.Start(ctx, "Patching Stats Manifest",
		ports.WithAttribute("asset", domain.StatsManifestName))
	defer span.End()

	err := assets.Update(domain.StatsManifestName, func(content []byte) ([]byte, error) {
		return PatchManifest(content, flat)
	})
	if err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

var errTrailingData = errors.New("trailing data after manifest")

// PatchManifest sets "usedExports" on every object of the manifest's "shared" array
// whose "name" appears in usedExports. All other content is preserved; object keys
// of the result are sorted.
func PatchManifest(content []byte, usedExports map[string][]string) ([]byte, error) {
	decoder := json.NewDecoder(bytes.NewReader(content))
	decoder.UseNumber()

	var manifest any
	if err := decoder.Decode(&manifest); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "asset", domain.StatsManifestName)
	}
	if err := decoder.Decode(new(json.RawMessage)); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errTrailingData
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "asset", domain.StatsManifestName)
	}

	if root, ok := manifest.(map[string]any); ok {
		if shared, ok := root["shared"].([]any); ok {
			for _, item := range shared {
				entry, ok := item.(map[string]any)
				if !ok {
					continue
				}
				name, ok := entry["name"].(string)
				if !ok {
					continue
				}
				if exports, ok := usedExports[name]; ok {
					entry["usedExports"] = exports
				}
			}
		}
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(manifest); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestSerializeFailed.Error()), "asset", domain.StatsManifestName)
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
