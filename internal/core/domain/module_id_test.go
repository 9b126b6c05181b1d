package domain_test

import (
	"encoding/json"
	"testing"

	"go.trai.ch/sharetree/internal/core/domain"
)

func TestModuleID(t *testing.T) {
	id1 := domain.NewModuleID("./src/app.js")
	id2 := domain.NewModuleID("./src/app.js")

	if id1 != id2 {
		t.Errorf("Expected ids to be equal for identical strings, got %v and %v", id1, id2)
	}
	if id1.String() != "./src/app.js" {
		t.Errorf("Expected String() to return %q, got %q", "./src/app.js", id1.String())
	}

	var zero domain.ModuleID
	if !zero.IsZero() {
		t.Error("Expected zero value to report IsZero")
	}
	if zero.String() != "" {
		t.Errorf("Expected zero value to print as empty string, got %q", zero.String())
	}
	if id1.IsZero() {
		t.Error("Expected assigned id not to report IsZero")
	}
}

func TestModuleIDJSON(t *testing.T) {
	t.Run("Marshal and Unmarshal preserve id", func(t *testing.T) {
		original := domain.NewModuleID("provide:react")

		data, err := json.Marshal(original)
		if err != nil {
			t.Fatalf("Failed to marshal ModuleID: %v", err)
		}
		if string(data) != `"provide:react"` {
			t.Errorf("Expected JSON %q, got %q", `"provide:react"`, string(data))
		}

		var unmarshaled domain.ModuleID
		if err := json.Unmarshal(data, &unmarshaled); err != nil {
			t.Fatalf("Failed to unmarshal ModuleID: %v", err)
		}
		if unmarshaled != original {
			t.Errorf("Expected unmarshaled id %q, got %q", original, unmarshaled)
		}
	})

	t.Run("Map keys", func(t *testing.T) {
		original := map[domain.ModuleID]string{
			domain.NewModuleID("a.js"): "a",
		}

		data, err := json.Marshal(original)
		if err != nil {
			t.Fatalf("Failed to marshal map: %v", err)
		}
		if string(data) != `{"a.js":"a"}` {
			t.Errorf("Expected JSON %q, got %q", `{"a.js":"a"}`, string(data))
		}
	})
}
