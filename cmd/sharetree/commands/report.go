package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/sharetree/internal/app"
	"go.trai.ch/sharetree/internal/core/domain"
	"go.trai.ch/sharetree/internal/ui/style"
)

// writeResult prints result to w, either as indented JSON or as a styled summary.
func writeResult(w io.Writer, result *app.Result, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	_, err := io.WriteString(w, renderResult(result))
	return err
}

func renderResult(result *app.Result) string {
	var b strings.Builder

	runtimes := "none"
	if len(result.Runtimes) > 0 {
		runtimes = strings.Join(result.Runtimes, ", ")
	}
	fmt.Fprintf(&b, "%s session %d %s\n",
		style.Dot, result.SessionID, style.Muted.Render("runtimes: "+runtimes))

	if len(result.Reports) == 0 {
		fmt.Fprintf(&b, "  %s\n", style.Muted.Render("no shared dependency has tree shaking enabled"))
		return b.String()
	}

	markers := make(map[string]domain.FallbackMarkers, len(result.Markers))
	for _, m := range result.Markers {
		markers[m.ShareKey] = m
	}

	for _, report := range result.Reports {
		icon := style.Dot
		if slices.Contains(result.Changed, report.ShareKey) {
			icon = style.Check
		}

		if len(report.UsedExports) == 0 {
			fmt.Fprintf(&b, "%s %s %s\n", icon,
				style.ShareKey.Render(report.ShareKey), style.Muted.Render("no used exports"))
		} else {
			fmt.Fprintf(&b, "%s %s %s\n", icon,
				style.ShareKey.Render(report.ShareKey),
				style.Export.Render(strings.Join(report.UsedExports, ", ")))

			for _, runtime := range slices.Sorted(maps.Keys(report.Runtimes)) {
				fmt.Fprintf(&b, "    %s %s %s\n",
					style.Runtime.Render(runtime), style.Arrow, strings.Join(report.Runtimes[runtime], ", "))
			}
		}

		if m, ok := markers[report.ShareKey]; ok {
			renderMarkers(&b, m)
		}
	}
	return b.String()
}

// renderMarkers prints the exports a pass marked unused, per runtime.
func renderMarkers(b *strings.Builder, m domain.FallbackMarkers) {
	if !m.Marked {
		fmt.Fprintf(b, "    %s\n", style.Muted.Render("fallback may have side effects, exports left unmarked"))
		return
	}

	runtimes := slices.Collect(maps.Keys(m.Unused))
	for _, runtime := range m.OtherUnused {
		if !slices.Contains(runtimes, runtime) {
			runtimes = append(runtimes, runtime)
		}
	}
	slices.Sort(runtimes)

	for _, runtime := range runtimes {
		names := slices.Clone(m.Unused[runtime])
		if slices.Contains(m.OtherUnused, runtime) {
			names = append(names, "others")
		}
		fmt.Fprintf(b, "    %s %s %s\n",
			style.Runtime.Render(runtime), style.Cross, style.Muted.Render(strings.Join(names, ", ")))
	}
}
