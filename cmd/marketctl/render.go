package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/jsamuelsen11/marketplace-core/internal/domain"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderEntities(w io.Writer, items []domain.Entity) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"Kind", "ID", "Status", "Version", "Parent", "Updated"})
	for _, e := range items {
		h := e.Meta()
		tw.AppendRow(table.Row{e.Kind(), h.ID, h.Status, h.Version, e.Indexes()[domain.IndexParent], stamp(h.UpdatedAt)})
	}
	tw.AppendFooter(table.Row{"", "", "", "", "Total", len(items)})
	tw.Render()
}

func renderEvents(w io.Writer, history []domain.Event) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"At", "Type", "Operation", "Actor", "Change", "Related"})
	for _, evt := range history {
		related := ""
		if evt.Related != nil {
			related = fmt.Sprintf("%s %d: %s", evt.Related.Kind, evt.Related.ID, change(evt.RelatedFrom, evt.RelatedTo))
		}
		if evt.Reason != "" {
			related += " (" + string(evt.Reason) + ")"
		}
		tw.AppendRow(table.Row{stamp(evt.At), evt.Type, evt.Operation, evt.Actor, change(evt.From, evt.To), related})
	}
	tw.Render()
}

func change(from, to domain.Status) string {
	if from == "" {
		return string(to)
	}
	return string(from) + " -> " + string(to)
}

func stamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
