package main

import (
	"fmt"
	"io"

	"heft/internal/archive"
	"heft/internal/format"
	"heft/internal/inventory"
)

type auditOptions struct {
	formatName string
	top        int
	progress   bool
}

// runAudit walks the whole pipeline: layout check, metadata read, per-file
// sizing, ranking and rendering. Progress and warnings go to stderr; stdout
// carries nothing but the rendered result.
func runAudit(stdout, stderr io.Writer, workdir string, opts auditOptions) error {
	formatter, err := format.New(opts.formatName)
	if err != nil {
		return err
	}

	if err := archive.CheckLayout(workdir); err != nil {
		return err
	}

	report := newProgressReporter(stderr, opts.progress)

	report.Step("📖 Reading attachments metadata files to find attachments...")
	attachments, err := archive.ReadMetadata(workdir)
	if err != nil {
		return err
	}
	report.Step(fmt.Sprintf("🔎 Found %d attachment(s)", len(attachments)))

	items, err := inventory.Collect(workdir, attachments, func(done, total int) {
		report.Step(fmt.Sprintf("📜 Processing attachment %d/%d", done, total))
	})
	if err != nil {
		return err
	}

	report.Step("🪣  Sorting attachments by size...")
	inventory.Rank(items)

	// Parentless records drop out at labelling time, after the sort, so
	// the warnings come out in ranked order and still precede the results.
	entries := make([]format.Entry, 0, len(items))
	for _, it := range items {
		parent, ok := it.Attachment.Parent()
		if !ok {
			report.Warn(fmt.Sprintf("⚠️ Could not find issue, pull request or issue comment for attachment %s. Skipping...", it.Attachment.AssetName))
			continue
		}
		entries = append(entries, format.Entry{
			Name:      it.Attachment.AssetName,
			Parent:    parent,
			Size:      it.Size,
			CreatedAt: it.Attachment.CreatedAt,
		})
	}
	if opts.top > 0 && opts.top < len(entries) {
		entries = entries[:opts.top]
	}

	return formatter.Write(stdout, entries)
}
