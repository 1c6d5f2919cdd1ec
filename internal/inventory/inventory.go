// Package inventory sizes and ranks the attachment assets referenced by an
// extracted archive's metadata.
package inventory

import (
	"sort"

	"heft/internal/archive"
	"heft/internal/models"
)

// Item is one attachment that was located on disk and measured.
type Item struct {
	Attachment models.Attachment
	// Path is the resolved on-disk location of the asset.
	Path string
	// Size is the asset's size in bytes.
	Size uint64
}

// ProgressFunc is called once per metadata record as it is processed, with
// 1-based done counts.
type ProgressFunc func(done, total int)

// Collect resolves and measures every attachment in discovery order, whether
// or not it has a parent issue, pull request or issue comment: the metadata
// claims each file exists, so each one is verified. A referenced file that
// cannot be resolved, located or measured aborts the collection with the
// resolver's or prober's fatal error.
func Collect(workdir string, attachments []models.Attachment, progress ProgressFunc) ([]Item, error) {
	items := make([]Item, 0, len(attachments))

	total := len(attachments)
	for i, att := range attachments {
		if progress != nil {
			progress(i+1, total)
		}

		path, err := archive.ResolveAssetPath(workdir, att.AssetURL)
		if err != nil {
			return nil, err
		}
		size, err := archive.FileSize(path)
		if err != nil {
			return nil, err
		}

		items = append(items, Item{
			Attachment: att,
			Path:       path,
			Size:       size,
		})
	}

	return items, nil
}

// Rank orders items from largest to smallest. Items of equal size keep their
// discovery order.
func Rank(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Size > items[j].Size
	})
}
