package archive

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"heft/internal/models"
)

const (
	// FirstMetadataFilename is present in every attachment-bearing archive;
	// its absence means there is nothing to audit here.
	FirstMetadataFilename = "attachments_000001.json"
	// AttachmentsDirName is the directory holding the attachment payloads.
	AttachmentsDirName = "attachments"

	metadataPattern = "attachments_*.json"
)

// CheckLayout verifies that workdir looks like an extracted archive carrying
// attachments: the first numbered metadata file and the attachments directory
// must both be present.
func CheckLayout(workdir string) error {
	metadataPath := filepath.Join(workdir, FirstMetadataFilename)
	dirPath := filepath.Join(workdir, AttachmentsDirName)

	_, metadataErr := os.Stat(metadataPath)
	_, dirErr := os.Stat(dirPath)
	if metadataErr != nil || dirErr != nil {
		return &LayoutError{MetadataPath: metadataPath, DirPath: dirPath}
	}
	return nil
}

// ReadMetadata loads every numbered metadata file in workdir and returns
// their records concatenated in filename order. The listing is explicit and
// sorted so the merge order is deterministic across platforms.
func ReadMetadata(workdir string) ([]models.Attachment, error) {
	names, err := metadataFiles(workdir)
	if err != nil {
		return nil, &FormatError{Err: err}
	}

	var attachments []models.Attachment
	for _, name := range names {
		path := filepath.Join(workdir, name)
		records, err := readMetadataFile(path)
		if err != nil {
			return nil, &FormatError{Path: path, Err: err}
		}
		slog.Debug("parsed metadata file", "path", path, "records", len(records))
		attachments = append(attachments, records...)
	}
	return attachments, nil
}

func metadataFiles(workdir string) ([]string, error) {
	entries, err := os.ReadDir(workdir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		matched, err := filepath.Match(metadataPattern, entry.Name())
		if err != nil {
			return nil, err
		}
		if matched {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func readMetadataFile(path string) ([]models.Attachment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var records []models.Attachment
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for i, record := range records {
		if err := record.Validate(); err != nil {
			return nil, fmt.Errorf("parse %s: record %d: %w", path, i, err)
		}
	}
	return records, nil
}
