package archive

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestCheckLayout(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, FirstMetadataFilename), "[]")
	if err := os.Mkdir(filepath.Join(dir, AttachmentsDirName), 0o755); err != nil {
		t.Fatalf("mkdir attachments: %v", err)
	}

	if err := CheckLayout(dir); err != nil {
		t.Fatalf("check layout: %v", err)
	}
}

func TestCheckLayoutMissingPaths(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, dir string)
	}{
		{
			name:  "both missing",
			setup: func(t *testing.T, dir string) {},
		},
		{
			name: "metadata missing",
			setup: func(t *testing.T, dir string) {
				if err := os.Mkdir(filepath.Join(dir, AttachmentsDirName), 0o755); err != nil {
					t.Fatalf("mkdir: %v", err)
				}
			},
		},
		{
			name: "directory missing",
			setup: func(t *testing.T, dir string) {
				writeFile(t, filepath.Join(dir, FirstMetadataFilename), "[]")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			tt.setup(t, dir)

			err := CheckLayout(dir)
			if err == nil {
				t.Fatal("expected layout error")
			}
			var layoutErr *LayoutError
			if !errors.As(err, &layoutErr) {
				t.Fatalf("expected LayoutError, got %T", err)
			}

			want := fmt.Sprintf("Could not find `%s` file and/or `%s/` directory. This suggests that either (a) your archive contains no attachments or (b) you're not in a directory created when you extract a GitHub archive.",
				filepath.Join(dir, "attachments_000001.json"), filepath.Join(dir, "attachments"))
			if err.Error() != want {
				t.Fatalf("expected %q, got %q", want, err.Error())
			}
		})
	}
}

func TestReadMetadataSingleFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, FirstMetadataFilename), `[
		{
			"type": "attachment",
			"url": "https://example.com/acme/widgets/files/1",
			"pull_request": "https://example.com/acme/widgets/pull/7",
			"user": "https://example.com/alice",
			"asset_name": "photo.jpg",
			"asset_content_type": "image/jpeg",
			"asset_url": "tarball://root/attachments/photo.jpg",
			"created_at": "2020-05-06T12:00:00Z"
		}
	]`)

	attachments, err := ReadMetadata(dir)
	if err != nil {
		t.Fatalf("read metadata: %v", err)
	}
	if len(attachments) != 1 {
		t.Fatalf("expected 1 attachment, got %d", len(attachments))
	}
	att := attachments[0]
	if att.AssetName != "photo.jpg" {
		t.Fatalf("expected asset name photo.jpg, got %q", att.AssetName)
	}
	if att.PullRequest != "https://example.com/acme/widgets/pull/7" {
		t.Fatalf("unexpected pull request %q", att.PullRequest)
	}
	if att.AssetURL != "tarball://root/attachments/photo.jpg" {
		t.Fatalf("unexpected asset url %q", att.AssetURL)
	}
}

func TestReadMetadataMergesInFilenameOrder(t *testing.T) {
	dir := t.TempDir()
	// Written out of order on purpose; the listing must still merge them
	// lexicographically.
	writeFile(t, filepath.Join(dir, "attachments_000002.json"),
		`[{"asset_name": "second.bin", "asset_url": "tarball://root/attachments/second.bin"}]`)
	writeFile(t, filepath.Join(dir, FirstMetadataFilename),
		`[{"asset_name": "first.bin", "asset_url": "tarball://root/attachments/first.bin"}]`)
	writeFile(t, filepath.Join(dir, "attachments_000010.json"),
		`[{"asset_name": "third.bin", "asset_url": "tarball://root/attachments/third.bin"}]`)
	// Non-matching names are ignored.
	writeFile(t, filepath.Join(dir, "attachments.json"), `not even json`)
	writeFile(t, filepath.Join(dir, "releases_000001.json"), `[]`)

	attachments, err := ReadMetadata(dir)
	if err != nil {
		t.Fatalf("read metadata: %v", err)
	}
	got := make([]string, 0, len(attachments))
	for _, att := range attachments {
		got = append(got, att.AssetName)
	}
	want := []string{"first.bin", "second.bin", "third.bin"}
	if len(got) != len(want) {
		t.Fatalf("expected %d attachments, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestReadMetadataUnknownFieldsTolerated(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, FirstMetadataFilename),
		`[{"asset_name": "a.txt", "asset_url": "tarball://root/attachments/a.txt", "repository": "acme/widgets"}]`)

	attachments, err := ReadMetadata(dir)
	if err != nil {
		t.Fatalf("read metadata: %v", err)
	}
	if len(attachments) != 1 {
		t.Fatalf("expected 1 attachment, got %d", len(attachments))
	}
}

func TestReadMetadataFormatErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed json", content: `[{"asset_name": "a.txt"`},
		{name: "wrong shape", content: `{"asset_name": "a.txt"}`},
		{name: "wrong field type", content: `[{"asset_name": 42, "asset_url": "tarball://root/a"}]`},
		{name: "missing asset_name", content: `[{"asset_url": "tarball://root/attachments/a.txt"}]`},
		{name: "missing asset_url", content: `[{"asset_name": "a.txt"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, filepath.Join(dir, FirstMetadataFilename), tt.content)

			_, err := ReadMetadata(dir)
			if err == nil {
				t.Fatal("expected format error")
			}
			var formatErr *FormatError
			if !errors.As(err, &formatErr) {
				t.Fatalf("expected FormatError, got %T", err)
			}
			if formatErr.Path != filepath.Join(dir, FirstMetadataFilename) {
				t.Fatalf("expected path on error, got %q", formatErr.Path)
			}
		})
	}
}

func TestReadMetadataMissingDir(t *testing.T) {
	_, err := ReadMetadata(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
	var formatErr *FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected FormatError, got %T", err)
	}
}

func TestReadMetadataEmptyArchive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, FirstMetadataFilename), "[]")

	attachments, err := ReadMetadata(dir)
	if err != nil {
		t.Fatalf("read metadata: %v", err)
	}
	if len(attachments) != 0 {
		t.Fatalf("expected no attachments, got %d", len(attachments))
	}
}
