package archive

import (
	"path/filepath"
	"strings"
)

// AssetURLPrefix is the placeholder scheme metadata uses for paths relative
// to the archive root.
const AssetURLPrefix = "tarball://root/"

// ResolveAssetPath maps an attachment's asset reference to a path under
// workdir: the archive-root placeholder prefix is stripped and the remainder
// joined onto workdir. A reference that is absolute, empty, or escapes
// workdir is rejected with a *ReferenceError, since a well-formed archive
// only references its own contents. No I/O is performed.
func ResolveAssetPath(workdir, assetURL string) (string, error) {
	rel := filepath.FromSlash(strings.TrimPrefix(assetURL, AssetURLPrefix))
	if filepath.IsAbs(rel) {
		return "", &ReferenceError{Ref: assetURL, Reason: "absolute path"}
	}

	clean := filepath.Clean(rel)
	if clean == "." {
		return "", &ReferenceError{Ref: assetURL, Reason: "path does not name a file"}
	}
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", &ReferenceError{Ref: assetURL, Reason: "path escapes the archive root"}
	}
	return filepath.Join(workdir, clean), nil
}
