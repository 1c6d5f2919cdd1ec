package archive

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
)

// FileSize returns the size in bytes of the attachment file at path. A
// missing file, or any other stat failure, is an IntegrityError: the
// presence of every referenced file is part of the archive's contract.
func FileSize(path string) (uint64, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, &IntegrityError{Path: path}
	}
	if err != nil {
		return 0, &IntegrityError{Path: path, Err: err}
	}
	slog.Debug("probed attachment", "path", path, "bytes", info.Size())
	return uint64(info.Size()), nil
}
