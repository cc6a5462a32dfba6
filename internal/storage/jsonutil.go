package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// fileMode is applied to saved documents. os.CreateTemp creates files 0600.
const fileMode os.FileMode = 0o644

// readJSON decodes the file at path into v. Unknown fields are rejected.
func readJSON(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return ioError(path, err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return ioError(path, fmt.Errorf("decode: %w", err))
	}
	return nil
}

// writeJSON replaces the file at path with the indented encoding of v. The
// data is written to a temp file in the same directory, synced and renamed
// over the target, so readers never see a partial document.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ioError(path, fmt.Errorf("encode: %w", err))
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return ioError(path, fmt.Errorf("create directory: %w", err))
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return ioError(path, err)
	}
	tmpPath := tmp.Name()
	cleanup := func() {
		tmp.Close()
		os.Remove(tmpPath)
	}

	if err := tmp.Chmod(fileMode); err != nil {
		cleanup()
		return ioError(path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return ioError(path, err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return ioError(path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return ioError(path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return ioError(path, fmt.Errorf("rename temp file: %w", err))
	}
	return nil
}
