// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

package export

import (
	"archive/tar"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// WriteTar packages the bundle directory into a single tar archive.
// Entries are stored with slash-separated paths relative to dir, in lexical order.
func WriteTar(dir, tarPath string) (int, error) {
	if err := os.MkdirAll(filepath.Dir(tarPath), 0o755); err != nil {
		return 0, fmt.Errorf("failed to create archive directory: %w", err)
	}

	absTar, err := filepath.Abs(tarPath)
	if err != nil {
		return 0, err
	}

	out, err := os.Create(tarPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create archive: %w", err)
	}

	count, err := writeTar(out, dir, absTar)
	if cerr := out.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(tarPath)
		return 0, fmt.Errorf("failed to write archive: %w", err)
	}
	return count, nil
}

func writeTar(w io.Writer, dir, skip string) (int, error) {
	tw := tar.NewWriter(w)
	count := 0

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if abs, _ := filepath.Abs(path); abs == skip {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() && !info.IsDir() {
			return nil
		}

		header, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		header.Name = filepath.ToSlash(rel)
		if info.IsDir() {
			header.Name += "/"
		}
		if err := tw.WriteHeader(header); err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if _, err := io.Copy(tw, f); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return count, err
	}
	return count, tw.Close()
}
