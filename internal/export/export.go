// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

// Package export writes migration bundles to disk in the layout the import tooling reads.
//
// A bundle directory holds one document per record:
//
//	milestones/<number>.json
//	issues/<number>.json
//	issues/<number>.comments.json
//	manifest.json
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/similigh/gc2gh/internal/migration"
)

// ManifestFile is the name of the run summary written next to the records.
const ManifestFile = "manifest.json"

// Files lists what a bundle write produced, relative to the bundle directory.
type Files struct {
	Milestones []string `json:"milestones"`
	Issues     []string `json:"issues"`
	Comments   []string `json:"comments"`
}

// Total returns the number of record documents written.
func (f Files) Total() int {
	return len(f.Milestones) + len(f.Issues) + len(f.Comments)
}

// WriteBundle writes every milestone, issue and comment list of the bundle under dir.
// Existing documents with the same names are replaced.
func WriteBundle(dir string, bundle migration.Bundle) (*Files, error) {
	files := &Files{}

	for _, ms := range bundle.Milestones {
		rel := filepath.Join("milestones", strconv.Itoa(ms.Number)+".json")
		if err := writeJSON(filepath.Join(dir, rel), ms); err != nil {
			return files, fmt.Errorf("failed to write milestone %d: %w", ms.Number, err)
		}
		files.Milestones = append(files.Milestones, rel)
	}

	for _, b := range bundle.Issues {
		number := strconv.Itoa(b.Issue.Number)

		rel := filepath.Join("issues", number+".json")
		if err := writeJSON(filepath.Join(dir, rel), b.Issue); err != nil {
			return files, fmt.Errorf("failed to write issue %d: %w", b.Issue.Number, err)
		}
		files.Issues = append(files.Issues, rel)

		comments := b.Comments
		if comments == nil {
			comments = []migration.Comment{}
		}
		rel = filepath.Join("issues", number+".comments.json")
		if err := writeJSON(filepath.Join(dir, rel), comments); err != nil {
			return files, fmt.Errorf("failed to write comments of issue %d: %w", b.Issue.Number, err)
		}
		files.Comments = append(files.Comments, rel)
	}

	return files, nil
}

// WriteClosingPlan writes the closing comments for the source tracker as one JSON document.
func WriteClosingPlan(path string, updates []migration.ClosingUpdate) error {
	if updates == nil {
		updates = []migration.ClosingUpdate{}
	}
	if err := writeJSON(path, updates); err != nil {
		return fmt.Errorf("failed to write closing plan: %w", err)
	}
	return nil
}

// Encode renders v as tab-indented JSON without HTML escaping.
// Bodies carry markdown entities such as &nbsp; that must survive verbatim.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "\t")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(path string, v any) error {
	data, err := Encode(v)
	if err != nil {
		return err
	}
	return writeFileAtomic(path, data, 0o644)
}

// writeFileAtomic replaces path only once the full content is on disk.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	temp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(temp.Name()) }()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		return err
	}
	if err := temp.Chmod(perm); err != nil {
		_ = temp.Close()
		return err
	}
	if err := temp.Close(); err != nil {
		return err
	}

	return os.Rename(temp.Name(), path)
}
