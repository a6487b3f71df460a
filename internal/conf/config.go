package conf

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
)

// ConfigSource orchestrates loading a ResultConfig from a main document and
// an optional directory of drop-in documents. See the Read method.
type ConfigSource struct {
	Path      string
	DropInDir string
}

// Read loads and returns the ResultConfig by merging all layers:
// 1. Main document
// 2. Drop-in documents, in lexicographic order
//
// Each layer only overrides the keys it sets. The main document must exist
// and contain an output section.
func (cs *ConfigSource) Read() (ResultConfig, error) {
	resolved, err := cs.readDocument(cs.Path)
	if err != nil {
		slog.Error("failed to load configuration", "error", err, "path", cs.Path)
		return ResultConfig{}, err
	}

	// Load drop-in documents
	dropInDTOs, err := cs.parseDropInFiles()
	if err != nil {
		slog.Error("failed to load drop-in files", "error", err, "dir", cs.DropInDir)
		return ResultConfig{}, err
	}

	// Apply each drop-in document in order
	for _, dto := range dropInDTOs {
		resolved.update(dto)
	}

	return resolved.resolve()
}

func (cs *ConfigSource) readDocument(path string) (outputDTO, error) {
	decode, err := decoderFor(path)
	if err != nil {
		return outputDTO{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return outputDTO{}, fmt.Errorf("failed to load %s: %w", path, err)
	}
	dto, err := decode(data)
	if err != nil {
		return outputDTO{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return dto, nil
}

// findDropInFiles finds and returns sorted paths to drop-in documents.
// Returns nil if the drop-in directory is unset or doesn't exist (not an
// error).
func (cs *ConfigSource) findDropInFiles() ([]string, error) {
	if cs.DropInDir == "" {
		return nil, nil
	}
	if _, err := os.Stat(cs.DropInDir); os.IsNotExist(err) {
		return nil, nil
	}

	entries, err := os.ReadDir(cs.DropInDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read drop-in directory %s: %w", cs.DropInDir, err)
	}

	var filenames []string
	for _, entry := range entries {
		if entry.IsDir() || !isDocument(entry.Name()) {
			continue
		}
		filenames = append(filenames, filepath.Join(cs.DropInDir, entry.Name()))
	}

	sort.Strings(filenames)

	return filenames, nil
}

// parseDropInFiles loads the drop-in documents.
func (cs *ConfigSource) parseDropInFiles() ([]outputDTO, error) {
	paths, err := cs.findDropInFiles()
	if err != nil {
		return nil, err
	}

	var dtos []outputDTO
	for _, path := range paths {
		dto, err := cs.readDocument(path)
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, dto)
	}

	return dtos, nil
}
