package stations

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"
)

type directoryFile struct {
	Stations map[string]StopPair `yaml:"stations"`
}

type csvStation struct {
	Name  string `csv:"name"`
	StopA string `csv:"stop_a"`
	StopB string `csv:"stop_b"`
}

// LoadDirectory reads a directory from a .yaml/.yml or .csv file.
func LoadDirectory(path string) (Directory, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Directory{}, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(content)
	case ".csv":
		return ParseCSV(content)
	default:
		return Directory{}, fmt.Errorf("unsupported station directory format %q", filepath.Ext(path))
	}
}

func ParseYAML(content []byte) (Directory, error) {
	var file directoryFile

	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return Directory{}, fmt.Errorf("decode station directory: %w", err)
	}

	return NewDirectory(file.Stations)
}

func ParseCSV(content []byte) (Directory, error) {
	var rows []*csvStation
	if err := gocsv.UnmarshalBytes(content, &rows); err != nil {
		return Directory{}, fmt.Errorf("decode station directory: %w", err)
	}

	entries := map[string]StopPair{}
	for _, row := range rows {
		if _, exists := entries[row.Name]; exists {
			return Directory{}, fmt.Errorf("station %q listed twice", row.Name)
		}

		entries[row.Name] = StopPair{A: row.StopA, B: row.StopB}
	}

	return NewDirectory(entries)
}
