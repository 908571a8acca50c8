// Package edgelist reads edge lists from text and JSON files.
package edgelist

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"plexus/weft/internal/graph"
)

// Load reads an edge file, picking the format from the extension: .json is
// parsed as a JSON pair array, everything else as the text format.
func Load(path string) ([]graph.Edge, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening edge file: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		edges, err := ParseJSON(f)
		return edges, nil, err
	}
	return ParseText(f)
}

// ParseText reads the text edge format: one "U V" pair per line, split on
// whitespace. Blank lines and lines starting with # are skipped. A line
// with a single token declares an isolated vertex.
func ParseText(r io.Reader) ([]graph.Edge, []string, error) {
	var edges []graph.Edge
	var vertices []string

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch len(fields) {
		case 1:
			vertices = append(vertices, fields[0])
		case 2:
			edges = append(edges, graph.Edge{U: fields[0], V: fields[1]})
		default:
			return nil, nil, fmt.Errorf("line %d: expected 1 or 2 tokens, got %d", lineNo, len(fields))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading edge file: %w", err)
	}
	return edges, vertices, nil
}

// ParseJSON reads a JSON array of two-element string pairs:
// [["u","v"], ...].
func ParseJSON(r io.Reader) ([]graph.Edge, error) {
	var pairs [][]string
	if err := json.NewDecoder(r).Decode(&pairs); err != nil {
		return nil, fmt.Errorf("decoding edge JSON: %w", err)
	}
	edges := make([]graph.Edge, 0, len(pairs))
	for i, p := range pairs {
		if len(p) != 2 {
			return nil, fmt.Errorf("pair %d: expected 2 elements, got %d", i, len(p))
		}
		edges = append(edges, graph.Edge{U: p[0], V: p[1]})
	}
	return edges, nil
}
