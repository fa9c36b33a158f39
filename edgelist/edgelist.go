package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlath-cut/core"
)

// ErrMalformedLine is wrapped by every ParseError.
var ErrMalformedLine = errors.New("edgelist: malformed line")

// Record is one parsed edge line.
type Record struct {
	ID     int64
	U, V   string
	Weight int64
	Line   int
}

// ParseError locates a malformed line.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("edgelist: line %d %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap exposes ErrMalformedLine and the precise cause.
func (e *ParseError) Unwrap() []error {
	return []error{ErrMalformedLine, e.Err}
}

// Parse reads records from r until EOF. It stops at the first malformed
// line and returns a *ParseError for it.
func Parse(r io.Reader) ([]Record, error) {
	var (
		out    []Record
		lineNo int
	)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		rec, err := parseLine(text)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: text, Err: err}
		}
		rec.Line = lineNo
		out = append(out, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: read: %w", err)
	}

	return out, nil
}

// parseLine splits "index: u-v: weight" into a Record.
func parseLine(text string) (Record, error) {
	fields := strings.Split(text, ":")
	if len(fields) != 3 {
		return Record{}, fmt.Errorf("want 3 ':'-separated fields, got %d", len(fields))
	}
	id, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("index: %w", err)
	}
	ends := strings.Split(fields[1], "-")
	if len(ends) != 2 {
		return Record{}, fmt.Errorf("want link u-v, got %q", strings.TrimSpace(fields[1]))
	}
	w, err := strconv.ParseInt(strings.TrimSpace(fields[2]), 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("weight: %w", err)
	}

	return Record{
		ID:     id,
		U:      strings.TrimSpace(ends[0]),
		V:      strings.TrimSpace(ends[1]),
		Weight: w,
	}, nil
}

// ParseFile opens path and parses it.
func ParseFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edgelist: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Build constructs a graph from records. Rejected edges are reported with
// the line they came from and still match core.ErrInvalidEdge.
func Build(records []Record) (*core.Graph, error) {
	g := core.NewGraph()
	for _, r := range records {
		if err := g.AddEdge(r.U, r.V, r.Weight, r.ID); err != nil {
			return nil, fmt.Errorf("edgelist: line %d: %w", r.Line, err)
		}
	}

	return g, nil
}

// Load parses path and builds the graph in one step.
func Load(path string) (*core.Graph, error) {
	records, err := ParseFile(path)
	if err != nil {
		return nil, err
	}

	return Build(records)
}

// Format renders ids ascending and '-'-joined. Identifiers are
// non-negative (core rejects the rest), so '-' is never a minus sign.
func Format(ids []int64) string {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	parts := make([]string, len(sorted))
	for i, id := range sorted {
		parts[i] = strconv.FormatInt(id, 10)
	}

	return strings.Join(parts, "-")
}

// ParseIDs is the inverse of Format. Surrounding whitespace is ignored and
// commas are accepted as separators too. Every '-' is a separator.
func ParseIDs(s string) ([]int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == ',' })
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("edgelist: id %q: %w", p, err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// Write renders the present edges of g as "index: u-v: weight" lines in
// ascending id order. Labels containing '-' or ':' cannot be read back.
func Write(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "%d: %s-%s: %d\n", e.ID, e.From, e.To, e.Weight); err != nil {
			return fmt.Errorf("edgelist: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("edgelist: write: %w", err)
	}

	return nil
}
