package tsplib

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/evotsp/matrix"
)

// maxLineBytes bounds a single input line (FULL_MATRIX rows can be long).
const maxLineBytes = 4 << 20

// parser is a single-pass line reader over one instance.
type parser struct {
	sc   *bufio.Scanner
	line int
	inst *Instance
}

// Parse reads one instance from r and builds its cost matrix.
//
// Complexity: O(n²) for the matrix, O(input) for scanning.
func Parse(r io.Reader) (*Instance, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	p := &parser{sc: sc, inst: &Instance{}}
	if err := p.parse(); err != nil {
		return nil, err
	}

	return p.inst, nil
}

// ParseFile opens path and parses it. I/O errors are wrapped unchanged so
// callers can match os.ErrNotExist and friends.
func ParseFile(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tsplib: %w", err)
	}
	defer f.Close()

	inst, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return inst, nil
}

// next advances to the next line and keeps the line counter in sync.
func (p *parser) next() bool {
	if !p.sc.Scan() {
		return false
	}
	p.line++

	return true
}

// parse consumes the header and dispatches to the first data section.
func (p *parser) parse() error {
	for p.next() {
		text := strings.TrimSpace(p.sc.Text())
		if text == "" {
			continue
		}
		key, value := splitHeader(text)

		switch key {
		case "EOF":
			return ErrUnsupportedSection
		case NodeCoordSection:
			return p.readCoords()
		case EdgeWeightSection:
			return p.readWeights()
		case "NAME":
			p.inst.Name = value
		case "COMMENT":
			if p.inst.Comment != "" {
				p.inst.Comment += "\n"
			}
			p.inst.Comment += value
		case "TYPE":
			p.inst.Type = strings.ToUpper(value)
			if p.inst.Type != "TSP" {
				return fmt.Errorf("line %d: TYPE %q: %w", p.line, value, ErrUnsupportedType)
			}
		case "DIMENSION":
			d, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("line %d: DIMENSION %q: %w", p.line, value, ErrSyntax)
			}
			if d < 1 {
				return fmt.Errorf("line %d: DIMENSION %d: %w", p.line, d, ErrDimension)
			}
			p.inst.Dimension = d
		case "EDGE_WEIGHT_TYPE":
			p.inst.EdgeWeightType = strings.ToUpper(value)
		case "EDGE_WEIGHT_FORMAT":
			p.inst.EdgeWeightFormat = strings.ToUpper(value)
		default:
			if strings.HasSuffix(key, "_SECTION") {
				return fmt.Errorf("line %d: %s: %w", p.line, key, ErrUnsupportedSection)
			}
		}
	}
	if err := p.sc.Err(); err != nil {
		return fmt.Errorf("tsplib: read: %w", err)
	}

	return ErrUnsupportedSection
}

// readCoords consumes "id x y" lines and builds the matrix under the
// EDGE_WEIGHT_TYPE metric. DIMENSION is optional here; when present it must
// match the line count.
func (p *parser) readCoords() error {
	dist, ok := coordMetric(p.inst.EdgeWeightType)
	if !ok {
		return fmt.Errorf("EDGE_WEIGHT_TYPE %s with %s: %w", p.inst.EdgeWeightType, NodeCoordSection, ErrUnsupportedFormat)
	}

	var pts []matrix.Point
	for p.next() {
		fields := strings.Fields(p.sc.Text())
		if endOfSection(fields) {
			break
		}
		if len(fields) != 3 {
			return fmt.Errorf("line %d: want \"id x y\", got %d fields: %w", p.line, len(fields), ErrSyntax)
		}
		if _, err := strconv.Atoi(fields[0]); err != nil {
			return fmt.Errorf("line %d: node id %q: %w", p.line, fields[0], ErrSyntax)
		}
		x, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return fmt.Errorf("line %d: x %q: %w", p.line, fields[1], ErrSyntax)
		}
		y, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return fmt.Errorf("line %d: y %q: %w", p.line, fields[2], ErrSyntax)
		}
		pts = append(pts, matrix.Point{X: x, Y: y})
	}
	if err := p.sc.Err(); err != nil {
		return fmt.Errorf("tsplib: read: %w", err)
	}

	if d := p.inst.Dimension; d > 0 && d != len(pts) {
		return fmt.Errorf("DIMENSION %d but %d coordinates: %w", d, len(pts), ErrDimension)
	}
	m, err := coordMatrix(pts, dist)
	if err != nil {
		return fmt.Errorf("tsplib: %s: %w", NodeCoordSection, err)
	}

	p.inst.Dimension = len(pts)
	p.inst.Section = NodeCoordSection
	p.inst.Points = pts
	p.inst.Matrix = m

	return nil
}

// readWeights consumes the explicit weights of EDGE_WEIGHT_SECTION, laid
// out per EDGE_WEIGHT_FORMAT.
func (p *parser) readWeights() error {
	var n = p.inst.Dimension
	if n < 1 {
		return fmt.Errorf("%s requires DIMENSION: %w", EdgeWeightSection, ErrDimension)
	}
	if t := p.inst.EdgeWeightType; t != "" && t != "EXPLICIT" {
		return fmt.Errorf("EDGE_WEIGHT_TYPE %s with %s: %w", t, EdgeWeightSection, ErrUnsupportedFormat)
	}
	if p.inst.EdgeWeightFormat == "" {
		p.inst.EdgeWeightFormat = LowerDiagRow
	}
	format := p.inst.EdgeWeightFormat
	want, err := weightCount(format, n)
	if err != nil {
		return err
	}

	vals := make([]float64, 0, want)
	for p.next() {
		fields := strings.Fields(p.sc.Text())
		if endOfSection(fields) {
			break
		}
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return fmt.Errorf("line %d: weight %q: %w", p.line, f, ErrSyntax)
			}
			vals = append(vals, v)
		}
	}
	if err = p.sc.Err(); err != nil {
		return fmt.Errorf("tsplib: read: %w", err)
	}

	if len(vals) != want {
		return fmt.Errorf("%s of order %d needs %d weights, got %d: %w", format, n, want, len(vals), ErrDimension)
	}
	m, err := buildWeights(format, n, vals)
	if err != nil {
		return fmt.Errorf("tsplib: %s: %w", EdgeWeightSection, err)
	}

	p.inst.Section = EdgeWeightSection
	p.inst.Matrix = m

	return nil
}

// weightCount returns how many values format needs for order n.
func weightCount(format string, n int) (int, error) {
	switch format {
	case FullMatrix:
		return n * n, nil
	case LowerDiagRow, UpperDiagRow:
		return n * (n + 1) / 2, nil
	case LowerRow, UpperRow:
		return n * (n - 1) / 2, nil
	default:
		return 0, fmt.Errorf("EDGE_WEIGHT_FORMAT %s: %w", format, ErrUnsupportedFormat)
	}
}

// buildWeights dispatches vals to the matching matrix constructor.
func buildWeights(format string, n int, vals []float64) (*matrix.CostMatrix, error) {
	switch format {
	case LowerDiagRow:
		return matrix.FromLowerTriangle(n, vals, true)
	case LowerRow:
		return matrix.FromLowerTriangle(n, vals, false)
	case UpperDiagRow:
		return matrix.FromUpperTriangle(n, vals, true)
	case UpperRow:
		return matrix.FromUpperTriangle(n, vals, false)
	default:
		rows := make([][]float64, n)
		for i := range rows {
			rows[i] = vals[i*n : (i+1)*n]
		}
		return matrix.FromRows(rows)
	}
}

// splitHeader splits "KEY : VALUE", "KEY: VALUE" and "KEY VALUE".
// The key is upper-cased; the value is trimmed.
func splitHeader(text string) (key, value string) {
	if i := strings.IndexByte(text, ':'); i >= 0 {
		return strings.ToUpper(strings.TrimSpace(text[:i])), strings.TrimSpace(text[i+1:])
	}
	fields := strings.Fields(text)
	key = strings.ToUpper(fields[0])
	value = strings.TrimSpace(strings.TrimPrefix(text, fields[0]))

	return key, value
}

// endOfSection reports whether a data line terminates the current section:
// a blank line, EOF, or the next keyword.
func endOfSection(fields []string) bool {
	if len(fields) == 0 {
		return true
	}
	c := fields[0][0]

	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}
