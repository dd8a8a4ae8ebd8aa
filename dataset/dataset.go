package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/kcluster/hamming"
	"github.com/katalvlaran/kcluster/spacing"
)

// Sentinel errors. Returned errors wrap these with line context, so
// errors.Is classifies and the message pinpoints.
var (
	// ErrBadHeader reports a missing or malformed header line.
	ErrBadHeader = errors.New("dataset: malformed header")

	// ErrBadRow reports a data row with the wrong shape or tokens.
	ErrBadRow = errors.New("dataset: malformed row")
)

// ReadEdgeList opens path and parses it with ParseEdgeList.
func ReadEdgeList(path string) (int, []spacing.Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	return ParseEdgeList(f)
}

// ReadBitVectors opens path and parses it with ParseBitVectors.
func ReadBitVectors(path string) ([]hamming.Vector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	return ParseBitVectors(f)
}

// ParseEdgeList reads the explicit-distance format: a header carrying
// the element count m, then one "labelA labelB distance" row per edge,
// in any order. Labels pass through verbatim; spacing.MaxSpacing
// accepts either dense convention (0-based or 1-based).
//
// Error Conditions:
//   - ErrBadHeader : empty input, or a header that is not a single
//     non-negative integer.
//   - ErrBadRow    : a row without exactly three integer fields.
//   - Reader failures, wrapped.
func ParseEdgeList(r io.Reader) (int, []spacing.Edge, error) {
	sc := bufio.NewScanner(r)
	lineNo := 0

	// 1. Header: the element count.
	line, ok := nextLine(sc, &lineNo)
	if !ok {
		if err := sc.Err(); err != nil {
			return 0, nil, fmt.Errorf("dataset: %w", err)
		}

		return 0, nil, fmt.Errorf("%w: empty input", ErrBadHeader)
	}
	fields := strings.Fields(line)
	if len(fields) != 1 {
		return 0, nil, fmt.Errorf("%w: line %d: want 1 field, got %d", ErrBadHeader, lineNo, len(fields))
	}
	m, err := strconv.Atoi(fields[0])
	if err != nil || m < 0 {
		return 0, nil, fmt.Errorf("%w: line %d: element count %q", ErrBadHeader, lineNo, fields[0])
	}

	// 2. Rows: exactly three integer fields each.
	var edges []spacing.Edge
	for {
		line, ok := nextLine(sc, &lineNo)
		if !ok {
			break
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return 0, nil, fmt.Errorf("%w: line %d: want 3 fields, got %d", ErrBadRow, lineNo, len(fields))
		}
		a, errA := strconv.Atoi(fields[0])
		b, errB := strconv.Atoi(fields[1])
		dist, errD := strconv.ParseInt(fields[2], 10, 64)
		if errA != nil || errB != nil || errD != nil {
			return 0, nil, fmt.Errorf("%w: line %d: %q", ErrBadRow, lineNo, line)
		}
		edges = append(edges, spacing.Edge{A: a, B: b, Dist: dist})
	}
	if err := sc.Err(); err != nil {
		return 0, nil, fmt.Errorf("dataset: %w", err)
	}

	return m, edges, nil
}

// ParseBitVectors reads the implicit-distance format: a header carrying
// the vector count M and the shared bit length L, then exactly M rows
// of L space-separated 0/1 tokens. Token i becomes bit i of the row's
// vector.
//
// Error Conditions:
//   - ErrBadHeader : empty input, or a header that is not two
//     non-negative integers.
//   - ErrBadRow    : wrong token count, a token other than "0"/"1", or
//     a body with more or fewer rows than the header declares.
//   - Reader failures, wrapped.
func ParseBitVectors(r io.Reader) ([]hamming.Vector, error) {
	sc := bufio.NewScanner(r)
	lineNo := 0

	// 1. Header: vector count and bit length.
	line, ok := nextLine(sc, &lineNo)
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("dataset: %w", err)
		}

		return nil, fmt.Errorf("%w: empty input", ErrBadHeader)
	}
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return nil, fmt.Errorf("%w: line %d: want 2 fields, got %d", ErrBadHeader, lineNo, len(fields))
	}
	count, errM := strconv.Atoi(fields[0])
	bitLen, errL := strconv.Atoi(fields[1])
	if errM != nil || errL != nil || count < 0 || bitLen < 0 {
		return nil, fmt.Errorf("%w: line %d: dimensions %q", ErrBadHeader, lineNo, line)
	}

	// 2. Exactly count rows of exactly bitLen tokens. The bool buffer
	//    is reused; VectorFromBools packs into fresh storage.
	vectors := make([]hamming.Vector, 0, count)
	row := make([]bool, bitLen)
	for {
		line, ok := nextLine(sc, &lineNo)
		if !ok {
			break
		}
		if len(vectors) == count {
			return nil, fmt.Errorf("%w: line %d: more than %d vector rows", ErrBadRow, lineNo, count)
		}
		fields := strings.Fields(line)
		if len(fields) != bitLen {
			return nil, fmt.Errorf("%w: line %d: want %d bits, got %d", ErrBadRow, lineNo, bitLen, len(fields))
		}
		for i, tok := range fields {
			switch tok {
			case "0":
				row[i] = false
			case "1":
				row[i] = true
			default:
				return nil, fmt.Errorf("%w: line %d: bit %d is %q", ErrBadRow, lineNo, i, tok)
			}
		}
		vectors = append(vectors, hamming.VectorFromBools(row))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	if len(vectors) != count {
		return nil, fmt.Errorf("%w: want %d vector rows, got %d", ErrBadRow, count, len(vectors))
	}

	return vectors, nil
}

// nextLine advances to the next non-empty line, returning its trimmed
// text and tracking the 1-based physical line number through lineNo.
func nextLine(sc *bufio.Scanner, lineNo *int) (string, bool) {
	for sc.Scan() {
		*lineNo++
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			return line, true
		}
	}

	return "", false
}
