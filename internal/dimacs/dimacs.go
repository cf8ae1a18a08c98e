// Package dimacs loads assumption-batch files: one incremental solve's worth
// of assumptions per line, in the `a <lit>... 0` convention DIMACS-adjacent
// tools use for extensions to the base CNF format. cmd/cdcl uses this to
// drive repeated incremental solves against a single loaded CNF instance
// without re-parsing the instance itself (that part is handled by the
// third-party builder API in the top-level parsers package).
package dimacs

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cdclgo/solver/internal/sat"
)

func reader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			return nil, err
		}
	}
	return rc, nil
}

// LoadAssumptionBatches parses filename and returns one []sat.Literal per
// non-comment `a ... 0` line, in file order. A line not starting with "a" is
// a format error; "c"-prefixed and blank lines are skipped, matching the
// base CNF format's comment convention.
func LoadAssumptionBatches(filename string, gzipped bool) ([][]sat.Literal, error) {
	r, err := reader(filename, gzipped)
	if err != nil {
		return nil, fmt.Errorf("error reading file %q: %s", filename, err)
	}
	defer r.Close()

	var batches [][]sat.Literal
	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == 'c' {
			continue
		}
		if line[0] != 'a' {
			return nil, fmt.Errorf("line %d: expected an assumption batch (\"a ...\"), got %q", lineNo, line)
		}

		fields := strings.Fields(line)[1:]
		batch := make([]sat.Literal, 0, len(fields))
		for _, f := range fields {
			l, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			switch {
			case l < 0:
				batch = append(batch, sat.NegativeLiteral(-l-1))
			case l > 0:
				batch = append(batch, sat.PositiveLiteral(l-1))
				// l == 0 is the end-of-line terminator: drop it.
			}
		}
		batches = append(batches, batch)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file %q: %w", filename, err)
	}
	return batches, nil
}
