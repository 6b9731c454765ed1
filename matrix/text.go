// Package matrix - plain-text dump format.
//
// Layout (one block per matrix, blocks separated by a blank line):
//
//	# distance matrix 3 x 3
//	  0  12 401
//	 77   0  19
//	130 256   0
//
// Values are right-aligned to the widest entry of the block. ReadText accepts
// any whitespace between values and ignores blank lines; a header line is
// required before every block.
package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const textHeaderPrefix = "# distance matrix"

// WriteText writes the given matrices to w in the block format described above.
// Complexity: O(Σ n²).
func WriteText(w io.Writer, ms ...Matrix) error {
	bw := bufio.NewWriter(w)
	for k, m := range ms {
		if err := ValidateNotNil(m); err != nil {
			return err
		}
		if k > 0 {
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
		if err := writeBlock(bw, m); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func writeBlock(bw *bufio.Writer, m Matrix) error {
	var (
		r, c  = m.Rows(), m.Cols()
		cells = make([]string, r*c)
		width int
		i, j  int
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			x, err := m.At(i, j)
			if err != nil {
				return err
			}
			s := strconv.FormatFloat(x, 'f', -1, 64)
			cells[i*c+j] = s
			if len(s) > width {
				width = len(s)
			}
		}
	}

	if _, err := fmt.Fprintf(bw, "%s %d x %d\n", textHeaderPrefix, r, c); err != nil {
		return err
	}
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if j > 0 {
				bw.WriteByte(' ')
			}
			fmt.Fprintf(bw, "%*s", width, cells[i*c+j])
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return nil
}

// ReadText parses every block in r and returns the matrices in file order.
//
// Errors: ErrParse (wrapped with the line number) on malformed headers, rows of
// the wrong width, non-numeric cells or truncated blocks.
func ReadText(r io.Reader) ([]*Dense, error) {
	var (
		sc     = bufio.NewScanner(r)
		out    []*Dense
		cur    *Dense
		row    int
		lineNo int
	)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, textHeaderPrefix) {
			if cur != nil && row < cur.r {
				return nil, fmt.Errorf("line %d: block ended after %d of %d rows: %w", lineNo, row, cur.r, ErrParse)
			}
			rows, cols, err := parseHeader(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			if cur, err = NewDense(rows, cols); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			out = append(out, cur)
			row = 0

			continue
		}

		if cur == nil || row >= cur.r {
			return nil, fmt.Errorf("line %d: values outside a matrix block: %w", lineNo, ErrParse)
		}
		fields := strings.Fields(line)
		if len(fields) != cur.c {
			return nil, fmt.Errorf("line %d: got %d values, want %d: %w", lineNo, len(fields), cur.c, ErrParse)
		}
		for j, f := range fields {
			x, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %q: %w", lineNo, f, ErrParse)
			}
			cur.data[row*cur.c+j] = x
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if cur != nil && row < cur.r {
		return nil, fmt.Errorf("block ended after %d of %d rows: %w", row, cur.r, ErrParse)
	}

	return out, nil
}

// parseHeader extracts the dimensions from "# distance matrix R x C".
func parseHeader(line string) (int, int, error) {
	var r, c int
	rest := strings.TrimSpace(strings.TrimPrefix(line, textHeaderPrefix))
	if _, err := fmt.Sscanf(rest, "%d x %d", &r, &c); err != nil {
		return 0, 0, fmt.Errorf("header %q: %w", line, ErrParse)
	}
	if r <= 0 || c <= 0 {
		return 0, 0, fmt.Errorf("header %q: %w", line, ErrInvalidDimensions)
	}

	return r, c, nil
}
