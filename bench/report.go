package bench

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"
)

// FormatLine renders rec as one report line:
//
//	[Cuckoo+HC] n=50 | Cuckoo+HC | nests=25, iter=500, pa=0.25, alpha=2, lambda=1.5 | Tiempo: 0.1234s | Distancia: 1234
func FormatLine(rec Record) string {
	return fmt.Sprintf("[%s] n=%d | %s | %s | Tiempo: %.4fs | Distancia: %s",
		rec.Variant.Label(), rec.N, rec.Variant.Tag(), rec.Config, rec.Elapsed.Seconds(), formatDistance(rec.Fitness))
}

// WriteLines writes one FormatLine per record.
func WriteLines(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)
	for _, rec := range records {
		if _, err := bw.WriteString(FormatLine(rec) + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// formatDistance prints integral lengths without a fractional part.
func formatDistance(d float64) string {
	if d == math.Trunc(d) && math.Abs(d) < 1e15 {
		return strconv.FormatFloat(d, 'f', 0, 64)
	}

	return strconv.FormatFloat(d, 'f', -1, 64)
}

// Line is a parsed report line.
type Line struct {
	Label    string
	N        int
	Seconds  float64
	Distance float64
}

var (
	reLabel    = regexp.MustCompile(`^\s*\[([^\]]+)\]`)
	reN        = regexp.MustCompile(`n=(\d+)`)
	reTime     = regexp.MustCompile(`Tiempo:\s*([0-9]*\.?[0-9]+)`)
	reDistance = regexp.MustCompile(`Distancia:\s*([0-9]*\.?[0-9]+)`)
)

// ParseLines extracts every report line from r. Lines without a bracketed
// label or any of the n, Tiempo and Distancia fields are skipped, so
// free-form text around the report is tolerated.
func ParseLines(r io.Reader) ([]Line, error) {
	var (
		out []Line
		sc  = bufio.NewScanner(r)
	)
	for sc.Scan() {
		text := sc.Text()
		if !strings.Contains(text, "[") || !strings.Contains(text, "Distancia") {
			continue
		}
		ml, mn, mt, md := reLabel.FindStringSubmatch(text), reN.FindStringSubmatch(text),
			reTime.FindStringSubmatch(text), reDistance.FindStringSubmatch(text)
		if ml == nil || mn == nil || mt == nil || md == nil {
			continue
		}
		n, err := strconv.Atoi(mn[1])
		if err != nil {
			continue
		}
		secs, err := strconv.ParseFloat(mt[1], 64)
		if err != nil {
			continue
		}
		dist, err := strconv.ParseFloat(md[1], 64)
		if err != nil {
			continue
		}
		out = append(out, Line{Label: ml[1], N: n, Seconds: secs, Distance: dist})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}

	return out, nil
}

// Lines converts records to parsed-report form.
func Lines(records []Record) []Line {
	out := make([]Line, len(records))
	for i, rec := range records {
		out[i] = Line{Label: rec.Variant.Label(), N: rec.N, Seconds: rec.Elapsed.Seconds(), Distance: rec.Fitness}
	}

	return out
}

// Comparison ranks the entries reported for one problem size.
type Comparison struct {
	N int
	// Entries are sorted by distance, then time; Entries[0] is the winner.
	Entries []Line
}

// Gap returns the relative excess of entry i over the winner, in percent.
func (c Comparison) Gap(i int) float64 {
	best := c.Entries[0].Distance
	if best == 0 {
		return 0
	}

	return 100 * (c.Entries[i].Distance - best) / best
}

// Compare groups lines by size and ranks each group. The result is sorted by n.
func Compare(lines []Line) []Comparison {
	groups := make(map[int][]Line)
	for _, l := range lines {
		groups[l.N] = append(groups[l.N], l)
	}

	out := make([]Comparison, 0, len(groups))
	for n, ls := range groups {
		slices.SortStableFunc(ls, func(a, b Line) int {
			if c := cmp.Compare(a.Distance, b.Distance); c != 0 {
				return c
			}
			return cmp.Compare(a.Seconds, b.Seconds)
		})
		out = append(out, Comparison{N: n, Entries: ls})
	}
	slices.SortFunc(out, func(a, b Comparison) int { return cmp.Compare(a.N, b.N) })

	return out
}

// WriteComparison prints comparisons as an aligned table.
func WriteComparison(w io.Writer, comps []Comparison) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "n\talgorithm\tdistance\ttime (s)\tgap %")
	for _, c := range comps {
		for i, e := range c.Entries {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%.4f\t%.2f\n", c.N, e.Label, formatDistance(e.Distance), e.Seconds, c.Gap(i))
		}
	}

	return tw.Flush()
}

// WriteSummary prints Summarize output as an aligned table.
func WriteSummary(w io.Writer, sums []Summary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "n\tvariant\truns\tbest\tmean\tstd\ttime mean (s)\trefined")
	for _, s := range sums {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%.2f\t%.2f\t%.4f\t%d\n",
			s.N, s.Variant, s.Runs, formatDistance(s.BestFitness), s.MeanFitness, s.StdFitness, s.MeanSeconds, s.Refined)
	}

	return tw.Flush()
}
