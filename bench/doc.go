// Package bench runs Cuckoo Search experiments over a set of problem sizes and
// variants and turns the runs into reports.
//
// A Runner expands (size × variant × run) into jobs, executes them on a
// bounded errgroup, and returns one Record per job in a stable order. Every
// job gets its own matrix clone and its own random stream derived from the
// base seed, so results do not depend on the worker count.
//
// Reporting:
//   - WriteLines / ParseLines: the one-line-per-run text report
//     "[Cuckoo+HC] n=50 | Cuckoo+HC | nests=25, ... | Tiempo: 0.1234s | Distancia: 1234".
//   - Compare / BestPerSize / Summarize: per-size comparisons and statistics.
//   - WriteCSV: flat CSV export.
//   - Metrics: Prometheus collectors on a private registry, exportable as a
//     node-exporter textfile.
//
// LoadTable reads a YAML parameter table into a cuckoo.Table.
package bench
