// Package cuckoo is a Cuckoo Search solver for the Travelling Salesman Problem,
// with an optional local-search refiner and a reproducible benchmark harness.
//
// The module is organized as:
//
//	matrix/        distance matrices: Dense, validation, seeded generation, text format
//	tsp/           tours, cost evaluation, seeded RNG, Hill Climbing and 2-opt refiners
//	cuckoo/        Lévy flights, tour mutation, the nest population and the search driver
//	bench/         batch runner, metrics, statistics, result lines, CSV and YAML tables
//	store/         run persistence (in-memory and SQLite)
//	cmd/cuckootsp  command-line front end
//
// Quick start:
//
//	dist, _ := matrix.Random(20, matrix.ReferenceSeed(20))
//	cfg, _ := cuckoo.DefaultTable().Lookup(20)
//	res, err := cuckoo.Search(ctx, dist, cfg,
//		cuckoo.WithSeed(1),
//		cuckoo.WithRefiner(tsp.NewHillClimber(1)),
//	)
//
// Every run is deterministic for a given seed, matrix and configuration.
package cuckoo
