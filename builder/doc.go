// Package builder generates deterministic road networks as core.Graph
// snapshots, for tests, benchmarks and demo data.
//
// Usage:
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{
//			builder.WithSeed(42),
//			builder.WithWeightFn(builder.UniformWeightFn(1, 10)),
//			builder.WithCentralCodes("1,1"),
//		},
//		builder.Grid(3, 3),
//	)
//
// Constructors run in order against a shared buffer; a code added twice is
// created once, so constructors may be combined. A link that would need a
// ninth slot fails with ErrSlotsFull.
package builder
