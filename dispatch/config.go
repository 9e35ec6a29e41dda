// Package dispatch implements the compressed-search dispatcher (spec.md
// C8): offline_industry builds, per partition subgraph, whichever
// ReachabilityAlgorithm variant best fits its size and density, then Reach
// answers online queries by consulting the owning partition's algorithm and,
// for cross-partition pairs, walking the partition meta-graph.
package dispatch

import "github.com/katalvlaran/reachcompress/partition"

// Config is the dispatcher's configuration surface (spec.md §6): which
// partitioner to run, the two thresholds that pick a per-partition
// algorithm, whether per-partition indices are consulted at all, and an
// optional equivalence-class remap applied before partitioning.
type Config struct {
	PartitionerName partition.Strategy
	NumVerticesT    int
	RatioT          float64
	IsIndex         bool
	EquivalencePath string

	// UseBloomFilter opts partitions that reach the fallback branch (not a
	// forest, at least NumVerticesT vertices, and either a reach ratio at or
	// above RatioT or a cycle) into the probabilistic BloomFilter variant
	// instead of UnreachablePairs. Off by
	// default: BloomFilter can false-positive (see BloomFilter's doc
	// comment), so this is an explicit, opt-in trade of exactness for
	// memory on partitions where the caller has decided that trade-off is
	// acceptable; the default cascade remains exact.
	UseBloomFilter bool

	PartitionOpts partition.PartitionOptions
}

// Option mutates a Config during construction.
type Option func(*Config)

// WithPartitioner sets the partitioning strategy.
func WithPartitioner(s partition.Strategy) Option {
	return func(c *Config) { c.PartitionerName = s }
}

// WithThresholds sets num_vertices_T and ratio_T.
func WithThresholds(numVerticesT int, ratioT float64) Option {
	return func(c *Config) { c.NumVerticesT = numVerticesT; c.RatioT = ratioT }
}

// WithIndex toggles whether per-partition indices are consulted (true) or a
// plain BiBFS is used within partitions (false).
func WithIndex(isIndex bool) Option {
	return func(c *Config) { c.IsIndex = isIndex }
}

// WithEquivalencePath sets the optional vertex-remap file path.
func WithEquivalencePath(path string) Option {
	return func(c *Config) { c.EquivalencePath = path }
}

// WithPartitionOptions sets the options forwarded to partition.Partition.
func WithPartitionOptions(opts partition.PartitionOptions) Option {
	return func(c *Config) { c.PartitionOpts = opts }
}

// WithBloomFilter opts the fallback branch of buildAlgorithm's cascade into
// BloomFilterAlgorithm instead of UnreachablePairsAlgorithm.
func WithBloomFilter(use bool) Option {
	return func(c *Config) { c.UseBloomFilter = use }
}

// NewConfig builds a Config from defaults (Louvain partitioner, is_index
// true, ratio_T 0.5) plus the given options.
func NewConfig(opts ...Option) Config {
	cfg := Config{
		PartitionerName: partition.StrategyLouvain,
		NumVerticesT:    32,
		RatioT:          0.5,
		IsIndex:         true,
	}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}
