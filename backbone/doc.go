// Package backbone implements the three structural-backbone extraction
// algorithms (spec §4.F, §4.G, §4.H): naive n-step (parallel per-node
// oracle filter), Costa (sequential closure-based dominance check), and
// Simas (one-/two-step metric-edge seeding, then a parallel full check on
// the remainder). All three mutate a *mgraph.Graph in place, removing
// every edge found to be semi-metric, and return the number of edges
// removed.
package backbone
