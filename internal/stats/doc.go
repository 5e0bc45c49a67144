// Package stats computes the descriptive aggregations over the loaded
// Formula 1 tables: positions gained between qualifying and race finish,
// per-driver career metrics (race count, mean finish position, points
// total) and per-constructor points totals.
//
// Each aggregation is an independent single pass over the immutable
// dataset: group by an entity key, reduce with count/mean/sum, resolve
// display labels through a left join against the drivers or constructors
// table, then sort with a deterministic label tiebreak. Non-numeric
// position values drop a row from the affected mean only; non-numeric
// points contribute zero to sums.
package stats
