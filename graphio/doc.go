// Package graphio reads and writes core.Graph values as YAML documents:
//
//	directed: false
//	loops: false
//	weighted: true
//	vertices:
//	  - {id: a, label: carbon}
//	  - {id: b}
//	edges:
//	  - {from: a, to: b, weight: 2}
//
// Vertices listed under "vertices" are added first, in document order; edge
// endpoints missing from that list are created implicitly. Unknown keys are
// rejected so typos surface instead of silently producing a different graph.
//
// Errors from Decode wrap the core error of the offending vertex or edge with
// its position, e.g. "graphio: edges[3] (a→a): core: ...: loop not allowed".
package graphio
