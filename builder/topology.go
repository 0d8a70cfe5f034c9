// SPDX-License-Identifier: MIT
// Package: lviso/builder
//
// topology.go — classic deterministic topologies.
//
// Every constructor validates its size first, inserts vertices 0..n-1 in
// index order and then edges in a fixed order, so the same inputs always
// yield the same edge IDs. On a directed graph each topology is oriented
// from lower to higher index, except Complete which adds both directions.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lviso/core"
)

const (
	methodCycle             = "Cycle"
	methodPath              = "Path"
	methodStar              = "Star"
	methodWheel             = "Wheel"
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	methodRandomSparse      = "RandomSparse"

	minCycleNodes    = 3
	minPathNodes     = 2
	minStarNodes     = 2
	minWheelNodes    = 4
	minCompleteNodes = 1
	minPartitionSize = 1
)

func tooFew(method string, n, minN int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minN, ErrTooFewVertices)
}

// Cycle returns a Constructor for C_n: edges i→(i+1) mod n. n ≥ 3.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, n, minCycleNodes)
		}
		ids, err := addVertices(g, cfg, methodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = addEdge(g, cfg, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Path returns a Constructor for P_n: edges i→i+1. n ≥ 2.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return tooFew(methodPath, n, minPathNodes)
		}
		ids, err := addVertices(g, cfg, methodPath, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = addEdge(g, cfg, methodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star returns a Constructor for K_{1,n-1} with index 0 as the centre. n ≥ 2.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return tooFew(methodStar, n, minStarNodes)
		}
		ids, err := addVertices(g, cfg, methodStar, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addEdge(g, cfg, methodStar, ids[0], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor for W_n: hub 0 joined to every rim vertex
// 1..n-1, which form a cycle. n ≥ 4.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return tooFew(methodWheel, n, minWheelNodes)
		}
		ids, err := addVertices(g, cfg, methodWheel, n)
		if err != nil {
			return err
		}
		rim := n - 1
		for i := 0; i < rim; i++ {
			u, v := ids[1+i], ids[1+(i+1)%rim]
			if err = addEdge(g, cfg, methodWheel, u, v); err != nil {
				return err
			}
		}
		for i := 1; i < n; i++ {
			if err = addEdge(g, cfg, methodWheel, ids[0], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor for K_n. On a directed graph both i→j and
// j→i are added. n ≥ 1.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return tooFew(methodComplete, n, minCompleteNodes)
		}
		ids, err := addVertices(g, cfg, methodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addEdge(g, cfg, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
				if g.Directed() {
					if err = addEdge(g, cfg, methodComplete, ids[j], ids[i]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor for K_{a,b}. Left vertices are
// leftPrefix+i, right vertices rightPrefix+j; edges run left→right.
// WithRelabel does not apply here. a, b ≥ 1.
func CompleteBipartite(a, b int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if a < minPartitionSize {
			return tooFew(methodCompleteBipartite, a, minPartitionSize)
		}
		if b < minPartitionSize {
			return tooFew(methodCompleteBipartite, b, minPartitionSize)
		}
		left := make([]string, a)
		for i := range left {
			left[i] = cfg.leftPrefix + cfg.idFn(i)
			if err := g.AddVertex(left[i]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodCompleteBipartite, left[i], err)
			}
		}
		right := make([]string, b)
		for j := range right {
			right[j] = cfg.rightPrefix + cfg.idFn(j)
			if err := g.AddVertex(right[j]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodCompleteBipartite, right[j], err)
			}
		}
		for _, u := range left {
			for _, v := range right {
				if err := addEdge(g, cfg, methodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
