package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lviso/graphio"
	"github.com/katalvlaran/lviso/isomorphism"
)

// matchFlags are shared by match and exists.
type matchFlags struct {
	mode     string
	ordering string
	labels   bool
	weights  bool
	strict   bool
}

func (f *matchFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.mode, "mode", "m", "iso", "correspondence: iso, subgraph or induced")
	cmd.Flags().StringVar(&f.ordering, "ordering", "degree", "vertex ordering: degree, connectivity or natural")
	cmd.Flags().BoolVar(&f.labels, "labels", false, "require equal vertex labels")
	cmd.Flags().BoolVar(&f.weights, "weights", false, "require equal edge weights")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "fail on incompatible graph sizes instead of reporting no match")
}

// parseMode accepts the Mode names plus the short forms iso and mono.
func parseMode(s string) (isomorphism.Mode, error) {
	switch strings.ToLower(s) {
	case "iso", "isomorphism":
		return isomorphism.ModeIsomorphism, nil
	case "subgraph", "mono", "monomorphism":
		return isomorphism.ModeSubgraph, nil
	case "induced":
		return isomorphism.ModeInducedSubgraph, nil
	}
	return 0, fmt.Errorf("unknown mode %q (want iso, subgraph or induced)", s)
}

func parseOrdering(s string) (isomorphism.Ordering, error) {
	switch strings.ToLower(s) {
	case "degree":
		return isomorphism.OrderDegree, nil
	case "connectivity":
		return isomorphism.OrderConnectivity, nil
	case "natural":
		return isomorphism.OrderNatural, nil
	}
	return 0, fmt.Errorf("unknown ordering %q (want degree, connectivity or natural)", s)
}

// inspector loads PATTERN and TARGET and configures a search from the flags.
func (f *matchFlags) inspector(cmd *cobra.Command, args []string) (*isomorphism.Inspector, error) {
	mode, err := parseMode(f.mode)
	if err != nil {
		return nil, err
	}
	ord, err := parseOrdering(f.ordering)
	if err != nil {
		return nil, err
	}

	logger := loggerFromContext(cmd.Context())
	g1, err := graphio.Load(args[0])
	if err != nil {
		return nil, err
	}
	g2, err := graphio.Load(args[1])
	if err != nil {
		return nil, err
	}
	logger.Debug("graphs loaded",
		"pattern", args[0], "pattern_vertices", g1.VertexCount(), "pattern_edges", g1.EdgeCount(),
		"target", args[1], "target_vertices", g2.VertexCount(), "target_edges", g2.EdgeCount())

	opts := []isomorphism.Option{
		isomorphism.WithContext(cmd.Context()),
		isomorphism.WithLogger(logger),
		isomorphism.WithMode(mode),
		isomorphism.WithOrdering(ord),
	}
	if f.labels {
		opts = append(opts, isomorphism.WithVertexCompatibility(isomorphism.SameVertexLabel(g1, g2)))
	}
	if f.weights {
		opts = append(opts, isomorphism.WithEdgeCompatibility(isomorphism.SameEdgeWeight))
	}
	if f.strict {
		opts = append(opts, isomorphism.WithStrictSizes())
	}

	return isomorphism.NewInspector(g1, g2, opts...)
}

func newMatchCmd() *cobra.Command {
	var (
		flags matchFlags
		limit int
	)
	cmd := &cobra.Command{
		Use:   "match PATTERN TARGET",
		Short: "Print every mapping of PATTERN onto TARGET, one per line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := flags.inspector(cmd, args)
			if err != nil {
				return err
			}
			prog := newProgress(loggerFromContext(cmd.Context()))

			c := in.Mappings()
			n := 0
			for (limit <= 0 || n < limit) && c.HasNext() {
				gm, err := c.Next()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), gm)
				n++
			}
			if err := c.Err(); err != nil {
				return err
			}
			s := c.Stats()
			prog.done(fmt.Sprintf("%d mapping(s), %d steps, %d backtracks", n, s.Steps, s.Backtracks))

			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "stop after N mappings (0 = all)")

	return cmd
}

func newExistsCmd() *cobra.Command {
	var flags matchFlags
	cmd := &cobra.Command{
		Use:   "exists PATTERN TARGET",
		Short: "Print true if PATTERN maps onto TARGET, false otherwise",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := flags.inspector(cmd, args)
			if err != nil {
				return err
			}
			ok, err := in.IsomorphismExists()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ok)

			return nil
		},
	}
	flags.register(cmd)

	return cmd
}
