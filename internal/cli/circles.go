package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goforj/flyweight"
	"github.com/goforj/flyweight/shape"
)

func newCirclesCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "circles [color...]",
		Short: "Draw circles from a color-keyed flyweight cache",
		Long: "Draws circles.draws circles, cycling through the given colors. Without\n" +
			"arguments, reads a count line and then one color per line from stdin.",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.setup(cmd, "circles")
			if err != nil {
				return err
			}
			colors, err := readRequests(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Trial = %d\n", len(colors))

			factory := shape.NewFactory(
				shape.WithDefaultRadius(e.cfg.Circles.Radius),
				shape.WithCacheOptions(flyweight.WithObserver(e.observer)),
			)
			for i := 0; i < e.cfg.Circles.Draws; i++ {
				c, err := factory.CircleCtx(cmd.Context(), colors[i%len(colors)], e.cfg.Circles.Radius)
				if err != nil {
					return err
				}
				if err := c.Draw(out); err != nil {
					return err
				}
			}
			e.log.Debugf("drew %d circles from %d shared instances", e.cfg.Circles.Draws, factory.Len())
			return e.finish(out)
		},
	}
}
