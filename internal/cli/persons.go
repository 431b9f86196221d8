package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goforj/flyweight"
	"github.com/goforj/flyweight/person"
)

func newPersonsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "persons [A|B|C...]",
		Short: "Create persons through the closed dispatching factory",
		Long: "Creates one person per discriminant. Without arguments, reads a count line\n" +
			"and then one discriminant per line from stdin. Unknown discriminants are\n" +
			"reported and make the command fail once every line is processed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.setup(cmd, "persons")
			if err != nil {
				return err
			}
			requests, err := readRequests(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			factory := person.NewFactory(flyweight.WithObserver(e.observer))

			var errs []error
			for _, req := range requests {
				p, err := factory.CreateCtx(cmd.Context(), req)
				if err != nil {
					errs = append(errs, err)
					continue
				}
				fmt.Fprintf(out, "%s: %s\n", p.Variant(), p.Describe())
			}
			if err := e.finish(out); err != nil {
				errs = append(errs, err)
			}
			return errors.Join(errs...)
		},
	}
}
