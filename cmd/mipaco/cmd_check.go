package main

import (
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/dhamidi/mipaco/ebnf"
	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:           "check <grammar>",
		Short:         "Parse, verify and compile an EBNF grammar file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			if !cmd.Flags().Changed("start") {
				startProduction = a.cfg.Parse.Start
			}

			g, err := ebnf.Load(filename)
			if err != nil {
				printErrors(cmd.ErrOrStderr(), err)
				return err
			}

			if err := g.Verify(startProduction); err != nil {
				printErrors(cmd.ErrOrStderr(), err)
				return err
			}

			if startProduction != "" {
				for _, mode := range []ebnf.Mode{ebnf.Greedy, ebnf.Exhaustive} {
					if _, err := g.Compile(startProduction, mode); err != nil {
						printErrors(cmd.ErrOrStderr(), err)
						return err
					}
				}
			}

			a.log.Debugf("checked %s", filename)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d productions ok\n", filename, len(g.Productions()))
			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "", "start production for verification (if empty, only checks syntax)")

	return cmd
}

// printErrors prints one line per error when err wraps an error list.
func printErrors(w io.Writer, err error) {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if joined, ok := e.(interface{ Unwrap() []error }); ok {
			for _, e := range joined.Unwrap() {
				fmt.Fprintln(w, e)
			}
			return
		}
		if v := reflect.ValueOf(e); v.Kind() == reflect.Slice {
			for i := 0; i < v.Len(); i++ {
				fmt.Fprintln(w, v.Index(i).Interface())
			}
			return
		}
	}
	fmt.Fprintln(w, err)
}
