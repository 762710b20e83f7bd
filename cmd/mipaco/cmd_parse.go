package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/dhamidi/mipaco/combinator"
	"github.com/dhamidi/mipaco/ebnf"
	"github.com/dhamidi/mipaco/format"
	"github.com/spf13/cobra"
)

var errNoParse = errors.New("no parse")

func newParseCmd(a *app) *cobra.Command {
	var (
		startProduction string
		mode            string
		full            bool
		maxResults      int
		outputFormat    string
	)

	cmd := &cobra.Command{
		Use:   "parse <grammar> [input]",
		Short: "Parse input with a grammar and print the results",
		Long: `Parse input with a grammar and print the results.

The input is taken from the second argument, or from standard input when it is
omitted or "-". In greedy mode every alternative commits to its first success and
at most one result is printed per reading of the first token. In exhaustive mode
every parse is printed; use --max to bound ambiguous grammars.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.cfg.Parse
			flags := cmd.Flags()
			if flags.Changed("start") {
				opts.Start = startProduction
			}
			if flags.Changed("mode") {
				opts.Mode = mode
			}
			if flags.Changed("full") {
				opts.Full = &full
			}
			if flags.Changed("max") {
				opts.MaxResults = maxResults
			}
			if flags.Changed("format") {
				opts.Format = outputFormat
			}
			if opts.Start == "" {
				return fmt.Errorf("no start production: use --start or parse.start")
			}
			if opts.MaxResults < 0 {
				return fmt.Errorf("invalid --max %d", opts.MaxResults)
			}

			m, err := ebnf.ParseMode(opts.Mode)
			if err != nil {
				return err
			}
			enc, err := format.New(opts.Format, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			g, err := ebnf.Load(args[0])
			if err != nil {
				return fmt.Errorf("load grammar: %w", err)
			}
			p, err := g.Compile(opts.Start, m)
			if err != nil {
				return err
			}
			if opts.Full == nil || *opts.Full {
				p = combinator.ToEnd(p)
			}

			seq := p(input)
			var results []combinator.Result[*ebnf.Node]
			if opts.MaxResults > 0 {
				results = combinator.Take(seq, opts.MaxResults)
			} else {
				results = combinator.All(seq)
			}
			a.log.Infof("%d results for %s in %s mode", len(results), opts.Start, m)

			if err := enc.Encode(format.Entries(results)); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			if len(results) == 0 {
				return fmt.Errorf("parse %s: %w", opts.Start, errNoParse)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&startProduction, "start", "s", "", "start production (default parse.start)")
	cmd.Flags().StringVarP(&mode, "mode", "m", "greedy", "alternation semantics (greedy, exhaustive)")
	cmd.Flags().BoolVar(&full, "full", true, "only accept parses that consume the whole input")
	cmd.Flags().IntVarP(&maxResults, "max", "n", 0, "maximum number of results (0 for all)")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json, yaml)")

	return cmd
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 2 && args[1] != "-" {
		return args[1], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}
