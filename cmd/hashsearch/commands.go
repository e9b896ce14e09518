package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tamirms/hashsearch"
	"github.com/tamirms/hashsearch/corpus"
	hserrors "github.com/tamirms/hashsearch/errors"
)

func hashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash [flags] key...",
		Short: "Print the hash of each key",
		Long: `Print the hash of each key under one algorithm or all of them.
Keys are hashed one Unicode code point at a time.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("algo") {
				cfg.Algorithm, _ = cmd.Flags().GetString("algo")
			}
			algos, err := cfg.Algorithms()
			if err != nil {
				return err
			}
			log.Debug("hashing keys", "keys", len(args), "algorithms", len(algos))

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tALGORITHM\tHASH")
			for _, key := range args {
				for _, a := range algos {
					h, err := hashsearch.Hash(a, key)
					if err != nil {
						return err
					}
					fmt.Fprintf(w, "%q\t%s\t%d\n", key, a, h)
				}
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringP("algo", "a", "", "algorithm name or 'all' (default from config)")

	return cmd
}

func searchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [flags] key...",
		Short: "Binary search a sorted key file",
		Long: `Look up each key in a sorted, newline-delimited key file and print its
0-based line index, or "not found".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("corpus") {
				cfg.Corpus, _ = cmd.Flags().GetString("corpus")
			}
			if cmd.Flags().Changed("convention") {
				cfg.Convention, _ = cmd.Flags().GetString("convention")
			}
			conv, err := cfg.SearchConvention()
			if err != nil {
				return err
			}
			if cfg.Corpus == "" {
				return fmt.Errorf("%w: no corpus given (--corpus or HASHSEARCH_CORPUS)", hserrors.ErrInvalidConfig)
			}

			c, err := corpus.Open(cfg.Corpus)
			if err != nil {
				return err
			}
			defer c.Close()
			log = log.WithCorpus(cfg.Corpus)
			log.Debug("opened corpus", "keys", c.Len(), "convention", conv.String())

			out := cmd.OutOrStdout()
			for _, key := range args {
				idx, err := c.Find(key, conv)
				switch {
				case errors.Is(err, hserrors.ErrNotFound):
					fmt.Fprintf(out, "%q\tnot found\n", key)
				case err != nil:
					log.WithError(err).Error("search failed", "key", key)
					return err
				default:
					fmt.Fprintf(out, "%q\t%d\n", key, idx)
				}
			}
			return nil
		},
	}

	cmd.Flags().String("corpus", "", "sorted key file (default from config)")
	cmd.Flags().String("convention", "", "interval convention: closed or half-open (default from config)")

	return cmd
}

func spreadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spread [flags] [file]",
		Short: "Report how keys spread over buckets",
		Long: `Read keys (one per line) from file, or stdin when no file is given, hash
them with every selected algorithm and report distinct values, collisions
and bucket occupancy.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("algo") {
				cfg.Algorithm, _ = cmd.Flags().GetString("algo")
			}
			if cmd.Flags().Changed("buckets") {
				cfg.Spread.Buckets, _ = cmd.Flags().GetInt("buckets")
			}
			if cmd.Flags().Changed("workers") {
				cfg.Spread.Workers, _ = cmd.Flags().GetInt("workers")
			}
			if cmd.Flags().Changed("fastrange") {
				cfg.Spread.FastRange, _ = cmd.Flags().GetBool("fastrange")
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			algos, err := cfg.Algorithms()
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open key file: %w", err)
				}
				defer f.Close()
				in = f
			}
			keys, err := readKeys(in)
			if err != nil {
				return err
			}
			log.Debug("read keys", "keys", len(keys))

			reduction := hashsearch.ReduceModulo
			if cfg.Spread.FastRange {
				reduction = hashsearch.ReduceFastRange
			}
			reports, err := hashsearch.Spread(cmd.Context(), keys,
				hashsearch.WithAlgorithms(algos...),
				hashsearch.WithBuckets(cfg.Spread.Buckets),
				hashsearch.WithWorkers(cfg.Spread.Workers),
				hashsearch.WithReduction(reduction),
			)
			if err != nil {
				return err
			}
			return writeReports(cmd.OutOrStdout(), reports)
		},
	}

	cmd.Flags().StringP("algo", "a", "", "algorithm name or 'all' (default from config)")
	cmd.Flags().Int("buckets", 0, "number of buckets (default from config)")
	cmd.Flags().Int("workers", 0, "algorithms evaluated in parallel (default from config)")
	cmd.Flags().Bool("fastrange", false, "scale hash values onto buckets instead of taking the modulo")

	return cmd
}

func verifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [flags]",
		Short: "Check that a key file is sorted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("corpus") {
				cfg.Corpus, _ = cmd.Flags().GetString("corpus")
			}
			if cfg.Corpus == "" {
				return fmt.Errorf("%w: no corpus given (--corpus or HASHSEARCH_CORPUS)", hserrors.ErrInvalidConfig)
			}

			c, err := corpus.Open(cfg.Corpus)
			if err != nil {
				return err
			}
			defer c.Close()
			log = log.WithCorpus(cfg.Corpus)

			if err := c.Verify(); err != nil {
				log.WithError(err).Warn("corpus is not sorted")
				return err
			}
			sum, err := c.Checksum()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok\t%d keys\txxhash64 %016x\n", c.Len(), sum)
			return nil
		},
	}

	cmd.Flags().String("corpus", "", "sorted key file (default from config)")

	return cmd
}

// readKeys returns the lines of r with any trailing '\r' removed.
func readKeys(r io.Reader) ([]string, error) {
	var keys []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		keys = append(keys, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read keys: %w", err)
	}
	return keys, nil
}

func writeReports(out io.Writer, reports []hashsearch.Report) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "ALGORITHM\tKEYS\tDISTINCT\tCOLLISIONS\tBUCKETS\tUSED\tMAX LOAD\tCHI-SQUARE\t")
	for _, r := range reports {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\t%d\t%.2f\t\n",
			r.Algorithm, r.Keys, r.Distinct, r.Collisions, r.Buckets, r.Used, r.MaxLoad, r.ChiSquare)
	}
	return w.Flush()
}
