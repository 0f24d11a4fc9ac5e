package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	ltp "github.com/BackendStack21/ltp-go"
	"github.com/BackendStack21/ltp-go/core"
	"github.com/BackendStack21/ltp-go/primality"
	"github.com/BackendStack21/ltp-go/utils"
)

// FindResult is the output of the find command.
type FindResult struct {
	Index   int    `json:"index" yaml:"index"`
	Value   uint32 `json:"value" yaml:"value"`
	Elapsed string `json:"elapsed,omitempty" yaml:"elapsed,omitempty"`
}

// ListResult is the output of the list command.
type ListResult struct {
	Count  int      `json:"count" yaml:"count"`
	Values []uint32 `json:"values" yaml:"values"`
	Digest string   `json:"digest,omitempty" yaml:"digest,omitempty"`
}

// PrimeResult is the output of the isprime command.
type PrimeResult struct {
	N     uint64 `json:"n" yaml:"n"`
	Prime bool   `json:"prime" yaml:"prime"`
}

// ============================================================================
// find
// ============================================================================

func (c *cli) findCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find [index]",
		Short: "Print the left-truncatable prime at a position",
		Long: `Print the left-truncatable prime at a 1-based position.
Without an argument the index is read interactively from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := c.engine()
			if err != nil {
				return err
			}
			maxIndex := engine.Params().MaxIndex

			var index int
			if len(args) == 1 {
				index, err = strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("%w: %q", ltp.ErrInvalidIndex, args[0])
				}
			} else {
				index, err = c.promptIndex(maxIndex)
				if err != nil {
					return err
				}
			}

			start := time.Now()
			value, err := engine.Find(index)
			elapsed := time.Since(start)
			if err != nil {
				return err
			}
			c.log.WithFields(logrus.Fields{
				"index":   index,
				"value":   value,
				"elapsed": elapsed,
			}).Debug("find completed")

			res := FindResult{Index: index, Value: value}
			timing := c.v.GetBool(keyTiming)
			if timing {
				res.Elapsed = elapsed.String()
			}
			return c.write(res, func(w io.Writer) error {
				if timing {
					fmt.Fprintf(w, "Time spent %.2f ms\n", float64(elapsed.Microseconds())/1000)
				}
				_, err := fmt.Fprintf(w, "Left-truncatable prime at position %d is: %d\n", index, value)
				return err
			})
		},
	}
	cmd.Flags().Bool(keyTiming, false, "Report the time spent searching")
	_ = c.v.BindPFlag(keyTiming, cmd.Flags().Lookup(keyTiming))
	return cmd
}

// promptIndex asks on errOut until a value in [1, maxIndex] is entered.
func (c *cli) promptIndex(maxIndex int) (int, error) {
	scanner := bufio.NewScanner(c.in)
	for {
		fmt.Fprintf(c.errOut, "Please input a number between 1 and %d: ", maxIndex)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, err
			}
			return 0, errors.New("no index entered")
		}
		index, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err == nil && index >= 1 && index <= maxIndex {
			fmt.Fprintln(c.errOut)
			return index, nil
		}
		c.log.WithField("input", scanner.Text()).Debug("rejected index")
	}
}

// ============================================================================
// list
// ============================================================================

func (c *cli) listCmd() *cobra.Command {
	var (
		count  int
		digest bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the first left-truncatable primes in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := c.engine()
			if err != nil {
				return err
			}
			values, err := engine.List(count)
			if err != nil {
				return err
			}

			res := ListResult{Count: len(values), Values: values}
			if digest {
				res.Digest = hex.EncodeToString(utils.SequenceDigest(values))
			}
			return c.write(res, func(w io.Writer) error {
				for i, v := range values {
					fmt.Fprintf(w, "%d\t%d\n", i+1, v)
				}
				if res.Digest != "" {
					fmt.Fprintf(w, "digest\t%s\n", res.Digest)
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 10, "Number of values to print")
	cmd.Flags().BoolVar(&digest, "digest", false, "Append the SHA3-256 digest of the sequence")
	return cmd
}

// ============================================================================
// isprime
// ============================================================================

func (c *cli) isPrimeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "isprime <n>",
		Short: "Run the deterministic primality test",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid number %q: %w", args[0], err)
			}
			prime, err := primality.IsPrime(n)
			if err != nil {
				return err
			}
			res := PrimeResult{N: n, Prime: prime}
			return c.write(res, func(w io.Writer) error {
				verdict := "is prime"
				if !prime {
					verdict = "is not prime"
				}
				_, err := fmt.Fprintf(w, "%d %s\n", n, verdict)
				return err
			})
		},
	}
}

// ============================================================================
// benchmark
// ============================================================================

func (c *cli) benchmarkCmd() *cobra.Command {
	var (
		iterations int
		index      int
	)
	cmd := &cobra.Command{
		Use:   "benchmark",
		Short: "Time repeated searches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := utils.CheckPositive(iterations, "iterations"); err != nil {
				return err
			}
			engine, err := c.engine()
			if err != nil {
				return err
			}
			if index == 0 {
				index = engine.Params().MaxIndex
			}
			if err := core.CheckIndex(engine.Params(), index); err != nil {
				return err
			}

			fmt.Fprintf(c.out, "%s Benchmark\n", appName)
			fmt.Fprintf(c.out, "Index: %d, Iterations: %d, Workers: %d\n\n", index, iterations, c.v.GetInt(keyWorkers))

			var total time.Duration
			var value uint32
			for i := 0; i < iterations; i++ {
				start := time.Now()
				value, err = engine.Find(index)
				total += time.Since(start)
				if err != nil {
					return err
				}
			}
			fmt.Fprintf(c.out, "  Find:  %v (avg)\n", total/time.Duration(iterations))
			fmt.Fprintf(c.out, "  Value: %d\n", value)
			return nil
		},
	}
	cmd.Flags().IntVarP(&iterations, "iterations", "i", 10, "Number of searches")
	cmd.Flags().IntVar(&index, "index", 0, "Index to search for (0 = preset maximum)")
	return cmd
}

// ============================================================================
// version
// ============================================================================

func (c *cli) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(c.out, "%s version %s\n", appName, version)
			fmt.Fprintf(c.out, "ltp library version %s\n", ltp.Version)
		},
	}
}
