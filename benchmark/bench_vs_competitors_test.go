package benchmark_test

import (
	"flag"
	"io"
	"testing"

	"github.com/spf13/cobra"
	"github.com/urfave/cli/v2"

	"github.com/dzonerzy/go-argparse/argparse"
)

// Benchmark flat flag parsing: one string flag, one bool flag, one positional
// argument. Each library parses the equivalent argument list for a fair
// comparison; setup that a long-lived program would do once (schema, flag
// sets, command trees) is rebuilt per iteration everywhere except in the
// cached go-argparse variant.

func BenchmarkFlagParsing_GoArgparse(b *testing.B) {
	def := [][]string{
		{"-output=", "-default", "out.txt"},
		{"-verbose"},
		{"src"},
	}
	args := []string{"-output", "a.log", "-verbose", "input.go"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = argparse.NewContext().Parse(def, args, nil)
	}
}

func BenchmarkFlagParsing_GoArgparseCached(b *testing.B) {
	c := argparse.NewContext()
	def := [][]string{
		{"-output=", "-default", "out.txt"},
		{"-verbose"},
		{"src"},
	}
	args := []string{"-output", "a.log", "-verbose", "input.go"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = c.Parse(def, args, nil)
	}
}

func BenchmarkFlagParsing_Stdlib(b *testing.B) {
	args := []string{"-output", "a.log", "-verbose", "input.go"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		fs := flag.NewFlagSet("bench", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		fs.String("output", "out.txt", "Output file")
		fs.Bool("verbose", false, "Verbose output")
		_ = fs.Parse(args)
	}
}

func BenchmarkFlagParsing_Cobra(b *testing.B) {
	args := []string{"--output", "a.log", "--verbose", "input.go"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		cmd := &cobra.Command{
			Use:  "bench",
			Args: cobra.ArbitraryArgs,
			Run:  func(_ *cobra.Command, _ []string) {},
		}
		cmd.Flags().StringP("output", "o", "out.txt", "Output file")
		cmd.Flags().BoolP("verbose", "v", false, "Verbose output")
		cmd.SetArgs(args)
		cmd.SetOut(io.Discard)
		cmd.SetErr(io.Discard)
		_ = cmd.Execute()
	}
}

func BenchmarkFlagParsing_Urfave(b *testing.B) {
	args := []string{"bench", "--output", "a.log", "--verbose", "input.go"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "output", Value: "out.txt", Usage: "Output file"},
				&cli.BoolFlag{Name: "verbose", Usage: "Verbose output"},
			},
			Action: func(_ *cli.Context) error { return nil },
		}
		_ = app.Run(args)
	}
}

// Benchmark abbreviation resolution against cobra's closest equivalent
// (cobra has no flag abbreviation; this measures the full parse cost of the
// feature in go-argparse).

func BenchmarkAbbreviatedFlags_GoArgparse(b *testing.B) {
	c := argparse.NewContext()
	def := [][]string{{"-verbose"}, {"-version"}, {"-output="}}
	args := []string{"-verb", "-out", "a.log"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = c.Parse(def, args, nil)
	}
}
