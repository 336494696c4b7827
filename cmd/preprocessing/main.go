package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lintang-b-s/triroute/pkg/csvparser"
	"github.com/lintang-b-s/triroute/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	var (
		nodesFile string
		edgesFile string
		outFile   string
		logLevel  string
	)

	rootCmd := &cobra.Command{
		Use:          "triroute-preprocessing",
		Short:        "Fill the length column of an edge table from node positions",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger.New(logLevel, true)
			if err != nil {
				return err
			}
			defer log.Sync()

			return fillLengths(log, nodesFile, edgesFile, outFile)
		},
	}
	rootCmd.Flags().StringVar(&nodesFile, "nodes", "nodes.csv", "node table: id, x, y")
	rootCmd.Flags().StringVar(&edgesFile, "edges", "edges.csv", "edge table to read")
	rootCmd.Flags().StringVar(&outFile, "out", "", "edge table to write, defaults to overwriting --edges")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func fillLengths(log *zap.Logger, nodesFile, edgesFile, outFile string) error {
	if outFile == "" {
		outFile = edgesFile
	}

	nf, err := os.Open(nodesFile)
	if err != nil {
		return fmt.Errorf("open nodes file: %w", err)
	}
	defer nf.Close()

	ef, err := os.Open(edgesFile)
	if err != nil {
		return fmt.Errorf("open edges file: %w", err)
	}
	defer ef.Close()

	// write next to the target first, the input may be the output
	tmp, err := os.CreateTemp(filepath.Dir(outFile), ".edges-*.csv")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	n, err := csvparser.NewCSVParser(log).FillEdgeLengths(nf, ef, tmp)
	if err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), outFile); err != nil {
		return fmt.Errorf("replace %s: %w", outFile, err)
	}

	log.Info("edge table written", zap.String("file", outFile), zap.Int("edges", n))
	return nil
}
