package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vkolodii/bejdump/internal/bejdecode"
	"github.com/vkolodii/bejdump/internal/dictionary"
	"github.com/vkolodii/bejdump/internal/logging"
)

func newDecodeCmd() *cobra.Command {
	var schemaPath, annoPath, bejPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a BEJ document to JSON using a schema and annotation dictionary",
		RunE: func(cmd *cobra.Command, args []string) error {
			configureLogger(verbose)
			return runDecode(schemaPath, annoPath, bejPath, verbose)
		},
	}

	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "path to the schema dictionary file (required)")
	cmd.Flags().StringVarP(&annoPath, "annotation", "a", "", "path to the annotation dictionary file (required)")
	cmd.Flags().StringVarP(&bejPath, "bej", "b", "", "path to the BEJ-encoded file to decode (required)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	cmd.MarkFlagRequired("schema")
	cmd.MarkFlagRequired("annotation")
	cmd.MarkFlagRequired("bej")

	return cmd
}

func runDecode(schemaPath, annoPath, bejPath string, verbose bool) error {
	if verbose {
		logging.Log.Debug().
			Str("schema", schemaPath).
			Str("annotation", annoPath).
			Str("bej", bejPath).
			Msg("=== BEJ Decoder Starting ===")
	}

	schemaDict, err := dictionary.LoadFile(schemaPath)
	if err != nil {
		logging.Error(err, fmt.Sprintf("loading schema dictionary %q", schemaPath))
		return err
	}

	annoDict, err := dictionary.LoadFile(annoPath)
	if err != nil {
		logging.Error(err, fmt.Sprintf("loading annotation dictionary %q", annoPath))
		return err
	}

	in, err := os.Open(bejPath)
	if err != nil {
		logging.Error(err, fmt.Sprintf("opening BEJ file %q", bejPath))
		return err
	}
	defer in.Close()

	outPath := deriveOutputPath(bejPath)
	if verbose {
		logging.Log.Debug().Str("output", outPath).Msg("Output File")
	}

	out, err := os.Create(outPath)
	if err != nil {
		logging.Error(err, fmt.Sprintf("creating output file %q", outPath))
		return err
	}
	defer out.Close()

	if err := bejdecode.DecodeDocument(in, out, schemaDict, annoDict); err != nil {
		logging.Error(err, "decoding failed")
		return err
	}

	if verbose {
		logging.Log.Debug().Msg("=== Decoding Complete ===")
	}
	return nil
}
