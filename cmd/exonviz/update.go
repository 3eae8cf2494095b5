package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/exonviz/exonviz/internal/mane"
)

func newUpdateManeCmd() *cobra.Command {
	var (
		url    string
		output string
	)

	cmd := &cobra.Command{
		Use:   "update-mane",
		Short: "Download the MANE summary table",
		Long: `Download the NCBI MANE summary table, used to resolve gene symbols to
their MANE Select transcript. The table is stored under ~/.exonviz/ and
picked up automatically on the next run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dest := output
			if dest == "" {
				var err error
				dest, err = mane.DefaultPath()
				if err != nil {
					return err
				}
			}

			fmt.Fprintf(os.Stderr, "Downloading MANE summary to %s\n", dest)
			if err := mane.Download(url, dest); err != nil {
				return err
			}

			table, err := mane.Load(dest)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Loaded %d MANE Select transcripts\n", len(table))
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", mane.DefaultURL, "MANE summary file URL")
	cmd.Flags().StringVarP(&output, "output", "o", "", "destination path (default: ~/.exonviz/MANE.summary.txt.gz)")

	return cmd
}
