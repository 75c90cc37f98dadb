package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dgallion1/edgarparse/internal/parser"
)

func detectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect FILE...",
		Short: "Print the document kind of each file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				data, err := readInput(cmd, path)
				if err != nil {
					return err
				}
				kind, err := parser.Detect(data)
				if err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", path, kind)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files not recognized", failed, len(args))
			}
			return nil
		},
	}
}
