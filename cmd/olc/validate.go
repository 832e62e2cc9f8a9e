package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gridcode/olc"
)

func newValidateCmd(log zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <code>",
		Short: "Report whether a code is valid, and whether it is full or short",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]
			if !olc.IsValid(code) {
				cmd.Println("invalid")
				return nil
			}
			switch {
			case olc.IsFull(code):
				fmt.Fprintln(cmd.OutOrStdout(), "valid, full")
			case olc.IsShort(code):
				fmt.Fprintln(cmd.OutOrStdout(), "valid, short")
			default:
				fmt.Fprintln(cmd.OutOrStdout(), "valid")
			}
			return nil
		},
	}
}
