package main

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the "olc" command tree: encode, decode, shorten,
// recover, and validate, each a thin wrapper over the olc package's
// exported functions.
func NewRootCmd(log zerolog.Logger) *cobra.Command {
	cobra.EnableCommandSorting = false

	v, cfg, err := loadConfig()
	if err != nil {
		cfg = &cliConfig{Precision: 10, Format: "plain"}
	}

	root := &cobra.Command{
		Use:           "olc",
		Short:         "olc encodes, decodes and shortens Open Location Codes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().IntVar(&cfg.Precision, "precision", cfg.Precision, "code length used by encode when not given explicitly")
	root.PersistentFlags().StringVar(&cfg.Format, "format", cfg.Format, "output format: plain or json")

	if v != nil {
		_ = v.BindPFlag("precision", root.PersistentFlags().Lookup("precision"))
		_ = v.BindPFlag("format", root.PersistentFlags().Lookup("format"))
	}

	root.AddCommand(
		newEncodeCmd(cfg, log),
		newDecodeCmd(cfg, log),
		newShortenCmd(log),
		newRecoverCmd(log),
		newValidateCmd(log),
	)
	return root
}

func printResult(cfg *cliConfig, fields map[string]any, primary string) {
	if cfg.Format == "json" {
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fmt.Print("{")
		for i, k := range keys {
			if i > 0 {
				fmt.Print(",")
			}
			fmt.Printf("%q:%q", k, fmt.Sprint(fields[k]))
		}
		fmt.Println("}")
		return
	}
	fmt.Println(primary)
}
