package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gridcode/olc"
)

func newDecodeCmd(cfg *cliConfig, log zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <code>",
		Short: "Decode a plus+code into its bounding rectangle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			area, err := olc.Decode(args[0])
			if err != nil {
				log.Error().Err(err).Str("code", args[0]).Msg("decode failed")
				return err
			}
			primary := fmt.Sprintf("lat [%g, %g], lng [%g, %g]", area.LatLo, area.LatHi, area.LngLo, area.LngHi)
			printResult(cfg, map[string]any{
				"lat_lo": area.LatLo, "lat_hi": area.LatHi,
				"lng_lo": area.LngLo, "lng_hi": area.LngHi,
			}, primary)
			return nil
		},
	}
	return cmd
}
