package main

import (
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gridcode/olc"
)

func newEncodeCmd(cfg *cliConfig, log zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <lat> <lng>",
		Short: "Encode a coordinate into a plus+code",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lat, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return err
			}
			lng, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return err
			}

			code, err := olc.Encode(lat, lng, cfg.Precision)
			if err != nil {
				log.Error().Err(err).Float64("lat", lat).Float64("lng", lng).Msg("encode failed")
				return err
			}
			printResult(cfg, map[string]any{"code": code}, code)
			return nil
		},
	}
	return cmd
}
