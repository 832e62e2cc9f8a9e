package main

import (
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gridcode/olc"
)

func newShortenCmd(log zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "shorten <code> <ref-lat> <ref-lng>",
		Short: "Shorten a full code relative to a nearby reference point",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			refLat, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return err
			}
			refLng, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return err
			}
			short, err := olc.Shorten(args[0], refLat, refLng)
			if err != nil {
				log.Error().Err(err).Str("code", args[0]).Msg("shorten failed")
				return err
			}
			cmd.Println(short)
			return nil
		},
	}
}

func newRecoverCmd(log zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "recover <short-code> <ref-lat> <ref-lng>",
		Short: "Recover a full code from a short code and a reference point",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			refLat, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return err
			}
			refLng, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return err
			}
			full, err := olc.RecoverNearest(args[0], refLat, refLng)
			if err != nil {
				log.Error().Err(err).Str("code", args[0]).Msg("recover failed")
				return err
			}
			cmd.Println(full)
			return nil
		},
	}
}
