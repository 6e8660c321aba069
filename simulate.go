package main

import (
	"github.com/spaghettifunk/flycam/testbed/replay"
	"github.com/spf13/cobra"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [script]",
	Short: "Replay a YAML input script without a window",
	Long:  "Replay scripted input against a fresh camera and print the camera pose after every frame.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	script, err := replay.LoadScript(args[0])
	if err != nil {
		return err
	}
	_, err = replay.Replay(script, cmd.OutOrStdout())
	return err
}
