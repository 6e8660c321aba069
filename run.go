package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/flycam/engine"
	"github.com/spaghettifunk/flycam/testbed"
	"github.com/spf13/cobra"
)

var configPath string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open a window and fly the camera",
	Long:  "Open a window with the default camera rig. The configuration file is reloaded when it changes.",
	Args:  cobra.NoArgs,
	RunE:  runEngine,
}

func init() {
	runCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to flycam.toml (defaults are used when empty)")
	rootCmd.AddCommand(runCmd)
}

func runEngine(cmd *cobra.Command, args []string) error {
	tb := testbed.NewTestGame()

	e, err := engine.New(tb.Game, configPath)
	if err != nil {
		return err
	}

	if err := e.Initialize(); err != nil {
		return err
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer signal.Stop(sigCh)

	// the loop owns every subsystem, so the signal only asks it to stop
	go func() {
		if _, ok := <-sigCh; ok {
			e.Stop()
		}
	}()

	runErr := e.Run()
	if err := e.Shutdown(); err != nil {
		return err
	}
	return runErr
}
