/*
flycam flies a camera around an empty scene. Use `flycam run` for the
interactive window and `flycam simulate` to replay scripted input headless.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "flycam",
	Short: "A free flight and orbit camera controller",
	Long: `flycam moves a camera with QWEASD, rotates it while the right mouse
button is held and orbits a focus point after pressing F.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
