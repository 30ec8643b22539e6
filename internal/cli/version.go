package cli

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/sift/internal/buildinfo"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		version := buildinfo.Version
		if version == "" {
			if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
				version = info.Main.Version
			} else {
				version = "dev"
			}
		}
		fmt.Println("sift", version)
		if buildinfo.Commit != "" {
			fmt.Println("commit:", buildinfo.Commit)
		}
		if buildinfo.Date != "" {
			fmt.Println("built:", buildinfo.Date)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
