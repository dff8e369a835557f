package cmd

import (
	"fmt"
	"runtime"

	"github.com/blang/semver"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// SetVersion sets the version information printed by the version command
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "trendarr %s\n", displayVersion(version))
		fmt.Fprintf(out, "Built: %s\n", buildTime)
		fmt.Fprintf(out, "Go: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		return nil
	},
}

// displayVersion normalizes release versions and marks anything else as a development build
func displayVersion(v string) string {
	parsed, err := semver.ParseTolerant(v)
	if err != nil {
		return v + " (development build)"
	}
	if len(parsed.Pre) > 0 {
		return "v" + parsed.String() + " (pre-release)"
	}
	return "v" + parsed.String()
}
