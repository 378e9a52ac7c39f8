package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/marcus/swipemodal/internal/config"
	"github.com/spf13/cobra"
)

var (
	version    string
	baseDir    string
	configPath string
	debug      bool
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "swipemodal",
	Short: "Directional swipeable modal for the terminal",
	Long: `swipemodal - a modal that slides in from any edge of the terminal.

Open it from the left, right, top or bottom with the buttons or the arrow keys.
Dismiss it by dragging back toward its edge, clicking the dimmed backdrop, or
pressing esc.`,
	Args:          rejectUnknownCommand,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runShowcase,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initBaseDir)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default .swipemodal/config.json)")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "log at debug level")
	config.RegisterFlags(rootCmd.Flags())
}

func initBaseDir() {
	var err error
	baseDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine working directory: %v\n", err)
		os.Exit(1)
	}
}

// getBaseDir returns the directory config and body paths are relative to
func getBaseDir() string {
	return baseDir
}

func rejectUnknownCommand(cmd *cobra.Command, args []string) error {
	if name := firstNonFlagArg(args); name != "" {
		return fmt.Errorf("unknown command %q for %q", name, cmd.CommandPath())
	}
	return nil
}

// firstNonFlagArg returns the first argument that is not a flag.
func firstNonFlagArg(args []string) string {
	for _, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			return arg
		}
	}
	return ""
}
