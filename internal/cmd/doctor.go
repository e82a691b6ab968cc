package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/FidelityFramework/Farscape/internal/frontend"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check frontend health",
	Long: `Run health checks on the configured compiler frontend.

Checks:
  - Frontend binary is launchable
  - Frontend reports a version

Examples:
  farscape doctor                      # Check the configured frontend
  farscape doctor --frontend clang-18  # Check a specific binary`,
	RunE: runDoctor,
}

var doctorFrontend string

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().StringVar(&doctorFrontend, "frontend", "", "Frontend binary to check (default from config)")
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	binary := cfg.Frontend.Binary
	if doctorFrontend != "" {
		binary = doctorFrontend
	}

	fmt.Println("# farscape doctor")
	fmt.Printf("# Checking frontend %q...\n", binary)

	inv := frontend.NewInvoker(binary)
	version, err := inv.Version(cmd.Context())
	if err != nil {
		var notFound *frontend.NotFoundError
		if errors.As(err, &notFound) {
			fmt.Printf("#   ✗ Frontend not launchable: %v\n", notFound.Err)
			return fmt.Errorf("frontend %q not found on PATH", binary)
		}
		fmt.Printf("#   ✗ Frontend failed: %v\n", err)
		return err
	}

	firstLine := version
	if idx := strings.IndexByte(version, '\n'); idx >= 0 {
		firstLine = version[:idx]
	}
	fmt.Printf("#   ✓ %s\n", strings.TrimSpace(firstLine))
	fmt.Println("# All checks passed")
	return nil
}
