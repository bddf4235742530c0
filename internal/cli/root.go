package cli

import (
	"github.com/ralt/nupkgcmp/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var config models.CompareConfig

	rootCmd := &cobra.Command{
		Use:   "nupkgcmp <previous-dummy-packages-path> <next-dummy-packages-path> <release-packages-path>",
		Short: "Check whether freshly built NuGet packages need a release",
		Long: `Nupkgcmp compares the packages of two reference builds to find the
packages whose content actually changed, then checks that the release
artifact holds the same set of packages as the reference build.

Packages are compared member by member: nuget pack is not deterministic,
so pack metadata (_rels/.rels and the core-properties .psmdcp file) is
ignored and the remaining files are compared by size, CRC-32 and SHA-256.`,
		Args:          cobra.ExactArgs(3),
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.InfoLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			config.PreviousDir = args[0]
			config.NextDir = args[1]
			config.ReleaseDir = args[2]

			format, err := validateConfig(&config)
			if err != nil {
				return err
			}
			// Arguments are fine, remaining failures are not usage errors
			cmd.SilenceUsage = true

			logrus.Debugf("Configuration: %+v", config)

			return runComparison(cmd.Context(), cmd.OutOrStdout(), &config, format)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	rootCmd.Flags().BoolVar(&config.CheckSymbolPackages, "check-symbols", false, "Also compare .snupkg symbol packages")
	rootCmd.Flags().BoolVar(&config.StrictNames, "strict-names", false, "Fail on package file names that do not follow {id}.{semver}.nupkg")
	rootCmd.Flags().StringVar(&config.Annotations, "annotations", models.AnnotationsAuto, "Annotation format (auto, github, plain)")

	return rootCmd
}
