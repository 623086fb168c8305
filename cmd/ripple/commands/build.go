package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/ripple/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [inputs...]",
		Short: "Compile the given inputs",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			incremental, _ := cmd.Flags().GetBool("incremental")
			showIncremental, _ := cmd.Flags().GetBool("driver-show-incremental")
			embedBitcode, _ := cmd.Flags().GetBool("embed-bitcode")
			mode, _ := cmd.Flags().GetString("mode")
			root, _ := cmd.Flags().GetString("root")
			outputMapPath, _ := cmd.Flags().GetString("output-file-map")
			output, _ := cmd.Flags().GetString("output")
			watch, _ := cmd.Flags().GetBool("watch")

			opts := app.BuildOptions{
				Incremental:     incremental,
				ShowIncremental: showIncremental,
				EmbedBitcode:    embedBitcode,
				Mode:            mode,
				Root:            root,
				OutputMapPath:   outputMapPath,
				Output:          output,
			}

			if watch {
				return c.app.Watch(cmd.Context(), args, opts)
			}
			return c.app.Build(cmd.Context(), args, opts)
		},
	}
	cmd.Flags().Bool("incremental", false, "Compile only what changed since the last build")
	cmd.Flags().Bool("driver-show-incremental", false, "Report each incremental scheduling decision")
	cmd.Flags().Bool("embed-bitcode", false, "Embed LLVM IR bitcode (disables incremental builds)")
	cmd.Flags().StringP("mode", "m", "standard", "Compiler mode: standard, immediate, repl, batch, whole-module, or precompile-module")
	cmd.Flags().String("root", "", "Project root containing the .ripple directory")
	cmd.Flags().String("output-file-map", "", "Path to the output file map")
	cmd.Flags().StringP("output", "o", "", "Link output path")
	cmd.Flags().BoolP("watch", "w", false, "Rebuild whenever the project root changes")
	return cmd
}
