package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	root := &cobra.Command{
		Use:          "autoreel",
		Short:        "Generate a narrated topic video and publish it",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd)
		},
	}

	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true

	root.Flags().String("topic", "", "Topic for content generation")
	root.Flags().String("style", "educational", "Content style (educational, entertaining, narrative, technical)")
	root.Flags().String("length", "medium", "Content length (short, medium, long)")
	root.Flags().String("from-prompt-file", "", "Path to a prompts file with topic/style/length records")
	root.Flags().Int("prompt-index", 0, "1-based prompt index, cycled modulo the prompt count (defaults to day of year)")
	root.Flags().Bool("skip-upload", false, "Skip the YouTube upload step")
	root.Flags().Bool("subtitles", false, "Burn approximate subtitles into the final video")
	root.Flags().String("out", "output", "Output directory root")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
