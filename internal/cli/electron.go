package cli

import (
	"context"

	"github.com/projtools/projtools/internal/config"
	"github.com/projtools/projtools/internal/electron"
	"github.com/projtools/projtools/internal/render"
	"github.com/spf13/cobra"
)

var (
	electronOutputDir   string
	electronDebugMode   bool
	electronAuthorName  string
	electronAuthorEmail string
)

func init() {
	f := electronCreateCmd.Flags()
	f.StringVar(&electronOutputDir, "output-dir", "", "Parent directory for the project (default: current directory)")
	f.BoolVar(&electronDebugMode, "debug-mode", false, "Keep the packaged Python console visible")
	f.StringVar(&electronAuthorName, "author-name", "", "Author name for package.json (default from config)")
	f.StringVar(&electronAuthorEmail, "author-email", "", "Author email for package.json (default from config)")

	electronCmd.AddCommand(electronCreateCmd)
	rootCmd.AddCommand(electronCmd)
}

var electronCmd = &cobra.Command{
	Use:   "electron-python",
	Short: "Electron desktop apps with a Python backend",
}

var electronCreateCmd = &cobra.Command{
	Use:   "create <project_name>",
	Short: "Create an Electron+Python desktop app",
	Long: `Create an Electron desktop application that starts a bundled Python
process and talks to it over HTTP. The target directory must not exist.

Example:
  projtools electron-python create desk-app --author-name "Ada" --debug-mode`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := electron.Options{
			Name:        args[0],
			OutputDir:   electronOutputDir,
			DebugMode:   electronDebugMode,
			AuthorName:  electronAuthorName,
			AuthorEmail: electronAuthorEmail,
		}
		if opts.AuthorName == "" {
			opts.AuthorName = config.Get(config.KeyAuthorName)
		}
		if opts.AuthorEmail == "" {
			opts.AuthorEmail = config.Get(config.KeyAuthorEmail)
		}

		app := electron.New(render.New(), out)
		res, err := app.CreateProject(context.Background(), opts)
		if err != nil {
			out.Failure("Failed to create project: " + opts.Name)
			return err
		}
		app.PrintNextSteps(opts, res)
		return nil
	},
}
