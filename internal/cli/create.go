package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/projtools/projtools/internal/component"
	"github.com/projtools/projtools/internal/config"
	"github.com/projtools/projtools/internal/manifest"
	"github.com/projtools/projtools/internal/render"
	"github.com/spf13/cobra"
)

var (
	createBackend      bool
	createFrontend     bool
	createFrontendType string
	createEnableProxy  bool
	createOutputDir    string
	createVersion      string
	createPreset       string
	createStrict       bool
)

func init() {
	f := createCmd.Flags()
	f.BoolVar(&createBackend, "backend", false, "Create a Python backend package")
	f.BoolVar(&createFrontend, "frontend", false, "Create a frontend application")
	f.StringVar(&createFrontendType, "frontend_type", "", "Frontend framework: reactjs or vue (default from config)")
	f.BoolVar(&createEnableProxy, "enable_proxy", false, "Add a FastAPI proxy server")
	f.StringVar(&createOutputDir, "output-dir", "", "Parent directory for the project (default: current directory)")
	f.StringVar(&createVersion, "version", "", "Initial package version (default from config)")
	f.StringVar(&createPreset, "preset", "", "Load options from a YAML, JSON or JSONC preset file")
	f.BoolVar(&createStrict, "strict", false, "Refuse to write into an existing, non-empty directory")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create <project_name>",
	Short: "Create a backend and/or frontend project",
	Long: `Create a project with a Python backend package, a React or Vue frontend,
and optionally a FastAPI proxy that serves both.

Examples:
  projtools create my-app --backend
  projtools create my-app --backend --frontend --frontend_type vue --enable_proxy
  projtools create my-app --preset team.yaml --version 1.2.0`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, outputDir, strict, err := resolveCreateOptions(cmd)
		if err != nil {
			return err
		}

		spec, err := component.NewSpec(args[0], outputDir, opts)
		if errors.Is(err, component.ErrNoFeature) {
			// Reported, not failed: nothing was requested, so nothing is written.
			out.Failure("Error: " + err.Error())
			return nil
		}
		if err != nil {
			return err
		}

		deps := component.Deps{
			Renderer: render.New(),
			Runner:   newRunner(),
			Console:  out,
		}
		factory := component.NewFactory(out)
		factory.RequireEmpty = strict

		if err := factory.CreateProject(context.Background(), spec, component.Plan(spec, deps)); err != nil {
			out.Failure("Failed to create project: " + spec.Name)
			return err
		}
		return nil
	},
}

// resolveCreateOptions merges, lowest precedence first: config defaults,
// the preset file, then flags given explicitly on the command line.
func resolveCreateOptions(cmd *cobra.Command) (component.Options, string, bool, error) {
	opts := component.Options{
		FrontendType: component.FrontendType(config.Get(config.KeyFrontendType)),
		Version:      config.Get(config.KeyDefaultVersion),
	}
	outputDir := ""
	strict := false

	if createPreset != "" {
		p, err := manifest.LoadPreset(createPreset)
		if err != nil {
			return opts, "", false, fmt.Errorf("loading preset %s: %w", createPreset, err)
		}
		out.Logger().Debug("loaded preset", "path", createPreset)
		opts.Backend = p.Backend
		opts.Frontend = p.Frontend
		opts.EnableProxy = p.EnableProxy
		if p.FrontendType != "" {
			opts.FrontendType = component.FrontendType(p.FrontendType)
		}
		if p.Version != "" {
			opts.Version = p.Version
		}
		outputDir = p.OutputDir
		strict = p.Strict
	}

	flags := cmd.Flags()
	if flags.Changed("backend") {
		opts.Backend = createBackend
	}
	if flags.Changed("frontend") {
		opts.Frontend = createFrontend
	}
	if flags.Changed("enable_proxy") {
		opts.EnableProxy = createEnableProxy
	}
	if flags.Changed("frontend_type") {
		opts.FrontendType = component.FrontendType(createFrontendType)
	}
	if flags.Changed("version") {
		opts.Version = createVersion
	}
	if flags.Changed("output-dir") {
		outputDir = createOutputDir
	}
	if flags.Changed("strict") {
		strict = createStrict
	}
	return opts, outputDir, strict, nil
}
