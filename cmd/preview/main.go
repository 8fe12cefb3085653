package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"scaffold-backend/internal/models"
	"scaffold-backend/internal/preview"
	"scaffold-backend/internal/templates"
)

func main() {
	v := viper.New()
	v.SetEnvPrefix("PREVIEW")
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:   "preview",
		Short: "Run a generated project locally and report where it is served",
	}
	rootCmd.PersistentFlags().String("dir", "", "Project directory (default: a new temp dir)")
	rootCmd.PersistentFlags().String("npm", "npm", "npm executable")
	rootCmd.PersistentFlags().String("script", "dev", "package.json script that starts the dev server")
	rootCmd.PersistentFlags().Bool("verbose", false, "Print install and dev server output")
	_ = v.BindPFlags(rootCmd.PersistentFlags())

	runCmd := &cobra.Command{
		Use:   "run [artifact-file]",
		Short: "Materialize an artifact (file or stdin) and start it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			data, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("read artifact: %w", err)
			}
			files := preview.ParseArtifact(string(data))
			if len(files) == 0 {
				return fmt.Errorf("no file actions found in artifact")
			}
			return runPreview(cmd.Context(), v, files)
		},
	}

	templateCmd := &cobra.Command{
		Use:       "template node|react",
		Short:     "Start one of the built-in project templates",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(models.ProjectNode), string(models.ProjectReact)},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := models.ParseProjectKind(args[0])
			if !ok {
				return fmt.Errorf("unknown template %q", args[0])
			}
			return runPreview(cmd.Context(), v, preview.ParseArtifact(templates.ForKind(kind)))
		},
	}

	rootCmd.AddCommand(runCmd, templateCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		color.Red("✗ %v", err)
		os.Exit(1)
	}
}

func runPreview(ctx context.Context, v *viper.Viper, files []preview.File) error {
	dir := v.GetString("dir")
	if dir == "" {
		tmp, err := os.MkdirTemp("", "preview-*")
		if err != nil {
			return err
		}
		dir = tmp
	}

	if err := preview.WriteFiles(dir, files); err != nil {
		return err
	}
	color.Green("✓ Wrote %d files to %s", len(files), dir)

	var out io.Writer
	if v.GetBool("verbose") {
		out = os.Stderr
	}

	npm := v.GetString("npm")
	runner := &preview.Runner{
		Dir:     dir,
		Install: []string{npm, "install"},
		Dev:     []string{npm, "run", v.GetString("script")},
		Output:  out,
	}

	fmt.Println("Installing dependencies and starting the dev server...")
	srv, err := runner.Start(ctx)
	if err != nil {
		return err
	}
	defer srv.Stop()

	bold := color.New(color.FgCyan, color.Bold).SprintFunc()
	color.Green("✓ Preview ready at %s (port %d)", bold(srv.URL), srv.Port)

	select {
	case <-ctx.Done():
		fmt.Println("Shutting down...")
		return nil
	case <-srv.Done():
		if err := srv.Wait(); err != nil {
			return fmt.Errorf("dev server exited: %w", err)
		}
		return nil
	}
}
