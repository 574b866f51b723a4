package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"synmap/internal/bootstrap"
	outlinedomain "synmap/internal/modules/outline/domain"
	"synmap/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, outlinedomain.Diagnostic(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var workspacePath string
	var apiKey string

	root := &cobra.Command{
		Use:           "synmap",
		Short:         "Syllabus mind map generator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&workspacePath, "workspace", ".", "workspace path")
	root.PersistentFlags().StringVar(&apiKey, "api-key", "", "model API key (falls back to config and environment)")

	root.AddCommand(newTUICmd(&workspacePath, &apiKey))
	root.AddCommand(newGenerateCmd(&workspacePath, &apiKey))
	root.AddCommand(newDrillCmd(&workspacePath, &apiKey))
	root.AddCommand(newExplainCmd(&workspacePath, &apiKey))
	root.AddCommand(newShowCmd(&workspacePath, &apiKey))
	root.AddCommand(newHistoryCmd(&workspacePath, &apiKey))
	root.AddCommand(newResetCmd(&workspacePath, &apiKey))
	root.AddCommand(newRenderCmd(&workspacePath, &apiKey))
	root.AddCommand(newExportCmd(&workspacePath, &apiKey))
	root.AddCommand(newExporterCmd(&workspacePath, &apiKey))
	root.AddCommand(newNoteCmd(&workspacePath, &apiKey))
	root.AddCommand(newOutlineCmd(&workspacePath, &apiKey))
	return root
}

func newOutlineCmd(workspacePath, apiKey *string) *cobra.Command {
	return &cobra.Command{
		Use:   "outline <text>",
		Short: "Print the generated outline graph as JSON, without touching stored state",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*workspacePath, *apiKey)
			if err != nil {
				return err
			}
			out, err := app.OutlineCLI.Generate(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			payload, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(payload))
			return nil
		},
	}
}

func loadApp(workspacePath, apiKey string) (*bootstrap.App, error) {
	cfg, err := config.New(workspacePath, apiKey)
	if err != nil {
		return nil, err
	}
	if !cfg.HasAPIKey() {
		_, _ = fmt.Fprintln(os.Stderr, "warning: no API key configured; commands that call the model will fail (set --api-key, config api_key, or GEMINI_API_KEY)")
	}
	return bootstrap.New(cfg)
}

func newTUICmd(workspacePath, apiKey *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run synmap terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*workspacePath, *apiKey)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(*workspacePath, app)
		},
	}
}

func newGenerateCmd(workspacePath, apiKey *string) *cobra.Command {
	var filePath, text string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a mind map from a syllabus",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*workspacePath, *apiKey)
			if err != nil {
				return err
			}
			out, err := app.MindmapCLI.Generate(context.Background(), filePath, text)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "generated %q: %d nodes, %d edges, depth %d\n",
				out.RootTopic, out.NodeCount, out.EdgeCount, out.Depth)
			return nil
		},
	}
	cmd.Flags().StringVar(&filePath, "file", "", "syllabus file (pdf or plain text)")
	cmd.Flags().StringVar(&text, "text", "", "syllabus text")
	return cmd
}

func newDrillCmd(workspacePath, apiKey *string) *cobra.Command {
	return &cobra.Command{
		Use:   "drill <topic>",
		Short: "Regenerate the map with a topic as the new root",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*workspacePath, *apiKey)
			if err != nil {
				return err
			}
			out, err := app.MindmapCLI.DrillDown(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "drilled into %q: %d nodes, %d edges\npath: %s\n",
				out.RootTopic, out.NodeCount, out.EdgeCount, strings.Join(out.Path, " > "))
			return nil
		},
	}
}

func newExplainCmd(workspacePath, apiKey *string) *cobra.Command {
	var nodeID string

	cmd := &cobra.Command{
		Use:   "explain [topic]",
		Short: "Explain a topic from the current map",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*workspacePath, *apiKey)
			if err != nil {
				return err
			}
			out, err := app.MindmapCLI.Explain(context.Background(), nodeID, strings.Join(args, " "))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n%s\n", out.Topic, out.Body)
			if out.NotePath != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nnote: %s\n", out.NotePath)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&nodeID, "node", "", "node id to explain")
	return cmd
}

func newShowCmd(workspacePath, apiKey *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current mind map",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*workspacePath, *apiKey)
			if err != nil {
				return err
			}
			state, err := app.MindmapCLI.Show(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (%d nodes, depth %d)\npath: %s\n\n",
				state.RootTopic, len(state.Nodes), state.Depth, strings.Join(state.Path, " > "))
			for _, n := range state.Nodes {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s%s\t%s\n", strings.Repeat("  ", n.Tier), n.Label, n.ID)
			}
			if state.SelectedTopic != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nselected: %s\n%s\n", state.SelectedTopic, state.Explanation)
			}
			return nil
		},
	}
}

func newHistoryCmd(workspacePath, apiKey *string) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past generations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*workspacePath, *apiKey)
			if err != nil {
				return err
			}
			items, err := app.MindmapCLI.History(context.Background(), limit)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no generations yet")
				return nil
			}
			for _, item := range items {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d nodes\t%d edges\tdepth %d\n",
					item.CreatedAt.Local().Format("2006-01-02 15:04"),
					item.Source, item.RootTopic, item.NodeCount, item.EdgeCount, item.Depth)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum rows")
	return cmd
}

func newResetCmd(workspacePath, apiKey *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear the current mind map",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*workspacePath, *apiKey)
			if err != nil {
				return err
			}
			if err := app.MindmapCLI.Reset(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "mind map cleared")
			return nil
		},
	}
}

func newRenderCmd(workspacePath, apiKey *string) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the current map to an HTML file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*workspacePath, *apiKey)
			if err != nil {
				return err
			}
			out, err := app.MindmapCLI.Render(context.Background(), outPath)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "rendered %s\n", out.Path)
			return nil
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "mindmap.html", "output HTML path")
	return cmd
}

func newExportCmd(workspacePath, apiKey *string) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the selected explanation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*workspacePath, *apiKey)
			if err != nil {
				return err
			}
			out, err := app.MindmapCLI.Export(context.Background(), format)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %s\n", out.Path)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "txt", "export format")
	return cmd
}

func newExporterCmd(workspacePath, apiKey *string) *cobra.Command {
	exporter := &cobra.Command{Use: "exporter", Short: "Exporter management"}

	exporter.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List configured exporters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*workspacePath, *apiKey)
			if err != nil {
				return err
			}
			exporters, err := app.ExportCLI.List(context.Background())
			if err != nil {
				return err
			}
			for _, e := range exporters {
				state := "disabled"
				if e.Enabled {
					state = "enabled"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n",
					e.Name, e.Version, state, strings.Join(e.Formats, ","))
			}
			return nil
		},
	})

	exporter.AddCommand(&cobra.Command{
		Use:   "doctor",
		Short: "Check exporter binaries, checksums and lifecycle",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*workspacePath, *apiKey)
			if err != nil {
				return err
			}
			results, err := app.ExportCLI.Doctor(context.Background())
			if err != nil {
				return err
			}
			if len(results) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no exporters configured")
				return nil
			}
			for _, r := range results {
				status := "ok"
				if r.Error != "" {
					status = r.Error
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\tbinary=%t\tchecksum=%t\tlifecycle=%t\t%s\n",
					r.Name, r.BinaryReachable, r.ChecksumValid, r.LifecycleOK, status)
			}
			return nil
		},
	})

	return exporter
}

func newNoteCmd(workspacePath, apiKey *string) *cobra.Command {
	return &cobra.Command{
		Use:   "note <topic>",
		Short: "Write a study note for any topic, without a map",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*workspacePath, *apiKey)
			if err != nil {
				return err
			}
			out, err := app.ExplainCLI.Explain(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n%s\n\nnote: %s\n", out.Topic, out.Body, out.NotePath)
			return nil
		},
	}
}
