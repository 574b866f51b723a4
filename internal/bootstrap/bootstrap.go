package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	explaininadapter "synmap/internal/modules/explain/adapter/in"
	explainoutadapter "synmap/internal/modules/explain/adapter/out"
	explainservice "synmap/internal/modules/explain/service"
	explainusecase "synmap/internal/modules/explain/usecase"
	exportinadapter "synmap/internal/modules/export/adapter/in"
	exportoutadapter "synmap/internal/modules/export/adapter/out"
	exportservice "synmap/internal/modules/export/service"
	exportusecase "synmap/internal/modules/export/usecase"
	mindmapinadapter "synmap/internal/modules/mindmap/adapter/in"
	mindmapoutadapter "synmap/internal/modules/mindmap/adapter/out"
	mindmapin "synmap/internal/modules/mindmap/port/in"
	mindmapservice "synmap/internal/modules/mindmap/service"
	mindmapusecase "synmap/internal/modules/mindmap/usecase"
	outlineinadapter "synmap/internal/modules/outline/adapter/in"
	outlineoutadapter "synmap/internal/modules/outline/adapter/out"
	outlineservice "synmap/internal/modules/outline/service"
	outlineusecase "synmap/internal/modules/outline/usecase"
	"synmap/internal/platform/clock"
	"synmap/internal/platform/config"
	"synmap/internal/platform/id"
	uiapp "synmap/internal/ui/app"
)

type App struct {
	OutlineCLI outlineinadapter.CLIHandler
	ExplainCLI explaininadapter.CLIHandler
	MindmapCLI mindmapinadapter.CLIHandler
	ExportCLI  exportinadapter.CLIHandler

	mindmapUC mindmapin.Usecase
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.RandomHex{}

	provider := outlineoutadapter.NewGeminiProvider(cfg.APIKey, cfg.Model, cfg.BaseURL)

	outlineUC := outlineusecase.NewInteractor(outlineservice.NewOutlineService(provider))

	explainUC := explainusecase.NewInteractor(
		explainservice.NewExplainService(clk, provider),
		explainoutadapter.NewWorkspaceNoteStore(cfg.NotesDir),
	)

	exportUC := exportusecase.NewInteractor(exportservice.NewExportService(
		exportoutadapter.NewFileManifestStore(cfg.WorkspacePath, cfg.ExportersPath),
		exportoutadapter.NewGRPCHost(),
		cfg.ExportsDir,
	))

	historyProjector, err := mindmapoutadapter.NewSQLiteHistoryProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new history projector: %w", err)
	}
	mindmapUC := mindmapusecase.NewInteractor(
		mindmapservice.NewMapService(clk, ids, mindmapoutadapter.NewFileStateStore(cfg.StatePath), historyProjector),
		outlineUC,
		explainUC,
		exportUC,
		mindmapoutadapter.NewLocalSyllabusExtractor(),
		mindmapoutadapter.NewEChartsRenderer(),
	)

	return &App{
		OutlineCLI: outlineinadapter.NewCLIHandler(outlineUC),
		ExplainCLI: explaininadapter.NewCLIHandler(explainUC),
		MindmapCLI: mindmapinadapter.NewCLIHandler(mindmapUC),
		ExportCLI:  exportinadapter.NewCLIHandler(exportUC),
		mindmapUC:  mindmapUC,
	}, nil
}

func RunTUI(workspacePath string, app *App) error {
	model := uiapp.NewModel(workspacePath, app.mindmapUC)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
