package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alexanderramin/dealdesk/internal/cli"
	"github.com/alexanderramin/dealdesk/internal/db"
	"github.com/alexanderramin/dealdesk/internal/filestore"
	"github.com/alexanderramin/dealdesk/internal/logging"
	"github.com/alexanderramin/dealdesk/internal/notify"
	"github.com/alexanderramin/dealdesk/internal/repository"
	"github.com/alexanderramin/dealdesk/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.dealdesk/dealdesk.db
	dbPath := os.Getenv("DEALDESK_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".dealdesk", "dealdesk.db")
	}

	// Attachment payloads live next to the database by default.
	filesDir := os.Getenv("DEALDESK_FILES")
	if filesDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		filesDir = filepath.Join(home, ".dealdesk", "files")
	}

	level := slog.LevelWarn
	if os.Getenv("DEALDESK_DEBUG") != "" {
		level = slog.LevelDebug
	}
	log := logging.NewTextLogger(os.Stderr, level)

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	files, err := filestore.New(filesDir)
	if err != nil {
		return fmt.Errorf("opening file store: %w", err)
	}

	// Wire repositories
	dealRepo := repository.NewSQLiteDealRepo(database)
	userRepo := repository.NewSQLiteUserRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Deals:         service.NewDealService(dealRepo, uow, log),
		Team:          service.NewTeamService(uow, log),
		Investors:     service.NewInvestorService(uow, log),
		Opportunities: service.NewOpportunityService(dealRepo, uow, log),
		Attachments:   service.NewAttachmentService(uow, files, log),
		Directory:     service.NewDirectoryService(userRepo),
		Assignments:   service.NewAssignmentService(taskRepo, userRepo),
		Pipeline:      service.NewPipelineService(dealRepo),
		Import:        service.NewImportService(uow, log),

		Notify: &notify.Writer{Out: os.Stdout, Err: os.Stderr},
	}

	// Detect interactive terminal for forms and the dashboard.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
