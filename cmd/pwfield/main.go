package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/jask/pwfield/internal/config"
	"github.com/jask/pwfield/internal/logging"
	"github.com/jask/pwfield/internal/tui"
)

func main() {
	fs := pflag.NewFlagSet("pwfield", pflag.ExitOnError)
	config.BindFlags(fs)
	quiet := fs.BoolP("quiet", "q", false, "do not print the password on submit")
	_ = fs.Parse(os.Args[1:])

	_ = godotenv.Load()

	cfg, err := config.Load(fs)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}

	os.Exit(run(cfg, logger, *quiet))
}

// run shows the prompt and returns the process exit code. The password goes
// to stdout so the prompt can sit in a pipeline; the UI draws on stderr.
func run(cfg config.Config, logger *zap.Logger, quiet bool) int {
	defer func() { _ = logger.Sync() }()

	app := tui.NewApp(cfg, logger)
	p := tea.NewProgram(app, tea.WithOutput(os.Stderr), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Error("program failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	pw, level, ok := app.Result()
	if !ok {
		return 1
	}
	fmt.Fprintf(os.Stderr, "strength: %s\n", level.Label())
	if !quiet {
		fmt.Println(pw)
	}
	return 0
}
