// cmd/rosterbook/main.go
//
// This is the entry point for the rosterbook CLI.
// When you run `rosterbook` in a project directory, this is what executes.
//
// Flow:
// 1. Resolve the project directory (the working directory unless --dir says otherwise)
// 2. Initialize the .rosterbook folder, load config, open the log and journal
// 3. Launch the shell and keep it running until the user quits

package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/marcwhitley/rosterbook/internal/config"
	"github.com/marcwhitley/rosterbook/internal/logbook"
	"github.com/marcwhitley/rosterbook/internal/logging"
	"github.com/marcwhitley/rosterbook/internal/roster"
	"github.com/marcwhitley/rosterbook/internal/shell"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "rosterbook",
	Short: "Rosterbook - an interactive personnel roster for one sitting",
	Long: `Rosterbook keeps an in-memory roster of departments and employees and
drives it through an interactive text shell. Nothing is persisted: the
books live exactly as long as the session.

The shell understands plain commands:

  new department       open the department form
  new employee         open the employee form
  list departments     show every department with its headcount
  list employees       show every employee
  show EMPLOYEE        show one employee with assignment history
  transfer E D [DATE]  move employee E into department D
  quit                 end the session`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

var (
	projectDir string
	logLevel   string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&projectDir, "dir", "d", "", "Project directory (defaults to the working directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Session log level: debug|info|warn|error")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the rosterbook version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("rosterbook " + version)
		},
	})
}

func run() error {
	dir := projectDir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
		dir = cwd
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve project directory: %w", err)
	}

	if err := config.InitRosterDir(dir); err != nil {
		return fmt.Errorf("initialize %s directory: %w", config.RosterDir, err)
	}
	cfg, err := config.NewConfig(dir)
	if err != nil {
		return err
	}
	if logLevel != "" {
		if err := cfg.SetLogLevel(logLevel); err != nil {
			return err
		}
	}

	logFile, err := logging.Setup(cfg.LogsDir(), cfg.LogLevel())
	if err != nil {
		return fmt.Errorf("open session log: %w", err)
	}
	defer logFile.Close()

	journal, err := logbook.New(cfg.JournalPath())
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer journal.Close()

	model := shell.New(roster.NewStore(), journal, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run shell: %w", err)
	}
	if m, ok := final.(*shell.Model); ok {
		if err := m.Err(); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
