// Package main is the entry point for the study planner TUI.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hbadr/studyplan-tui/internal/assistant"
	"github.com/hbadr/studyplan-tui/internal/config"
	"github.com/hbadr/studyplan-tui/internal/creds"
	"github.com/hbadr/studyplan-tui/internal/holiday"
	"github.com/hbadr/studyplan-tui/internal/tui"
)

const version = "0.1.0"

const helpText = `studyplan - Terminal-based personal study planner

USAGE:
    studyplan [OPTIONS]

OPTIONS:
    -h, --help      Show this help message
    -v, --version   Show version information
    --init          Create a template config file

CONFIGURATION:
    Config file: ~/.config/studyplan/config.yaml

    To get started:
    1. Run 'studyplan --init' to create a config template
    2. (Optional) Add a Calendarific API key for the holiday overlay
    3. (Optional) Add an OpenAI API key for the AI assistant
    4. Run 'studyplan'

    Both features degrade gracefully when no key is configured.

KEYBINDINGS:
    Sign up / Login:
        tab         Switch field
        ctrl+s      Switch between sign up and login
        ctrl+g      Continue as guest (nothing is saved)

    Calendar:
        p / n       Previous / next month, week, or day
        d / w / m   Day, week, or month view
        h j k l     Move the selection
        enter       Open the selected day or hour
        t           Jump to today
        c           AI assistant
        q           Quit

    Task dialog:
        enter       Add the typed task
        ctrl+x      Remove the selected task
        esc         Save and close
`

const configTemplate = `# Study Planner Configuration
# Location: ~/.config/studyplan/config.yaml

holidays:
  # Calendarific API key for the national-holiday overlay.
  # Get one from: https://calendarific.com/
  # api_key: ""
  country_code: "AU"

assistant:
  # OpenAI API key for the study planning assistant.
  # api_key: ""
  model: "gpt-3.5-turbo"

ui:
  # Initial calendar view: "day", "week" or "month"
  default_view: "month"

  # Desktop notification with today's task count at session start
  notifications: true
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("studyplan version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	return runApp()
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

// runApp starts the main TUI application.
func runApp() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dataDir, err := config.DataDir()
	if err != nil {
		return fmt.Errorf("failed to prepare data directory: %w", err)
	}

	// The TUI owns the terminal, so background diagnostics go to a file.
	logFile, err := os.OpenFile(filepath.Join(dataDir, "studyplan.log"), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err == nil {
		log.SetOutput(logFile)
		defer logFile.Close()
	}

	usersPath, err := config.UsersFilePath()
	if err != nil {
		return err
	}
	credStore, err := creds.Load(usersPath)
	if err != nil {
		return fmt.Errorf("failed to load credentials: %w", err)
	}

	userDataDir, err := config.UserDataDir()
	if err != nil {
		return err
	}

	holidayClient := holiday.NewClient(config.HolidayAPIKey(cfg))
	assistantClient := assistant.NewClient(config.AssistantAPIKey(cfg))
	assistantClient.SetModel(cfg.Assistant.Model)

	app := tui.NewApp(cfg, credStore, holidayClient, assistantClient, userDataDir)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
