package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"countdown/internal/config"
	"countdown/internal/history"
	"countdown/internal/sound"
	"countdown/internal/timer"
	"countdown/internal/tui"
	"countdown/internal/util"
)

var version = "dev"

var cli struct {
	Minutes int    `help:"Starting minutes (0-59)." short:"m" default:"1"`
	Seconds int    `help:"Starting seconds (0-59)." short:"s" default:"0"`
	Mute    bool   `help:"Disable the expiry buzzer."`
	DB      string `help:"Path to the run history database." env:"COUNTDOWN_DB" placeholder:"PATH"`
	Report  int    `help:"Write a PDF report of the last N runs and exit." placeholder:"N"`

	Version kong.VersionFlag `help:"Print version and exit."`
}

func main() {
	_ = godotenv.Load()

	kong.Parse(&cli,
		kong.Name(config.AppName),
		kong.Description("A countdown timer with editable minutes and seconds."),
		kong.Vars{"version": version},
	)

	dbPath := cli.DB
	if dbPath == "" {
		dataDir := util.DataDir(config.AppName)
		_ = os.MkdirAll(dataDir, 0o755)
		dbPath = filepath.Join(dataDir, config.DBFileName)
	}

	store, err := history.Open(dbPath)
	if err != nil {
		if cli.Report > 0 {
			util.MustSucceed("open history", err)
		}
		// The timer is still usable without history.
		util.LogError("open history", err)
	} else {
		defer store.Close()
	}

	if cli.Report > 0 {
		path, err := history.WriteReport(store, cli.Report)
		util.MustSucceed("write report", err)
		fmt.Printf("Report written: %s\n", path)
		return
	}

	var notifier tui.Notifier
	if !cli.Mute {
		buzzer, err := sound.NewBuzzer(config.ExpiryPattern)
		if err != nil {
			util.LogError("audio unavailable, running muted", err)
		} else {
			notifier = buzzer
		}
	}

	var recorder tui.Recorder
	if store != nil {
		recorder = store
	}

	machine := timer.New(cli.Minutes, cli.Seconds)
	model := tui.NewModel(machine, notifier, recorder)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}
