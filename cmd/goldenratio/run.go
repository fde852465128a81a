package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/goldenratio/internal/app"
	"github.com/Gaurav-Gosain/goldenratio/internal/config"
	"github.com/Gaurav-Gosain/goldenratio/internal/input"
	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

// loadConfig reads the user config, falling back to defaults, and applies
// the command-line overrides.
func loadConfig() *config.UserConfig {
	var (
		userConfig *config.UserConfig
		err        error
	)
	if configPath != "" {
		userConfig, err = config.LoadConfigFile(configPath)
	} else {
		userConfig, err = config.LoadUserConfig()
	}
	if err != nil {
		log.Warn("failed to load config, using defaults", "err", err)
		userConfig = config.DefaultConfig()
	}

	return config.ApplyOverrides(config.Overrides{
		ThemeName:     themeName,
		BorderStyle:   borderStyle,
		MinPaneWidth:  minPaneWidth,
		MinPaneHeight: minPaneHeight,
		AdjustFactor:  adjustFactor,
		Disabled:      disabled,
		NoRecenter:    noRecenter,
		ExcludedModes: excludeModes,
		ExcludedNames: excludeNames,
		Debug:         debugMode,
	}, userConfig)
}

// terminalSize returns the size of stdout, or fallback when it is not a
// terminal.
func terminalSize(fallbackW, fallbackH int) (int, int) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallbackW, fallbackH
	}
	w, h, err := term.GetSize(fd)
	if err != nil || w <= 0 || h <= 0 {
		return fallbackW, fallbackH
	}
	return w, h
}

func runLocal() error {
	userConfig := loadConfig()

	if debugMode {
		path, _ := config.GetConfigPath()
		log.Info("configuration", "path", path)
	}

	app.SetInputHandler(input.HandleInput)

	width, height := terminalSize(80, 24)
	initialOS := app.New(userConfig, width, height)

	p := tea.NewProgram(initialOS, tea.WithoutSignalHandler())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Send(tea.QuitMsg{})
	}()

	finalModel, err := p.Run()
	if finalOS, ok := finalModel.(*app.OS); ok {
		finalOS.GoldenRatio.Disable()
	}
	if err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}
