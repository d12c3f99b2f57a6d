// Package main provides the greet GUI application.
package main

import (
	"flag"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ZacharyZcR/greet/internal/cli"
	"github.com/ZacharyZcR/greet/internal/config"
	"github.com/ZacharyZcR/greet/internal/greeter"
	"github.com/ZacharyZcR/greet/internal/notify"
)

var configPath = flag.String("config", "", "配置文件路径 (YAML)")

func main() {
	flag.Parse()

	cfg, logger, err := setup(*configPath)
	if err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	myApp := app.New()
	myWindow := myApp.NewWindow("greet")
	myWindow.Resize(fyne.NewSize(420, 160))

	g := greeter.New(notify.NewDialog(myWindow, cfg.Title), greeter.WithLogger(logger))
	myWindow.SetContent(newContent(myWindow, g))
	myWindow.ShowAndRun()
}

// setup loads the configuration and builds the logger.
func setup(path string) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, nil, fmt.Errorf("初始化日志失败: %w", err)
	}
	return cfg, logger, nil
}

// newContent builds the form; the status label counts delivered greetings.
func newContent(w fyne.Window, g *greeter.Greeter) fyne.CanvasObject {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("World")

	statusLabel := widget.NewLabel("就绪")
	sent := 0

	greetButton := widget.NewButton("Greet", func() {
		if err := g.Greet(nameEntry.Text); err != nil {
			dialog.ShowError(err, w)
			statusLabel.SetText("发送失败")
			return
		}
		sent++
		statusLabel.SetText(fmt.Sprintf("已发送 %d 条问候", sent))
	})
	nameEntry.OnSubmitted = func(string) { greetButton.OnTapped() }

	return container.NewBorder(
		container.NewVBox(
			widget.NewLabel("名字:"),
			container.NewBorder(nil, nil, nil, greetButton, nameEntry),
		),
		container.NewVBox(
			widget.NewSeparator(),
			statusLabel,
		),
		nil, nil,
	)
}
