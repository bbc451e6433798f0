// Package main provides the entry point for the MiaNote application.
package main

import (
	"log"
	"os"
	"time"

	fyneapp "fyne.io/fyne/v2/app"

	"github.com/moomshiner/MiaNote/internal/app"
	"github.com/moomshiner/MiaNote/internal/version"
	"github.com/moomshiner/MiaNote/ui/mainwindow"
	"github.com/moomshiner/MiaNote/ui/prefs"
)

const appTitle = "MiaNote"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s %s", appTitle, version.Version)

	fyneApp := fyneapp.NewWithID("com.moomshiner.mianote")
	fyneApp.Settings().SetTheme(&app.MiaNoteTheme{})

	appState := app.NewState()
	appPrefs := prefs.Load()

	win := mainwindow.New(fyneApp, appState, appPrefs)

	// Dev convenience: restart when a freshly built binary replaces the
	// running one.
	if os.Getenv("MIANOTE_HOT_RELOAD") != "" {
		reloader := app.NewHotReloader(2 * time.Second)
		reloader.OnNewBinary(func() {
			log.Printf("New binary detected, restarting")
			win.SavePreferences()
			if err := reloader.Restart(); err != nil {
				log.Printf("Restart failed: %v", err)
			}
		})
		reloader.Start()
		defer reloader.Stop()
	}

	win.SetOnClosed(func() {
		win.SavePreferences()
	})

	win.ShowAndRun()
}
