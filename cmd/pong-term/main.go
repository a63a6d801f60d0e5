package main

import (
	"fmt"
	"log"
	"os"

	"github.com/asyed94/pong-term/internal/app"
	"github.com/asyed94/pong-term/internal/config"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}
	log.Printf("starting (ascii=%v mute=%v)", cfg.ForceASCII, cfg.Mute)

	application := app.NewApp(cfg)
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Thanks for playing Terminal Pong!")
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  pong-term [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --ascii     Force ASCII glyphs (also: PONG_FORCE_ASCII=1)")
	fmt.Fprintln(os.Stderr, "  --mute      Disable sound effects")
	fmt.Fprintln(os.Stderr, "  --debug     Write a debug log to logs/pong-term.log")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Controls:")
	fmt.Fprintln(os.Stderr, "  W/S         Move the left paddle")
	fmt.Fprintln(os.Stderr, "  Up/Down     Move the right paddle")
	fmt.Fprintln(os.Stderr, "  Space       Pause and resume")
	fmt.Fprintln(os.Stderr, "  Enter       Start from the title screen")
	fmt.Fprintln(os.Stderr, "  Q or Esc    Quit")
}
