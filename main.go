package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"minimapicons/config"
	"minimapicons/entity"
	"minimapicons/game"
	"minimapicons/icons"
	"minimapicons/input"
	"minimapicons/logger"
	"minimapicons/settings"
	"minimapicons/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	processName  string
	windowTitle  string
	settingsPath string
	modIconsPath string
	atlasDir     string
	replayPath   string
	logFilePath  string
	hotkey       string
)

var rootCmd = &cobra.Command{
	Use:   "minimapicons",
	Short: "Minimap icon overlay",
	Long: `minimapicons draws configurable icons for monsters, NPCs and players
over the game's minimap. Press the menu hotkey to edit the icon settings.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&processName, "process", config.DEFAULT_PROCESS, "game process name")
	rootCmd.Flags().StringVar(&windowTitle, "window-title", config.DEFAULT_WINDOW_TITLE, "game window title the overlay follows (empty disables tracking)")
	rootCmd.Flags().StringVar(&settingsPath, "settings", config.DEFAULT_SETTINGS_FILE, "settings file")
	rootCmd.Flags().StringVar(&modIconsPath, "mod-icons", "", "YAML file with extra mod icons")
	rootCmd.Flags().StringVar(&atlasDir, "atlas-dir", "textures", "directory holding "+config.ICONS_ATLAS+" and "+config.SPRITES_ATLAS)
	rootCmd.Flags().StringVar(&replayPath, "replay", "", "read entities from a recorded YAML snapshot instead of the game")
	rootCmd.Flags().StringVar(&logFilePath, "log-file", "", "also write logs to this file")
	rootCmd.Flags().StringVar(&hotkey, "hotkey", config.DEFAULT_MENU_HOTKEY, "key combo that toggles the settings menu")
}

func run(cmd *cobra.Command, args []string) error {
	logFile, err := logger.Setup(logFilePath)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	combo, err := input.ParseKeyCombo(hotkey)
	if err != nil {
		return err
	}

	store := settings.NewStore(settingsPath)
	if err := store.Load(); err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	modIcons, err := icons.LoadModIcons(modIconsPath)
	if err != nil {
		return err
	}

	source, err := openSource()
	if err != nil {
		return err
	}
	defer source.Close()

	atlas, err := ui.LoadAtlas(atlasDir)
	if err != nil {
		log.Warn().Err(err).Str("dir", atlasDir).Msg("failed to load some textures")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g := game.NewGame(ctx, source, store, icons.NewBuilder(modIcons), game.Options{
		Hotkey:      combo,
		WindowTitle: windowTitle,
		Atlas:       atlas,
	})

	watcher, err := settings.NewWatcher(store, g.OnSettingsReloaded)
	if err != nil {
		log.Warn().Err(err).Msg("settings hot reload disabled")
	} else {
		go watcher.Run(ctx)
	}

	ebiten.SetWindowSize(config.SCREEN_WIDTH, config.SCREEN_HEIGHT)
	ebiten.SetWindowTitle("Minimap Icons")
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowMousePassthrough(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TPS)
	ebiten.SetVsyncEnabled(true)

	log.Info().
		Str("hotkey", combo.String()).
		Str("settings", store.Path()).
		Msg("overlay starting")

	err = ebiten.RunGameWithOptions(g, &ebiten.RunGameOptions{
		ScreenTransparent: true,
		SkipTaskbar:       true,
		InitUnfocused:     true,
	})
	stop()
	if watcher != nil {
		<-watcher.Done()
	}
	if err != nil {
		return fmt.Errorf("run overlay: %w", err)
	}
	log.Info().Msg("overlay stopped")
	return nil
}

func openSource() (entity.Source, error) {
	if replayPath != "" {
		return entity.NewReplaySource(replayPath)
	}
	source, err := entity.NewMemorySource(processName)
	if err != nil {
		return nil, fmt.Errorf("attach to %s: %w", processName, err)
	}
	return source, nil
}

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
