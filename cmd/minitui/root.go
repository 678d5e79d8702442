package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/grindlemire/minitui/internal/config"
	"github.com/grindlemire/minitui/internal/scene"
)

// configLoader builds the effective configuration for cmd, letting the
// flags named in bind (config key -> flag name) override file and env values.
type configLoader func(cmd *cobra.Command, bind map[string]string) (*config.Config, error)

func newRootCmd() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:   "minitui",
		Short: "Constraint-based terminal UI layouts",
		Long: `minitui lays out trees of boxes, labels and forms with fixed, flex and
absolute constraints and renders them to the terminal, rewriting only the
cells that changed between frames.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "",
		"config file (default is $XDG_CONFIG_HOME/minitui/config.toml or ./minitui.toml)")

	load := func(cmd *cobra.Command, bind map[string]string) (*config.Config, error) {
		v := config.New(configFile)
		for key, name := range bind {
			if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
				return nil, fmt.Errorf("bind --%s: %w", name, err)
			}
		}
		if err := config.Read(v); err != nil {
			return nil, err
		}
		return config.Load(v)
	}

	root.AddCommand(
		newRunCmd(load),
		newLayoutCmd(),
		newSnapshotCmd(),
		newVersionCmd(),
	)
	return root
}

// sceneFlags are the flags shared by the commands that load a layout.
type sceneFlags struct {
	demo string
}

func (f *sceneFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.demo, "demo", "dashboard", "built-in layout when no file is given (dashboard, login)")
}

// loadScene builds the layout in file, or the named demo when file is empty.
func loadScene(file, demo string) (*scene.Scene, error) {
	if file != "" {
		return scene.Load(file)
	}
	return scene.Demo(demo)
}

// sizeFlags are the off-screen dimensions used by layout and snapshot.
type sizeFlags struct {
	width, height int
}

func (f *sizeFlags) register(fs *pflag.FlagSet) {
	fs.IntVarP(&f.width, "width", "W", 80, "screen width in columns")
	fs.IntVarP(&f.height, "height", "H", 24, "screen height in rows")
}

func (f *sizeFlags) validate() error {
	if f.width < 1 || f.height < 1 {
		return fmt.Errorf("screen size must be at least 1x1 (got %dx%d)", f.width, f.height)
	}
	return nil
}
