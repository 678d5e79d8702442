package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	tui "github.com/grindlemire/minitui"
)

func newSnapshotCmd() *cobra.Command {
	var (
		scn   sceneFlags
		size  sizeFlags
		input string
	)
	cmd := &cobra.Command{
		Use:   "snapshot [FILE]",
		Short: "Paint one frame of a layout off-screen and print it as text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := size.validate(); err != nil {
				return err
			}
			s, err := loadScene(firstArg(args), scn.demo)
			if err != nil {
				return err
			}

			keys, err := strconv.Unquote(`"` + input + `"`)
			if err != nil {
				return fmt.Errorf("--input: %w", err)
			}
			for i := 0; i < len(keys); i++ {
				s.Tree.HandleInput(s.Root, keys[i])
			}

			buf := tui.NewBuffer(size.width, size.height)
			if err := s.Tree.Layout(s.Root, buf.Rect()); err != nil {
				return err
			}
			if err := s.Tree.Paint(s.Root, buf); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), buf.StringTrimmed())
			return nil
		},
	}
	scn.register(cmd.Flags())
	size.register(cmd.Flags())
	cmd.Flags().StringVar(&input, "input", "", "bytes delivered to widgets before painting (Go escapes allowed: \\r for Enter, \\x7f for DEL)")
	return cmd
}
