package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	tui "github.com/grindlemire/minitui"
)

func newLayoutCmd() *cobra.Command {
	var (
		scn  sceneFlags
		size sizeFlags
	)
	cmd := &cobra.Command{
		Use:   "layout [FILE]",
		Short: "Print the rectangle resolved for every node of a layout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := size.validate(); err != nil {
				return err
			}
			s, err := loadScene(firstArg(args), scn.demo)
			if err != nil {
				return err
			}
			if err := s.Tree.Layout(s.Root, tui.NewRect(0, 0, size.width, size.height)); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, e := range s.Nodes {
				kind, _ := s.Tree.Kind(e.ID)
				w, h, _ := s.Tree.Constraints(e.ID)
				r := s.Tree.Rect(e.ID)
				depth := strings.Count(e.Path, ".children")
				fmt.Fprintf(out, "%-12s %-14s %-14s x=%-4d y=%-4d w=%-4d h=%d\n",
					strings.Repeat("  ", depth)+kind.String(), w, h, r.X, r.Y, r.Width, r.Height)
			}
			return nil
		},
	}
	scn.register(cmd.Flags())
	size.register(cmd.Flags())
	return cmd
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
