package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devmabbott/Invaders/internal/sprite"
)

var spritesCmd = &cobra.Command{
	Use:   "sprites",
	Short: "List the built-in sprites",
	Long:  `Shows every sprite in the built-in sheet with its size and color.`,
	Args:  cobra.NoArgs,
	RunE:  runSprites,
}

func runSprites(cmd *cobra.Command, args []string) error {
	reg, err := sprite.LoadDefault()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	list := reg.List()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, info := range list {
		if len(info.Name) > maxNameLen {
			maxNameLen = len(info.Name)
		}
	}

	fmt.Fprintf(out, "  %-*s  %-5s  %s\n", maxNameLen, "Name", "Size", "Color")
	fmt.Fprintf(out, "  %-*s  %-5s  %s\n", maxNameLen, "----", "----", "-----")
	for _, info := range list {
		size := fmt.Sprintf("%dx%d", info.Width, info.Height)
		fmt.Fprintf(out, "  %-*s  %-5s  %s\n", maxNameLen, info.Name, size, info.Color)
	}
	return nil
}
