package system

import (
	"fmt"
	"os"

	"github.com/jmills-dev/streaks/internal/cli"
)

type InitCmd struct {
	Force bool `help:"Force reset by deleting existing storage before initialization."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		storePath := ctx.KV.Path()
		if _, err := os.Stat(storePath); err == nil {
			// Storage exists, close it first to prevent file locking issues
			if err := ctx.KV.Close(); err != nil {
				return fmt.Errorf("failed to close existing storage: %w", err)
			}
			if err := os.Remove(storePath); err != nil {
				return fmt.Errorf("failed to delete existing storage: %w", err)
			}
			fmt.Printf("Deleted existing storage at: %s\n", storePath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing storage: %w", err)
		}
	}

	if err := ctx.KV.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized streaks storage at: %s\n", ctx.KV.Path())
	return nil
}
