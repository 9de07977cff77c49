package main

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/unowned-ai/epochs/pkg/epochs"
)

var uuidCmd = &cobra.Command{
	Use:   "uuid [uuid]",
	Short: "Extract the timestamp embedded in a version 1 UUID",
	Long: `Version 1 UUIDs carry a 60-bit timestamp counting 100 ns ticks since
1582-10-15. This command pulls it out and prints the date-time.

Example:

  epochs uuid ca4892ce-4f7d-11ea-b77f-2e728ce88125`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid UUID format: %w", err)
		}

		t, err := epochs.UUIDTime(u)
		if errors.Is(err, epochs.ErrNoTimestamp) {
			return fmt.Errorf("UUID %s is version %d and embeds no timestamp", u, u.Version())
		}
		if err != nil {
			return err
		}

		fmt.Println(formatDateTime(t))
		return nil
	},
}
