package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "Inspect the registered epoch kinds",
	Long:  `Provides commands for listing the registered epoch kinds.`,
}

var listKindsCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered epoch kinds",
	Long:  `Lists every registered epoch kind with its reference instant and a short description, including kinds declared in the --kinds file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := buildRegistry()
		if err != nil {
			return err
		}

		fmt.Println("Kind | Reference | Description")
		fmt.Println("----------------------------------------")
		for _, kind := range registry.Kinds() {
			fmt.Printf("%s | %s | %s\n", kind.Name, formatDateTime(kind.Reference), kind.Description)
		}
		return nil
	},
}

func initKindsCmd() {
	kindsCmd.AddCommand(listKindsCmd)
}
