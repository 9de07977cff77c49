package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/unowned-ai/epochs/pkg/epochs"
)

var convertCmd = &cobra.Command{
	Use:   "convert [kind] [value]",
	Short: "Convert a raw epoch timestamp to a calendar date-time",
	Long: `Converts a raw numeric timestamp of the named epoch kind into a naive
calendar date-time, printed as YYYY-MM-DDTHH:MM:SS[.ffffff].

Hex values (0x...) are accepted, as are fractional values for kinds with a
fractional native form (unix, icq).

Examples:

  epochs convert unix 1234567890
  epochs convert chrome 12879041490654321
  epochs convert icq 39857.25
  epochs convert uuid_v1 0x1ea4f7dca4892ce`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := buildRegistry()
		if err != nil {
			return err
		}

		kind, err := registry.Lookup(args[0])
		if err != nil {
			return fmt.Errorf("unknown epoch kind %q, see 'epochs kinds list'", args[0])
		}

		converted, err := convertRawValue(kind, args[1])
		if errors.Is(err, epochs.ErrOutOfRange) {
			return fmt.Errorf("%s value %s is outside the representable calendar range", kind.Name, args[1])
		}
		if err != nil {
			return err
		}

		fmt.Println(formatDateTime(converted))
		return nil
	},
}

var allCmd = &cobra.Command{
	Use:   "all [value]",
	Short: "Convert a raw timestamp under every registered kind",
	Long: `Converts a raw numeric timestamp under every registered epoch kind, for
when the provenance of a value is unknown. Kinds the value does not fit
are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := buildRegistry()
		if err != nil {
			return err
		}

		matched := 0
		for _, kind := range registry.Kinds() {
			converted, err := convertRawValue(kind, args[0])
			if err != nil {
				continue
			}
			fmt.Printf("%-16s %s\n", kind.Name, formatDateTime(converted))
			matched++
		}

		if matched == 0 {
			return fmt.Errorf("value %s fits no registered epoch kind", args[0])
		}
		return nil
	},
}

var toCmd = &cobra.Command{
	Use:   "to [kind] [datetime]",
	Short: "Convert a calendar date-time to a raw epoch timestamp",
	Long: `Converts a naive calendar date-time into the raw value of the named epoch
kind, the inverse of 'convert'.

Examples:

  epochs to unix 2009-02-13T23:31:30
  epochs to chrome "2009-02-13 23:31:30.654321"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := buildRegistry()
		if err != nil {
			return err
		}

		kind, err := registry.Lookup(args[0])
		if err != nil {
			return fmt.Errorf("unknown epoch kind %q, see 'epochs kinds list'", args[0])
		}

		t, err := parseDateTime(args[1])
		if err != nil {
			return err
		}

		switch {
		case kind.Inverse != nil:
			fmt.Println(strconv.FormatInt(kind.Inverse(t), 10))
		case kind.InverseFloat != nil:
			fmt.Println(strconv.FormatFloat(kind.InverseFloat(t), 'f', -1, 64))
		default:
			return fmt.Errorf("epoch kind %s has no inverse", kind.Name)
		}
		return nil
	},
}
