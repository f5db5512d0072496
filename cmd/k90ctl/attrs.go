package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:       "get {brightness|macro_mode|macro_record|current_profile}",
	Short:     "read one attribute",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"brightness", "macro_mode", "macro_record", "current_profile"},
	RunE: func(cmd *cobra.Command, args []string) error {
		in, dev, err := openInstance()
		if err != nil {
			return err
		}
		defer dev.Close()
		defer in.Detach()

		attr, ok := in.Attr(args[0])
		if !ok {
			return fmt.Errorf("unknown attribute %q", args[0])
		}
		text, err := attr.Show()
		if err != nil {
			return err
		}
		fmt.Print(text)
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:   "set {brightness|macro_mode|macro_record|current_profile} VALUE",
	Short: "write one attribute",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, dev, err := openInstance()
		if err != nil {
			return err
		}
		defer dev.Close()
		defer in.Detach()

		attr, ok := in.Attr(args[0])
		if !ok {
			return fmt.Errorf("unknown attribute %q", args[0])
		}
		if _, err := attr.Store(args[1]); err != nil {
			return err
		}
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "show all attributes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, dev, err := openInstance()
		if err != nil {
			return err
		}
		defer dev.Close()
		defer in.Detach()

		for _, attr := range in.Attributes() {
			text, err := attr.Show()
			if err != nil {
				return err
			}
			fmt.Printf("%-16s %s\n", attr.Name, strings.TrimSuffix(text, "\n"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(statusCmd)
}
