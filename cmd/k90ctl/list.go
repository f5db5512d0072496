package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openperipheral/k90/internal/discover"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list connected K90 interfaces",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ifaces, err := discover.Keyboards()
		if err != nil {
			return err
		}
		if len(ifaces) == 0 {
			fmt.Println("no K90 found")
			return nil
		}
		for _, iface := range ifaces {
			role := "input"
			if iface.Primary {
				role = "control"
			}
			fmt.Printf("if%d (%s)  %s  %s\n", iface.Interface, role, iface.Product, iface.Path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
