package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/openperipheral/k90/internal/config"
	"github.com/openperipheral/k90/pkg/k90"
	"github.com/openperipheral/k90/pkg/usb"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:          "k90ctl",
	Short:        "control a Corsair Vengeance K90 keyboard",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", defaultConfigPath(), "configuration file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "k90.toml"
	}
	return filepath.Join(dir, "k90", "k90.toml")
}

func loadDriver() (*k90.Driver, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	return k90.NewDriver(k90.Config{GKeyCodes: cfg.GKeyCodes})
}

// openInstance binds the driver to the keyboard's control interface. The
// caller closes the returned device when done.
func openInstance() (*k90.Instance, usb.ControlDevice, error) {
	d, err := loadDriver()
	if err != nil {
		return nil, nil, err
	}
	dev, err := usb.Open(k90.CorsairVID, k90.K90PID)
	if err != nil {
		return nil, nil, err
	}
	in, err := d.Attach(k90.Handle{Interface: 0, Device: dev})
	if err != nil {
		dev.Close()
		return nil, nil, fmt.Errorf("attach: %w", err)
	}
	return in, dev, nil
}
