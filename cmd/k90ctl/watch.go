package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/openperipheral/k90/internal/config"
	"github.com/openperipheral/k90/internal/hidreport"
	"github.com/openperipheral/k90/internal/uinput"
	"github.com/openperipheral/k90/pkg/k90"
	"github.com/openperipheral/k90/pkg/usb"
)

var watchForward bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "follow keyboard events and state changes",
	Long: `Reads the keyboard's vendor input reports, feeds them through the
driver and prints every state change. With --forward, remapped G-key
events are injected through a uinput virtual keyboard.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(),
			os.Interrupt, syscall.SIGTERM)
		defer stop()
		return watch(ctx)
	},
}

func init() {
	watchCmd.Flags().BoolVar(&watchForward, "forward", false, "inject remapped G-keys via uinput")
	rootCmd.AddCommand(watchCmd)
}

func watch(ctx context.Context) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	d, err := k90.NewDriver(k90.Config{GKeyCodes: cfg.GKeyCodes})
	if err != nil {
		return err
	}

	dev, err := usb.Open(k90.CorsairVID, k90.K90PID)
	if err != nil {
		return err
	}
	defer dev.Close()

	in, err := d.Attach(k90.Handle{Interface: 0, Device: dev})
	if err != nil {
		return err
	}
	defer in.Detach()

	src, err := hidreport.Open(k90.CorsairVID, k90.K90PID)
	if err != nil {
		return err
	}
	defer src.Close()

	var kb *uinput.Keyboard
	if watchForward {
		kb, err = uinput.NewKeyboard("Corsair K90 G-keys", cfg.GKeyCodes)
		if err != nil {
			return err
		}
		defer kb.Close()
	}

	// ReadReport blocks; closing the source on cancellation unblocks it.
	go func() {
		<-ctx.Done()
		src.Close()
	}()

	last, err := in.State()
	if err != nil {
		return err
	}

	var decoder hidreport.Decoder
	for {
		report, err := src.ReadReport()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read report: %w", err)
		}

		for _, ev := range decoder.Next(report) {
			m := d.MapUsage(ev.Usage)
			switch m.Action {
			case k90.MapGKey:
				gkey := k90.UsageToGKey(ev.Usage)
				fmt.Printf("G%d %s (code %d)\n", gkey, pressName(ev.Value), m.Code)
				if kb != nil {
					if err := kb.SendKey(m.Code, ev.Value != 0); err != nil {
						log.Printf("k90ctl: forward G%d: %v", gkey, err)
					}
				}
			case k90.MapSuppress:
				in.OnEvent(ev.Usage, ev.Value)
			}
		}

		st, err := in.State()
		if err != nil {
			return err
		}
		if st != last {
			fmt.Printf("state: brightness=%d profile=%d macro_hw=%t recording=%t\n",
				st.Brightness, st.CurrentProfile, st.MacroHW, st.MacroRecording)
			last = st
		}
	}
}

func pressName(value int32) string {
	if value != 0 {
		return "down"
	}
	return "up"
}
