package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/electr1fy0/jot/logger"
	"github.com/electr1fy0/jot/server"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Drive one editing session over a websocket",
	Long: `serve exposes a single editing session at /ws for a remote frontend.
Only one client may hold the session at a time. Each text frame is an
intent such as {"intent":"pick","id":1}; every reply carries the session state.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		log, closeLog, err := logger.New().
			Console(os.Stderr).
			FromPath(cfg.Log.File).
			Level(cfg.Log.Level).
			Debug(debug).
			Make()
		if err != nil {
			return err
		}
		defer closeLog()

		addr := cfg.Server.Addr
		if cmd.Flags().Changed("addr") {
			addr = serveAddr
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		hub := server.NewHub(newStore(cfg, log), log)
		go hub.Run(ctx)

		return server.New(hub, log).Serve(ctx, addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides server.addr)")
	rootCmd.AddCommand(serveCmd)
}
