// Package main csactl: консольный доступ к составу команды тренажёра в обход дашборда.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"csa-console/internal/backend"
	"csa-console/internal/config"
	"csa-console/internal/session"
)

type app struct {
	backendURL  string
	sessionPath string
	verbose     bool

	out io.Writer
	log *slog.Logger
}

func (a *app) tokens() *session.FileTokens {
	return session.NewFileTokens(a.sessionPath)
}

func (a *app) client() *backend.Client {
	return backend.New(a.backendURL, nil, a.log).WithTokens(a.tokens())
}

func defaultSessionPath() string {
	if p := os.Getenv("CSACTL_SESSION"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".csactl-session.json"
	}
	return filepath.Join(home, ".csactl", "session.json")
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}
	cfg := config.Load()

	rootCmd := &cobra.Command{
		Use:   "csactl",
		Short: "Manage the CSA trainer team from the command line",
		Long: `csactl talks to the CSA training backend directly.

It logs in once, keeps the access token in a session file and lets
trainers list, export and bulk-edit the team roster.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if a.verbose {
				level = slog.LevelDebug
			}
			a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}
	rootCmd.SetOut(out)

	rootCmd.PersistentFlags().StringVar(&a.backendURL, "backend", cfg.BackendURL, "backend base URL")
	rootCmd.PersistentFlags().StringVar(&a.sessionPath, "session", defaultSessionPath(), "session file path")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every backend call")

	rootCmd.AddCommand(newLoginCmd(a), newLogoutCmd(a), newTeamCmd(a))
	return rootCmd
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
