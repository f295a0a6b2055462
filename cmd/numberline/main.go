package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"

	"github.com/autobrr/go-numberline/internal/cli"
	"github.com/autobrr/go-numberline/internal/config"
	"github.com/autobrr/go-numberline/internal/numberline"
	"github.com/autobrr/go-numberline/internal/web"
)

var version = "dev"

const repositorySlug = "autobrr/go-numberline"

const helpTemplate = `{{with or .Long .Short}}{{. | trimTrailingWhitespaces}}

{{end}}{{if or .Runnable .HasSubCommands}}{{.UsageString}}{{end}}`

var rootCmd = &cobra.Command{
	Use:                "numberline [options] [low high]",
	Short:              "Fraction and whole-number ticks for a numeric axis.",
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(cli.Run(append([]string{cmd.Name()}, args...), cmd.OutOrStdout(), cmd.ErrOrStderr()))
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interactive numberline over HTTP",
	Long:  "Serve the interactive numberline over HTTP. Defaults come from NUMBERLINE_* environment variables.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runServe(cmd)
	},
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update numberline",
	Long:  "Update numberline to latest version (release builds only).",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runSelfUpdate(cmd.Context())
	},
	DisableFlagsInUseLine: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print go-numberline version information",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cli.Version(cmd.OutOrStdout())
		return nil
	},
	DisableFlagsInUseLine: true,
}

func init() {
	numberline.SetAppVersion(resolveVersion())
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)
	rootCmd.SetHelpTemplate(helpTemplate)
	serveCmd.Flags().String("addr", "", "listen address (overrides NUMBERLINE_ADDR)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command) error {
	log.SetPrefix("[NUMBERLINE] ")

	serverCfg, err := config.LoadServer()
	if err != nil {
		return err
	}
	defaults, err := config.LoadDefaults()
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		serverCfg.Addr = addr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := web.New(serverCfg, defaults)
	if err != nil {
		return err
	}
	return srv.Serve(ctx)
}

func runSelfUpdate(ctx context.Context) error {
	if version == "" || version == "dev" {
		return errors.New("self-update is only available in release builds")
	}

	if _, err := semver.ParseTolerant(version); err != nil {
		return fmt.Errorf("could not parse version: %w", err)
	}

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(repositorySlug))
	if err != nil {
		return fmt.Errorf("error occurred while detecting version: %w", err)
	}
	if !found {
		return fmt.Errorf("latest version for %s/%s could not be found from github repository", repositorySlug, version)
	}

	if latest.LessOrEqual(version) {
		fmt.Printf("Current binary is the latest version: %s\n", numberline.FormatVersion(version))
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}

	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("error occurred while updating binary: %w", err)
	}

	fmt.Printf("Successfully updated to version: %s\n", numberline.FormatVersion(latest.Version()))
	return nil
}

func resolveVersion() string {
	if version != "" && version != "dev" {
		return normalizeVersion(version)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return normalizeVersion(info.Main.Version)
		}
	}
	return "dev"
}

func normalizeVersion(value string) string {
	return strings.TrimPrefix(value, "v")
}
