package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/yourusername/swaynav/internal/client"
	navConfig "github.com/yourusername/swaynav/internal/config"
	"github.com/yourusername/swaynav/internal/focus"
	"github.com/yourusername/swaynav/internal/logging"
	"github.com/yourusername/swaynav/internal/models"
	"github.com/yourusername/swaynav/internal/output"
	"github.com/yourusername/swaynav/internal/types"
)

var (
	socketPath string
	timeout    time.Duration
	configPath string
	jsonOutput bool
	noColor    bool
	debugMode  bool

	moveWS    bool
	noFocusWS bool
	stdoutWS  bool
	dryRun    bool

	logInitErr error

	// Color functions
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	keyColor     = color.New(color.FgYellow)
)

// rootCmd switches workspaces
var rootCmd = &cobra.Command{
	Use:   "swaynav [mode]",
	Short: "Switch workspaces with output awareness for sway and i3",
	Long: `swaynav moves focus, and optionally the focused container, to a
neighboring workspace. Modes:

  next, prev                        linear over all workspace numbers
  next-output, prev-output          nearest workspace visible on another output
  next-on-output, prev-on-output    stay within the numbers free on this output
  next-layout-aware,                walk this output's workspaces, then continue
  prev-layout-aware                 on the neighboring output (left to right)

Without a mode the configured default (next) is used.`,
	Version:       "0.1.0",
	Args:          cobra.MatchAll(cobra.MaximumNArgs(1), modeArg),
	ValidArgs:     types.ModeNames(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := navConfig.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		settings, err := resolveSettings(cmd, cfg, args)
		if err != nil {
			return err
		}

		c := client.NewClient(settings.Socket, settings.Timeout)
		defer c.Close()

		nav := focus.NewNavigator(c)
		ctx := context.Background()

		var res focus.Result
		if dryRun {
			res, err = nav.Select(ctx, settings.Mode)
		} else {
			res, err = nav.Navigate(ctx, focus.Options{
				Mode:    settings.Mode,
				Move:    settings.Move,
				NoFocus: settings.NoFocus,
			})
		}
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), res)
		}
		if settings.Stdout || dryRun {
			fmt.Fprint(cmd.OutOrStdout(), res.Target)
		}
		return nil
	},
}

// modeArg accepts the same mode spellings as the config file
func modeArg(cmd *cobra.Command, args []string) error {
	for _, a := range args {
		if _, err := types.ParseMode(a); err != nil {
			return err
		}
	}
	return nil
}

// runSettings is the merged result of config file and flags
type runSettings struct {
	Mode    types.Mode
	Socket  string
	Timeout time.Duration
	Move    bool
	NoFocus bool
	Stdout  bool
}

// resolveSettings applies explicitly set flags over the config file
func resolveSettings(cmd *cobra.Command, cfg *navConfig.Config, args []string) (runSettings, error) {
	var s runSettings
	var err error

	if len(args) > 0 {
		s.Mode, err = types.ParseMode(args[0])
	} else {
		s.Mode, err = cfg.Mode()
	}
	if err != nil {
		return s, err
	}

	flags := cmd.Flags()
	s.Move = cfg.Settings.Move
	if flags.Changed("move") {
		s.Move = moveWS
	}
	s.NoFocus = cfg.Settings.NoFocus
	if flags.Changed("no-focus") {
		s.NoFocus = noFocusWS
	}
	s.Stdout = cfg.Settings.Stdout
	if flags.Changed("stdout") {
		s.Stdout = stdoutWS
	}

	if flags.Changed("timeout") {
		s.Timeout = timeout
	} else if s.Timeout, err = cfg.GetTimeout(); err != nil {
		return s, fmt.Errorf("timeout: %w", err)
	}

	s.Socket, err = resolveSocket(cmd, cfg)
	return s, err
}

// resolveSocket picks --socket, then the config file, then auto-detection
func resolveSocket(cmd *cobra.Command, cfg *navConfig.Config) (string, error) {
	if cmd.Flags().Changed("socket") && socketPath != "" {
		return socketPath, nil
	}
	if cfg.Settings.Socket != "" {
		return cfg.Settings.Socket, nil
	}
	return client.DefaultSocketPath()
}

// newClient builds a client for the read-only subcommands
func newClient(cmd *cobra.Command) (*client.Client, error) {
	cfg, err := navConfig.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	sock, err := resolveSocket(cmd, cfg)
	if err != nil {
		return nil, err
	}

	t := timeout
	if !cmd.Flags().Changed("timeout") {
		if t, err = cfg.GetTimeout(); err != nil {
			return nil, fmt.Errorf("timeout: %w", err)
		}
	}

	return client.NewClient(sock, t), nil
}

// pingCmd tests compositor connectivity
var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Test connection to the compositor",
	Long:  `Requests the compositor version over IPC and reports the response time.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		start := time.Now()
		version, err := c.GetVersion(context.Background())
		elapsed := time.Since(start)
		if err != nil {
			return fmt.Errorf("ping failed: %w", err)
		}

		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), version)
		}

		successColor.Println("✓ Compositor answered")
		keyColor.Print("Version: ")
		fmt.Println(version.HumanReadable)
		if version.LoadedConfigFileName != "" {
			keyColor.Print("Config: ")
			fmt.Println(version.LoadedConfigFileName)
		}
		fmt.Printf("Response time: %v\n", elapsed)
		return nil
	},
}

// listCmd is the parent command for list subcommands
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List workspaces or outputs",
	Long:  `Lists the current workspace or output snapshot in a table format.`,
}

// listWorkspacesCmd lists all workspaces
var listWorkspacesCmd = &cobra.Command{
	Use:   "workspaces",
	Short: "List all workspaces",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		workspaces, err := c.GetWorkspaces(context.Background())
		if err != nil {
			return fmt.Errorf("fetch workspaces: %w", err)
		}

		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), workspaces)
		}

		if len(workspaces) == 0 {
			fmt.Println("No workspaces found")
			return nil
		}

		output.PrintWorkspacesTable(cmd.OutOrStdout(), workspaces)
		fmt.Printf("\nTotal: %d workspaces\n", len(workspaces))
		return nil
	},
}

// listOutputsCmd lists active outputs in navigation order
var listOutputsCmd = &cobra.Command{
	Use:   "outputs",
	Short: "List active outputs in navigation order",
	Long: `Lists active outputs ordered left to right, then top to bottom.
The index column is the order used by the layout-aware modes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		outputs, err := fetchOrderedOutputs(cmd)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), outputs)
		}

		if len(outputs) == 0 {
			fmt.Println("No active outputs found")
			return nil
		}

		output.PrintOutputsTable(cmd.OutOrStdout(), outputs)
		fmt.Printf("\nTotal: %d outputs\n", len(outputs))
		return nil
	},
}

// Visualization flags
var (
	showASCII   bool
	showUnicode bool
	showWidth   int
	showHeight  int
)

// showCmd draws the output layout
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the spatial layout of outputs",
	Long: `Draws active outputs at their relative positions, labeled with the
navigation index, name and current workspace.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		outputs, err := fetchOrderedOutputs(cmd)
		if err != nil {
			return err
		}

		opts := output.DefaultVisualizationOptions()
		if showASCII {
			opts.UseUnicode = false
		}
		if showUnicode {
			opts.UseUnicode = true
		}
		if showWidth > 0 {
			opts.MaxWidth = showWidth
		}
		if showHeight > 0 {
			opts.MaxHeight = showHeight
		}

		output.PrintVisualization(cmd.OutOrStdout(), outputs, opts)
		return nil
	},
}

// configCmd is the parent command for config subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Commands for showing, validating and creating the swaynav configuration.`,
}

// configShowCmd shows current config
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := navConfig.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return printJSON(cmd.OutOrStdout(), cfg)
	},
}

// configValidateCmd validates a config file
var configValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate configuration file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if len(args) > 0 {
			path = args[0]
		}
		if path == "" {
			path = navConfig.ResolvePath()
		}
		if path == "" {
			return fmt.Errorf("no config file found at %s", navConfig.GetConfigPath())
		}

		cfg, err := navConfig.LoadConfig(path)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}

		successColor.Println("✓ Configuration is valid")
		fmt.Printf("  File: %s\n", path)
		fmt.Printf("  Default mode: %s\n", cfg.Settings.DefaultMode)
		return nil
	},
}

// configInitCmd creates default config
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := navConfig.GetConfigPath()

		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists at %s", path)
		}

		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		if err := os.WriteFile(path, []byte(navConfig.DefaultConfigYAML), 0644); err != nil {
			return fmt.Errorf("failed to write config file: %w", err)
		}

		successColor.Printf("✓ Created default config at: %s\n", path)
		return nil
	},
}

// addGlobalFlags registers flags shared by every command
func addGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&socketPath, "socket", "s", "", "IPC socket path (default $SWAYSOCK, $I3SOCK or auto-detect)")
	cmd.PersistentFlags().DurationVar(&timeout, "timeout", client.DefaultTimeout, "Request timeout (0 waits indefinitely)")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default ~/.config/swaynav/config.yaml)")
	cmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
}

// addNavigationFlags registers the flags of the switching command
func addNavigationFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&moveWS, "move", "m", false, "Move the focused container to the target workspace")
	cmd.Flags().BoolVarP(&noFocusWS, "no-focus", "n", false, "Do not focus the target workspace")
	cmd.Flags().BoolVarP(&stdoutWS, "stdout", "o", false, "Print the target workspace number to stdout")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Compute and print the target without sending commands")
}

func init() {
	addGlobalFlags(rootCmd)
	addNavigationFlags(rootCmd)

	rootCmd.AddCommand(pingCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(configCmd)

	listCmd.AddCommand(listWorkspacesCmd)
	listCmd.AddCommand(listOutputsCmd)

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configInitCmd)

	showCmd.Flags().BoolVar(&showASCII, "ascii", false, "Force ASCII mode (no Unicode)")
	showCmd.Flags().BoolVar(&showUnicode, "unicode", false, "Force Unicode mode")
	showCmd.Flags().IntVar(&showWidth, "width", 0, "Override terminal width")
	showCmd.Flags().IntVar(&showHeight, "height", 0, "Override terminal height")

	// Disable color if requested, enable debug logging if requested
	cobra.OnInitialize(func() {
		if noColor {
			color.NoColor = true
		}
		if debugMode {
			logging.SetDebug(true)
			if logInitErr != nil {
				fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", logInitErr)
			}
		}
	})
}

// run executes the command tree and returns the process exit code
func run(args []string) int {
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	logging.Error().Err(err).Strs("args", args).Msg("invocation failed")
	printError(rootCmd.ErrOrStderr(), err.Error())
	if debugMode && logInitErr == nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "  log: %s (run %s)\n", logging.LogPath(), logging.RunID())
	}
	return 1
}

func main() {
	// Logging is best effort; the error is reported under --debug
	logInitErr = logging.Init()

	code := run(os.Args[1:])

	logging.Close()
	os.Exit(code)
}

// Helper functions

func printJSON(w io.Writer, data interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func printError(w io.Writer, msg string) {
	if noColor || color.NoColor {
		fmt.Fprintln(w, "Error:", msg)
	} else {
		errorColor.Fprint(w, "✗ Error: ")
		fmt.Fprintln(w, msg)
	}
}

// fetchOrderedOutputs returns active outputs in navigation order
func fetchOrderedOutputs(cmd *cobra.Command) ([]models.Output, error) {
	c, err := newClient(cmd)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	outputs, err := c.GetOutputs(context.Background())
	if err != nil {
		return nil, fmt.Errorf("fetch outputs: %w", err)
	}

	return focus.SortOutputs(models.ActiveOutputs(outputs)), nil
}
