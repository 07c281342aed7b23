// Command fluxturn is a developer harness that drives one turn of the
// intent pipeline against a small fixture world and prints the
// resulting events/errors as JSON. It is not the product surface spec.md
// §1 excludes (persistence, networking, the real CLI, packaging); it
// exists only so the pipeline's ambient stack has a realistic process
// entry point, grounded on the teacher's cmd/nerd/main.go cobra wiring.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/industry-digital/flux-game-sub002/internal/fluxconfig"
	"github.com/industry-digital/flux-game-sub002/internal/handler"
	_ "github.com/industry-digital/flux-game-sub002/internal/handlers"
	"github.com/industry-digital/flux-game-sub002/internal/intent"
	"github.com/industry-digital/flux-game-sub002/internal/resolver"
	"github.com/industry-digital/flux-game-sub002/internal/transformer"
)

var (
	configPath string
	text       string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "fluxturn",
	Short: "fluxturn drives one turn of the intent pipeline against a fixture world",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := fluxconfig.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if verbose {
			cfg.Logging.DebugMode = true
		}
		return cfg.ApplyLogging()
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "parse, resolve, and execute one line of input against the fixture world",
	RunE:  runTurn,
}

type turnOutput struct {
	Verb    string                     `json:"verb"`
	Tokens  []string                   `json:"tokens"`
	Command string                     `json:"command,omitempty"`
	Events  []transformer.Event        `json:"events"`
	Errors  []transformer.ContextError `json:"errors"`
}

func runTurn(cmd *cobra.Command, args []string) error {
	if text == "" {
		return fmt.Errorf("--text is required")
	}

	cfg, err := fluxconfig.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	w := fixtureWorld()
	ctx := transformer.New(w)
	r := resolver.New(w,
		resolver.WithPrefixMatchThreshold(cfg.Resolver.PrefixMatchThreshold),
		resolver.WithMinPrefixLen(cfg.Resolver.MinPrefixLen),
	)

	idLen := cfg.Intent.IDLength
	factory := intent.NewFactory(func() string { return intent.NewIDWithLength(idLen) }, nil)
	in, err := factory.Build(intent.Input{
		Actor:    fixtureActor,
		Location: fixtureLocation,
		Text:     text,
	})
	if err != nil {
		return fmt.Errorf("build intent: %w", err)
	}

	out := turnOutput{Verb: in.Verb, Tokens: in.Tokens}

	if parsed := handler.ResolveCommandFromIntent(ctx, r, in); parsed != nil {
		out.Command = string(parsed.Type)
		ctx = handler.ExecuteCommand(ctx, *parsed)
	}

	out.Events = ctx.Events()
	out.Errors = ctx.Errors()

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "fluxturn.yaml", "path to a fluxconfig YAML file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")
	runCmd.Flags().StringVar(&text, "text", "", "the line of input to run through the pipeline")
	rootCmd.AddCommand(runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
