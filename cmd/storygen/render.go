package main

import (
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-storygen/pkg/animation"
	"github.com/goliatone/go-storygen/pkg/orchestrator"
	"github.com/goliatone/go-storygen/pkg/page"
	"github.com/goliatone/go-storygen/pkg/render"
	"github.com/goliatone/go-storygen/pkg/renderers/vanilla"
)

var renderFlags struct {
	renderer       string
	output         string
	submitted      bool
	prompt         string
	negativePrompt string
	selected       string
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write one render of the page to a file or stdout",
	RunE:  runRender,
}

func init() {
	flags := renderCmd.Flags()
	flags.StringVarP(&renderFlags.renderer, "renderer", "r", vanilla.Name, "renderer to use (vanilla|json|tui)")
	flags.StringVarP(&renderFlags.output, "output", "o", "", "output file (stdout if empty)")
	flags.BoolVar(&renderFlags.submitted, "submitted", false, "render as if the form was submitted")
	flags.StringVar(&renderFlags.prompt, "prompt", "", "prompt value (field default when unset)")
	flags.StringVar(&renderFlags.negativePrompt, "negative-prompt", "", "negative prompt value (field default when unset)")
	flags.StringVar(&renderFlags.selected, "selected", "", "selected gallery index")
	flags.StringVar(&flagCfg.PlayerScriptURL, "player-url", flagCfg.PlayerScriptURL, "lottie player script URL")
}

func runRender(cmd *cobra.Command, args []string) error {
	anim, err := loadAnimation()
	if err != nil {
		return err
	}
	orch, err := newOrchestrator(standaloneAssets(anim))
	if err != nil {
		return err
	}

	values := url.Values{}
	if cmd.Flags().Changed("prompt") {
		values.Set(page.FieldPrompt, renderFlags.prompt)
	}
	if cmd.Flags().Changed("negative-prompt") {
		values.Set(page.FieldNegativePrompt, renderFlags.negativePrompt)
	}

	out, err := orch.Generate(cmd.Context(), orchestrator.Request{
		Renderer:      renderFlags.renderer,
		Values:        values,
		Submitted:     renderFlags.submitted,
		Selected:      renderFlags.selected,
		RenderOptions: standaloneOptions(),
	})
	if err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return writeOutput(cmd, renderFlags.output, out)
}

// standaloneAssets inlines the animation so a written page opens without the
// server. The player script still comes from its configured URL.
func standaloneAssets(anim animation.Animation) orchestrator.Assets {
	return orchestrator.Assets{
		AnimationURL:    dataURL(anim),
		PlayerScriptURL: cfg.PlayerScriptURL,
	}
}

func standaloneOptions() render.RenderOptions {
	return render.RenderOptions{InlineStylesheet: true}
}

func writeOutput(cmd *cobra.Command, path string, out *orchestrator.Output) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(out.Body)
		return err
	}
	if err := os.WriteFile(path, out.Body, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Info("page written", zap.String("path", path), zap.String("renderer", out.Renderer))
	return nil
}
