package main

import (
	"errors"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-storygen/pkg/orchestrator"
	"github.com/goliatone/go-storygen/pkg/page"
	"github.com/goliatone/go-storygen/pkg/renderers/tui"
)

var promptFlags struct {
	renderer    string
	output      string
	skipGallery bool
}

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Fill the sidebar form interactively and print the result",
	RunE:  runPrompt,
}

func init() {
	flags := promptCmd.Flags()
	flags.StringVarP(&promptFlags.renderer, "renderer", "r", tui.Name, "renderer for the result (vanilla|json|tui)")
	flags.StringVarP(&promptFlags.output, "output", "o", "", "output file (stdout if empty)")
	flags.BoolVar(&promptFlags.skipGallery, "skip-gallery", false, "do not ask for a gallery selection")
}

func runPrompt(cmd *cobra.Command, args []string) error {
	anim, err := loadAnimation()
	if err != nil {
		return err
	}
	orch, err := newOrchestrator(standaloneAssets(anim))
	if err != nil {
		return err
	}

	session := tui.NewSession(orch.Composer(),
		tui.WithPromptDriver(tui.NewSurveyDriver(cmd.OutOrStdout())),
		tui.WithSkipGallery(promptFlags.skipGallery),
	)
	result, err := session.Run(cmd.Context())
	if errors.Is(err, tui.ErrAborted) {
		logger.Info("prompt aborted")
		return nil
	}
	if err != nil {
		return err
	}

	out, err := orch.Generate(cmd.Context(), promptRequest(promptFlags.renderer, result))
	if err != nil {
		return err
	}
	return writeOutput(cmd, promptFlags.output, out)
}

// promptRequest replays an interactive session as a standalone render, the
// same shape the render command produces.
func promptRequest(renderer string, result tui.Result) orchestrator.Request {
	return orchestrator.Request{
		Renderer: renderer,
		Values: url.Values{
			page.FieldPrompt:         {result.Submission.Prompt},
			page.FieldNegativePrompt: {result.Submission.NegativePrompt},
		},
		Submitted:     result.Submission.Submitted,
		Selected:      strconv.Itoa(result.Selected),
		RenderOptions: standaloneOptions(),
	}
}
