package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// FieldPrompt asks for one sidebar field.
type FieldPrompt struct {
	Label   string
	Help    string
	Default string
}

// GalleryPrompt asks for one gallery image. Selected is preselected.
type GalleryPrompt struct {
	Label    string
	Captions []string
	Selected int
}

// PromptDriver is the terminal surface a Session talks to.
type PromptDriver interface {
	Banner(ctx context.Context, text string) error
	Field(ctx context.Context, prompt FieldPrompt) (string, error)
	Submit(ctx context.Context, label string) (bool, error)
	Pick(ctx context.Context, prompt GalleryPrompt) (int, error)
}

type surveyDriver struct {
	out io.Writer
}

// NewSurveyDriver returns a driver backed by survey prompts. The banner is
// written to out, or stdout when out is nil.
func NewSurveyDriver(out io.Writer) PromptDriver {
	if out == nil {
		out = os.Stdout
	}
	return &surveyDriver{out: out}
}

func (d *surveyDriver) Banner(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out, text)
	return err
}

// Field uses a multiline editor since both prompts are free text.
func (d *surveyDriver) Field(ctx context.Context, prompt FieldPrompt) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var value string
	q := &survey.Multiline{
		Message: prompt.Label,
		Help:    prompt.Help,
		Default: prompt.Default,
	}
	if err := survey.AskOne(q, &value); err != nil {
		return "", promptErr(prompt.Label, err)
	}
	return value, nil
}

func (d *surveyDriver) Submit(ctx context.Context, label string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	submit := true
	q := &survey.Confirm{Message: label + "?", Default: true}
	if err := survey.AskOne(q, &submit); err != nil {
		return false, promptErr(label, err)
	}
	return submit, nil
}

func (d *surveyDriver) Pick(ctx context.Context, prompt GalleryPrompt) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	options := galleryOptions(prompt.Captions)
	q := &survey.Select{
		Message:  prompt.Label,
		Options:  options,
		PageSize: len(options),
	}
	if prompt.Selected >= 0 && prompt.Selected < len(options) {
		q.Default = options[prompt.Selected]
	}
	var choice string
	if err := survey.AskOne(q, &choice); err != nil {
		return 0, promptErr(prompt.Label, err)
	}
	return indexOf(options, choice), nil
}

// promptErr maps Ctrl+C and a closed stdin to ErrAborted.
func promptErr(label string, err error) error {
	if errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF) {
		return ErrAborted
	}
	return fmt.Errorf("tui: prompt %q: %w", label, err)
}

// galleryOptions numbers captions so repeated captions stay distinct.
func galleryOptions(captions []string) []string {
	options := make([]string, len(captions))
	for i, caption := range captions {
		options[i] = fmt.Sprintf("%d. %s", i+1, caption)
	}
	return options
}

func indexOf(options []string, value string) int {
	for i, option := range options {
		if option == value {
			return i
		}
	}
	return -1
}
