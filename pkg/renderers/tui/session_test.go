package tui

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-storygen/pkg/page"
	"github.com/goliatone/go-storygen/pkg/testsupport"
)

type stubDriver struct {
	texts    []string
	confirm  bool
	selected int
	err      error

	asked []string
	infos []string
}

func (d *stubDriver) Submit(_ context.Context, label string) (bool, error) {
	d.asked = append(d.asked, label)
	return d.confirm, nil
}

func (d *stubDriver) Pick(_ context.Context, prompt GalleryPrompt) (int, error) {
	d.asked = append(d.asked, prompt.Label)
	return d.selected, nil
}

func (d *stubDriver) Field(_ context.Context, prompt FieldPrompt) (string, error) {
	d.asked = append(d.asked, prompt.Label)
	if d.err != nil {
		return "", d.err
	}
	if len(d.texts) == 0 {
		return prompt.Default, nil
	}
	next := d.texts[0]
	d.texts = d.texts[1:]
	return next, nil
}

func (d *stubDriver) Banner(_ context.Context, text string) error {
	d.infos = append(d.infos, text)
	return nil
}

func TestSessionRun_SubmitsEditedValues(t *testing.T) {
	composer := page.NewComposer(testsupport.MustLoadDefinition(t))
	driver := &stubDriver{texts: []string{"a heist in space", ""}, confirm: true, selected: 3}

	result, err := NewSession(composer, WithPromptDriver(driver)).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := Result{
		Submission: page.Submission{Submitted: true, Prompt: "a heist in space", NegativePrompt: ""},
		Selected:   3,
	}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
	if len(driver.infos) != 1 {
		t.Fatalf("expected banner info, got %v", driver.infos)
	}
}

func TestSessionRun_DefaultsWithoutSubmit(t *testing.T) {
	def := testsupport.MustLoadDefinition(t)
	composer := page.NewComposer(def)
	driver := &stubDriver{confirm: false}

	result, err := NewSession(composer, WithPromptDriver(driver), WithSkipGallery(true)).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := composer.Collector().Defaults()
	if diff := cmp.Diff(want, result.Submission); diff != "" {
		t.Fatalf("submission mismatch (-want +got):\n%s", diff)
	}
	if result.Selected != page.DefaultSelection {
		t.Fatalf("expected default selection, got %d", result.Selected)
	}
	for _, msg := range driver.asked {
		if msg == def.Gallery.Label {
			t.Fatalf("gallery prompt should be skipped")
		}
	}
}

func TestSessionRun_OutOfRangeSelectionResolvesToDefault(t *testing.T) {
	composer := page.NewComposer(testsupport.MustLoadDefinition(t))
	driver := &stubDriver{confirm: true, selected: -1}

	result, err := NewSession(composer, WithPromptDriver(driver)).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Selected != page.DefaultSelection {
		t.Fatalf("expected selection %d, got %d", page.DefaultSelection, result.Selected)
	}
}

func TestSessionRun_PropagatesAbort(t *testing.T) {
	composer := page.NewComposer(testsupport.MustLoadDefinition(t))
	driver := &stubDriver{err: ErrAborted}

	_, err := NewSession(composer, WithPromptDriver(driver)).Run(context.Background())
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestPromptErr(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		aborted bool
	}{
		{name: "interrupt", err: terminal.InterruptErr, aborted: true},
		{name: "closed stdin", err: io.EOF, aborted: true},
		{name: "other", err: errors.New("boom")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := promptErr("Prompt", tc.err)
			if errors.Is(got, ErrAborted) != tc.aborted {
				t.Fatalf("aborted=%v for %v", !tc.aborted, got)
			}
			if !tc.aborted && !errors.Is(got, tc.err) {
				t.Fatalf("expected wrapped error, got %v", got)
			}
		})
	}
}

func TestGalleryOptions_DistinguishRepeatedCaptions(t *testing.T) {
	options := galleryOptions([]string{"Story", "Story", "Quest"})

	want := []string{"1. Story", "2. Story", "3. Quest"}
	if diff := cmp.Diff(want, options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
	if got := indexOf(options, "2. Story"); got != 1 {
		t.Fatalf("expected index 1, got %d", got)
	}
	if got := indexOf(options, "Story"); got != -1 {
		t.Fatalf("expected -1 for bare caption, got %d", got)
	}
}
