package app

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/vk/samudra/internal/annotate"
	"github.com/vk/samudra/internal/ctxlog"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// errorPayload is what a failed input is reported as, on stdout or in an
// HTTP response.
type errorPayload struct {
	Error     string                        `json:"error"`
	Malformed *annotate.MalformedInputError `json:"malformed,omitempty"`
}

func newErrorPayload(err error) errorPayload {
	payload := errorPayload{Error: err.Error()}
	if mie, ok := annotate.AsMalformedInput(err); ok {
		payload.Malformed = mie
	}
	return payload
}

// process parses body and, when lemma is set, drafts a konsep of it. The
// result is an *annotate.Text or a *lexicon.KonsepDraft.
func (a *App) process(ctx context.Context, lemma, body string) (any, error) {
	logger := ctxlog.FromContext(ctx)

	start := time.Now()
	text, err := a.parser.Parse(body)
	a.metrics.ObserveParse(start, text, err)
	if err != nil {
		logger.Debug("Input rejected.", "error", err)
		return nil, err
	}
	logger.Debug("Input parsed.", "tags", len(text.Tags), "namespaces", len(text.Fields))

	if lemma == "" {
		return text, nil
	}
	draft, err := a.builder.Draft(lemma, text)
	a.metrics.ObserveDraft(err)
	if err != nil {
		logger.Debug("Draft rejected.", "lemma", lemma, "error", err)
		return nil, err
	}
	return draft, nil
}
