package core

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"pravobot/internal/catalog"
	"pravobot/internal/llm"
	"pravobot/pkg"
)

// Assistant answers free-text legal questions through the model
// collaborator and enriches the raw output with a document link and a
// matching video recommendation from the catalog.
type Assistant struct {
	llm       llm.Client
	index     *catalog.Index
	maxTokens int
	logger    *slog.Logger
}

// NewAssistant constructs the answer pipelines.
func NewAssistant(client llm.Client, index *catalog.Index, maxTokens int, logger *slog.Logger) *Assistant {
	return &Assistant{llm: client, index: index, maxTokens: maxTokens, logger: logger}
}

// Answer handles a free-text question.  Questions mentioning court
// decisions get the court prompt variant: the model is expected to name a
// registry link directly, which is extracted but the text is returned
// unchanged.  All other questions get the general legal prompt followed by
// full enrichment: first URL extracted as the document link and removed
// from the text, keywords derived from the cleaned text, and the first
// matching catalog video attached.
//
// On model failure the returned reply carries the fixed apology text and
// the error is passed back for the caller to record; there is no retry.
func (a *Assistant) Answer(ctx context.Context, question string) (pkg.EnrichedReply, error) {
	q := strings.ToLower(question)
	if MentionsCourtDecisions(q) {
		text, err := a.llm.Complete(ctx, SystemPromptCourt, fmt.Sprintf(courtInlinePromptFmt, q), a.maxTokens)
		if err != nil {
			a.logger.Error("court answer failed", "error", err)
			return pkg.EnrichedReply{Text: ApologyMessage}, err
		}
		return pkg.EnrichedReply{Text: text, DocumentLink: ExtractLink(text)}, nil
	}

	text, err := a.llm.Complete(ctx, SystemPromptLegal, fmt.Sprintf(legalPromptFmt, q), a.maxTokens)
	if err != nil {
		a.logger.Error("legal answer failed", "error", err)
		return pkg.EnrichedReply{Text: ApologyMessage}, err
	}
	documentLink := ExtractLink(text)
	cleaned := RemoveLink(text, documentLink)
	videoLink := a.index.Lookup(ExtractKeywords(cleaned))
	return pkg.EnrichedReply{
		Text:         cleaned,
		VideoLink:    videoLink,
		DocumentLink: documentLink,
	}, nil
}

// CourtAnswer handles a question submitted through an open court-decision
// session.  It is a one-shot call: the court prompt is used regardless of
// phrasing, the text comes back unchanged, and the only enrichment is the
// extracted document link.  Failure behavior matches Answer.
func (a *Assistant) CourtAnswer(ctx context.Context, question string) (pkg.EnrichedReply, error) {
	text, err := a.llm.Complete(ctx, SystemPromptCourt, fmt.Sprintf(courtSessionPromptFmt, strings.ToLower(question)), a.maxTokens)
	if err != nil {
		a.logger.Error("court session answer failed", "error", err)
		return pkg.EnrichedReply{Text: ApologyMessage}, err
	}
	return pkg.EnrichedReply{Text: text, DocumentLink: ExtractLink(text)}, nil
}
