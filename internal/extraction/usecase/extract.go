package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tasklens/internal/extraction"
	"tasklens/internal/extraction/normalize"
	"tasklens/internal/extraction/prompt"
	"tasklens/internal/model"
	"tasklens/pkg/llmprovider"
)

// Extract runs one page through the pipeline. Every local precondition
// (quota, key) is checked before the network call, and the quota commits
// only after the response parsed: a failed call never costs the user an
// extraction.
func (uc *implUseCase) Extract(ctx context.Context, sc model.Scope, input extraction.ExtractInput) (extraction.ExtractOutput, error) {
	if input.Content == "" {
		return extraction.ExtractOutput{}, extraction.ErrEmptyContent
	}

	userSettings, err := uc.settings.Current(ctx)
	if err != nil {
		return extraction.ExtractOutput{}, fmt.Errorf("failed to load settings: %w", err)
	}

	today := time.Now().Format(model.UsageDateFormat)

	// Step 1: quota gate. Pro tier is exempt.
	if !userSettings.Pro {
		record, err := uc.quotaRepo.GetUsage(ctx, sc, today)
		if err != nil {
			return extraction.ExtractOutput{}, fmt.Errorf("failed to read usage: %w", err)
		}
		if record.CountedToday(today) >= uc.dailyLimit {
			uc.l.Infof(ctx, "Extract: user=%s quota exhausted (%d/%d)", sc.UserID, record.Count, uc.dailyLimit)
			return extraction.ExtractOutput{}, extraction.ErrQuotaExceeded
		}
	}

	// Step 2: key check, before anything touches the network.
	if userSettings.APIKeyFor(userSettings.AIProvider) == "" {
		return extraction.ExtractOutput{}, &extraction.MissingKeyError{Provider: userSettings.AIProvider}
	}

	provider, ok := uc.registry.Get(string(userSettings.AIProvider))
	if !ok {
		return extraction.ExtractOutput{}, fmt.Errorf("%w: %s", llmprovider.ErrUnknownProvider, userSettings.AIProvider)
	}

	// Step 3: build the prompt.
	p := prompt.Build(input.Content, input.Title, input.Mode, userSettings.Rules)
	promptTokens := uc.estimator.Estimate(p)
	uc.l.Debugf(ctx, "Extract: user=%s mode=%s provider=%s prompt_tokens=%d",
		sc.UserID, input.Mode, provider.Name(), promptTokens)
	if promptTokens+MaxOutputTokens > ContextWindowTokens {
		uc.l.Warnf(ctx, "Extract: user=%s prompt_tokens=%d leaves under %d output tokens in a %d-token window",
			sc.UserID, promptTokens, MaxOutputTokens, ContextWindowTokens)
	}

	// Step 4: single provider attempt. No retry; the user decides whether
	// a failed call is worth repeating.
	resp, err := provider.Complete(ctx, &llmprovider.Request{
		Prompt:      p,
		Temperature: DefaultTemperature,
		MaxTokens:   MaxOutputTokens,
	})
	if err != nil {
		uc.l.Errorf(ctx, "Extract: user=%s provider=%s call failed: %v", sc.UserID, provider.Name(), err)
		return extraction.ExtractOutput{}, err
	}

	// Step 5: normalize the completion into tasks.
	taskList, err := normalize.Tasks(resp.Text)
	if err != nil {
		uc.l.Warnf(ctx, "Extract: user=%s unparseable completion from %s: %v", sc.UserID, provider.Name(), err)
		return extraction.ExtractOutput{}, err
	}

	// Step 6: commit the quota now that the extraction succeeded.
	usedToday := 0
	if !userSettings.Pro {
		record, err := uc.quotaRepo.IncrementUsage(ctx, sc, today)
		if err != nil {
			return extraction.ExtractOutput{}, fmt.Errorf("failed to record usage: %w", err)
		}
		usedToday = record.Count
	}

	result := model.ExtractionResult{
		ID:          uuid.NewString(),
		URL:         input.URL,
		Title:       input.Title,
		Tasks:       taskList,
		CompletedAt: time.Now(),
	}

	// History persistence is best effort: the user already paid for the
	// extraction, so a storage hiccup must not void it.
	if err := uc.history.SaveResult(ctx, sc, result); err != nil {
		uc.l.Warnf(ctx, "Extract: user=%s failed to save result %s: %v", sc.UserID, result.ID, err)
	}

	uc.l.Infof(ctx, "Extract: user=%s provider=%s tasks=%d used=%d/%d",
		sc.UserID, provider.Name(), len(taskList), usedToday, uc.dailyLimit)

	return extraction.ExtractOutput{
		Result:    result,
		Provider:  provider.Name(),
		ModelName: resp.ModelName,
		UsedToday: usedToday,
	}, nil
}

// Usage reports the scope's standing against today's quota.
func (uc *implUseCase) Usage(ctx context.Context, sc model.Scope) (extraction.UsageOutput, error) {
	userSettings, err := uc.settings.Current(ctx)
	if err != nil {
		return extraction.UsageOutput{}, fmt.Errorf("failed to load settings: %w", err)
	}

	today := time.Now().Format(model.UsageDateFormat)
	record, err := uc.quotaRepo.GetUsage(ctx, sc, today)
	if err != nil {
		return extraction.UsageOutput{}, fmt.Errorf("failed to read usage: %w", err)
	}

	count := record.CountedToday(today)
	remaining := uc.dailyLimit - count
	if remaining < 0 {
		remaining = 0
	}

	return extraction.UsageOutput{
		Date:      today,
		Count:     count,
		Limit:     uc.dailyLimit,
		Remaining: remaining,
		Pro:       userSettings.Pro,
	}, nil
}
