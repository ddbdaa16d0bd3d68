package usecase

import (
	"context"
	"fmt"

	"reminder-extractor/internal/extraction"
)

// ExtractDocuments runs ExtractDocument for each path strictly in order.
// A failing document is recorded in its result and the batch moves on,
// unless StopOnError is set.
func (uc *implUseCase) ExtractDocuments(ctx context.Context, input extraction.ExtractDocumentsInput) (extraction.ExtractDocumentsOutput, error) {
	if len(input.Paths) == 0 {
		return extraction.ExtractDocumentsOutput{}, extraction.ErrNoDocuments
	}

	out := extraction.ExtractDocumentsOutput{Results: make([]extraction.DocumentResult, 0, len(input.Paths))}
	for i, path := range input.Paths {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		uc.l.Infof(ctx, "ExtractDocuments: %d/%d path=%s", i+1, len(input.Paths), path)
		res, err := uc.ExtractDocument(ctx, extraction.ExtractDocumentInput{Path: path, Model: input.Model})
		out.Results = append(out.Results, extraction.DocumentResult{
			Path:     path,
			Tasks:    res.Tasks,
			Fallback: res.Fallback,
			Warnings: res.Warnings,
			Err:      err,
		})

		if err != nil {
			out.Failed++
			uc.l.Errorf(ctx, "ExtractDocuments: path=%s failed: %v", path, err)
			if input.StopOnError {
				return out, fmt.Errorf("document %d of %d (%s): %w", i+1, len(input.Paths), path, err)
			}
			continue
		}
		out.Succeeded++
	}

	uc.l.Infof(ctx, "ExtractDocuments: done succeeded=%d failed=%d", out.Succeeded, out.Failed)
	return out, nil
}
