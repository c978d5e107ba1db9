package mapping_service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/init-pkg/sheet-export/domain/app"
	"github.com/init-pkg/sheet-export/domain/errs"
	"github.com/init-pkg/sheet-export/domain/fields"
	"github.com/init-pkg/sheet-export/domain/workbook"
	"github.com/init-pkg/sheet-export/internal/app/mapping/merger"
	"github.com/init-pkg/sheet-export/internal/app/mapping/scanner"
)

type Service struct {
	log        *slog.Logger
	parser     app.ExcelParserService
	scanner    *scanner.Scanner
	merger     *merger.Merger
	inferrer   app.Inferrer
	registry   app.FieldRegistryService
	vocabulary fields.Vocabulary
}

func New(
	log *slog.Logger,
	parser app.ExcelParserService,
	scanner *scanner.Scanner,
	merger *merger.Merger,
	inferrer app.Inferrer,
	registry app.FieldRegistryService,
	vocabulary fields.Vocabulary,
) *Service {
	return &Service{
		log:        log,
		parser:     parser,
		scanner:    scanner,
		merger:     merger,
		inferrer:   inferrer,
		registry:   registry,
		vocabulary: vocabulary,
	}
}

func (this *Service) Scan(ctx context.Context, file []byte) (*app.ScanResult, error) {
	wb, err := this.parser.Parse(ctx, file)
	if err != nil {
		return nil, err
	}

	transcript, rows := this.scanner.Transcript(wb)
	return &app.ScanResult{
		Candidates:     this.scanner.Candidates(wb),
		Transcript:     transcript,
		TranscriptRows: rows,
	}, nil
}

// Generate never fails on inference: the scanner candidates are returned with
// a diagnostic instead.
func (this *Service) Generate(ctx context.Context, req app.GenerateMappingRequest) (*app.GenerateMappingResult, error) {
	scan, err := this.Scan(ctx, req.File)
	if err != nil {
		return nil, err
	}

	result := &app.GenerateMappingResult{
		Mapping:        scan.Candidates.Clone(),
		Candidates:     scan.Candidates,
		Inferred:       workbook.Mapping{},
		TranscriptRows: scan.TranscriptRows,
	}

	text, err := this.inferrer.Infer(ctx, scan.Transcript)
	if err != nil {
		result.Diagnostic = err.Error()
		var appErr *errs.AppError
		if errors.As(err, &appErr) && appErr.Kind == errs.KindUpstream {
			result.Upstream = &app.UpstreamDetail{
				Status:  appErr.Status,
				Details: fmt.Sprint(appErr.Details),
			}
		}
		this.log.WarnContext(ctx, "inference unavailable, using scanner candidates",
			slog.String("error", err.Error()),
			slog.Int("candidates", len(scan.Candidates)),
		)
	} else {
		merged, inferred, merr := this.merger.Merge(scan.Candidates, text)
		result.Mapping = merged
		result.Inferred = inferred
		if merr != nil {
			result.Diagnostic = merr.Error()
		}
	}

	if req.WholesalerID != "" {
		if err := this.RegisterKeys(ctx, result.Mapping, req.WholesalerID); err != nil {
			return nil, err
		}
	}

	this.log.InfoContext(ctx, "mapping generated",
		slog.String("wholesaler_id", req.WholesalerID),
		slog.Int("candidates", len(result.Candidates)),
		slog.Int("inferred", len(result.Inferred)),
		slog.Int("mapping", len(result.Mapping)),
	)
	return result, nil
}

// RegisterKeys partitions the mapping keys into global, provider and custom
// and ensures each non-empty partition once. Without a wholesaler only the
// global partition is registered.
func (this *Service) RegisterKeys(ctx context.Context, mapping workbook.Mapping, wholesalerID string) error {
	var global, provider, custom []string
	for _, key := range mapping.Keys() {
		switch {
		case this.vocabulary.IsGlobal(key):
			global = append(global, key)
		case this.vocabulary.IsProvider(key):
			provider = append(provider, key)
		default:
			custom = append(custom, key)
		}
	}

	var owner *string
	if wholesalerID != "" {
		owner = &wholesalerID
	}

	requests := []app.EnsureFieldsRequest{
		{Keys: global, Scope: fields.ScopeGlobal, Source: fields.SourceManual},
	}
	if owner != nil {
		requests = append(requests,
			app.EnsureFieldsRequest{Keys: provider, Scope: fields.ScopeWholesaler, WholesalerID: owner, Source: fields.SourceBreww},
			app.EnsureFieldsRequest{Keys: custom, Scope: fields.ScopeWholesaler, WholesalerID: owner, Source: fields.SourceManual},
		)
	}

	for _, req := range requests {
		if len(req.Keys) == 0 {
			continue
		}
		if err := this.registry.Ensure(ctx, req); err != nil {
			return errs.WrapAppError(err, &errs.ErrorOpts{Message: "register field keys"})
		}
	}
	return nil
}
