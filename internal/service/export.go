package service

import (
	"context"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"exusiai.dev/equipsorter/internal/app/appconfig"
	"exusiai.dev/equipsorter/internal/model"
	"exusiai.dev/equipsorter/internal/pkg/apperr"
	"exusiai.dev/equipsorter/internal/pkg/flog"
	"exusiai.dev/equipsorter/internal/pkg/publisher"
	"exusiai.dev/equipsorter/internal/pkg/statprofile"
	"exusiai.dev/equipsorter/internal/repo"
	"exusiai.dev/equipsorter/internal/util"
)

const (
	FullFileName    = "equipment stats full.csv"
	MinimalFileName = "equipment stats minimal.csv"
)

// ExportJob is the explicit configuration of one export run.
type ExportJob struct {
	InputPath   string `validate:"required,file"`
	OutputDir   string `validate:"required,dir"`
	Minimal     bool
	LabelHeader string `validate:"labelheader"`
	StatsColumn int    `validate:"gte=-1"`
	Publish     bool
}

type ExportResult struct {
	RunID        string
	OutputPath   string
	Rows         int
	Layout       repo.Layout
	PublishedKey string
}

type Export struct {
	EquipmentRepo *repo.Equipment
	Config        *appconfig.Config

	// Publisher is nil when publishing is not configured.
	Publisher *publisher.Publisher

	validator *util.Validator
}

func NewExport(equipmentRepo *repo.Equipment, conf *appconfig.Config, pub *publisher.Publisher) *Export {
	return &Export{
		EquipmentRepo: equipmentRepo,
		Config:        conf,
		Publisher:     pub,
		validator:     util.NewValidator(),
	}
}

// JobFromConfig seeds a job with the configured defaults. Callers override
// fields from command line flags afterwards.
func (s *Export) JobFromConfig() ExportJob {
	return ExportJob{
		InputPath:   s.Config.InputPath,
		OutputDir:   s.Config.OutputDir,
		Minimal:     s.Config.Minimal,
		LabelHeader: s.Config.ProcessedStatsHeader,
		StatsColumn: s.Config.StatsColumn,
		Publish:     s.Config.PublishEnabled(),
	}
}

func (s *Export) Validate(job ExportJob) error {
	err := s.validator.Struct(job)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(err, "failed to validate export job")
	}
	for _, fe := range verrs {
		switch {
		case fe.Field() == "InputPath" && fe.Tag() == "file":
			return apperr.ErrNotFound.Msg("input file %q does not exist", job.InputPath)
		case fe.Field() == "OutputDir" && fe.Tag() == "dir":
			return apperr.ErrNotFound.Msg("output folder %q does not exist", job.OutputDir)
		}
	}
	return apperr.NewInvalidViolations(s.validator.Violations(verrs))
}

func (s *Export) Run(ctx context.Context, job ExportJob) (*ExportResult, error) {
	if err := s.Validate(job); err != nil {
		return nil, err
	}
	if job.Publish && s.Publisher == nil {
		return nil, apperr.ErrInvalidConfig.Msg("publishing requested but no s3 bucket is configured")
	}

	ctx, runID := flog.WithRun(ctx)

	table, layout, err := s.EquipmentRepo.Load(ctx, job.InputPath, repo.LoadOptions{StatsColumn: job.StatsColumn})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load equipment file")
	}
	if !job.Minimal && lo.Contains(table.Columns, job.LabelHeader) {
		return nil, apperr.ErrInvalidConfig.Msg("label header %q collides with an input column", job.LabelHeader)
	}

	Augment(table.Rows)

	result := &ExportResult{
		RunID:  runID.String(),
		Rows:   len(table.Rows),
		Layout: layout,
	}
	if job.Minimal {
		result.OutputPath = filepath.Join(job.OutputDir, MinimalFileName)
		err = s.EquipmentRepo.StoreMinimal(ctx, result.OutputPath, job.LabelHeader, table)
	} else {
		result.OutputPath = filepath.Join(job.OutputDir, FullFileName)
		err = s.EquipmentRepo.StoreFull(ctx, result.OutputPath, job.LabelHeader, table)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to store equipment file")
	}

	flog.InfoFrom(ctx).
		Str("evt.name", "export.written").
		Str("output", result.OutputPath).
		Int("rows", result.Rows).
		Str("layout", layout.String()).
		Bool("minimal", job.Minimal).
		Msg("export written")

	if job.Publish {
		result.PublishedKey, err = s.Publisher.Publish(ctx, result.OutputPath)
		if err != nil {
			return result, errors.Wrap(err, "failed to publish export")
		}
	}

	return result, nil
}

// Augment sets the processed stats label of every row.
func Augment(rows []*model.Equipment) {
	for _, row := range rows {
		row.ProcessedStats = statprofile.Classify(row.Stats)
	}
}
