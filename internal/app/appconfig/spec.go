package appconfig

import (
	"exusiai.dev/equipsorter/internal/app/appcontext"
)

type ConfigSpec struct {
	// InputPath is the equipment CSV file to read. Usually given with --input instead.
	InputPath string `split_words:"true"`

	// OutputDir is the folder the exported CSV files are written to. Usually given with --output instead.
	OutputDir string `split_words:"true"`

	// Minimal selects the minimal projection (rarity, rank, name, stats, processed stats, id)
	// instead of the full column set.
	Minimal bool `split_words:"true" default:"false"`

	// ProcessedStatsHeader is the header of the derived label column.
	ProcessedStatsHeader string `required:"true" split_words:"true" default:"processed stats"`

	// StatsColumn forces the zero-based index of the stats column. A negative value
	// detects the layout from the file header.
	StatsColumn int `split_words:"true" default:"-1"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// LogFile is an optional file that receives a copy of all logs, rotated at 10 MiB.
	LogFile string `split_words:"true"`

	// DevMode to indicate development mode. When true, the logger runs at trace level.
	DevMode bool `split_words:"true"`

	// S3 publication. Leaving PublishS3Bucket empty disables publishing.

	// PublishS3Bucket is the bucket exported files are uploaded to.
	PublishS3Bucket string `split_words:"true"`

	// PublishS3Prefix is prepended to the file name, with no leading slash but optionally
	// (typically) with trailing slash, e.g. "exports/".
	PublishS3Prefix string `split_words:"true" default:"exports/"`

	PublishS3Region string `split_words:"true" default:"us-east-1"`

	// PublishOverwrite allows replacing an object that already exists in the bucket.
	PublishOverwrite bool `split_words:"true" default:"false"`

	// AWSAccessKey and AWSSecretKey are static credentials for the bucket. When empty the
	// default AWS credential chain is used.
	AWSAccessKey string `split_words:"true"`
	AWSSecretKey string `split_words:"true"`
}

type Config struct {
	// ConfigSpec is the configuration specification injected to the config.
	ConfigSpec

	// AppContext is the application context
	AppContext appcontext.Ctx
}

// PublishEnabled reports whether exported files should be uploaded to S3.
func (c *Config) PublishEnabled() bool {
	return c.PublishS3Bucket != ""
}
