package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/bstardust/photo-gps-report/internal/config"
	"github.com/bstardust/photo-gps-report/internal/fshelper"
	"github.com/bstardust/photo-gps-report/internal/logger"
	"github.com/bstardust/photo-gps-report/internal/publish"
	"github.com/bstardust/photo-gps-report/internal/report"
	"github.com/bstardust/photo-gps-report/pkg/common"
	"github.com/bstardust/photo-gps-report/pkg/s3client"
)

func newReportCommand(cfg *config.Config) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "photo-gps-report [flags] <photos-dir>",
		Short: "Extract GPS positions from JPEG photos into a CSV or XLSX report",
		Long: `Walks a directory of JPEG photos, reads the GPS position and camera
model from each photo's EXIF data and writes one row per photo to a
CSV or XLSX report. Photos without usable EXIF data still get a row,
with only the path filled in.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			merged, err := mergeConfig(cmd, cfg, configPath)
			if err != nil {
				return err
			}
			return runReport(cmd.Context(), merged, args[0])
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to YAML config file")
	cmd.Flags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Report file to write (.csv or .xlsx)")

	// Publish flags
	cmd.Flags().BoolVar(&cfg.Publish.Enabled, "publish", false, "Upload the finished report to S3-compatible storage")
	cmd.Flags().StringVar(&cfg.Publish.Endpoint, "endpoint", "", "S3 endpoint URL")
	cmd.Flags().StringVar(&cfg.Publish.Region, "region", cfg.Publish.Region, "S3 region")
	cmd.Flags().StringVar(&cfg.Publish.Bucket, "bucket", "", "S3 bucket name")
	cmd.Flags().StringVar(&cfg.Publish.AccessKey, "access-key", "", "S3 access key")
	cmd.Flags().StringVar(&cfg.Publish.SecretKey, "secret-key", "", "S3 secret key")
	cmd.Flags().BoolVar(&cfg.Publish.UseSSL, "use-ssl", cfg.Publish.UseSSL, "Use SSL for the S3 connection")
	cmd.Flags().StringVar(&cfg.Publish.Prefix, "prefix", "", "Prefix for S3 object keys")

	return cmd
}

// mergeConfig layers the config file under any flags the user set
// explicitly. Without a config file the flag values are used as-is.
func mergeConfig(cmd *cobra.Command, flagCfg *config.Config, path string) (*config.Config, error) {
	if path == "" {
		return flagCfg, nil
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = flagCfg.LogLevel
	}
	if flags.Changed("output") {
		cfg.Output = flagCfg.Output
	}
	if flags.Changed("publish") {
		cfg.Publish.Enabled = flagCfg.Publish.Enabled
	}
	if flags.Changed("endpoint") {
		cfg.Publish.Endpoint = flagCfg.Publish.Endpoint
	}
	if flags.Changed("region") {
		cfg.Publish.Region = flagCfg.Publish.Region
	}
	if flags.Changed("bucket") {
		cfg.Publish.Bucket = flagCfg.Publish.Bucket
	}
	if flags.Changed("access-key") {
		cfg.Publish.AccessKey = flagCfg.Publish.AccessKey
	}
	if flags.Changed("secret-key") {
		cfg.Publish.SecretKey = flagCfg.Publish.SecretKey
	}
	if flags.Changed("use-ssl") {
		cfg.Publish.UseSSL = flagCfg.Publish.UseSSL
	}
	if flags.Changed("prefix") {
		cfg.Publish.Prefix = flagCfg.Publish.Prefix
	}
	return cfg, nil
}

func runReport(ctx context.Context, cfg *config.Config, photosDir string) error {
	logger.SetLevel(cfg.LogLevel)

	dir, err := fshelper.OpenDir(photosDir)
	if err != nil {
		return err
	}

	records, err := report.NewBuilder(dir, dir.Name()).Run(ctx)
	if err != nil {
		return err
	}

	outputPath, format := report.ResolveOutputPath(cfg.Output)
	if err := report.Write(outputPath, format, records); err != nil {
		return err
	}

	if !cfg.Publish.Enabled {
		return nil
	}
	return publishReport(ctx, cfg.Publish, outputPath)
}

func publishReport(ctx context.Context, cfg config.PublishConfig, reportPath string) error {
	client, err := s3client.New(ctx, s3client.Config{
		Endpoint:  cfg.Endpoint,
		Region:    cfg.Region,
		Bucket:    cfg.Bucket,
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
		UseSSL:    cfg.UseSSL,
		Prefix:    cfg.Prefix,
	})
	if err != nil {
		return common.NewPublishError("failed to initialize S3 client: %v", err)
	}

	return publish.New(client).Run(ctx, reportPath)
}
