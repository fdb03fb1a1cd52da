package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/anupcshan/bin2dataset/dataset"
)

func NewRootCmd() *cobra.Command {
	cfg := dataset.DefaultConfig()
	var verbose bool

	cmd := &cobra.Command{
		Use:   "bin2dataset [files...]",
		Short: "Pack binary data blocks into an XML dataset",
		Long: `Packs one or several data blocks into a dataset, using the provided XML template.

Each block is written as comma-separated hex bytes with its last two bytes
replaced by the CRC-16/CCITT-FALSE of the rest of the block. The encoded
blocks replace the <!--PARAMETERS--> marker of the template.

Names of the files should contain the address of the block as the last
suffix before the file extension:

  [ZDC_NAME.]PARAMETER_NAME.ADDRESS.ext

Example:
  bin2dataset CONT.PARAM.00A1.bin CONT.CAL.0400.bin --template=XMLMSG.xml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}

			if len(args) == 0 {
				logrus.Warn("No file name(s) provided")
				return cmd.Help()
			}

			if err := cfg.Validate(); err != nil {
				return err
			}
			if !cfg.KnownFormat() {
				logrus.Warnf("Unknown format %q ignored, input is read as binary", cfg.Format)
			}

			return runBuild(cmd.Context(), cfg, args)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&cfg.UseContainerPrefix, "zdc", cfg.UseContainerPrefix, "Use file name prefix as ZDC container name")
	flags.StringVar(&cfg.TemplatePath, "template", cfg.TemplatePath, "Template of the dataset")
	flags.IntVar(&cfg.WrapWidth, "caret", cfg.WrapWidth, "Add a line break every N bytes")
	flags.StringVar(&cfg.OutputName, "output", cfg.OutputName, "Output dataset file name when no ZDC name is available")
	flags.StringVar(&cfg.Format, "format", cfg.Format, "Format of the input data [hex|bin], currently ignored")
	flags.StringVar(&cfg.OutputDir, "output-dir", cfg.OutputDir, "Directory to write the dataset to")
	flags.IntVarP(&cfg.Jobs, "jobs", "j", cfg.Jobs, "Number of input files to read concurrently")
	flags.StringVar(&cfg.MetricsTextfile, "metrics-textfile", cfg.MetricsTextfile, "Write run metrics in Prometheus text format to this file")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log every encoded block")

	return cmd
}

func runBuild(ctx context.Context, cfg dataset.Config, paths []string) error {
	b := dataset.NewBuilder(cfg)
	out, err := b.Run(ctx, paths)
	if err != nil {
		return err
	}

	logrus.Infof("%s created", out)
	return nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		logrus.Error(err)
		stop()
		os.Exit(1)
	}
}
