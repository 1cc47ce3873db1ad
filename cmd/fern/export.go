package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/fern-ui/fern/internal/demo"
	"github.com/fern-ui/fern/pkg/export"
)

func exportCmd() *cobra.Command {
	var (
		outDir string
		bucket string
		prefix string
		region string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the demo pages as static HTML",
		Long: `Render the demo pages and publish them, either to a local
directory (--out) or to an S3 bucket (--bucket).

S3 credentials come from the standard environment variables
(AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, AWS_SESSION_TOKEN).

Examples:
  fern export --out=./dist
  fern export --bucket=my-site --region=eu-west-1 --prefix=public/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			pub, err := buildPublisher(outDir, bucket, prefix, region)
			if err != nil {
				return err
			}

			e := export.New(demoPages(), export.WithLogger(slog.Default()))
			return e.Run(ctx, pub)
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory")
	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "S3 bucket name")
	cmd.Flags().StringVar(&prefix, "prefix", "", "S3 key prefix")
	cmd.Flags().StringVar(&region, "region", "us-east-1", "S3 region")

	return cmd
}

func buildPublisher(outDir, bucket, prefix, region string) (export.Publisher, error) {
	switch {
	case outDir != "" && bucket != "":
		return nil, errors.New("--out and --bucket are mutually exclusive")
	case outDir != "":
		return export.NewDirPublisher(outDir), nil
	case bucket != "":
		client := s3.NewFromConfig(aws.Config{
			Region:      region,
			Credentials: envCredentials(),
		})
		return export.NewS3Publisher(client, bucket, prefix), nil
	default:
		return nil, errors.New("one of --out or --bucket is required")
	}
}

// envCredentials reads static credentials from the standard AWS
// environment variables.
func envCredentials() aws.CredentialsProvider {
	return aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
		id := os.Getenv("AWS_ACCESS_KEY_ID")
		secret := os.Getenv("AWS_SECRET_ACCESS_KEY")
		if id == "" || secret == "" {
			return aws.Credentials{}, errors.New("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set")
		}
		return aws.Credentials{
			AccessKeyID:     id,
			SecretAccessKey: secret,
			SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
			Source:          "environment",
		}, nil
	})
}

// demoPages is the fixed page set of the demo site.
func demoPages() []export.Page {
	return []export.Page{
		{Path: "/", Title: "fern demo", Component: demo.App},
	}
}
