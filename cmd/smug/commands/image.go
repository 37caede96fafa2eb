package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/photoflow-io/smugmug/internal/constants"
	"github.com/spf13/cobra"
)

// NewImageCommand creates the image command group.
func NewImageCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "image",
		Aliases: []string{"images"},
		Short:   "Manage images",
		Long:    "Inspect images and download their archived originals",
	}

	cmd.AddCommand(newImageGetCommand())
	cmd.AddCommand(newImageDownloadCommand())

	return cmd
}

func newImageGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get IMAGE_KEY",
		Short: "Get image details",
		Long:  "Display detailed information about an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			imageKey := args[0]

			client, err := CreateClient()
			if err != nil {
				return err
			}

			image, err := client.Images().Get(context.Background(), imageKey)
			if err != nil {
				return fmt.Errorf("failed to get image '%s': %w", imageKey, err)
			}

			structured, err := renderStructured(image)
			if structured || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("File Name", orNotAvailable(image.FileName))
			_ = table.Append("Format", orNotAvailable(image.Format))
			_ = table.Append("Caption", orNotAvailable(image.Caption))
			_ = table.Append("Video", strconv.FormatBool(image.IsVideo))
			_ = table.Append("Archive Size", strconv.FormatUint(image.ArchivedSize, 10))

			if image.DateTimeUploaded != nil {
				_ = table.Append("Uploaded", image.DateTimeUploaded.Format(timeFormat))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newImageDownloadCommand() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "download IMAGE_KEY",
		Short: "Download an image's archived original",
		Long:  "Download the archived original bytes of an image, verifying size and checksum",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImageDownloadCommand(args[0], outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output-file", "o", "", "destination path (defaults to the image file name)")

	return cmd
}

func runImageDownloadCommand(imageKey, outputPath string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	image, err := client.Images().Get(ctx, imageKey)
	if err != nil {
		return fmt.Errorf("failed to get image '%s': %w", imageKey, err)
	}

	data, err := client.Images().DownloadArchive(ctx, image)
	if err != nil {
		return fmt.Errorf("failed to download image '%s': %w", imageKey, err)
	}

	if outputPath == "" {
		outputPath = image.FileName
	}

	if outputPath == "" {
		return constants.ErrOutputPathRequired
	}

	if strings.Contains(outputPath, "..") {
		return constants.ErrDirectoryTraversalDetected
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		err = os.MkdirAll(dir, constants.ConfigDirPerm)
		if err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	err = os.WriteFile(outputPath, data, constants.DownloadFilePerm)
	if err != nil {
		return fmt.Errorf("writing '%s': %w", outputPath, err)
	}

	fmt.Fprintf(os.Stdout, "Downloaded %d bytes to %s\n", len(data), outputPath)

	return nil
}
