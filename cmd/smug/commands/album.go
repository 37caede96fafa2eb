package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/photoflow-io/smugmug/pkg/smugmug"
	"github.com/spf13/cobra"
)

// NewAlbumCommand creates the album command group.
func NewAlbumCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "album",
		Aliases: []string{"albums"},
		Short:   "Manage albums",
		Long:    "Inspect albums, list their images, and manage upload keys",
	}

	cmd.AddCommand(newAlbumGetCommand())
	cmd.AddCommand(newAlbumImagesCommand())
	cmd.AddCommand(newAlbumSetUploadKeyCommand())
	cmd.AddCommand(newAlbumClearUploadKeyCommand())

	return cmd
}

func newAlbumGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ALBUM_KEY",
		Short: "Get album details",
		Long:  "Display detailed information about an album",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			albumKey := args[0]

			client, err := CreateClient()
			if err != nil {
				return err
			}

			album, err := client.Albums().Get(context.Background(), albumKey)
			if err != nil {
				return fmt.Errorf("failed to get album '%s': %w", albumKey, err)
			}

			structured, err := renderStructured(album)
			if structured || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("Key", album.AlbumKey)
			_ = table.Append("Name", orNotAvailable(album.Name))
			_ = table.Append("Privacy", string(album.Privacy))
			_ = table.Append("Images", strconv.Itoa(album.ImageCount))
			_ = table.Append("Upload Key", orNotAvailable(album.UploadKey))

			if album.LastUpdated != nil {
				_ = table.Append("Updated", album.LastUpdated.Format(timeFormat))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

// AlbumImagesOptions holds the options for listing album images.
type AlbumImagesOptions struct {
	Count     int
	MaxImages int
}

func newAlbumImagesCommand() *cobra.Command {
	var opts AlbumImagesOptions

	cmd := &cobra.Command{
		Use:   "images ALBUM_KEY",
		Short: "List album images",
		Long:  "List the images of an album, following pagination",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlbumImagesCommand(args[0], opts)
		},
	}

	cmd.Flags().IntVar(&opts.Count, "count", smugmug.DefaultPageSize, "page size")
	cmd.Flags().IntVar(&opts.MaxImages, "max", 0, "stop after this many images (0 for all)")

	return cmd
}

func runAlbumImagesCommand(albumKey string, opts AlbumImagesOptions) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	album, err := client.Albums().Get(ctx, albumKey)
	if err != nil {
		return fmt.Errorf("failed to get album '%s': %w", albumKey, err)
	}

	params := smugmug.NewImagesParams().WithCount(opts.Count)

	iter, err := client.Albums().Images(ctx, album, params)
	if err != nil {
		return fmt.Errorf("failed to list images of '%s': %w", albumKey, err)
	}

	images, err := collectImages(iter, opts.MaxImages)
	if err != nil {
		return fmt.Errorf("failed to list images of '%s': %w", albumKey, err)
	}

	return outputImages(images)
}

func collectImages(iter *smugmug.Iterator[smugmug.Image], max int) ([]smugmug.Image, error) {
	if max <= 0 {
		return iter.All()
	}

	images := make([]smugmug.Image, 0, max)

	for iter.HasNext() && len(images) < max {
		image, err := iter.Next()
		if err != nil {
			return nil, err
		}

		images = append(images, image)
	}

	return images, nil
}

func outputImages(images []smugmug.Image) error {
	structured, err := renderStructured(images)
	if structured || err != nil {
		return err
	}

	if len(images) == 0 {
		_, _ = os.Stdout.WriteString("No images found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("File Name", "Format", "Caption", "Video")

	for _, image := range images {
		_ = table.Append(image.FileName, image.Format, image.Caption, strconv.FormatBool(image.IsVideo))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newAlbumSetUploadKeyCommand() *cobra.Command {
	var uploadKey string

	cmd := &cobra.Command{
		Use:   "set-upload-key ALBUM_KEY",
		Short: "Set an album's upload key",
		Long:  "Set the guest upload key on an album",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			albumKey := args[0]

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			album, err := client.Albums().Get(ctx, albumKey)
			if err != nil {
				return fmt.Errorf("failed to get album '%s': %w", albumKey, err)
			}

			updated, err := client.Albums().SetUploadKey(ctx, album, uploadKey)
			if err != nil {
				return fmt.Errorf("failed to set upload key on '%s': %w", albumKey, err)
			}

			fmt.Fprintf(os.Stdout, "Successfully set upload key on album '%s'\n", updated.AlbumKey)

			return nil
		},
	}

	cmd.Flags().StringVar(&uploadKey, "key", "", "upload key value (required)")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}

func newAlbumClearUploadKeyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-upload-key ALBUM_KEY",
		Short: "Clear an album's upload key",
		Long:  "Remove the guest upload key from an album",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			albumKey := args[0]

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			album, err := client.Albums().Get(ctx, albumKey)
			if err != nil {
				return fmt.Errorf("failed to get album '%s': %w", albumKey, err)
			}

			_, err = client.Albums().ClearUploadKey(ctx, album)
			if err != nil {
				return fmt.Errorf("failed to clear upload key on '%s': %w", albumKey, err)
			}

			fmt.Fprintf(os.Stdout, "Successfully cleared upload key on album '%s'\n", albumKey)

			return nil
		},
	}
}
