package commands

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/coder-go/pkg/coder"
)

// NewImagesCommand creates the images command group.
func NewImagesCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "images",
		Aliases: []string{"image"},
		Short:   "Inspect images",
		Long:    "Inspect container images and their tags",
	}

	cmd.AddCommand(newImagesGetCommand(opts))
	cmd.AddCommand(newImagesTagsCommand(opts))
	cmd.AddCommand(newImagesTagCommand(opts))

	return cmd
}

func newImagesGetCommand(opts *Options) *cobra.Command {
	var withEnvs bool

	cmd := &cobra.Command{
		Use:   "get IMAGE_ID",
		Short: "Get image details",
		Long:  "Display detailed information about a specific image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}

			query := client.Images().Get(args[0])
			if cmd.Flags().Changed("envs") {
				query = query.WithEnvs(withEnvs)
			}

			image, err := fetch[coder.Image](commandContext(cmd), query, "image")
			if err != nil {
				return err
			}

			return render(cmd, opts, image, func(table *tablewriter.Table) {
				table.Header("Property", "Value")
				_ = table.Append("ID", image.ID)
				_ = table.Append("Repository", image.Repository)
				_ = table.Append("Description", orDefault(image.Description))
				_ = table.Append("Organization", image.OrganizationID)
				_ = table.Append("Registry", orDefault(image.Registry.Registry))
				_ = table.Append("Default tag", orDefault(image.DefaultTag.Tag))
				_ = table.Append("Default CPU cores", strconv.FormatInt(image.DefaultCPUCores, 10))
				_ = table.Append("Default memory GB", strconv.FormatInt(image.DefaultMemoryGB, 10))
				_ = table.Append("Default disk GB", strconv.FormatInt(image.DefaultDiskGB, 10))
				_ = table.Append("Deprecated", formatBool(image.Deprecated))
				_ = table.Append("Environments", strconv.Itoa(len(image.Environments)))
				_ = table.Append("Created", formatDate(image.CreatedAt))
			})
		},
	}

	cmd.Flags().BoolVar(&withEnvs, "envs", false, "include the environments using the image")

	return cmd
}

func newImagesTagsCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "tags IMAGE_ID",
		Short: "List image tags",
		Long:  "List the tags of an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}

			tags, err := fetch[[]coder.ImageTag](commandContext(cmd), client.Images().Get(args[0]).Tags(), "image tags")
			if err != nil {
				return err
			}

			return renderList(cmd, opts, tags, "tags", func(table *tablewriter.Table) {
				table.Header("Tag", "Latest hash", "OS", "Hash updated")

				for _, tag := range tags {
					_ = table.Append(tag.Tag, orDefault(tag.LatestHash), osName(tag.OSRelease),
						formatDate(tag.HashLastUpdatedAt))
				}
			})
		},
	}
}

func newImagesTagCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "tag IMAGE_ID TAG",
		Short: "Get image tag details",
		Long:  "Display one tag of an image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}

			tag, err := fetch[coder.ImageTag](commandContext(cmd), client.Images().Get(args[0]).Tags().Get(args[1]), "image tag")
			if err != nil {
				return err
			}

			return render(cmd, opts, tag, func(table *tablewriter.Table) {
				table.Header("Property", "Value")
				_ = table.Append("Image", tag.ImageID)
				_ = table.Append("Tag", tag.Tag)
				_ = table.Append("Latest hash", orDefault(tag.LatestHash))
				_ = table.Append("OS", osName(tag.OSRelease))
				_ = table.Append("Environments", strconv.Itoa(len(tag.Environments)))
				_ = table.Append("Hash updated", formatDate(tag.HashLastUpdatedAt))
				_ = table.Append("Created", formatDate(tag.CreatedAt))
			})
		},
	}
}

func renderImages(cmd *cobra.Command, opts *Options, images []coder.Image) error {
	return renderList(cmd, opts, images, "images", func(table *tablewriter.Table) {
		table.Header("Repository", "ID", "Default tag", "Deprecated", "Environments", "Created")

		for _, image := range images {
			_ = table.Append(image.Repository, image.ID, orDefault(image.DefaultTag.Tag),
				formatBool(image.Deprecated), strconv.Itoa(len(image.Environments)),
				formatDate(image.CreatedAt))
		}
	})
}

func osName(release *coder.OSRelease) string {
	if release == nil {
		return orDefault("")
	}

	return orDefault(release.PrettyName)
}
