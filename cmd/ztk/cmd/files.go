package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/ztk/foundation/core/options"
	"github.com/msto63/ztk/foundation/utils/filex"
	"github.com/msto63/ztk/internal/tui"
)

var fileCmd = &cobra.Command{
	Use:   "file <path>",
	Short: "Check a file against the upload rules",
	Long: `Checks a file's size and type against the upload rules of the toolkit
configuration, overridden by flags.

Examples:
  ztk file report.pdf
  ztk file --max-size 2 --types "image/*,application/pdf" scan.png`,
	Args: cobra.ExactArgs(1),
	RunE: runFile,
}

var filetypeCmd = &cobra.Command{
	Use:   "filetype <mime-type>",
	Short: "Check a MIME type against an allow-list",
	Long: `Checks a MIME type against the allow-list of the toolkit configuration
or --types. Patterns such as image/* require --wildcard.

Examples:
  ztk filetype image/png
  ztk filetype --wildcard --types "image/*" image/webp`,
	Args: cobra.ExactArgs(1),
	RunE: runFiletype,
}

var imageCmd = &cobra.Command{
	Use:   "image <path>",
	Short: "Print the dimensions of an image",
	Long: `Reads the pixel dimensions of a PNG, JPEG or GIF image.

Examples:
  ztk image photo.jpg
  ztk image --timeout 2s --on-error return-null broken.png`,
	Args: cobra.ExactArgs(1),
	RunE: runImage,
}

func init() {
	rootCmd.AddCommand(fileCmd, filetypeCmd, imageCmd)

	fileCmd.Flags().Float64("max-size", 5, "maximum size in MB")
	fileCmd.Flags().String("types", "", "comma separated allowed MIME types")
	fileCmd.Flags().Bool("wildcard", false, "allow patterns such as image/*")
	fileCmd.Flags().Bool("json", false, "print the file description as JSON")

	filetypeCmd.Flags().String("types", "", "comma separated allowed MIME types")
	filetypeCmd.Flags().Bool("wildcard", false, "allow patterns such as image/*")
	filetypeCmd.Flags().Bool("case-insensitive", true, "compare case-insensitively")
	filetypeCmd.Flags().Bool("image", false, "accept only image types")

	imageCmd.Flags().Duration("timeout", filex.DefaultImageTimeout, "decode timeout")
	imageCmd.Flags().String("on-error", string(filex.OnErrorThrow), "throw or return-null")
}

func runFile(cmd *cobra.Command, args []string) error {
	file, err := filex.UploadFileFromPath(args[0])
	if err != nil {
		return err
	}
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		if err := printJSON(cmd, file); err != nil {
			return err
		}
	} else {
		w := out(cmd)
		fmt.Fprintln(w, tui.RenderField("name", file.Name))
		fmt.Fprintln(w, tui.RenderField("size", filex.FormatSize(file.Size)))
		fmt.Fprintln(w, tui.RenderField("type", file.Type))
	}

	result, err := filex.ValidateFileBeforeUpload(file, filex.ValidateFileOptions{
		MaxSize:       flagFloat(cmd, "max-size"),
		AllowedTypes:  flagList(cmd, "types"),
		AllowWildcard: flagBool(cmd, "wildcard"),
	})
	if err != nil {
		return err
	}
	return printResult(cmd, file.Name, result)
}

func runFiletype(cmd *cobra.Command, args []string) error {
	opts := filex.FileTypeOptions{
		AllowedTypes:    flagList(cmd, "types"),
		CaseInsensitive: flagBool(cmd, "case-insensitive"),
		AllowWildcard:   flagBool(cmd, "wildcard"),
	}

	allowed := filex.IsFileTypeAllowed(args[0], opts)
	if onlyImages, _ := cmd.Flags().GetBool("image"); onlyImages {
		allowed = filex.ImageTypeAllowed(args[0], opts)
	}
	if !allowed {
		fmt.Fprintln(out(cmd), tui.RenderFail("FILE_TYPE", args[0]+" is not allowed"))
		return errCheckFailed
	}
	fmt.Fprintln(out(cmd), tui.RenderPass(args[0]))
	return nil
}

func runImage(cmd *cobra.Command, args []string) error {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	policy, _ := cmd.Flags().GetString("on-error")

	dims, err := filex.ImageDimensionsFromFile(cmd.Context(), args[0], filex.ImageDimensionOptions{
		OnError: options.Of(filex.OnErrorPolicy(policy)),
		Timeout: options.Of(timeout),
	})
	if err != nil {
		return err
	}
	if dims == nil {
		fmt.Fprintln(out(cmd), tui.RenderField(args[0], "unknown"))
		return nil
	}
	fmt.Fprintln(out(cmd), tui.RenderField(args[0], dims.String()))
	return nil
}
