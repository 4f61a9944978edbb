package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/JonMunkholm/uniseparate/internal/core"
)

// ConvertCmd converts one file. The direction follows the file extension.
// A URL source is downloaded and needs --output.
type ConvertCmd struct {
	Replace bool   `short:"r" long:"replace" description:"Overwrite the source file with the converted content"`
	Output  string `short:"o" long:"output" description:"Write the converted document to this path"`
	Force   bool   `short:"f" long:"force" description:"Overwrite an existing output file"`

	Args struct {
		File string `positional-arg-name:"file"`
	} `positional-args:"yes" required:"yes"`

	app *app
}

func (c *ConvertCmd) Execute(_ []string) error {
	if c.Replace && c.Output != "" {
		return errors.New("--replace and --output cannot be combined")
	}

	ctx := context.Background()
	if core.IsURL(c.Args.File) {
		if c.Replace {
			return errors.New("--replace cannot be used with a URL")
		}
		res, err := c.app.service.ConvertURL(ctx, c.Args.File, c.Output, c.Force)
		if err != nil {
			return err
		}
		c.report(res)
		return nil
	}

	req := core.FileRequest{
		Path:   c.Args.File,
		Output: c.Output,
		Force:  c.Force,
	}
	if c.Replace {
		req.Mode = core.WriteReplace
	}

	res, err := c.app.service.ConvertFile(ctx, req)
	if err != nil {
		return err
	}
	c.report(res)
	return nil
}

func (c *ConvertCmd) report(res *core.FileResult) {
	fmt.Fprintf(c.app.stdout, "%s → %s (%s)\n", c.Args.File, res.OutputPath,
		summary(res.Direction.Source(), res.Before))
}
