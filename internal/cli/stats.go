package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/JonMunkholm/uniseparate/internal/core"
	"github.com/JonMunkholm/uniseparate/internal/usv"
)

// StatsCmd prints document statistics.
type StatsCmd struct {
	Format string `long:"format" choice:"csv" choice:"usv" description:"Read the file as this format instead of using its extension"`
	JSON   bool   `long:"json" description:"Print statistics as JSON"`

	Args struct {
		File string `positional-arg-name:"file"`
	} `positional-args:"yes" required:"yes"`

	app *app
}

func (c *StatsCmd) Execute(_ []string) error {
	format, err := c.format()
	if err != nil {
		return err
	}

	var stats usv.Stats
	if core.IsURL(c.Args.File) {
		stats, err = c.app.service.URLStats(context.Background(), c.Args.File, format)
	} else {
		stats, err = c.app.service.FileStats(c.Args.File, format)
	}
	if err != nil {
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(c.app.stdout)
		return enc.Encode(stats)
	}
	fmt.Fprintln(c.app.stdout, summary(format, stats))
	return nil
}

func (c *StatsCmd) format() (usv.Format, error) {
	if c.Format != "" {
		return usv.ParseFormat(c.Format)
	}
	name := c.Args.File
	if u, err := url.Parse(name); err == nil && core.IsURL(name) {
		name = u.Path
	}
	if f, ok := usv.FormatFromPath(name); ok {
		return f, nil
	}
	return 0, fmt.Errorf("unknown format for %s: pass --format csv|usv", c.Args.File)
}

// summary renders "CSV: 3 rows × 2 cols" or "USV: 3 rows".
func summary(f usv.Format, s usv.Stats) string {
	if f == usv.FormatCSV {
		return fmt.Sprintf("CSV: %d rows × %d cols", s.Rows, s.Columns)
	}
	return fmt.Sprintf("USV: %d rows", s.Rows)
}
