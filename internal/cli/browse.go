package cli

import (
	"fmt"
	"os"

	"github.com/JonMunkholm/uniseparate/internal/tui"
)

// BrowseCmd opens the interactive browser.
type BrowseCmd struct {
	Dir string `short:"d" long:"dir" default:"." description:"Directory to browse"`

	app *app
}

func (c *BrowseCmd) Execute(_ []string) error {
	info, err := os.Stat(c.Dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", c.Dir)
	}
	return tui.Run(c.app.service, c.Dir)
}
