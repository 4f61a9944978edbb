package cli

// Options is the root of the command line. Struct tags are read by
// github.com/jessevdk/go-flags.
type Options struct {
	Verbose bool   `short:"v" long:"verbose" description:"Log conversion details to stderr"`
	Config  string `short:"c" long:"config" description:"YAML file of configuration keys, overridden by the environment"`

	Convert *ConvertCmd `command:"convert" description:"Convert a .csv file to .usv or a .usv file to .csv"`
	Stats   *StatsCmd   `command:"stats"   description:"Print row and column counts of a .csv or .usv file"`
	Browse  *BrowseCmd  `command:"browse"  description:"Browse and convert the files of a directory interactively"`
}

func newOptions(a *app) *Options {
	return &Options{
		Convert: &ConvertCmd{app: a},
		Stats:   &StatsCmd{app: a},
		Browse:  &BrowseCmd{app: a},
	}
}
