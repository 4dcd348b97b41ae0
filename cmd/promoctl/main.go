package main

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"promo-pages/internal/config"
)

// Global is passed to every subcommand.
type Global struct {
	Out io.Writer
}

// CLI definition & global flags.
type CLI struct {
	ConfigDir string           `name:"config-dir" help:"Directory holding application.yaml" default:"configs"`
	EnvFile   string           `name:"env-file" help:"Optional dotenv file loaded before configuration" default:".env"`
	LogLevel  string           `name:"log-level" help:"debug|info|warn|error" default:"warn"`
	Version   kong.VersionFlag `name:"version" help:"Show version and exit"`

	Render  RenderCmd  `cmd:"" help:"Render the campaign page from a catalog file"`
	Publish PublishCmd `cmd:"" help:"Render the catalog and push it to a WordPress page"`
}

// AfterApply runs after flag parsing; loads the dotenv file and sets up logging once.
func (c *CLI) AfterApply() error {
	if c.EnvFile != "" {
		if err := godotenv.Load(c.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	config.SetupLogging(c.LogLevel)
	return nil
}

func (c *CLI) loadConfig() (config.Config, error) {
	return config.LoadFrom(c.ConfigDir, "application")
}

var version = "dev"

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("promoctl"),
		kong.Description("Render and publish campaign pages."),
		kong.Vars{"version": version},
	)
	ctx.FatalIfErrorf(ctx.Run(&Global{Out: os.Stdout}, &cli))
}
