package command

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v2"

	"github.com/yndnr/vmadmin-go/internal/cli/config"
	"github.com/yndnr/vmadmin-go/internal/storage"
)

// InitCommand returns the command that writes the configuration file.
func InitCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write the store configuration",
		Description: "Prompts for the store provider and DSN unless --provider and --dsn are given.\n" +
			"   Run 'vmadmin createtables' afterwards if the database is uninitialized.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "defaults",
				Usage: "Use default values instead of prompting",
			},
		},
		Action: func(c *cli.Context) error {
			return runInit(c, initOptions{useDefaults: c.Bool("defaults")})
		},
	}
}

type initOptions struct {
	useDefaults bool
}

func runInit(c *cli.Context, opts initOptions) error {
	flags := ParseGlobalFlags(c)
	cfg := config.Default()
	if v, ok := flags.Overrides["store.provider"].(string); ok {
		cfg.Store.Provider = strings.ToLower(v)
	}
	dsnSet := false
	if v, ok := flags.Overrides["store.dsn"].(string); ok {
		cfg.Store.DSN = v
		dsnSet = true
	}

	if !opts.useDefaults {
		if err := promptStore(&cfg.Store, !c.IsSet("provider"), !dsnSet); err != nil {
			return err
		}
	} else if !dsnSet {
		cfg.Store.DSN = defaultDSN(cfg.Store.Provider)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(cfg, flags.ConfigPath); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%s saved.\n", flags.ConfigPath)
	if cfg.Store.Provider != storage.ProviderMemory {
		fmt.Fprintln(c.App.Writer, "Run 'vmadmin createtables' if the database is uninitialized.")
	}
	return nil
}

// defaultDSN returns the default location of the provider's data.
func defaultDSN(provider string) string {
	switch provider {
	case storage.ProviderBadger:
		return filepath.Join(config.Dir(), "data")
	case storage.ProviderMemory:
		return ""
	default:
		return filepath.Join(config.Dir(), "vmadmin.db")
	}
}

// promptStore asks for the provider and DSN that are not already set.
func promptStore(store *config.StoreConfig, askProvider, askDSN bool) error {
	if askProvider {
		options := make([]huh.Option[string], 0, len(storage.Providers))
		for _, p := range storage.Providers {
			options = append(options, huh.NewOption(p, p))
		}
		form := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("Store provider").
				Options(options...).
				Value(&store.Provider),
		))
		if err := runForm(form); err != nil {
			return err
		}
	}

	if !askDSN {
		return nil
	}
	store.DSN = defaultDSN(store.Provider)
	if store.Provider == storage.ProviderMemory {
		return nil
	}
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Connection string").
			Description("SQLite database file, or badger data directory").
			Value(&store.DSN).
			Validate(func(v string) error {
				if strings.TrimSpace(v) == "" {
					return errors.New("connection string cannot be empty")
				}
				return nil
			}),
	))
	return runForm(form)
}

func runForm(form *huh.Form) error {
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return fmt.Errorf("aborted by user")
		}
		return err
	}
	return nil
}
