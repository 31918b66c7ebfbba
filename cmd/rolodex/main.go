// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/poiesic/rolodex"
	"github.com/poiesic/rolodex/config"
	"github.com/poiesic/rolodex/importer"
	"github.com/urfave/cli/v2"
)

const configKey = "config"

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "rolodex",
		Usage:     "Contact book with prefix autocomplete",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Contact store: .json or .yaml file, or BadgerDB directory",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Contact file format (json, yaml); default is by extension",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to a rolodex.yaml configuration file",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add a contact or replace its number",
				ArgsUsage: "NAME NUMBER",
				Action:    addCommand,
			},
			{
				Name:      "search",
				Usage:     "List contacts whose name starts with PREFIX",
				ArgsUsage: "PREFIX",
				Action:    searchCommand,
			},
			{
				Name:      "delete",
				Usage:     "Delete a contact",
				ArgsUsage: "NAME",
				Action:    deleteCommand,
			},
			{
				Name:   "list",
				Usage:  "List every contact",
				Action: listCommand,
			},
			{
				Name:      "import",
				Usage:     "Merge contacts from JSON or YAML files",
				ArgsUsage: "FILE...",
				Action:    importCommand,
			},
			{
				Name:      "export",
				Usage:     "Write every contact to a JSON or YAML file",
				ArgsUsage: "FILE",
				Action:    exportCommand,
			},
		},
	}
}

// setup loads configuration, applies flag overrides and installs the logger.
func setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	var opts []config.Option
	if c.IsSet("file") {
		opts = append(opts, config.WithFile(c.String("file")))
	}
	if c.IsSet("format") {
		opts = append(opts, config.WithFormat(c.String("format")))
	}
	if c.IsSet("log-level") {
		opts = append(opts, config.WithLogLevel(c.String("log-level")))
	}
	cfg.Apply(opts...)
	if err := cfg.Validate(); err != nil {
		return err
	}

	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	if c.App.Metadata == nil {
		c.App.Metadata = map[string]any{}
	}
	c.App.Metadata[configKey] = cfg
	return nil
}

func configFrom(c *cli.Context) *config.Config {
	if cfg, ok := c.App.Metadata[configKey].(*config.Config); ok {
		return cfg
	}
	return config.DefaultConfig()
}

// openBook opens the configured store. A corrupt store is reported and the
// command continues with an empty book; a store that cannot be read at all
// stops the command so nothing overwrites it.
func openBook(ctx context.Context, c *cli.Context) (*rolodex.Book, error) {
	cfg := configFrom(c)

	var opts []rolodex.BookOption
	f, ok, err := cfg.FileFormat()
	if err != nil {
		return nil, err
	}
	if ok {
		opts = append(opts, rolodex.WithFormat(f))
	}

	book, report, err := rolodex.Open(ctx, cfg.File, opts...)
	if book == nil {
		return nil, fmt.Errorf("failed to open %s: %w", cfg.File, err)
	}
	if report.Status == rolodex.LoadStatusFailed {
		book.Close()
		return nil, fmt.Errorf("failed to read %s: %w", cfg.File, err)
	}
	if err != nil {
		fmt.Fprintf(c.App.ErrWriter, "Error reading %s (%s), starting with an empty contact book: %v\n",
			cfg.File, report.Status, err)
	}
	return book, nil
}

func saveBook(ctx context.Context, c *cli.Context, book *rolodex.Book) error {
	if err := book.Save(ctx); err != nil {
		return fmt.Errorf("failed to save %s: %w", book.Source(), err)
	}
	fmt.Fprintf(c.App.Writer, "Contacts saved to %s\n", book.Source())
	return nil
}

func addCommand(c *cli.Context) error {
	ctx := context.Background()

	if c.NArg() != 2 {
		return fmt.Errorf("add expects NAME and NUMBER, got %d arguments", c.NArg())
	}
	name, number := c.Args().Get(0), c.Args().Get(1)

	book, err := openBook(ctx, c)
	if err != nil {
		return err
	}
	defer book.Close()

	previous, existed := book.Lookup(name)
	if err := book.Add(name, number); err != nil {
		return fmt.Errorf("failed to add %q: %w", name, err)
	}
	if existed {
		fmt.Fprintf(c.App.Writer, "Contact %q updated (was %s)\n", name, previous)
	} else {
		fmt.Fprintf(c.App.Writer, "Contact %q added successfully!\n", name)
	}
	return saveBook(ctx, c, book)
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	if c.NArg() != 1 {
		return fmt.Errorf("search expects a PREFIX, got %d arguments", c.NArg())
	}
	prefix := c.Args().First()

	book, err := openBook(ctx, c)
	if err != nil {
		return err
	}
	defer book.Close()

	matches, err := book.Suggest(prefix)
	if errors.Is(err, rolodex.ErrNoSuggestions) {
		fmt.Fprintf(c.App.Writer, "No suggestions found for %q\n", prefix)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Suggestions for %q:\n", prefix)
	for _, contact := range matches {
		fmt.Fprintf(c.App.Writer, "   - %s - %s\n", contact.Name, contact.Number)
	}
	return nil
}

func deleteCommand(c *cli.Context) error {
	ctx := context.Background()

	if c.NArg() != 1 {
		return fmt.Errorf("delete expects a NAME, got %d arguments", c.NArg())
	}
	name := c.Args().First()

	book, err := openBook(ctx, c)
	if err != nil {
		return err
	}
	defer book.Close()

	if err := book.Remove(name); err != nil {
		return fmt.Errorf("failed to delete %q: %w", name, err)
	}
	fmt.Fprintf(c.App.Writer, "Contact %q deleted\n", name)
	return saveBook(ctx, c, book)
}

func listCommand(c *cli.Context) error {
	ctx := context.Background()

	book, err := openBook(ctx, c)
	if err != nil {
		return err
	}
	defer book.Close()

	for _, contact := range book.Contacts() {
		fmt.Fprintf(c.App.Writer, "%s - %s\n", contact.Name, contact.Number)
	}
	fmt.Fprintf(c.App.Writer, "%d contacts\n", book.Len())
	return nil
}

func importCommand(c *cli.Context) error {
	ctx := context.Background()

	if c.NArg() == 0 {
		return fmt.Errorf("import expects at least one FILE")
	}

	book, err := openBook(ctx, c)
	if err != nil {
		return err
	}
	defer book.Close()

	im, err := importer.New(
		importer.WithPoolSize(configFrom(c).ImportWorkers),
		importer.WithLogger(slog.Default()),
	)
	if err != nil {
		return fmt.Errorf("failed to create importer: %w", err)
	}
	defer im.Release()

	reports, err := im.Import(ctx, book.Index(), c.Args().Slice()...)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	for _, r := range reports {
		if r.Err != nil {
			fmt.Fprintf(c.App.ErrWriter, "%s: %s: %v\n", r.Source, r.Status, r.Err)
			continue
		}
		fmt.Fprintf(c.App.Writer, "%s: %s, %d records\n", r.Source, r.Status, r.Records)
	}
	fmt.Fprintf(c.App.Writer, "Imported %d records, %d contacts total\n", importer.Total(reports), book.Len())
	return saveBook(ctx, c, book)
}

func exportCommand(c *cli.Context) error {
	ctx := context.Background()

	if c.NArg() != 1 {
		return fmt.Errorf("export expects a FILE, got %d arguments", c.NArg())
	}
	dest := c.Args().First()

	book, err := openBook(ctx, c)
	if err != nil {
		return err
	}
	defer book.Close()

	if err := rolodex.SaveToFile(ctx, book.Index(), dest); err != nil {
		return fmt.Errorf("failed to export to %s: %w", dest, err)
	}
	fmt.Fprintf(c.App.Writer, "Exported %d contacts to %s\n", book.Len(), dest)
	return nil
}
