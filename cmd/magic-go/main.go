package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/filemagic/magic-go/pkg/magic"
)

func main() {
	app := &cli.Command{
		Name:  "magic-go",
		Usage: "content-type detection backed by libmagic",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "database",
				Usage: "magic database file (default: the installed library's database)",
			},
			&cli.StringFlag{
				Name:  "library",
				Usage: "soname or path of the libmagic shared library to load",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log session events to stderr",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "detect",
				Usage:     "detect the content type of files (stdin when no paths are given)",
				ArgsUsage: "[path ...]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "mime",
						Usage: "report \"type; charset=encoding\"",
					},
					&cli.BoolFlag{
						Name:  "mime-type",
						Usage: "report the MIME type only",
					},
					&cli.BoolFlag{
						Name:  "mime-encoding",
						Usage: "report the MIME encoding only",
					},
					&cli.BoolFlag{
						Name:    "brief",
						Aliases: []string{"b"},
						Usage:   "omit the path prefix from output",
					},
					&cli.BoolFlag{
						Name:    "follow",
						Aliases: []string{"L"},
						Usage:   "follow symlinks",
					},
					&cli.BoolFlag{
						Name:    "uncompress",
						Aliases: []string{"z"},
						Usage:   "look inside compressed files",
					},
				},
				Action: detectAction,
			},
			{
				Name:      "check",
				Usage:     "validate a magic database",
				ArgsUsage: "[path]",
				Action:    databaseAction("check", (*magic.Session).Check),
			},
			{
				Name:      "compile",
				Usage:     "compile a magic database into a .mgc file",
				ArgsUsage: "[path]",
				Action:    databaseAction("compile", (*magic.Session).Compile),
			},
			{
				Name:      "list",
				Usage:     "list the entries of a magic database",
				ArgsUsage: "[path]",
				Action:    databaseAction("list", (*magic.Session).List),
			},
			{
				Name:   "version",
				Usage:  "print binding and library versions",
				Action: versionAction,
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "magic-go:", err)
		os.Exit(1)
	}
}

func openSession(cmd *cli.Command, flags magic.Flag) (*magic.Session, error) {
	cfg := magic.Config{
		Flags:    flags,
		Database: cmd.String("database"),
		Library:  cmd.String("library"),
	}
	if cmd.Bool("verbose") {
		cfg.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return magic.Open(cfg)
}

func detectFlags(cmd *cli.Command) magic.Flag {
	flags := magic.None
	if cmd.Bool("mime") {
		flags |= magic.Mime
	}
	if cmd.Bool("mime-type") {
		flags |= magic.MimeType
	}
	if cmd.Bool("mime-encoding") {
		flags |= magic.MimeEncoding
	}
	if cmd.Bool("follow") {
		flags |= magic.Symlink
	}
	if cmd.Bool("uncompress") {
		flags |= magic.Compress
	}
	return flags
}

func detectAction(ctx context.Context, cmd *cli.Command) error {
	s, err := openSession(cmd, detectFlags(cmd))
	if err != nil {
		return err
	}
	defer s.Close()

	paths := cmd.Args().Slice()
	if len(paths) == 0 {
		result, err := s.FromDescriptor(int(os.Stdin.Fd()))
		if err != nil {
			return err
		}
		fmt.Println(result)
		return nil
	}

	brief := cmd.Bool("brief")
	var firstErr error
	for _, path := range paths {
		result, err := s.FromFile(path)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			continue
		}
		if brief {
			fmt.Println(result)
		} else {
			fmt.Printf("%s: %s\n", path, result)
		}
	}
	return firstErr
}

// databaseAction adapts one of the database maintenance methods to a CLI
// action. An absent path argument targets the default database.
func databaseAction(name string, op func(*magic.Session, string) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		s, err := openSession(cmd, magic.None)
		if err != nil {
			return err
		}
		defer s.Close()

		path := cmd.Args().First()
		if err := op(s, path); err != nil {
			return err
		}
		fmt.Printf("%s ok\n", name)
		return nil
	}
}

func versionAction(ctx context.Context, cmd *cli.Command) error {
	fmt.Printf("magic-go %s\n", magic.WrapperVersion())

	s, err := openSession(cmd, magic.None)
	if err != nil {
		if errors.Is(err, magic.ErrLibraryNotFound) {
			fmt.Println("libmagic: not found")
			return nil
		}
		return err
	}
	defer s.Close()

	v := s.Version()
	fmt.Printf("libmagic %d.%02d\n", v/100, v%100)
	return nil
}
