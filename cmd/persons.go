package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"

	"github.com/desertthunder/farewell/internal/models"
	"github.com/desertthunder/farewell/internal/shared"
)

var (
	nameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")).Italic(true)
)

// personsCommand groups the admin operations that manage Person records
// directly against the store, without going through the HTTP API.
func personsCommand(r *Runner) *cli.Command {
	configFlag := func() *cli.StringFlag {
		return &cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file",
			Value:   "config.toml",
		}
	}

	return &cli.Command{
		Name:    "persons",
		Aliases: []string{"p"},
		Usage:   "Manage farewell page records",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List all persons",
				Flags: []cli.Flag{
					configFlag(),
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.PersonsList,
			},
			{
				Name:  "show",
				Usage: "Show a single person by id",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					configFlag(),
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.PersonsShow,
			},
			{
				Name:  "add",
				Usage: "Create a new farewell page",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{Name: "name", Usage: "Person's full name", Required: true},
					&cli.StringFlag{Name: "title", Usage: "Person's job title", Required: true},
					&cli.StringFlag{Name: "message", Usage: "Farewell message", Required: true},
					&cli.StringFlag{Name: "photo-url", Usage: "Photo URL", Required: true},
					&cli.StringFlag{Name: "music-url", Usage: "Audio clip URL", Required: true},
					&cli.StringFlag{Name: "music-title", Usage: "Song title", Required: true},
					&cli.StringFlag{Name: "music-artist", Usage: "Song artist", Required: true},
				},
				Action: r.PersonsAdd,
			},
			{
				Name:  "remove",
				Usage: "Delete a farewell page by id",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags:  []cli.Flag{configFlag()},
				Action: r.PersonsRemove,
			},
		},
	}
}

// personArgID parses the positional id argument.
func personArgID(cmd *cli.Command) (int, error) {
	raw := cmd.StringArg("id")
	if raw == "" {
		return 0, fmt.Errorf("%w: id", shared.ErrMissingArgument)
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: id must be an integer, got %q", shared.ErrInvalidArgument, raw)
	}
	return id, nil
}

// PersonsList prints every person in the store.
func (r *Runner) PersonsList(ctx context.Context, cmd *cli.Command) error {
	r.loadConfig(cmd)

	storage, cleanup, err := r.openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	persons, err := storage.GetAllPersons()
	if err != nil {
		return fmt.Errorf("failed to list persons: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(persons, true)
	}

	if len(persons) == 0 {
		r.writePlain("%s\n", mutedStyle.Render("no farewell pages yet"))
		return nil
	}

	for _, p := range persons {
		r.writePlain("%3d  %s  %s\n", p.ID, nameStyle.Render(p.Name), mutedStyle.Render(p.Title))
		r.writePlain("     %s (%s)\n", p.MusicTitle, p.MusicArtist)
	}
	return nil
}

// PersonsShow prints one person by id.
func (r *Runner) PersonsShow(ctx context.Context, cmd *cli.Command) error {
	r.loadConfig(cmd)

	id, err := personArgID(cmd)
	if err != nil {
		return err
	}

	storage, cleanup, err := r.openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	person, found, err := storage.GetPerson(id)
	if err != nil {
		return fmt.Errorf("failed to fetch person: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: person %d", shared.ErrNotFound, id)
	}

	if cmd.Bool("json") {
		return r.writeJSON(person, true)
	}

	r.writePlain("%s\n", nameStyle.Render(person.Name))
	r.writePlain("%s\n\n", mutedStyle.Render(person.Title))
	r.writePlain("%s\n\n", person.Message)
	r.writePlain("photo:  %s\n", person.PhotoURL)
	r.writePlain("music:  %s (%s) %s\n", person.MusicTitle, person.MusicArtist, person.MusicURL)
	return nil
}

// PersonsAdd validates the flag payload and creates the record.
func (r *Runner) PersonsAdd(ctx context.Context, cmd *cli.Command) error {
	r.loadConfig(cmd)

	input := models.PersonInput{
		Name:        cmd.String("name"),
		Title:       cmd.String("title"),
		Message:     cmd.String("message"),
		PhotoURL:    cmd.String("photo-url"),
		MusicURL:    cmd.String("music-url"),
		MusicTitle:  cmd.String("music-title"),
		MusicArtist: cmd.String("music-artist"),
	}
	if fe := input.Validate(); fe != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidInput, fe)
	}

	storage, cleanup, err := r.openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	person, err := storage.CreatePerson(input)
	if err != nil {
		return fmt.Errorf("failed to create person: %w", err)
	}

	r.writePlain("%s created %s (id %d)\n", okStyle.Render("✓"), nameStyle.Render(person.Name), person.ID)
	r.writePlain("public page: %s/person/%d\n", r.config.Server.BaseURL(), person.ID)
	return nil
}

// PersonsRemove deletes the record if present.
func (r *Runner) PersonsRemove(ctx context.Context, cmd *cli.Command) error {
	r.loadConfig(cmd)

	id, err := personArgID(cmd)
	if err != nil {
		return err
	}

	storage, cleanup, err := r.openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	deleted, err := storage.DeletePerson(id)
	if err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: person %d", shared.ErrNotFound, id)
	}

	r.writePlain("%s removed person %d\n", okStyle.Render("✓"), id)
	return nil
}
