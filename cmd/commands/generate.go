package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/pluqqy/usernamer/internal/cli"
	"github.com/pluqqy/usernamer/pkg/availability"
	"github.com/pluqqy/usernamer/pkg/generator"
	"github.com/pluqqy/usernamer/pkg/models"
	"github.com/pluqqy/usernamer/pkg/session"
)

// maxConcurrentChecks caps the availability checks running at once
const maxConcurrentChecks = 5

// Collaborators builds what a command run needs. *cli.CommandContext
// satisfies it.
type Collaborators interface {
	BuildGenerator() (generator.Generator, error)
	BuildChecker() availability.Checker
	RequestTimeout() time.Duration
	Close() error
}

// Loader opens the collaborators for one command run
type Loader func(configPath string) (Collaborators, error)

// DefaultLoader loads config and logging from disk
func DefaultLoader(configPath string) (Collaborators, error) {
	ctx, err := cli.NewCommandContext(configPath)
	if err != nil {
		return nil, err
	}
	return ctx, nil
}

// GenerateResult represents the output structure for the generate command
type GenerateResult struct {
	SeedWord     string                 `json:"seed_word" yaml:"seed_word"`
	Category     models.Category        `json:"category" yaml:"category"`
	WordPosition models.WordPosition    `json:"word_position" yaml:"word_position"`
	Count        int                    `json:"count" yaml:"count"`
	Names        []models.GeneratedName `json:"names" yaml:"names"`
}

type generateOptions struct {
	category string
	position string
	format   string
	check    bool
}

// NewGenerateCommand creates the generate command
func NewGenerateCommand(load Loader) *cobra.Command {
	if load == nil {
		load = DefaultLoader
	}
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate <seed-word>",
		Short: "Generate usernames without the interactive UI",
		Long: `Generate one list of usernames from a seed word and print it.

Categories:
  random, gaming, tech, fantasy, space, nature, mystical

Examples:
  # Generate gaming usernames that start with the seed word
  usernamer generate wolf

  # Put the seed word after a space-themed word
  usernamer generate wolf --category space --position after

  # Simulate an availability check for every name and print JSON
  usernamer generate wolf --check --format json`,
		Args:    cobra.ExactArgs(1),
		Aliases: []string{"gen"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args[0], opts, load)
		},
	}

	cmd.Flags().StringVarP(&opts.category, "category", "c", string(models.DefaultCategory), "Theme for the generated names")
	cmd.Flags().StringVarP(&opts.position, "position", "p", string(models.DefaultWordPosition), "Place the seed word before or after the theme word")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format (text, json, yaml)")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Simulate an availability check for every name")

	return cmd
}

func runGenerate(cmd *cobra.Command, seed string, opts *generateOptions, load Loader) error {
	seed, err := cli.ValidateSeedWord(seed)
	if err != nil {
		return err
	}
	category, err := cli.ValidateCategory(opts.category)
	if err != nil {
		return err
	}
	position, err := cli.ValidateWordPosition(opts.position)
	if err != nil {
		return err
	}
	if err := cli.ValidateOutputFormat(opts.format); err != nil {
		return err
	}

	configPath, _ := cmd.Flags().GetString("config")
	deps, err := load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	defer deps.Close()

	gen, err := deps.BuildGenerator()
	if err != nil {
		return err
	}

	sess := session.New(session.Options{Category: category, WordPosition: position})
	sess.SetSeedWord(seed)
	req, err := sess.BeginGenerate()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), deps.RequestTimeout())
	names, genErr := gen.Generate(ctx, req)
	cancel()
	sess.CompleteGenerate(names, genErr)
	if genErr != nil {
		return generator.ErrGenerationFailed
	}

	if opts.check {
		if err := checkAll(cmd.Context(), sess, deps.BuildChecker()); err != nil {
			return err
		}
	}

	result := GenerateResult{
		SeedWord:     req.SeedWord,
		Category:     req.Category,
		WordPosition: req.WordPosition,
		Names:        sess.Names(),
	}
	result.Count = len(result.Names)

	switch opts.format {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), opts.format, result)
	default:
		return outputGenerateText(cmd, result, opts.check)
	}
}

// checkAll runs one simulated check per name. A failed check counts as
// taken. Results are applied to the session after every check has returned.
func checkAll(ctx context.Context, sess *session.Session, checker availability.Checker) error {
	names := sess.Names()
	statuses := make([]models.AvailabilityStatus, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentChecks)
	for i, item := range names {
		name, ok := sess.BeginCheck(item.ID)
		if !ok {
			continue
		}
		g.Go(func() error {
			status, err := checker.Check(gctx, name)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				status = models.StatusTaken
			}
			if !status.IsResolved() {
				status = models.StatusTaken
			}
			statuses[i] = status
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, item := range names {
		sess.ResolveCheck(item.ID, statuses[i])
	}
	return nil
}

func outputGenerateText(cmd *cobra.Command, result GenerateResult, checked bool) error {
	out := cmd.OutOrStdout()

	if result.Count == 0 {
		fmt.Fprintln(out, "No usernames were generated.")
		return nil
	}

	fmt.Fprintf(out, "%d usernames for %q (%s, seed word %s)\n\n",
		result.Count, result.SeedWord, result.Category, result.WordPosition)

	table := cli.NewTableFormatter(out)
	if checked {
		table.Header("#", "NAME", "AVAILABILITY")
	} else {
		table.Header("#", "NAME")
	}
	for i, name := range result.Names {
		if checked {
			table.Row(strconv.Itoa(i+1), name.Name, availabilityLabel(name.Availability))
		} else {
			table.Row(strconv.Itoa(i+1), name.Name)
		}
	}
	table.Flush()

	if checked {
		cli.PrintInfo("Availability is simulated; no registry was queried.")
	}
	return nil
}

func availabilityLabel(status models.AvailabilityStatus) string {
	switch status {
	case models.StatusAvailable:
		if cli.NoColor() {
			return "available"
		}
		return "✓ available"
	case models.StatusTaken:
		if cli.NoColor() {
			return "taken"
		}
		return "✗ taken"
	default:
		return string(status)
	}
}
