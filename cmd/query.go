package main

import (
	"context"

	"github.com/spf13/cobra"

	"football/internal/config"
	"football/internal/football"
)

type queryFunc func(ctx context.Context, svc football.Service, flags flagReader, args []string) (any, error)

type flagReader interface {
	GetString(name string) (string, error)
}

// flagValue returns the value of a string flag, empty when it is not defined.
func flagValue(f flagReader, name string) string {
	v, _ := f.GetString(name)

	return v
}

// queryCommand builds a command that calls the service without a database
// and prints the result in the --output format.
func queryCommand(cfg *config.Config, use, short string, nargs int, run queryFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			svc, closeSvc := getService(ctx, cfg, nil)
			defer closeSvc()

			out, err := run(ctx, svc, cmd.Flags(), args)
			if err != nil {
				return err
			}

			return printResult(cmd.OutOrStdout(), flagValue(cmd.Flags(), "output"), out)
		},
	}
}

func queryCommands(cfg *config.Config) []*cobra.Command {
	competitions := queryCommand(cfg, "competitions", "Lists the competitions of a season", 0,
		func(ctx context.Context, svc football.Service, f flagReader, _ []string) (any, error) {
			return svc.Competitions(ctx, flagValue(f, "season")) //nolint: wrapcheck
		})
	competitions.Flags().String("season", "", "Season start year, e.g. 2017")

	teams := queryCommand(cfg, "teams <competition>", "Lists the teams of a competition", 1,
		func(ctx context.Context, svc football.Service, _ flagReader, args []string) (any, error) {
			return svc.Teams(ctx, args[0]) //nolint: wrapcheck
		})

	table := queryCommand(cfg, "table <competition>", "Shows the league table of a competition", 1,
		func(ctx context.Context, svc football.Service, f flagReader, args []string) (any, error) {
			return svc.Table(ctx, args[0], flagValue(f, "matchday")) //nolint: wrapcheck
		})
	table.Flags().String("matchday", "", "Table as of this matchday")

	fixtures := queryCommand(cfg, "fixtures", "Lists fixtures across competitions", 0,
		func(ctx context.Context, svc football.Service, f flagReader, _ []string) (any, error) {
			return svc.Fixtures(ctx, flagValue(f, "time-frame"), flagValue(f, "league")) //nolint: wrapcheck
		})
	fixtures.Flags().String("time-frame", "", "p or n followed by days, e.g. n7")
	fixtures.Flags().String("league", "", "Only fixtures of one league code, e.g. BL1")

	competitionFixtures := queryCommand(cfg, "competition-fixtures <competition>",
		"Lists the fixtures of a competition", 1,
		func(ctx context.Context, svc football.Service, f flagReader, args []string) (any, error) {
			return svc.CompetitionFixtures(ctx, args[0], flagValue(f, "matchday"), flagValue(f, "time-frame")) //nolint: wrapcheck
		})
	competitionFixtures.Flags().String("matchday", "", "Only fixtures of this matchday")
	competitionFixtures.Flags().String("time-frame", "", "p or n followed by days, e.g. n7")

	fixture := queryCommand(cfg, "fixture <id>", "Shows a fixture with its head to head", 1,
		func(ctx context.Context, svc football.Service, _ flagReader, args []string) (any, error) {
			return svc.Fixture(ctx, args[0]) //nolint: wrapcheck
		})

	team := queryCommand(cfg, "team <id>", "Shows a team", 1,
		func(ctx context.Context, svc football.Service, _ flagReader, args []string) (any, error) {
			return svc.Team(ctx, args[0]) //nolint: wrapcheck
		})

	players := queryCommand(cfg, "players <team>", "Lists the squad of a team", 1,
		func(ctx context.Context, svc football.Service, _ flagReader, args []string) (any, error) {
			return svc.Players(ctx, args[0]) //nolint: wrapcheck
		})

	teamFixtures := queryCommand(cfg, "team-fixtures <team>", "Lists the fixtures of a team", 1,
		func(ctx context.Context, svc football.Service, f flagReader, args []string) (any, error) {
			return svc.TeamFixtures(ctx, args[0], //nolint: wrapcheck
				flagValue(f, "season"), flagValue(f, "time-frame"), flagValue(f, "venue"))
		})
	teamFixtures.Flags().String("season", "", "Season start year, e.g. 2017")
	teamFixtures.Flags().String("time-frame", "", "p or n followed by days, e.g. n7")
	teamFixtures.Flags().String("venue", "", "home or away")

	overview := queryCommand(cfg, "overview <team>", "Shows a team with its squad and fixtures", 1,
		func(ctx context.Context, svc football.Service, _ flagReader, args []string) (any, error) {
			return svc.TeamOverview(ctx, args[0]) //nolint: wrapcheck
		})

	return []*cobra.Command{
		competitions, teams, table, fixtures, competitionFixtures,
		fixture, team, players, teamFixtures, overview,
	}
}
