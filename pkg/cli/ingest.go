package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reef-world/finsync/pkg/domain/types"
	"github.com/reef-world/finsync/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdIngest() *cli.Command {
	var cfgs sourceConfigs

	return &cli.Command{
		Name:      "ingest",
		Aliases:   []string{"i"},
		Usage:     "Run one ingestion cycle for a source and exit",
		ArgsUsage: "<hub|portal>",
		Flags:     cfgs.flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return goerr.New("exactly one source argument is required (hub or portal)")
			}
			kind, err := types.ParseSourceKind(c.Args().First())
			if err != nil {
				return err
			}

			uc, _, closeAll, err := cfgs.build(ctx)
			if err != nil {
				return err
			}
			defer closeAll()

			summary, err := uc.Ingest(ctx, kind)
			if err != nil {
				return goerr.Wrap(err, "ingestion failed", goerr.V("source", kind))
			}

			logging.Default().Info("Ingestion finished", "summary", summary)
			return nil
		},
	}
}
