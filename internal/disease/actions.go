package disease

import (
	"github.com/dtnitsch/bias-bars/internal/common"
	"github.com/dtnitsch/bias-bars/pkg/disease"
	"github.com/dtnitsch/bias-bars/pkg/ingest"
	"github.com/urfave/cli/v2"
)

func load(c *cli.Context) (disease.Data, error) {
	rt := common.FromContext(c)
	path := c.Args().First()
	if path == "" {
		path = rt.Config.DiseaseFile
	}
	return ingest.LocationFile(path, rt.LocationOptions())
}

// LoadAction prints the cumulative series for every location.
func LoadAction(c *cli.Context) error {
	data, err := load(c)
	if err != nil {
		return err
	}
	return common.WriteOutput(c.App.Writer, c.String("format"), data)
}

// DailyAction prints the new cases per day for every location.
func DailyAction(c *cli.Context) error {
	data, err := load(c)
	if err != nil {
		return err
	}
	return common.WriteOutput(c.App.Writer, c.String("format"), disease.DailyCases(data))
}
