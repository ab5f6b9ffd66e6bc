package method

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/linecard/userwriter/cmd/cli/param"
	"github.com/linecard/userwriter/cmd/cli/view"
	"github.com/linecard/userwriter/pkg/convention/user"
	"github.com/linecard/userwriter/pkg/sdk"
)

func Serve(ctx context.Context, api sdk.API, p *param.Serve) error {
	return api.Httproxy.Serve(p.Listen)
}

// Put runs command line input through the same decoder as the HTTP endpoint.
func Put(ctx context.Context, api sdk.API, p *param.Put, out io.Writer) error {
	payload, err := json.Marshal(struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}{p.Name, p.Age})

	if err != nil {
		return err
	}

	record, err := user.Decode(payload)
	if err != nil {
		return err
	}

	stored, err := api.Writer.Write(ctx, record)
	if err != nil {
		return err
	}

	v := view.StoredView{Stored: stored, Table: api.Config.Table.Name}

	if p.Json {
		j, err := v.Json()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, j)
		return err
	}

	_, err = fmt.Fprintln(out, v.Render())
	return err
}
