package workon

import (
	"context"

	"github.com/lerenn/workon/pkg/workon/consts"
)

// EditConfigParams contains parameters for EditConfig.
type EditConfigParams struct {
	Editor string
}

// EditConfig creates the configuration file from its template if needed and opens it in the editor.
func (w *realWorkon) EditConfig(ctx context.Context, params EditConfigParams) error {
	return w.executeOperation(consts.EditConfig, func() error {
		path := w.deps.Config.GetConfigPath()

		w.deps.Logger.Debugf("Creating config file %q", path)
		if err := w.deps.Config.InitConfig(); err != nil {
			return err
		}

		return w.deps.Editor.Open(ctx, path, params.Editor)
	})
}
