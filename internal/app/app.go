// Package app wires the storage, controller, and view into one explicit
// application context. There are no package-level singletons; every
// entry point builds its own App.
package app

import (
	"go.uber.org/zap"

	"github.com/idilsaglam/todoapp/internal/config"
	"github.com/idilsaglam/todoapp/internal/controller"
	"github.com/idilsaglam/todoapp/internal/store"
	"github.com/idilsaglam/todoapp/internal/store/filestore"
	"github.com/idilsaglam/todoapp/internal/view"
)

// App owns one fully wired controller and its collaborators.
type App struct {
	Config     *config.Config
	Log        *zap.Logger
	Storage    store.Storage
	Controller *controller.Controller
	View       view.View
}

// New builds the context around the given view, loads persisted state,
// and binds the controller to the view's gesture sources.
func New(cfg *config.Config, log *zap.Logger, v view.View) (*App, error) {
	st := filestore.New(cfg.DataDir)
	ctrl := controller.New(st, v, log)
	if err := ctrl.Init(); err != nil {
		return nil, err
	}
	return &App{
		Config:     cfg,
		Log:        log,
		Storage:    st,
		Controller: ctrl,
		View:       v,
	}, nil
}
