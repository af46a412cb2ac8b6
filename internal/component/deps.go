// internal/component/deps.go
package component

import (
	"go.uber.org/zap"

	"github.com/yanizio/badnews/internal/headline"
	"github.com/yanizio/badnews/internal/view"
)

// Deps exposes shared resources to components during Init.
type Deps struct {
	Service  *headline.Service
	Renderer *view.Renderer
	Log      *zap.SugaredLogger
}
