package logger

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/outfit/internal/adapters/detector"
	"go.trai.ch/outfit/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			lg := New().(*Logger)
			lg.SetTTY(detector.ColorEnabled(os.Stderr))
			lg.SetJSON(detector.LogFormat() == "json")
			return lg, nil
		},
	})
}
