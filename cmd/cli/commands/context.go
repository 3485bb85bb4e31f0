package commands

import (
	"go.uber.org/zap"

	"github.com/lmoretti/vaxweek/internal/config"
	"github.com/lmoretti/vaxweek/pkg/core/services"
)

// AppContext holds the shared dependencies every command runs against.
type AppContext struct {
	Cfg     *config.Config
	Session *services.Session
	Logger  *zap.Logger
}

// weekdayNames are the printable weekday labels, index 0 = Monday.
var weekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}
