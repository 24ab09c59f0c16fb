package api

import (
	"sync"
	"time"

	"github.com/color-game/schemefinder/datastore"
	"github.com/color-game/schemefinder/palette"
)

type Config struct {
	HTTPPort       string
	SessionSecret  string
	SessionTTL     time.Duration
	AdminKeyHash   string
	AllowedOrigins []string
	DevMode        bool
}

// Application hosts the palette core behind HTTP. Every call into palette
// goes through coreMu; the core itself is not safe for concurrent use.
type Application struct {
	Config     Config
	SchemeRepo datastore.SchemeRepository
	Palettes   *palette.Repository
	Sessions   *SessionStore

	coreMu sync.Mutex
}

// NewApplication loads every stored scheme into a fresh palette repository.
func NewApplication(config Config, schemeRepo datastore.SchemeRepository) (*Application, error) {
	rows, err := schemeRepo.GetAll()
	if err != nil {
		return nil, err
	}

	palettes := palette.NewRepository()
	if err := palettes.Load(rows); err != nil {
		return nil, err
	}

	return &Application{
		Config:     config,
		SchemeRepo: schemeRepo,
		Palettes:   palettes,
		Sessions:   NewSessionStore(),
	}, nil
}
