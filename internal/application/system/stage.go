package system

import (
	"unicode/utf8"

	"github.com/younwookim/platformcore/internal/domain/entity"
	"github.com/younwookim/platformcore/internal/infrastructure/config"
)

// LoadStage builds the stage entity described by cfg.
// Mapping keys longer than one rune can never match a tile and are skipped.
func LoadStage(cfg *config.StageConfig) *entity.Stage {
	legend := make(map[rune]entity.Tile, len(cfg.TileMapping))
	for key, m := range cfg.TileMapping {
		ch, n := utf8.DecodeRuneInString(key)
		if n == 0 || n != len(key) {
			continue
		}
		legend[ch] = entity.Tile{Type: entity.TileTypeByName(m.Type), Solid: m.Solid}
	}

	stage := entity.NewStage(cfg.Layers.Collision, cfg.Size.Width/cfg.Size.TileSize, cfg.Size.TileSize, legend)
	stage.SpawnX, stage.SpawnY = cfg.PlayerSpawn.X, cfg.PlayerSpawn.Y
	return stage
}
