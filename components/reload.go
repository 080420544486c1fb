package components

import (
	cfg "github.com/automoto/wirecubes/config"
	"github.com/yohamta/donburi"
)

// ReloadData carries settings reloaded by the file watcher to the game loop
type ReloadData struct {
	Updates <-chan cfg.File
}

var Reload = donburi.NewComponentType[ReloadData]()
