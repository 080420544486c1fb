package tags

import "github.com/yohamta/donburi"

var (
	Cube      = donburi.NewTag().SetName("Cube")
	SceneRoot = donburi.NewTag().SetName("SceneRoot")
)
