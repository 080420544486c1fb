package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData provides the time of day used to derive cube rotation.
type ClockData struct {
	Now     func() time.Time
	Seconds float64 // seconds since local midnight at the current tick
}

var Clock = donburi.NewComponentType[ClockData]()
