package systems

import (
	"github.com/automoto/sharkie/components"
	"github.com/yohamta/donburi"
)

// GetBar returns the HUD bar of kind, or nil if the world has none.
func GetBar(w donburi.World, kind components.BarKind) *components.StatusBarData {
	var found *components.StatusBarData
	components.StatusBar.Each(w, func(e *donburi.Entry) {
		if bar := components.StatusBar.Get(e); bar.Kind == kind && found == nil {
			found = bar
		}
	})
	return found
}

func setBar(w donburi.World, kind components.BarKind, p float64) {
	if bar := GetBar(w, kind); bar != nil {
		bar.SetPercentage(p)
	}
}

func addBarItem(w donburi.World, kind components.BarKind) {
	if bar := GetBar(w, kind); bar != nil {
		bar.AddItem()
	}
}

func showBossBar(w donburi.World) {
	if bar := GetBar(w, components.BarBoss); bar != nil {
		bar.Visible = true
	}
}
