package components

import (
	"math"

	"github.com/automoto/sharkie/config"
	"github.com/yohamta/donburi"
)

type BarKind int

const (
	BarLife BarKind = iota
	BarCoin
	BarPoison
	BarBoss
)

func (k BarKind) String() string {
	switch k {
	case BarLife:
		return "life"
	case BarCoin:
		return "coin"
	case BarPoison:
		return "poison"
	case BarBoss:
		return "boss"
	}
	return "unknown"
}

type StatusBarData struct {
	Kind       BarKind
	Percentage float64
	Collected  int
	Max        int
	Rect       config.BarRect
	Visible    bool
}

var StatusBar = donburi.NewComponentType[StatusBarData]()

// Bucket maps a percentage to the bar image index 0..5.
func Bucket(p float64) int {
	switch {
	case p == 100:
		return 5
	case p > 80:
		return 4
	case p > 60:
		return 3
	case p > 40:
		return 2
	case p > 20:
		return 1
	}
	return 0
}

// SetPercentage clamps p to 0..100.
func (b *StatusBarData) SetPercentage(p float64) {
	b.Percentage = math.Max(0, math.Min(100, p))
}

// AddItem counts one more collected item, up to Max.
func (b *StatusBarData) AddItem() {
	if b.Max <= 0 {
		return
	}
	if b.Collected < b.Max {
		b.Collected++
	}
	b.SetPercentage(float64(b.Collected) / float64(b.Max) * 100)
}

// Reset empties a counter bar and fills a gauge bar.
func (b *StatusBarData) Reset() {
	b.Collected = 0
	if b.Max > 0 {
		b.Percentage = 0
		return
	}
	b.Percentage = 100
}

// Bucket is the image index of the bar's current percentage.
func (b *StatusBarData) Bucket() int {
	return Bucket(b.Percentage)
}
