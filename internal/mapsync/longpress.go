package mapsync

import (
	"sync"
	"time"
)

// LongPressDelay - время удержания до срабатывания press-and-hold
const LongPressDelay = 500 * time.Millisecond

// LongPressDetector превращает пару событий press-start/press-end в
// одиночное срабатывание через delay. Отпускание до истечения таймера
// отменяет срабатывание; новый press-start инвалидирует ещё взведённый
// таймер, так что перекрывающиеся нажатия не дают дублей. Срабатывание
// использует координаты, захваченные в момент press-start.
type LongPressDetector struct {
	delay time.Duration
	fire  func(lat, lon float64)

	mu    sync.Mutex
	gen   uint64
	timer *time.Timer
}

func NewLongPressDetector(delay time.Duration, fire func(lat, lon float64)) *LongPressDetector {
	return &LongPressDetector{
		delay: delay,
		fire:  fire,
	}
}

// PressStart взводит таймер, отменяя предыдущий, если он ещё взведён
func (d *LongPressDetector) PressStart(lat, lon float64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	gen := d.gen

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.expired(gen, lat, lon)
	})
}

// PressEnd отменяет взведённый таймер; после срабатывания - no-op
func (d *LongPressDetector) PressEnd() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *LongPressDetector) expired(gen uint64, lat, lon float64) {
	d.mu.Lock()
	if gen != d.gen {
		// нажатие было отменено или перекрыто новым
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()

	d.fire(lat, lon)
}
