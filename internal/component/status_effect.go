// internal/component/status_effect.go
package component

import (
	"time"

	"go-arena-survivor/internal/defs"
)

// Buff — состояние одного бафа: флаг и абсолютный момент окончания.
type Buff struct {
	Active  bool
	EndTime time.Time
}

// Buffs — таблица активных эффектов, по записи на каждый вид бафа.
type Buffs map[defs.BuffKind]*Buff

// NewBuffs создаёт таблицу со всеми бафами в выключенном состоянии.
func NewBuffs() Buffs {
	b := make(Buffs, len(defs.AllBuffs))
	for _, kind := range defs.AllBuffs {
		b[kind] = &Buff{}
	}
	return b
}

// IsActive — включён ли баф.
func (b Buffs) IsActive(kind defs.BuffKind) bool {
	buff, ok := b[kind]
	return ok && buff.Active
}
