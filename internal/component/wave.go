package component

// Wave — состояние волн забега.
type Wave struct {
	Number        int   // номер текущей волны, начиная с 1
	Kills         int   // убийств в текущей волне
	PendingSpawns []int // кадры, на которых должны появиться отложенные враги
}

// Pending — сколько врагов ещё ждут появления.
func (w *Wave) Pending() int {
	return len(w.PendingSpawns)
}
