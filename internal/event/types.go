package event

const (
	RunStarted   EventType = "RunStarted"   // Забег начался, Data — ник игрока
	Paused       EventType = "Paused"       // Ручная пауза
	Resumed      EventType = "Resumed"      // Симуляция продолжилась
	LevelUp      EventType = "LevelUp"      // Нужен выбор улучшения, Data — новый уровень
	WaveAdvanced EventType = "WaveAdvanced" // Началась новая волна, Data — номер волны
	EnemyKilled  EventType = "EnemyKilled"  // Враг уничтожен, Data — архетип
	GameOver     EventType = "GameOver"     // Игрок погиб, Data — итоговый рекорд
)
