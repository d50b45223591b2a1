package entities

// UIScreen экран пользовательского интерфейса
type UIScreen int

const (
	UIScreenMenu UIScreen = iota
	UIScreenConfig
	UIScreenProcessing
)
