package config

const (
	LogErrorColor = "\033[31m"
	LogInfoColor  = "\033[32m"
	LogColorReset = "\033[0m"
)

// Log prefixes
const (
	LogApp  = "[APP]"
	LogGame = "[GAME]"
	LogMaze = "[MAZE]"
)
