package tui

// ANSI escape sequences for console messages
const (
	RED     = "\033[31m"
	GREEN   = "\033[32m"
	YELLOW  = "\033[33m"
	BLUE    = "\033[34m"
	MAGENTA = "\033[35m"
	CYAN    = "\033[36m"

	BOLD = "\033[1m"
	DIM  = "\033[2m"

	RESET = "\033[0m"
)
