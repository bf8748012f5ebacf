package helpers

import "github.com/fatih/color"

var (
	bold     = color.New(color.Bold).SprintFunc()
	dim      = color.New(color.Faint).SprintFunc()
	cyan     = color.New(color.FgCyan).SprintFunc()
	green    = color.New(color.FgGreen).SprintFunc()
	red      = color.New(color.FgRed).SprintFunc()
	yellow   = color.New(color.FgYellow).SprintFunc()
	boldCyan = color.New(color.Bold, color.FgCyan).SprintFunc()
)

// pidColors distingue a los procesos en la línea de tiempo.
var pidColors = []func(a ...interface{}) string{
	color.New(color.Bold, color.FgMagenta).SprintFunc(),
	color.New(color.Bold, color.FgCyan).SprintFunc(),
	color.New(color.Bold, color.FgYellow).SprintFunc(),
	color.New(color.Bold, color.FgGreen).SprintFunc(),
	color.New(color.Bold, color.FgHiBlue).SprintFunc(),
	color.New(color.Bold, color.FgHiRed).SprintFunc(),
}

func pidColor(pid uint) func(a ...interface{}) string {
	return pidColors[int(pid)%len(pidColors)]
}

// estadoColor pinta el estado de un proceso.
func estadoColor(estado string) string {
	switch estado {
	case "RUNNING":
		return green(estado)
	case "READY":
		return cyan(estado)
	case "BLOCKED":
		return red(estado)
	case "EXIT":
		return dim(estado)
	default:
		return yellow(estado)
	}
}
