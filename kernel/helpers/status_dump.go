package helpers

import (
	"fmt"
	"io"

	"github.com/sisoputnfrba/tp-planificador-Los-magiOS/kernel/models"
)

// DumpStatus escribe el proceso actual, la cola READY y los recursos tomados con sus colas de espera.
func DumpStatus(w io.Writer, sim *models.Simulation) {
	fmt.Fprintln(w, boldCyan(fmt.Sprintf("***** TICK %d *****", sim.Ticks)))

	if sim.Current != nil {
		fmt.Fprintf(w, "%s %s\n", bold("CURRENT"), formatProcess(sim.Current))
	} else {
		fmt.Fprintf(w, "%s %s\n", bold("CURRENT"), dim("-"))
	}

	fmt.Fprintln(w, bold("READY"))
	for p := range sim.ReadyQueue.All() {
		fmt.Fprintf(w, "  %s\n", formatProcess(p))
	}

	for _, r := range sim.Resources {
		if r.IsFree() && r.WaitQueue.IsEmpty() {
			continue
		}
		owner := dim("libre")
		if r.Owner != nil {
			owner = pidColor(r.Owner.PID)(fmt.Sprint(r.Owner.PID))
		}
		fmt.Fprintf(w, "%s %d dueño %s\n", bold("RECURSO"), r.ID, owner)
		for p := range r.WaitQueue.All() {
			fmt.Fprintf(w, "  %s\n", formatProcess(p))
		}
	}
	fmt.Fprintln(w)
}

func formatProcess(p *models.Process) string {
	return fmt.Sprintf("(%s) %s age %d/%d prio %d/%d",
		pidColor(p.PID)(fmt.Sprint(p.PID)), estadoColor(string(p.EstadoActual)), p.Age, p.Lifespan, p.Prio, p.PrioOrig)
}
