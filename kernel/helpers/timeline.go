package helpers

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/sisoputnfrba/tp-planificador-Los-magiOS/kernel/models"
	"github.com/tidwall/gjson"
)

// RenderTimeline dibuja un diagrama de Gantt con una fila por proceso y una columna por tick.
func RenderTimeline(w io.Writer, result *models.Result) {
	fmt.Fprintf(w, "%s %s (%s) - %d ticks\n", bold("Escenario"), result.Scenario, result.PolicyName, result.Ticks)

	pids := make([]uint, 0, len(result.Processes))
	for _, stats := range result.Processes {
		pids = append(pids, stats.PID)
	}
	slices.Sort(pids)

	for _, pid := range pids {
		var row strings.Builder
		for _, running := range result.Timeline {
			if running == pid {
				row.WriteString(pidColor(pid)("#"))
			} else {
				row.WriteString(dim("."))
			}
		}
		fmt.Fprintf(w, "%4d | %s\n", pid, row.String())
	}
}

// RenderSummary imprime las métricas por proceso y la espera promedio.
func RenderSummary(w io.Writer, result *models.Result) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PID\tARRIBO\tVIDA\tPRIO\tINICIO\tFIN\tRETORNO\tESPERA\tRESPUESTA")
	for _, s := range result.Processes {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
			s.PID, s.Arrival, s.Lifespan, s.Prio, s.Start, s.Finish, s.Turnaround, s.Waiting, s.Response)
	}
	tw.Flush()
	fmt.Fprintf(w, "%s %.2f\n", bold("Espera promedio:"), result.AverageWaiting())
	fmt.Fprintf(w, "%s %v\n", bold("Orden de ejecución:"), result.RunOrder())
}

// RenderRemoteResult muestra la respuesta JSON del servidor sin decodificar el resultado completo.
func RenderRemoteResult(w io.Writer, body []byte) error {
	if !gjson.ValidBytes(body) {
		return fmt.Errorf("respuesta inválida del kernel: %q", string(body))
	}

	parsed := gjson.ParseBytes(body)
	if msg := parsed.Get("error"); msg.Exists() {
		return fmt.Errorf("el kernel respondió: %s", msg.String())
	}

	fmt.Fprintf(w, "%s %s\n", bold("Corrida"), parsed.Get("id").String())
	fmt.Fprintf(w, "%s %s (%s) - %d ticks\n", bold("Escenario"),
		parsed.Get("scenario").String(), parsed.Get("policy_name").String(), parsed.Get("ticks").Uint())

	var order []string
	last := int64(-1)
	parsed.Get("timeline").ForEach(func(_, pid gjson.Result) bool {
		if pid.Int() != 0 && pid.Int() != last {
			order = append(order, pid.String())
			last = pid.Int()
		}
		return true
	})
	fmt.Fprintf(w, "%s [%s]\n", bold("Orden de ejecución:"), strings.Join(order, " "))

	var total, count int64
	parsed.Get("processes").ForEach(func(_, stats gjson.Result) bool {
		total += stats.Get("waiting").Int()
		count++
		return true
	})
	if count > 0 {
		fmt.Fprintf(w, "%s %.2f\n", bold("Espera promedio:"), float64(total)/float64(count))
	}
	return nil
}
