package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sisoputnfrba/tp-planificador-Los-magiOS/kernel/handlers"
	"github.com/sisoputnfrba/tp-planificador-Los-magiOS/kernel/helpers"
	"github.com/sisoputnfrba/tp-planificador-Los-magiOS/kernel/models"
	"github.com/sisoputnfrba/tp-planificador-Los-magiOS/kernel/services"
	"github.com/sisoputnfrba/tp-planificador-Los-magiOS/utils/config"
	"github.com/sisoputnfrba/tp-planificador-Los-magiOS/utils/log"
	"github.com/sisoputnfrba/tp-planificador-Los-magiOS/utils/web/client"
	"github.com/sisoputnfrba/tp-planificador-Los-magiOS/utils/web/server"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const ConfigPath = "kernel/configs/kernel.json"

var (
	flagConfig    string
	flagAlgoritmo string
	flagMaxTicks  uint
	flagVerbose   bool
	flagJSON      bool
	flagTodos     bool
	flagProcesos  int
	flagSemilla   uint64
	flagRecursos  int
	flagOutput    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "kernel",
		Short: "Simulador de planificación de CPU y arbitraje de recursos",
		Long: `Corre escenarios de procesos tick a tick con FCFS, SJF, STCF, Round-Robin,
prioridades, prioridades con aging, PCP y PIP. Se puede usar por consola o levantar
el kernel como servidor HTTP.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initKernel(flagConfig)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", ConfigPath, "Archivo de configuración (JSON o YAML)")

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(submitCmd())
	rootCmd.AddCommand(schedulersCmd())
	rootCmd.AddCommand(generateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initKernel carga la configuración y el logger. Sin archivo de configuración se usan los valores por defecto.
func initKernel(path string) error {
	cfg := models.DefaultConfig()
	if _, err := os.Stat(path); err == nil {
		if err := config.Load(path, cfg); err != nil {
			return err
		}
	} else if path != ConfigPath {
		return fmt.Errorf("no se encontró la configuración %s: %w", path, err)
	}
	cfg.ApplyDefaults()
	models.KernelConfig = cfg

	if cfg.Quiet {
		log.InitQuietLogger()
	} else {
		log.InitLogger(cfg.LogPath, cfg.LogLevel)
	}
	slog.Debug(fmt.Sprintf("Port Kernel: %d", cfg.PortKernel))
	return nil
}

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <escenario>",
		Short: "Corre un escenario y muestra la línea de tiempo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := models.LoadScenario(args[0])
			if err != nil {
				return err
			}

			policies, err := selectedPolicies()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var results []*models.Result
			for _, policy := range policies {
				result, err := simulate(cmd.Context(), policy, *scenario, out)
				if err != nil {
					return err
				}
				results = append(results, result)
			}

			if flagJSON {
				return outputJSON(out, results)
			}
			for _, result := range results {
				helpers.RenderTimeline(out, result)
				helpers.RenderSummary(out, result)
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flagAlgoritmo, "algoritmo", "a", "", "Planificador a usar (por defecto el de la configuración)")
	cmd.Flags().UintVar(&flagMaxTicks, "max-ticks", 0, "Corta la simulación después de esta cantidad de ticks")
	cmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Muestra el estado en cada tick")
	cmd.Flags().BoolVar(&flagJSON, "json", false, "Imprime el resultado en JSON")
	cmd.Flags().BoolVar(&flagTodos, "todos", false, "Corre el escenario con todos los planificadores")
	return cmd
}

func selectedPolicies() ([]*services.Policy, error) {
	if flagTodos {
		return services.Schedulers, nil
	}
	algoritmo := flagAlgoritmo
	if algoritmo == "" {
		algoritmo = models.KernelConfig.SchedulerAlgorithm
	}
	policy, err := services.FindScheduler(algoritmo)
	if err != nil {
		return nil, err
	}
	return []*services.Policy{policy}, nil
}

func simulate(ctx context.Context, policy *services.Policy, scenario models.Scenario, out io.Writer) (*models.Result, error) {
	cfg := models.KernelConfig
	maxTicks := cfg.MaxTicks
	if flagMaxTicks > 0 {
		maxTicks = flagMaxTicks
	}

	opts := []services.SimulatorOption{
		services.WithMaxTicks(maxTicks),
		services.WithMaxPrio(cfg.MaxPrio),
		services.WithNrResources(cfg.NrResources),
	}
	if flagVerbose {
		opts = append(opts, services.WithStatusDump(out))
	}

	simulator, err := services.NewSimulator(policy, scenario, opts...)
	if err != nil {
		return nil, err
	}
	return simulator.Run(ctx)
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Levanta el kernel como servidor HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			mux := handlers.NewMux(helpers.NewRunMap())

			//Iniciacialización del servidor
			if err := server.InitServer(ctx, models.KernelConfig.PortKernel, mux); err != nil {
				slog.Error(fmt.Sprintf("error initializing server: %v", err))
				return err
			}
			return nil
		},
	}
}

func submitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit <escenario>",
		Short: "Envía un escenario a un kernel que está corriendo como servidor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := models.LoadScenario(args[0])
			if err != nil {
				return err
			}
			body, err := json.Marshal(scenario)
			if err != nil {
				return err
			}

			cfg := models.KernelConfig
			query := "kernel/simulaciones"
			if flagAlgoritmo != "" {
				query += "?algoritmo=" + url.QueryEscape(flagAlgoritmo)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			response, err := client.DoRequest(ctx, cfg.IpKernel, cfg.PortKernel, "POST", query, body)
			var statusErr *client.StatusError
			if err != nil && !errors.As(err, &statusErr) {
				return err
			}
			return helpers.RenderRemoteResult(cmd.OutOrStdout(), response)
		},
	}
	cmd.Flags().StringVarP(&flagAlgoritmo, "algoritmo", "a", "", "Planificador a usar (por defecto el del servidor)")
	return cmd
}

func schedulersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "planificadores",
		Short: "Lista los planificadores disponibles",
		Run: func(cmd *cobra.Command, args []string) {
			for _, policy := range services.Schedulers {
				fmt.Fprintf(cmd.OutOrStdout(), "%-5s %s\n", policy.Key, policy.Name)
			}
		},
	}
}

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generar",
		Short: "Genera un escenario aleatorio en YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := models.DefaultGeneratorOptions()
			opts.Processes = flagProcesos
			opts.NrResources = flagRecursos
			opts.MaxPrio = models.KernelConfig.MaxPrio

			seed := flagSemilla
			if !cmd.Flags().Changed("semilla") {
				seed = uint64(time.Now().UnixNano())
			}

			scenario := models.GenerateScenario(seed, opts)
			data, err := yaml.Marshal(scenario)
			if err != nil {
				return err
			}

			if flagOutput == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			return os.WriteFile(flagOutput, data, 0644)
		},
	}
	defaults := models.DefaultGeneratorOptions()
	cmd.Flags().IntVarP(&flagProcesos, "procesos", "n", defaults.Processes, "Cantidad de procesos")
	cmd.Flags().Uint64Var(&flagSemilla, "semilla", 0, "Semilla del generador")
	cmd.Flags().IntVar(&flagRecursos, "recursos", defaults.NrResources, "Cantidad de recursos a usar")
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Archivo de salida")
	return cmd
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
