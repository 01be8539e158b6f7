package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"os-project/api"
	"os-project/config"
	"os-project/internal/client"
	"os-project/internal/report"
	"os-project/internal/requests"
	"os-project/internal/responses"
	"os-project/internal/schedulers"
)

var ErrInvalidArgs = errors.New("invalid args")

const usage = `usage:
  os-project [serve] [--config config.yaml] [--port 9095]
  os-project run --file processes.csv [--policy srtf|sjf|fcfs|priority|priority-preemptive|all] [--preemptive] [--remote http://host:port]
`

func main() {
	command := "serve"
	args := os.Args[1:]
	if len(args) > 0 && (args[0] == "serve" || args[0] == "run") {
		command, args = args[0], args[1:]
	}

	v := config.New()
	flags := newFlagSet(command)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatalln(err)
	}

	if err := bindFlags(v, flags); err != nil {
		log.Fatalln(err)
	}
	if configFile, _ := flags.GetString("config"); configFile != "" {
		v.SetConfigFile(configFile)
	}

	cfg, err := config.GetSchedulerConfig(v)
	if err != nil {
		log.Fatalln(err)
	}
	cfg.Preemptive = resolvePreemption(flags, cfg)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	switch command {
	case "run":
		if err := run(os.Stdout, cfg, v); err != nil {
			log.Fatalln(err)
		}
	default:
		serve(cfg)
	}
}

func newFlagSet(command string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(command, pflag.ContinueOnError)
	flags.Usage = func() { _, _ = fmt.Fprint(os.Stderr, usage) }
	flags.String("config", "", "path to the config file")
	flags.Int("port", 9095, "port the API listens on")
	flags.String("policy", "", "scheduling policy, or all to compare every policy")
	flags.Bool("preemptive", false, "force preemption on or off")
	flags.String("file", "", "CSV file with pid,burst,arrival[,priority] rows")
	flags.String("remote", "", "base URL of a running scheduler API")
	flags.String("log-level", "", "debug, info, warn or error")
	return flags
}

var flagKeys = map[string]string{
	"port":      "port",
	"policy":    "scheduler.default_policy",
	"log-level": "log.level",
	"file":      "file",
	"remote":    "remote",
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("binding --%s: %w", name, err)
		}
	}
	return nil
}

// resolvePreemption picks the preemption override for run: the --preemptive
// flag when given, otherwise the configured scheduler.preemptive, but only
// while --policy names no policy of its own.
func resolvePreemption(flags *pflag.FlagSet, cfg *config.SchedulerConfig) *bool {
	if flags.Changed("preemptive") {
		preemptive, _ := flags.GetBool("preemptive")
		return &preemptive
	}
	if flags.Changed("policy") {
		return nil
	}
	return cfg.Preemptive
}

func serve(cfg *config.SchedulerConfig) {
	app := api.NewApp(api.NewSchedulerHandlerImpl(cfg))

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		slog.Info("shutting down")
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%d", cfg.Port)
	slog.Info("scheduler api listening", "addr", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatalln(err)
	}
}

func run(w io.Writer, cfg *config.SchedulerConfig, v *viper.Viper) error {
	path := v.GetString("file")
	if path == "" {
		return fmt.Errorf("%w: run needs --file", ErrInvalidArgs)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: error opening scheduling file", err)
	}
	defer f.Close()

	jobs, err := requests.ParseCSV(f)
	if err != nil {
		return err
	}
	request := requests.ScheduleRequest{Policy: cfg.DefaultPolicy, Preemptive: cfg.Preemptive, Jobs: jobs}

	if remote := v.GetString("remote"); remote != "" {
		return runRemote(w, client.New(remote, cfg.ClientTimeout), request)
	}
	return runLocal(w, request)
}

func runLocal(w io.Writer, request requests.ScheduleRequest) error {
	var results []responses.ScheduleResponse
	for _, name := range policyNames(request.Policy) {
		policy, err := schedulers.PolicyByName(name)
		if err != nil {
			return err
		}
		if request.Preemptive != nil && request.Policy != "all" {
			policy = policy.WithPreemption(*request.Preemptive)
		}

		result, err := schedulers.Run(request.Processes(), policy)
		if err != nil {
			return err
		}
		response := responses.NewScheduleResponse(policy, result)
		report.Render(w, response)
		results = append(results, response)
	}

	if len(results) > 1 {
		report.RenderComparison(w, results)
	}
	return nil
}

func runRemote(w io.Writer, c *client.Client, request requests.ScheduleRequest) error {
	ctx := context.Background()

	if request.Policy != "all" {
		response, err := c.Simulate(ctx, request)
		if err != nil {
			return err
		}
		report.Render(w, response)
		return nil
	}

	byName, err := c.SimulateAll(ctx, request)
	if err != nil {
		return err
	}
	var results []responses.ScheduleResponse
	for _, name := range schedulers.PolicyNames() {
		if response, ok := byName[name]; ok {
			report.Render(w, response)
			results = append(results, response)
		}
	}
	report.RenderComparison(w, results)
	return nil
}

func policyNames(policy string) []string {
	if policy == "all" {
		return schedulers.PolicyNames()
	}
	return []string{policy}
}
