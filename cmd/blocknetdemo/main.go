// Command blocknetdemo drives a Registry[component.Capacity] through a
// scripted placement/removal sequence and prints the resulting graph —
// a runnable worked example of spec scenarios 1, 2, 3 and 6, useful for
// eyeballing merge/split/collapse behavior without writing a test.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/annel0/blocknetwork/internal/component"
	"github.com/annel0/blocknetwork/internal/config"
	"github.com/annel0/blocknetwork/internal/eventbus"
	"github.com/annel0/blocknetwork/internal/logging"
	"github.com/annel0/blocknetwork/internal/metrics"
	"github.com/annel0/blocknetwork/internal/netgraph"
	"github.com/annel0/blocknetwork/internal/registry"
	"github.com/annel0/blocknetwork/internal/telemetry"
	"github.com/annel0/blocknetwork/internal/vec"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (optional)")
	flag.Parse()

	if err := logging.Init(); err != nil {
		fmt.Println("logging init failed:", err)
		return
	}
	defer logging.Close()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Error("config load failed: %v", err)
		return
	}
	if cfg == nil {
		cfg = &config.Config{}
	}

	shutdownTelemetry, err := telemetry.Init(context.Background(), cfg.Telemetry.OTLPEndpoint, serviceName(cfg))
	if err != nil {
		logging.Error("telemetry init failed: %v", err)
		return
	}
	defer shutdownTelemetry(context.Background())

	exporter := metrics.New(prometheus.DefaultRegisterer)
	if port := cfg.Telemetry.MetricsPortOrDefault(); port > 0 {
		exporter.StartHTTP(fmt.Sprintf(":%d", port))
	}

	reg := buildRegistry(cfg, exporter)
	runDemo(reg)
}

func serviceName(cfg *config.Config) string {
	if cfg.Telemetry.ServiceName != "" {
		return cfg.Telemetry.ServiceName
	}
	return "blocknetdemo"
}

// buildRegistry wires a registry whose hooks keep the metrics exporter's
// gauges current, always bridge lifecycle events onto an in-memory bus
// with a logging subscriber (a debugging sidecar, spec §6), and, if
// configured, also bridge them onto a JetStream bus for an
// out-of-process observer. No position is ever always-a-node or
// extendable in this demo — matches spec §8's worked-example
// predicates.
func buildRegistry(cfg *config.Config, exporter *metrics.Exporter) *registry.Registry[component.Capacity] {
	alg := component.CapacityAlgebra{}
	isAlwaysNode := func(p vec.Vec3) bool { return false }
	isExtendableNode := func(p vec.Vec3) bool { return false }

	var reg *registry.Registry[component.Capacity]
	updateGraphSize := func(*netgraph.Network[component.Capacity]) {
		var nodes, edges int
		for _, n := range reg.AllNetworks() {
			nodes += len(n.Nodes())
			edges += len(n.Edges())
		}
		exporter.SetGraphSize(len(reg.AllNetworks()), nodes, edges)
	}

	hooks := &registry.Hooks[component.Capacity]{
		OnNetworkCreated:   func(n *netgraph.Network[component.Capacity]) { updateGraphSize(n) },
		OnNetworkDestroyed: func(n *netgraph.Network[component.Capacity]) { updateGraphSize(n) },
		OnGraphUpdated:     updateGraphSize,
	}

	debugBus := eventbus.NewMemoryBus(64)
	eventbus.Init(debugBus)
	if err := eventbus.StartLoggingListener(debugBus); err != nil {
		logging.Warn("eventbus: could not start the logging listener: %v", err)
	} else {
		hooks = eventbus.BridgeHooks[component.Capacity](debugBus, "blocknetdemo", hooks)
	}

	if cfg.EventBus.URL != "" {
		retention := time.Duration(cfg.EventBus.Retention) * time.Hour
		bus, err := eventbus.NewJetStreamBus(cfg.EventBus.URL, cfg.EventBus.Stream, retention)
		if err != nil {
			logging.Warn("eventbus: could not connect to %s: %v (continuing without it)", cfg.EventBus.URL, err)
		} else {
			hooks = eventbus.BridgeHooks[component.Capacity](bus, "blocknetdemo", hooks)
		}
	}

	reg = registry.New[component.Capacity](alg, isAlwaysNode, isExtendableNode, nil, hooks)
	return reg
}

func runDemo(reg *registry.Registry[component.Capacity]) {
	alg := component.CapacityAlgebra{}

	place := func(x, y, z int) {
		p := vec.Vec3{X: x, Y: y, Z: z}
		reg.OnBlockPlaced(p, alg.FromLength(1))
	}

	// Scenario 1: straight line compression.
	place(0, 0, 0)
	place(1, 0, 0)
	place(2, 0, 0)
	place(3, 0, 0)
	place(4, 0, 0)
	report(reg, "after straight line")

	// Scenario 2: T-junction formation.
	place(2, 1, 0)
	report(reg, "after T-junction")

	// Scenario 3: middle removal.
	reg.OnBlockRemoved(vec.Vec3{X: 2, Y: 0, Z: 0})
	report(reg, "after middle removal")

	// Scenario 6: recompute after a disconnecting removal.
	reg.RecalculateNetworks(func(vec.Vec3) component.Capacity { return alg.FromLength(1) })
	report(reg, "after recalculate")
}

func report(reg *registry.Registry[component.Capacity], label string) {
	fmt.Printf("--- %s ---\n", label)
	fmt.Println(reg)
	for _, n := range reg.AllNetworks() {
		fmt.Println(" ", n)
	}
}
