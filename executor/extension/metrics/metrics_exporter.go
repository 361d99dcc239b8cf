// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package metrics

import (
	"fmt"

	"github.com/0xsoniclabs/vcd-toggle/config"
	"github.com/0xsoniclabs/vcd-toggle/executor"
	"github.com/0xsoniclabs/vcd-toggle/executor/extension"
	"github.com/0xsoniclabs/vcd-toggle/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "vcd_toggle"

// MakeMetricsExporter creates an extension collecting run metrics in a
// private registry and writing them to a node exporter textfile at the
// end of the run if enabled in the configuration.
func MakeMetricsExporter(cfg *config.Config) executor.Extension {
	if cfg.MetricsFile == "" {
		return extension.NilExtension{}
	}
	return makeMetricsExporter(cfg.MetricsFile, prometheus.NewRegistry(), logger.NewLogger(cfg.LogLevel, "Metrics"))
}

func makeMetricsExporter(path string, registry *prometheus.Registry, log logger.Logger) *metricsExporter {
	factory := promauto.With(registry)
	return &metricsExporter{
		path:     path,
		registry: registry,
		log:      log,
		lines: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "lines",
			Help:      "Lines of the dump processed",
		}),
		records: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "records",
			Help:      "Change records applied",
		}),
		recordErrors: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "record_errors",
			Help:      "Records and declarations skipped because of errors",
		}),
		lastCycle: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_cycle",
			Help:      "Last active cycle",
		}),
		cycles: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cycles_total",
			Help:      "Closed cycles",
		}),
		reported: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cycles_over_threshold_total",
			Help:      "Closed cycles reaching the toggle threshold",
		}),
		changes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signal_reports_total",
			Help:      "Reported changes of single signals",
		}),
		toggles: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cycle_toggles",
			Help:      "Toggles per closed cycle",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
	}
}

type metricsExporter struct {
	extension.NilExtension
	path     string
	registry *prometheus.Registry
	log      logger.Logger

	lines        prometheus.Gauge
	records      prometheus.Gauge
	recordErrors prometheus.Gauge
	lastCycle    prometheus.Gauge
	cycles       prometheus.Counter
	reported     prometheus.Counter
	changes      prometheus.Counter
	toggles      prometheus.Histogram
}

func (m *metricsExporter) PostCycle(state executor.State, _ *executor.Context) error {
	m.cycles.Inc()
	if state.OverThreshold {
		m.reported.Inc()
	}
	m.toggles.Observe(float64(state.Distance))
	return nil
}

func (m *metricsExporter) PostChange(executor.State, *executor.Context) error {
	m.changes.Inc()
	return nil
}

func (m *metricsExporter) PostRun(_ executor.State, ctx *executor.Context, _ error) error {
	if s := ctx.Summary; s != nil {
		m.lines.Set(float64(s.Lines))
		m.records.Set(float64(s.Records))
		m.recordErrors.Set(float64(s.RecordErrors))
		m.lastCycle.Set(float64(s.LastCycle))
	}
	if err := prometheus.WriteToTextfile(m.path, m.registry); err != nil {
		return fmt.Errorf("cannot write metrics to %s; %w", m.path, err)
	}
	m.log.Infof("metrics written to %s", m.path)
	return nil
}
