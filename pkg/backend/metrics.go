// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later
package backend

import "github.com/prometheus/client_golang/prometheus"

// Metrics instruments the package processor, served over the same
// promhttp.Handler()-on-a-side-goroutine pattern the teacher's
// cmd/cie/index.go uses for its own --metrics-addr flag.
type Metrics struct {
	PackagesCompiled  *prometheus.CounterVec
	FilesWritten      *prometheus.CounterVec
	RenderErrors      *prometheus.CounterVec
	ResolverCacheHits prometheus.Counter
	WriteDuration     *prometheus.HistogramVec
}

// NewMetrics registers every collector against reg and returns the
// handle the processor and resolver chain share. A nil reg uses
// prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		PackagesCompiled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "schemac",
			Subsystem: "backend",
			Name:      "packages_compiled_total",
			Help:      "Packages successfully rendered and written, by target language.",
		}, []string{"lang"}),
		FilesWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "schemac",
			Subsystem: "backend",
			Name:      "files_written_total",
			Help:      "Output files written, by target language.",
		}, []string{"lang"}),
		RenderErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "schemac",
			Subsystem: "backend",
			Name:      "render_errors_total",
			Help:      "Package render or write failures, by target language.",
		}, []string{"lang"}),
		ResolverCacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "schemac",
			Subsystem: "resolver",
			Name:      "cache_hits_total",
			Help:      "Package resolutions served from the per-compilation resolver cache.",
		}),
		WriteDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "schemac",
			Subsystem: "backend",
			Name:      "write_duration_seconds",
			Help:      "Time spent rendering and writing one package's output file.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"lang"}),
	}
	reg.MustRegister(m.PackagesCompiled, m.FilesWritten, m.RenderErrors, m.ResolverCacheHits, m.WriteDuration)
	return m
}
