/*
 * MIT License
 *
 * Copyright (c) 2024 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package admin

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

const metricNamespace = "mediadriver"

// counterCollector is a prometheus.Collector pulling its values from a
// CounterSource on every scrape, rather than pre-registering one gauge per
// system counter up front: the set of system counters is fixed at compile
// time, but this keeps the collector decoupled from the counters package's
// enumeration.
type counterCollector struct {
	source CounterSource
	desc   *prometheus.Desc
}

func newCounterCollector(source CounterSource) *counterCollector {
	return &counterCollector{
		source: source,
		desc: prometheus.NewDesc(
			prometheus.BuildFQName(metricNamespace, "", "system_counter"),
			"Current value of a driver system counter.",
			[]string{"name"}, nil,
		),
	}
}

func (c *counterCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

func (c *counterCollector) Collect(ch chan<- prometheus.Metric) {
	for label, value := range c.source.Snapshot() {
		ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, float64(value), metricLabel(label))
	}
}

// metricLabel normalizes a human-readable counter label ("Bytes sent") into
// a Prometheus-friendly metric label value ("bytes_sent").
func metricLabel(label string) string {
	label = strings.ToLower(label)
	label = strings.ReplaceAll(label, " ", "_")
	return strings.ReplaceAll(label, "-", "_")
}
